// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider is the public entry point of go-key-vault.
//
// A [SoftwareKeyProvider] owns one vault: the encrypted state and the id it
// is bound to. Every call supplies the password, the state is opened by the
// injected [models.WalletUtils], and mutating calls replace the held state
// with the one returned. Mutations on one provider are serialised, so the
// state returned by each completed mutation is the input of the next.
//
// A [CryptoProvider] works on public key material only and never sees a
// vault or a password.
//
// Errors match the sentinels in package models with [errors.Is] and are
// decorated with the operation name through [OperationError].
package provider
