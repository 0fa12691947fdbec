// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "context"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/capabilities_mock.go -package=mock

// WalletUtils is the wallet-mutation capability consumed by the vault.
//
// Every method receives the current encrypted state as a base64url string
// together with the vault id and password. Mutating methods return the
// replacement state; queries return JSON. Binary arguments and results are
// base64url without padding.
type WalletUtils interface {
	// NewWallet creates an empty vault bound to id and sealed with pass.
	NewWallet(ctx context.Context, id, pass string) (string, error)

	// ChangePass re-seals the vault under newPass.
	ChangePass(ctx context.Context, encryptedWallet, id, oldPass, newPass string) (string, error)

	// ChangeID re-seals the vault under newID.
	ChangeID(ctx context.Context, encryptedWallet, id, newID, pass string) (string, error)

	// NewKey generates a key pair of keyType and returns a JSON [AddKeyResult].
	NewKey(ctx context.Context, encryptedWallet, id, pass, keyType string, controller ...string) (string, error)

	// AddContent appends the JSON document content as a new record.
	AddContent(ctx context.Context, encryptedWallet, id, pass, content string) (string, error)

	// GetKey returns the JSON [PublicKeyInfo] whose reference equals keyRef.
	GetKey(ctx context.Context, encryptedWallet, id, pass, keyRef string) (string, error)

	// GetKeyByController returns the JSON [PublicKeyInfo] of the first key
	// whose controller list contains controller.
	GetKeyByController(ctx context.Context, encryptedWallet, id, pass, controller string) (string, error)

	// SetKeyController replaces the controller list of the key at keyRef.
	SetKeyController(ctx context.Context, encryptedWallet, id, pass, keyRef string, controller ...string) (string, error)

	// GetKeys returns a JSON array of every key's [PublicKeyInfo].
	GetKeys(ctx context.Context, encryptedWallet, id, pass string) (string, error)

	// Sign signs data with the key at keyRef.
	Sign(ctx context.Context, encryptedWallet, id, pass, keyRef, data string) (string, error)

	// Decrypt opens data addressed to the key-agreement key at keyRef. aad
	// may be empty.
	Decrypt(ctx context.Context, encryptedWallet, id, pass, keyRef, data, aad string) (string, error)

	// ECDHKeyAgreement returns the raw shared secret between the key at
	// keyRef and pubKey.
	ECDHKeyAgreement(ctx context.Context, encryptedWallet, id, pass, keyRef, pubKey string) (string, error)
}

// CryptoUtils is the password-free capability operating on public material.
// pkInfo is a JSON [PublicKeyInfo].
type CryptoUtils interface {
	GetRandom(ctx context.Context, n int) (string, error)
	Verify(ctx context.Context, pkInfo, data, sig string) (bool, error)
	Encrypt(ctx context.Context, pkInfo, plaintext, aad string) (string, error)
}
