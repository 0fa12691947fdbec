// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet holds the plaintext record store that lives inside an
// encrypted vault.
//
// A [Store] is an ordered list of tagged entries. A [KindKeyPair] entry is a
// key record answering public key queries and private key operations; a
// [KindContent] entry is opaque secret content that is never projected as a
// key. Both share one reference namespace.
//
// A Store exists only while an operation runs: it is unmarshalled from the
// decrypted plaintext, mutated, marshalled back and wiped.
package wallet
