// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic primitives behind the vault.
//
// Wallet blobs are sealed with a key-encryption key derived from the password
// with Argon2id and encrypted with AES-256-GCM:
//
//	magic "KV" | version | time u32 | memory u32 | threads u8 | salt[16] | check[32] | nonce[12] | ciphertext
//
// check is SHA-256(KEK ‖ domain) and lets Open tell a wrong password apart
// from a tampered blob. The header and the wallet id form the GCM associated
// data, so neither can be changed without detection.
//
// Key suites are looked up by [models.KeyType] through [Suites]:
//   - secp256k1 ECDSA (plain and recoverable) via decred secp256k1
//   - BIP-340 Schnorr via btcec
//   - Ed25519, P-256 (ES256) and RSA PKCS#1 v1.5 via the standard library
//   - X25519 ECDH via x/crypto/curve25519 and anonymous encryption via HPKE
//     (circl)
//
// Binary values cross package boundaries as unpadded base64url, see
// [EncodeTransport] and [DecodeTransport].
package crypto
