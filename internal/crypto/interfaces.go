// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-key-vault/models"

// WalletCipher seals and opens wallet plaintext under a password. The wallet
// id is authenticated together with the ciphertext: a blob sealed for one id
// does not open under another.
//
// Scheme:
//
//	salt   = random 16 bytes                          (fresh on every Seal)
//	KEK    = Argon2id(password, salt, params)
//	check  = SHA-256(KEK ‖ domain)                    (stored in the header)
//	blob   = header ‖ nonce ‖ AES-256-GCM(KEK, plaintext, aad = header ‖ id)
type WalletCipher interface {
	// Seal encrypts plaintext for id under password. Two calls with the same
	// arguments produce different blobs.
	Seal(id, password string, plaintext []byte) ([]byte, error)

	// Open reverses Seal. It returns [ErrWrongPassword] when the password
	// check fails and [ErrDecryptionFailed] when the password is right but the
	// ciphertext, header or id do not authenticate.
	Open(id, password string, blob []byte) ([]byte, error)
}

// Suite is the part of a key suite common to every key type: key generation
// and public key derivation.
type Suite interface {
	Type() models.KeyType

	// Generate creates a fresh key pair and returns the public key in the
	// suite's canonical serialisation together with the private key bytes.
	Generate() (publicKey, privateKey []byte, err error)

	// PublicKey derives the public key for imported private key bytes.
	PublicKey(privateKey []byte) ([]byte, error)
}

// Signer is implemented by signature suites.
type Signer interface {
	Suite
	Sign(privateKey, data []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature of data. Malformed keys
	// or signatures yield false.
	Verify(publicKey, data, sig []byte) bool
}

// Agreement is implemented by key-agreement suites.
type Agreement interface {
	Suite

	// SharedSecret performs raw Diffie-Hellman and returns the shared point
	// without any key derivation.
	SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error)

	// Seal encrypts plaintext to publicKey without a sender key.
	Seal(publicKey, plaintext, aad []byte) ([]byte, error)

	// Open decrypts a ciphertext produced by Seal.
	Open(privateKey, ciphertext, aad []byte) ([]byte, error)
}
