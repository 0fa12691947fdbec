// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Wallet blob errors.
var (
	// ErrWrongPassword is returned by Open when the password check stored in
	// the blob header does not match the derived key.
	ErrWrongPassword = errors.New("wrong password")

	// ErrDecryptionFailed is returned when the AEAD tag does not verify even
	// though the password is correct: the ciphertext, header or id changed.
	ErrDecryptionFailed = errors.New("ciphertext authentication failed")

	// ErrMalformedBlob is returned for blobs that are truncated, carry the
	// wrong magic, or declare unusable KDF parameters.
	ErrMalformedBlob = errors.New("malformed wallet blob")

	// ErrUnsupportedBlobVersion is returned for blobs written by a newer format.
	ErrUnsupportedBlobVersion = errors.New("unsupported wallet blob version")

	// ErrInvalidKDFParams is returned for Argon2id parameters outside the
	// accepted range.
	ErrInvalidKDFParams = errors.New("argon2 parameters out of range")

	ErrEmptyPassword = errors.New("password must not be empty")
	ErrEmptyID       = errors.New("wallet id must not be empty")
)

// Key suite errors.
var (
	// ErrUnsupportedKeyType is returned for key types that have no suite.
	ErrUnsupportedKeyType = errors.New("unsupported key type")

	// ErrOperationNotSupported is returned when a suite exists but cannot
	// perform the requested operation (e.g. signing with X25519).
	ErrOperationNotSupported = errors.New("operation not supported by key type")

	// ErrInvalidKey is returned for key material of the wrong size or shape.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrMalformedCiphertext is returned when an anonymous ciphertext is too
	// short to contain the encapsulated key.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	ErrInvalidEncoding = errors.New("invalid base64url encoding")
)
