// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error taxonomy shared by the vault, the capability implementations and the
// crypto façade. Implementations wrap these sentinels, so callers match them
// with [errors.Is].
var (
	// ErrAuthentication is returned when the supplied password does not open
	// the vault.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when a reference or controller is not present in
	// the vault.
	ErrNotFound = errors.New("key not found")

	// ErrInvalidArgument is returned for malformed input: bad transport
	// encoding, unknown key type, negative random length, or a key whose type
	// does not support the requested operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecryption is returned when ciphertext integrity fails for a reason
	// other than a wrong password, e.g. a tampered blob or a mismatched id.
	ErrDecryption = errors.New("decryption failed")

	// ErrInitialization is returned when a new vault cannot be created.
	ErrInitialization = errors.New("wallet initialization failed")
)
