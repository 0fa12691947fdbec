// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the keyvault CLI.
//
// All Msg* constants are human-readable messages printed to stderr when a
// command fails. Describe maps an error onto one of them together with the
// process exit code, so every command reports failures the same way.
package app

import (
	"errors"

	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

const (
	// MsgWrongPassword is printed when the supplied password does not open
	// the vault.
	MsgWrongPassword = "wrong password"

	// MsgKeyNotFound is printed when a key reference or controller is not
	// present in the vault.
	MsgKeyNotFound = "key not found"

	// MsgInvalidInput is printed for malformed arguments: bad encodings,
	// unknown key types, or a key that cannot perform the operation.
	MsgInvalidInput = "invalid input"

	// MsgDecryptionFailed is printed when a ciphertext or a stored vault
	// fails its integrity check for a reason other than the password.
	MsgDecryptionFailed = "decryption failed: data is corrupted or bound to another id"

	// MsgWalletNotCreated is printed when a new vault is rejected.
	MsgWalletNotCreated = "wallet could not be created"

	// MsgWalletNotFound is printed when no wallet is stored under the id.
	MsgWalletNotFound = "wallet not found"

	// MsgWalletAlreadyExists is printed when init or change-id targets an id
	// that is already taken.
	MsgWalletAlreadyExists = "wallet already exists"

	// MsgVersionConflict is printed when another process updated the wallet
	// between load and save. The command should be retried.
	MsgVersionConflict = "wallet was modified concurrently, please retry"

	// MsgInvalidSignature is printed by verify for a signature that does not
	// check out.
	MsgInvalidSignature = "signature is invalid"

	MsgInternalError = "internal error"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitAuth      = 3
	ExitNotFound  = 4
	ExitConflict  = 5
	ExitIntegrity = 6
)

// ErrInvalidSignature is returned by the verify command so that a failed
// check yields a non-zero exit code.
var ErrInvalidSignature = errors.New(MsgInvalidSignature)

// Describe returns the message and exit code reported for err.
func Describe(err error) (string, int) {
	switch {
	case err == nil:
		return "", ExitOK
	case errors.Is(err, ErrInvalidSignature):
		return MsgInvalidSignature, ExitFailure
	case errors.Is(err, models.ErrAuthentication):
		return MsgWrongPassword, ExitAuth
	case errors.Is(err, models.ErrInitialization):
		return MsgWalletNotCreated, ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return MsgKeyNotFound, ExitNotFound
	case errors.Is(err, models.ErrDecryption):
		return MsgDecryptionFailed, ExitIntegrity
	case errors.Is(err, models.ErrInvalidArgument):
		return MsgInvalidInput, ExitUsage
	case errors.Is(err, store.ErrWalletNotFound):
		return MsgWalletNotFound, ExitNotFound
	case errors.Is(err, store.ErrWalletAlreadyExists):
		return MsgWalletAlreadyExists, ExitConflict
	case errors.Is(err, store.ErrVersionConflict):
		return MsgVersionConflict, ExitConflict
	case isValidationError(err):
		return MsgInvalidInput, ExitUsage
	default:
		return MsgInternalError, ExitFailure
	}
}

func isValidationError(err error) bool {
	for _, known := range []error{
		validators.ErrEmptyWalletID,
		validators.ErrInvalidWalletID,
		validators.ErrEmptyState,
		validators.ErrInvalidState,
		validators.ErrInvalidVersion,
		validators.ErrEmptyKeyRef,
		validators.ErrEmptyEncryptionKey,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
