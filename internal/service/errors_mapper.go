// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/wallet"
	"github.com/MKhiriev/go-key-vault/models"
)

var taxonomy = []error{
	models.ErrAuthentication,
	models.ErrNotFound,
	models.ErrInvalidArgument,
	models.ErrDecryption,
	models.ErrInitialization,
}

// mapError translates crypto and record-store errors into the public error
// taxonomy. The original error stays in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return err
		}
	}

	switch {
	case errors.Is(err, crypto.ErrWrongPassword):
		return fmt.Errorf("%w: %w", models.ErrAuthentication, err)

	case errors.Is(err, crypto.ErrDecryptionFailed),
		errors.Is(err, crypto.ErrMalformedBlob),
		errors.Is(err, crypto.ErrUnsupportedBlobVersion),
		errors.Is(err, wallet.ErrCorruptStore),
		errors.Is(err, wallet.ErrUnsupportedStoreVersion):
		return fmt.Errorf("%w: %w", models.ErrDecryption, err)

	case errors.Is(err, wallet.ErrKeyNotFound):
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)

	case errors.Is(err, crypto.ErrInvalidEncoding),
		errors.Is(err, crypto.ErrInvalidKey),
		errors.Is(err, crypto.ErrUnsupportedKeyType),
		errors.Is(err, crypto.ErrOperationNotSupported),
		errors.Is(err, crypto.ErrMalformedCiphertext),
		errors.Is(err, crypto.ErrEmptyID),
		errors.Is(err, crypto.ErrEmptyPassword),
		errors.Is(err, crypto.ErrInvalidKDFParams),
		errors.Is(err, wallet.ErrDuplicateRef),
		errors.Is(err, wallet.ErrEmptyRef),
		errors.Is(err, ErrInvalidContent),
		errors.Is(err, ErrPublicKeyMismatch),
		errors.Is(err, ErrInvalidRandomLength),
		errors.Is(err, ErrEmptyNewID),
		errors.Is(err, ErrEmptyNewPassword),
		errors.Is(err, ErrInvalidPublicKeyHex):
		return fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
	}

	return err
}
