// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidContent is returned by AddContent for documents that are not
	// valid JSON or that look like a key import but cannot be imported.
	ErrInvalidContent = errors.New("invalid content")

	// ErrPublicKeyMismatch is returned when an imported key carries a
	// publicKeyHex that does not belong to its private key.
	ErrPublicKeyMismatch = errors.New("public key does not match private key")

	ErrInvalidRandomLength = errors.New("invalid random length")
	ErrEmptyNewID          = errors.New("new wallet id must not be empty")
	ErrEmptyNewPassword    = errors.New("new password must not be empty")
	ErrInvalidPublicKeyHex = errors.New("invalid public key hex")
)
