// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import "errors"

var (
	// ErrKeyNotFound is returned when neither a reference nor a controller
	// matches a key record.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateRef is returned when an entry is added under a reference
	// already present in the store.
	ErrDuplicateRef = errors.New("reference already exists")

	ErrEmptyRef = errors.New("reference must not be empty")

	// ErrCorruptStore is returned when decrypted plaintext is not a valid
	// record store.
	ErrCorruptStore = errors.New("corrupt record store")

	ErrUnsupportedStoreVersion = errors.New("unsupported record store version")
)
