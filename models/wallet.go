// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PublicKeyInfo is the public projection of a key record. Private material
// never appears in it.
type PublicKeyInfo struct {
	// ID is the reference of the record inside its vault.
	ID string `json:"id"`

	// Type selects the suite used to interpret PublicKeyHex.
	Type KeyType `json:"type"`

	// PublicKeyHex is the hex-encoded public key in the suite's canonical
	// serialisation.
	PublicKeyHex string `json:"publicKeyHex"`

	// Controller lists application-level labels. It is serialised as an
	// array even when empty.
	Controller []string `json:"controller"`
}

// KeyRefArgs is the locator and credential pair for operations on one key.
type KeyRefArgs struct {
	EncryptionPass string
	KeyRef         string
}

// AddKeyResult is returned by key generation: the replacement vault state and
// the public view of the new key.
type AddKeyResult struct {
	NewEncryptedState string        `json:"newEncryptedState"`
	NewKey            PublicKeyInfo `json:"newKey"`
}

// EncryptedWallet is a persisted vault: the transport-encoded encrypted state
// together with the id it is bound to.
type EncryptedWallet struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
