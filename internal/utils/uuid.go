// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the vault services.
package utils

import "github.com/google/uuid"

// refPrefix makes reference ids URNs, matching the "id" values used in DID
// verification methods.
const refPrefix = "urn:uuid:"

// UUIDGenerator produces reference ids for new vault records. Ids are
// time-ordered UUIDv7 values rendered as urn:uuid URNs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh reference id. If the v7 clock source fails it
// falls back to a random v4 UUID.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return refPrefix + uuid.NewString()
	}

	return refPrefix + v7.String()
}
