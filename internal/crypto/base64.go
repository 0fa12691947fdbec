// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

var transportEncoding = base64.RawURLEncoding.Strict()

// EncodeTransport encodes b as unpadded base64url.
func EncodeTransport(b []byte) string {
	return transportEncoding.EncodeToString(b)
}

// DecodeTransport decodes an unpadded base64url string. Padding, the standard
// alphabet and non-canonical trailing bits are rejected.
func DecodeTransport(s string) ([]byte, error) {
	b, err := transportEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return b, nil
}

// RandomBytes reads n bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}
