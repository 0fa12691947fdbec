// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// CryptoProvider is the password-free façade over public key material.
type CryptoProvider struct {
	crypto models.CryptoUtils
	logger *logger.Logger
}

// NewCryptoProvider wraps utils. Use [NewDefaultCryptoProvider] for the
// built-in implementation.
func NewCryptoProvider(utils models.CryptoUtils, opts ...Option) *CryptoProvider {
	o := applyOptions(opts)
	return &CryptoProvider{crypto: utils, logger: o.logger}
}

// Verify reports whether signature is a valid signature of data under
// publicKey. It never fails: a malformed key, an unsupported type or a
// broken signature all read as false.
func (c *CryptoProvider) Verify(ctx context.Context, publicKey []byte, keyType models.KeyType, data, signature []byte) bool {
	info, err := publicKeyInfo(publicKey, keyType)
	if err != nil {
		c.logger.Debug().Err(err).Msg("verify: cannot encode public key")
		return false
	}

	ok, err := c.crypto.Verify(ctx, info, crypto.EncodeTransport(data), crypto.EncodeTransport(signature))
	if err != nil {
		c.logger.Debug().Err(err).Str("type", keyType.String()).Msg("verify: rejected input")
		return false
	}
	return ok
}

// Encrypt seals plaintext to the holder of publicKey without a sender key.
// Only key-agreement types are accepted. aad may be nil.
func (c *CryptoProvider) Encrypt(ctx context.Context, publicKey []byte, keyType models.KeyType, plaintext, aad []byte) ([]byte, error) {
	info, err := publicKeyInfo(publicKey, keyType)
	if err != nil {
		return nil, opError("encrypt", err)
	}

	ct, err := c.crypto.Encrypt(ctx, info, crypto.EncodeTransport(plaintext), crypto.EncodeTransport(aad))
	if err != nil {
		return nil, opError("encrypt", err)
	}

	b, err := crypto.DecodeTransport(ct)
	if err != nil {
		return nil, opError("encrypt", fmt.Errorf("%w: %w", ErrMalformedResult, err))
	}
	return b, nil
}

// GetRandom returns n bytes from a cryptographically secure source.
// A negative n fails with [models.ErrInvalidArgument].
func (c *CryptoProvider) GetRandom(ctx context.Context, n int) ([]byte, error) {
	out, err := c.crypto.GetRandom(ctx, n)
	if err != nil {
		return nil, opError("getRandom", err)
	}

	b, err := crypto.DecodeTransport(out)
	if err != nil {
		return nil, opError("getRandom", fmt.Errorf("%w: %w", ErrMalformedResult, err))
	}
	return b, nil
}

func publicKeyInfo(publicKey []byte, keyType models.KeyType) (string, error) {
	b, err := json.Marshal(models.PublicKeyInfo{
		Type:         keyType,
		PublicKeyHex: hex.EncodeToString(publicKey),
		Controller:   []string{},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
	}
	return string(b), nil
}
