// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// DefaultMaxRandomLength bounds a single GetRandom request unless the
// service is built with another limit.
const DefaultMaxRandomLength = 1 << 20

type cryptoService struct {
	suites    *crypto.Suites
	maxRandom int
	logger    *logger.Logger
}

// NewCryptoService constructs the password-free [models.CryptoUtils].
// maxRandom bounds GetRandom; values below 1 select [DefaultMaxRandomLength].
func NewCryptoService(suites *crypto.Suites, maxRandom int, log *logger.Logger) models.CryptoUtils {
	if maxRandom < 1 {
		maxRandom = DefaultMaxRandomLength
	}
	return &cryptoService{suites: suites, maxRandom: maxRandom, logger: log}
}

// GetRandom returns n bytes from the OS CSPRNG, transport encoded.
func (s *cryptoService) GetRandom(ctx context.Context, n int) (string, error) {
	if n < 0 || n > s.maxRandom {
		return "", mapError(fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidRandomLength, n, s.maxRandom))
	}

	b, err := crypto.RandomBytes(n)
	if err != nil {
		s.logger.Error().Err(err).Msg("random source failed")
		return "", err
	}
	return crypto.EncodeTransport(b), nil
}

// Verify reports whether sig is a valid signature of data under pkInfo.
// Malformed arguments are returned as errors; an invalid signature is
// (false, nil).
func (s *cryptoService) Verify(ctx context.Context, pkInfo, data, sig string) (bool, error) {
	kt, pub, err := parsePublicKeyInfo(pkInfo)
	if err != nil {
		return false, mapError(err)
	}
	signer, err := s.suites.Signer(kt)
	if err != nil {
		return false, mapError(err)
	}

	msg, err := crypto.DecodeTransport(data)
	if err != nil {
		return false, mapError(err)
	}
	rawSig, err := crypto.DecodeTransport(sig)
	if err != nil {
		return false, mapError(err)
	}

	ok := signer.Verify(pub, msg, rawSig)
	s.logger.Debug().Str("op", "verify").Str("type", kt.String()).Bool("valid", ok).Msg("signature checked")
	return ok, nil
}

// Encrypt seals plaintext to the key-agreement key described by pkInfo.
func (s *cryptoService) Encrypt(ctx context.Context, pkInfo, plaintext, aad string) (string, error) {
	kt, pub, err := parsePublicKeyInfo(pkInfo)
	if err != nil {
		return "", mapError(err)
	}
	agreement, err := s.suites.Agreement(kt)
	if err != nil {
		return "", mapError(err)
	}

	pt, err := crypto.DecodeTransport(plaintext)
	if err != nil {
		return "", mapError(err)
	}
	ad, err := decodeOptional(aad)
	if err != nil {
		return "", mapError(err)
	}

	ct, err := agreement.Seal(pub, pt, ad)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "encrypt").Msg("seal failed")
		return "", mapError(err)
	}
	return crypto.EncodeTransport(ct), nil
}

func parsePublicKeyInfo(pkInfo string) (models.KeyType, []byte, error) {
	var info models.PublicKeyInfo
	if err := json.Unmarshal([]byte(pkInfo), &info); err != nil {
		return "", nil, fmt.Errorf("%w: public key info: %w", models.ErrInvalidArgument, err)
	}

	kt, err := models.ParseKeyType(string(info.Type))
	if err != nil {
		return "", nil, err
	}

	pub, err := hex.DecodeString(info.PublicKeyHex)
	if err != nil || len(pub) == 0 {
		return "", nil, ErrInvalidPublicKeyHex
	}
	return kt, pub, nil
}
