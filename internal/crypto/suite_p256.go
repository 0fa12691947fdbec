// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-key-vault/models"
)

const p256ScalarSize = 32

// p256Suite produces ES256 (JWS) signatures: R‖S over SHA-256(data). Public
// keys are uncompressed SEC 1 points, private keys raw 32-byte scalars.
type p256Suite struct {
	method *jwt.SigningMethodECDSA
}

func newP256Suite() *p256Suite {
	return &p256Suite{method: jwt.SigningMethodES256}
}

func (s *p256Suite) Type() models.KeyType {
	return models.JwsVerificationKey2020
}

func (s *p256Suite) Generate() ([]byte, []byte, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate p-256 key: %w", err)
	}
	privBytes, err := priv.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("encode p-256 key: %w", err)
	}
	pubBytes, err := priv.PublicKey.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("encode p-256 public key: %w", err)
	}
	return pubBytes, privBytes, nil
}

func (s *p256Suite) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := ecdsa.ParseRawPrivateKey(elliptic.P256(), privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	pub, err := priv.PublicKey.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pub, nil
}

// Sign produces the JWS ES256 signature of data. data is signed as is, with
// no JOSE header or encoding around it.
func (s *p256Suite) Sign(privateKey, data []byte) ([]byte, error) {
	priv, err := ecdsa.ParseRawPrivateKey(elliptic.P256(), privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	sig, err := s.method.Sign(string(data), priv)
	if err != nil {
		return nil, fmt.Errorf("p-256 sign: %w", err)
	}
	return sig, nil
}

func (s *p256Suite) Verify(publicKey, data, sig []byte) bool {
	if len(sig) != 2*p256ScalarSize {
		return false
	}
	pub, err := ecdsa.ParseUncompressedPublicKey(elliptic.P256(), publicKey)
	if err != nil {
		return false
	}
	return s.method.Verify(string(data), sig, pub) == nil
}
