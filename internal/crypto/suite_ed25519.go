// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-key-vault/models"
)

// ed25519Suite stores the 32-byte seed as private key material. Imported
// 64-byte private keys are reduced to their seed.
type ed25519Suite struct{}

func newEd25519Suite() *ed25519Suite {
	return &ed25519Suite{}
}

func (s *ed25519Suite) Type() models.KeyType {
	return models.Ed25519VerificationKey2018
}

func (s *ed25519Suite) Generate() ([]byte, []byte, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	defer memguard.WipeBytes(priv)

	seed := make([]byte, ed25519.SeedSize)
	copy(seed, priv.Seed())
	return pub, seed, nil
}

func (s *ed25519Suite) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := ed25519Key(privateKey)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(priv)

	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return pub, nil
}

func (s *ed25519Suite) Sign(privateKey, data []byte) ([]byte, error) {
	priv, err := ed25519Key(privateKey)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(priv)

	return ed25519.Sign(priv, data), nil
}

func (s *ed25519Suite) Verify(publicKey, data, sig []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(publicKey, data, sig)
}

func ed25519Key(b []byte) (ed25519.PrivateKey, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	case ed25519.PrivateKeySize:
		return ed25519.NewKeyFromSeed(b[:ed25519.SeedSize]), nil
	default:
		return nil, fmt.Errorf("%w: ed25519 private key must be %d or %d bytes",
			ErrInvalidKey, ed25519.SeedSize, ed25519.PrivateKeySize)
	}
}
