// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/MKhiriev/go-key-vault/models"
)

// schnorrSuite implements BIP-340 over SHA-256(data) with x-only public keys.
type schnorrSuite struct{}

func newSchnorrSuite() *schnorrSuite {
	return &schnorrSuite{}
}

func (s *schnorrSuite) Type() models.KeyType {
	return models.SchnorrSecp256k1VerificationKey2019
}

func (s *schnorrSuite) Generate() ([]byte, []byte, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("generate schnorr key: %w", err)
	}
	defer priv.Zero()

	return schnorr.SerializePubKey(priv.PubKey()), priv.Serialize(), nil
}

func (s *schnorrSuite) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := parseBtcecPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return schnorr.SerializePubKey(priv.PubKey()), nil
}

func (s *schnorrSuite) Sign(privateKey, data []byte) ([]byte, error) {
	priv, err := parseBtcecPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	digest := sha256.Sum256(data)
	sig, err := schnorr.Sign(priv, digest[:])
	if err != nil {
		return nil, fmt.Errorf("schnorr sign: %w", err)
	}
	return sig.Serialize(), nil
}

func (s *schnorrSuite) Verify(publicKey, data, sig []byte) bool {
	pub, err := schnorr.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(data)
	return parsed.Verify(digest[:], pub)
}

func parseBtcecPrivateKey(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: schnorr private key must be %d bytes", ErrInvalidKey, btcec.PrivKeyBytesLen)
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero secp256k1 scalar", ErrInvalidKey)
	}
	return priv, nil
}
