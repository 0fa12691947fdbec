// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/MKhiriev/go-key-vault/models"
)

const defaultRSABits = 2048

// rsaSuite signs with RSASSA-PKCS1-v1_5 and SHA-256. Keys are serialised as
// PKCS#1 DER, public and private alike.
type rsaSuite struct {
	bits int
}

func newRSASuite(bits int) *rsaSuite {
	return &rsaSuite{bits: bits}
}

func (s *rsaSuite) Type() models.KeyType {
	return models.RsaVerificationKey2018
}

func (s *rsaSuite) Generate() ([]byte, []byte, error) {
	priv, err := rsa.GenerateKey(rand.Reader, s.bits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate rsa key: %w", err)
	}
	return x509.MarshalPKCS1PublicKey(&priv.PublicKey), x509.MarshalPKCS1PrivateKey(priv), nil
}

func (s *rsaSuite) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := x509.ParsePKCS1PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return x509.MarshalPKCS1PublicKey(&priv.PublicKey), nil
}

func (s *rsaSuite) Sign(privateKey, data []byte) ([]byte, error) {
	priv, err := x509.ParsePKCS1PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, stdcrypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("rsa sign: %w", err)
	}
	return sig, nil
}

func (s *rsaSuite) Verify(publicKey, data, sig []byte) bool {
	pub, err := x509.ParsePKCS1PublicKey(publicKey)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(data)
	return rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], sig) == nil
}
