// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/MKhiriev/go-key-vault/models"
)

const (
	secp256k1PrivateKeySize = 32
	compactSigSize          = 64

	// SignCompact prefixes R‖S with 27 + recovery id (+4 for compressed keys).
	compactMagicOffset = 27 + 4
)

// secp256k1Suite signs SHA-256 digests with deterministic (RFC 6979), low-S
// ECDSA. The plain variant returns R‖S, the recoverable one R‖S‖v.
type secp256k1Suite struct {
	recoverable bool
}

func newSecp256k1Suite(recoverable bool) *secp256k1Suite {
	return &secp256k1Suite{recoverable: recoverable}
}

func (s *secp256k1Suite) Type() models.KeyType {
	if s.recoverable {
		return models.EcdsaSecp256k1RecoveryMethod2020
	}
	return models.EcdsaSecp256k1VerificationKey2019
}

func (s *secp256k1Suite) Generate() ([]byte, []byte, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	defer priv.Zero()

	return priv.PubKey().SerializeCompressed(), priv.Serialize(), nil
}

func (s *secp256k1Suite) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := parseSecp256k1PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return priv.PubKey().SerializeCompressed(), nil
}

func (s *secp256k1Suite) Sign(privateKey, data []byte) ([]byte, error) {
	priv, err := parseSecp256k1PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	digest := sha256.Sum256(data)
	compact := ecdsa.SignCompact(priv, digest[:], true)

	if !s.recoverable {
		sig := make([]byte, compactSigSize)
		copy(sig, compact[1:])
		return sig, nil
	}

	sig := make([]byte, compactSigSize+1)
	copy(sig, compact[1:])
	sig[compactSigSize] = compact[0] - compactMagicOffset
	return sig, nil
}

func (s *secp256k1Suite) Verify(publicKey, data, sig []byte) bool {
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(data)

	if s.recoverable {
		return verifyRecoverable(pub, digest[:], sig)
	}

	if len(sig) != compactSigSize {
		return false
	}
	var r, sv secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) || sv.SetByteSlice(sig[32:]) {
		return false
	}
	if r.IsZero() || sv.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &sv).Verify(digest[:], pub)
}

// verifyRecoverable recovers the signer from R‖S‖v and compares it with pub.
func verifyRecoverable(pub *secp256k1.PublicKey, digest, sig []byte) bool {
	if len(sig) != compactSigSize+1 {
		return false
	}
	v := sig[compactSigSize]
	if v >= 27 {
		v -= 27
	}
	if v > 3 {
		return false
	}

	compact := make([]byte, 0, compactSigSize+1)
	compact = append(compact, compactMagicOffset+v)
	compact = append(compact, sig[:compactSigSize]...)

	recovered, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return false
	}
	return recovered.IsEqual(pub)
}

func parseSecp256k1PrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1PrivateKeySize {
		return nil, fmt.Errorf("%w: secp256k1 private key must be %d bytes", ErrInvalidKey, secp256k1PrivateKeySize)
	}
	priv := secp256k1.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero secp256k1 scalar", ErrInvalidKey)
	}
	return priv, nil
}
