// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-key-vault/models"
)

// Suites maps key types to their implementations.
type Suites struct {
	byType map[models.KeyType]Suite
}

// NewSuites returns a registry holding every suite this package implements.
// [models.GpgVerificationKey2020] is intentionally absent.
func NewSuites() *Suites {
	s := &Suites{byType: make(map[models.KeyType]Suite)}
	s.register(newSecp256k1Suite(false))
	s.register(newSecp256k1Suite(true))
	s.register(newSchnorrSuite())
	s.register(newEd25519Suite())
	s.register(newP256Suite())
	s.register(newRSASuite(defaultRSABits))
	s.register(newX25519Suite())
	return s
}

func (s *Suites) register(suite Suite) {
	s.byType[suite.Type()] = suite
}

// Lookup returns the suite for kt or [ErrUnsupportedKeyType].
func (s *Suites) Lookup(kt models.KeyType) (Suite, error) {
	suite, ok := s.byType[kt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, kt)
	}
	return suite, nil
}

// Signer returns the signature suite for kt. Key-agreement types fail with
// [ErrOperationNotSupported].
func (s *Suites) Signer(kt models.KeyType) (Signer, error) {
	suite, err := s.Lookup(kt)
	if err != nil {
		return nil, err
	}
	signer, ok := suite.(Signer)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot sign", ErrOperationNotSupported, kt)
	}
	return signer, nil
}

// Agreement returns the key-agreement suite for kt. Signature types fail with
// [ErrOperationNotSupported].
func (s *Suites) Agreement(kt models.KeyType) (Agreement, error) {
	suite, err := s.Lookup(kt)
	if err != nil {
		return nil, err
	}
	agreement, ok := suite.(Agreement)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a key-agreement key", ErrOperationNotSupported, kt)
	}
	return agreement, nil
}
