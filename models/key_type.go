// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// KeyType identifies the asymmetric suite a key record uses. The value is the
// verification-method type string written into [PublicKeyInfo.Type].
type KeyType string

const (
	// JwsVerificationKey2020 is a P-256 key producing ES256 signatures.
	JwsVerificationKey2020 KeyType = "JwsVerificationKey2020"

	// EcdsaSecp256k1VerificationKey2019 is a secp256k1 key producing 64-byte
	// compact ECDSA signatures.
	EcdsaSecp256k1VerificationKey2019 KeyType = "EcdsaSecp256k1VerificationKey2019"

	// Ed25519VerificationKey2018 is an Ed25519 signing key.
	Ed25519VerificationKey2018 KeyType = "Ed25519VerificationKey2018"

	// GpgVerificationKey2020 is recognised but no suite backs it.
	GpgVerificationKey2020 KeyType = "GpgVerificationKey2020"

	// RsaVerificationKey2018 is an RSA key producing PKCS#1 v1.5 signatures.
	RsaVerificationKey2018 KeyType = "RsaVerificationKey2018"

	// X25519KeyAgreementKey2019 is the only key-agreement suite. It supports
	// ECDH and anonymous decryption.
	X25519KeyAgreementKey2019 KeyType = "X25519KeyAgreementKey2019"

	// SchnorrSecp256k1VerificationKey2019 is a BIP-340 Schnorr key.
	SchnorrSecp256k1VerificationKey2019 KeyType = "SchnorrSecp256k1VerificationKey2019"

	// EcdsaSecp256k1RecoveryMethod2020 is a secp256k1 key producing
	// recoverable 65-byte signatures.
	EcdsaSecp256k1RecoveryMethod2020 KeyType = "EcdsaSecp256k1RecoveryMethod2020"
)

var knownKeyTypes = map[KeyType]struct{}{
	JwsVerificationKey2020:              {},
	EcdsaSecp256k1VerificationKey2019:   {},
	Ed25519VerificationKey2018:          {},
	GpgVerificationKey2020:              {},
	RsaVerificationKey2018:              {},
	X25519KeyAgreementKey2019:           {},
	SchnorrSecp256k1VerificationKey2019: {},
	EcdsaSecp256k1RecoveryMethod2020:    {},
}

// ParseKeyType converts s into a [KeyType]. It fails with [ErrInvalidArgument]
// for strings outside the closed enumeration.
func ParseKeyType(s string) (KeyType, error) {
	kt := KeyType(s)
	if !kt.IsValid() {
		return "", fmt.Errorf("%w: unknown key type %q", ErrInvalidArgument, s)
	}
	return kt, nil
}

// IsValid reports whether kt is a member of the enumeration.
func (kt KeyType) IsValid() bool {
	_, ok := knownKeyTypes[kt]
	return ok
}

// IsKeyAgreement reports whether kt can be used for ECDH and decryption.
func (kt KeyType) IsKeyAgreement() bool {
	return kt == X25519KeyAgreementKey2019
}

// IsSigning reports whether kt names a signature suite.
func (kt KeyType) IsSigning() bool {
	return kt.IsValid() && !kt.IsKeyAgreement()
}

func (kt KeyType) String() string {
	return string(kt)
}
