// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    KeyType
		wantErr bool
	}{
		{name: "secp256k1", input: "EcdsaSecp256k1VerificationKey2019", want: EcdsaSecp256k1VerificationKey2019},
		{name: "x25519", input: "X25519KeyAgreementKey2019", want: X25519KeyAgreementKey2019},
		{name: "gpg is recognised", input: "GpgVerificationKey2020", want: GpgVerificationKey2020},
		{name: "case sensitive", input: "ed25519verificationkey2018", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyType_Capabilities(t *testing.T) {
	assert.True(t, X25519KeyAgreementKey2019.IsKeyAgreement())
	assert.False(t, X25519KeyAgreementKey2019.IsSigning())

	for _, kt := range []KeyType{
		JwsVerificationKey2020,
		EcdsaSecp256k1VerificationKey2019,
		Ed25519VerificationKey2018,
		RsaVerificationKey2018,
		SchnorrSecp256k1VerificationKey2019,
		EcdsaSecp256k1RecoveryMethod2020,
	} {
		assert.True(t, kt.IsSigning(), kt)
		assert.False(t, kt.IsKeyAgreement(), kt)
	}

	assert.False(t, KeyType("Unknown").IsSigning())
}

func TestPublicKeyInfo_JSONShape(t *testing.T) {
	info := PublicKeyInfo{
		ID:           "urn:uuid:1",
		Type:         Ed25519VerificationKey2018,
		PublicKeyHex: "abcd",
		Controller:   []string{"w1#key-1"},
	}

	raw, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"urn:uuid:1","type":"Ed25519VerificationKey2018","publicKeyHex":"abcd","controller":["w1#key-1"]}`, string(raw))
}

func TestAppBuildInfo_FallsBackToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}
