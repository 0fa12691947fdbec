// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/models"
)

func testKey(id string, controller ...string) KeyPair {
	return KeyPair{
		ID:         id,
		Type:       models.Ed25519VerificationKey2018,
		Controller: controller,
		PublicKey:  []byte{0xde, 0xad},
		PrivateKey: []byte{0x01, 0x02, 0x03},
	}
}

// ── construction ──────────────────────────────────────────────────────────────

func TestNew_Empty(t *testing.T) {
	s := New()
	assert.Equal(t, StoreVersion, s.Version)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Keys())
}

func TestMarshalUnmarshal_PreservesOrderAndVariants(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1", "w1#key-1")))
	require.NoError(t, s.AddContent(Content{ID: "c1", Data: json.RawMessage(`{"entropy":"00ff"}`)}))
	require.NoError(t, s.AddKeyPair(testKey("k2")))

	raw, err := s.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(raw)
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, KindKeyPair, got.Entries[0].Kind)
	assert.Equal(t, KindContent, got.Entries[1].Kind)
	assert.Equal(t, "k2", got.Entries[2].Ref())
	assert.JSONEq(t, `{"entropy":"00ff"}`, string(got.Entries[1].Content.Data))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got.Entries[0].KeyPair.PrivateKey)
}

func TestUnmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "not json", input: "{", want: ErrCorruptStore},
		{name: "future version", input: `{"version":2,"entries":[]}`, want: ErrUnsupportedStoreVersion},
		{name: "kind without payload", input: `{"version":1,"entries":[{"kind":"KeyPair"}]}`, want: ErrCorruptStore},
		{name: "mismatched payload", input: `{"version":1,"entries":[{"kind":"Content","keyPair":{"id":"a"}}]}`, want: ErrCorruptStore},
		{name: "unknown kind", input: `{"version":1,"entries":[{"kind":"Other","content":{"id":"a"}}]}`, want: ErrCorruptStore},
		{name: "empty ref", input: `{"version":1,"entries":[{"kind":"Content","content":{"id":""}}]}`, want: ErrCorruptStore},
		{
			name:  "duplicate ref",
			input: `{"version":1,"entries":[{"kind":"Content","content":{"id":"a"}},{"kind":"KeyPair","keyPair":{"id":"a"}}]}`,
			want:  ErrCorruptStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnmarshal_NullEntriesBecomeEmpty(t *testing.T) {
	s, err := Unmarshal([]byte(`{"version":1,"entries":null}`))
	require.NoError(t, err)
	assert.NotNil(t, s.Entries)
}

// ── insertion ─────────────────────────────────────────────────────────────────

func TestAdd_RejectsDuplicateAcrossKinds(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("ref")))

	err := s.AddContent(Content{ID: "ref", Data: json.RawMessage(`1`)})
	assert.ErrorIs(t, err, ErrDuplicateRef)

	err = s.AddKeyPair(testKey("ref"))
	assert.ErrorIs(t, err, ErrDuplicateRef)
	assert.Equal(t, 1, s.Len())
}

func TestAdd_RejectsEmptyRef(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.AddKeyPair(testKey("")), ErrEmptyRef)
	assert.ErrorIs(t, s.AddContent(Content{}), ErrEmptyRef)
}

func TestAddKeyPair_NilControllerBecomesEmpty(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1")))

	kp, err := s.KeyByRef("k1")
	require.NoError(t, err)
	assert.NotNil(t, kp.Controller)
	assert.Equal(t, []string{}, kp.PublicInfo().Controller)
}

// ── lookup ────────────────────────────────────────────────────────────────────

func TestKeyByRef(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1", "ctrl")))
	require.NoError(t, s.AddContent(Content{ID: "c1", Data: json.RawMessage(`{}`)}))

	kp, err := s.KeyByRef("k1")
	require.NoError(t, err)
	assert.Equal(t, "k1", kp.ID)

	_, err = s.KeyByRef("ctrl")
	assert.ErrorIs(t, err, ErrKeyNotFound, "controller is not a reference")

	_, err = s.KeyByRef("c1")
	assert.ErrorIs(t, err, ErrKeyNotFound, "content is not a key")
}

func TestKeyByController_FirstMatchInInsertionOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("b-second", "shared")))
	require.NoError(t, s.AddKeyPair(testKey("a-first", "shared")))
	require.NoError(t, s.AddKeyPair(testKey("c-third", "other", "shared")))

	kp, err := s.KeyByController("shared")
	require.NoError(t, err)
	assert.Equal(t, "b-second", kp.ID, "first inserted wins, not alphabetical")

	kp, err = s.KeyByController("other")
	require.NoError(t, err)
	assert.Equal(t, "c-third", kp.ID)

	_, err = s.KeyByController("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestResolveKey_PrefersReference(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1", "k2")))
	require.NoError(t, s.AddKeyPair(testKey("k2")))

	kp, err := s.ResolveKey("k2")
	require.NoError(t, err)
	assert.Equal(t, "k2", kp.ID)

	require.NoError(t, s.AddKeyPair(testKey("k3", "w1#key-3")))
	kp, err = s.ResolveKey("w1#key-3")
	require.NoError(t, err)
	assert.Equal(t, "k3", kp.ID)

	_, err = s.ResolveKey("nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeys_SkipsContent(t *testing.T) {
	s := New()
	require.NoError(t, s.AddContent(Content{ID: "c1", Data: json.RawMessage(`{"publicKeyHex":"ab","type":"Ed25519VerificationKey2018"}`)}))
	require.NoError(t, s.AddKeyPair(testKey("k1")))

	keys := s.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, "k1", keys[0].ID)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, KindContent, s.Entries[0].Kind)
	assert.Equal(t, "c1", s.Entries[0].Content.ID)
}

// ── mutation ──────────────────────────────────────────────────────────────────

func TestSetController(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1", "old")))

	input := []string{"new-1", "new-2"}
	kp, err := s.SetController("old", input)
	require.NoError(t, err)
	assert.Equal(t, []string{"new-1", "new-2"}, kp.Controller)

	input[0] = "mutated"
	assert.Equal(t, "new-1", kp.Controller[0], "controller slice is copied")

	_, err = s.SetController("missing", nil)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPublicInfo(t *testing.T) {
	kp := testKey("k1", "c")
	info := kp.PublicInfo()

	assert.Equal(t, models.PublicKeyInfo{
		ID:           "k1",
		Type:         models.Ed25519VerificationKey2018,
		PublicKeyHex: "dead",
		Controller:   []string{"c"},
	}, info)
}

func TestWipe_ZeroesSecrets(t *testing.T) {
	s := New()
	require.NoError(t, s.AddKeyPair(testKey("k1")))
	require.NoError(t, s.AddContent(Content{ID: "c1", Data: json.RawMessage(`"secret"`)}))

	s.Wipe()

	kp, err := s.KeyByRef("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0}, kp.PrivateKey)

	require.Equal(t, KindContent, s.Entries[1].Kind)
	for _, b := range s.Entries[1].Content.Data {
		assert.Zero(t, b)
	}
}
