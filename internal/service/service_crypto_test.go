package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// ── GetRandom ────────────────────────────────────────────────────────────────

func TestCryptoService_GetRandom(t *testing.T) {
	_, cs := newTestWalletSvc(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		n       int
		wantLen int
		wantErr error
	}{
		{name: "zero", n: 0, wantLen: 0},
		{name: "thirty two", n: 32, wantLen: 32},
		{name: "upper bound", n: DefaultMaxRandomLength, wantLen: DefaultMaxRandomLength},
		{name: "negative", n: -1, wantErr: models.ErrInvalidArgument},
		{name: "too large", n: DefaultMaxRandomLength + 1, wantErr: models.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cs.GetRandom(ctx, tt.n)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			raw, err := crypto.DecodeTransport(out)
			require.NoError(t, err)
			assert.Len(t, raw, tt.wantLen)
		})
	}
}

func TestCryptoService_GetRandom_ConfiguredLimit(t *testing.T) {
	cs := NewCryptoService(crypto.NewSuites(), 16, logger.Nop())

	out, err := cs.GetRandom(context.Background(), 16)
	require.NoError(t, err)
	raw, err := crypto.DecodeTransport(out)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	_, err = cs.GetRandom(context.Background(), 17)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrInvalidRandomLength)
}

func TestCryptoService_GetRandom_Distinct(t *testing.T) {
	_, cs := newTestWalletSvc(t)

	a, err := cs.GetRandom(context.Background(), 32)
	require.NoError(t, err)
	b, err := cs.GetRandom(context.Background(), 32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestCryptoService_Verify_MalformedInput(t *testing.T) {
	_, cs := newTestWalletSvc(t)
	ctx := context.Background()
	ed := `{"id":"k","type":"Ed25519VerificationKey2018","publicKeyHex":"` + ed25519PubHex + `","controller":[]}`

	tests := []struct {
		name   string
		pkInfo string
		data   string
		sig    string
	}{
		{name: "not json", pkInfo: `{`, data: b64("m"), sig: b64("s")},
		{name: "unknown type", pkInfo: `{"type":"Nope","publicKeyHex":"00"}`, data: b64("m"), sig: b64("s")},
		{name: "key agreement type", pkInfo: `{"type":"X25519KeyAgreementKey2019","publicKeyHex":"00"}`, data: b64("m"), sig: b64("s")},
		{name: "empty public key", pkInfo: `{"type":"Ed25519VerificationKey2018","publicKeyHex":""}`, data: b64("m"), sig: b64("s")},
		{name: "bad hex", pkInfo: `{"type":"Ed25519VerificationKey2018","publicKeyHex":"xyz"}`, data: b64("m"), sig: b64("s")},
		{name: "bad data", pkInfo: ed, data: "***", sig: b64("s")},
		{name: "bad signature", pkInfo: ed, data: b64("m"), sig: "a+b/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := cs.Verify(ctx, tt.pkInfo, tt.data, tt.sig)
			assert.False(t, ok)
			assert.ErrorIs(t, err, models.ErrInvalidArgument)
		})
	}
}

func TestCryptoService_Verify_WrongLengthSignatureIsFalse(t *testing.T) {
	_, cs := newTestWalletSvc(t)
	ed := `{"id":"k","type":"Ed25519VerificationKey2018","publicKeyHex":"` + ed25519PubHex + `","controller":[]}`

	ok, err := cs.Verify(context.Background(), ed, b64("m"), b64("short"))
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── Encrypt ──────────────────────────────────────────────────────────────────

func TestCryptoService_Encrypt_Rejected(t *testing.T) {
	_, cs := newTestWalletSvc(t)
	ctx := context.Background()

	_, err := cs.Encrypt(ctx, `{"type":"Ed25519VerificationKey2018","publicKeyHex":"`+ed25519PubHex+`"}`, b64("m"), "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = cs.Encrypt(ctx, `{"type":"X25519KeyAgreementKey2019","publicKeyHex":"0011"}`, b64("m"), "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = cs.Encrypt(ctx, `{"type":"X25519KeyAgreementKey2019","publicKeyHex":"`+ed25519PubHex+`"}`, "!!", "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCryptoService_Encrypt_FreshCiphertexts(t *testing.T) {
	s, cs := newTestWalletSvc(t)
	_, info := addKey(t, s, newTestState(t, s), models.X25519KeyAgreementKey2019)
	ctx := context.Background()

	a, err := cs.Encrypt(ctx, pkJSON(t, info), b64("same"), "")
	require.NoError(t, err)
	b, err := cs.Encrypt(ctx, pkJSON(t, info), b64("same"), "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
