package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/models"
)

var testCtx = context.Background()

func newMockedProvider(t *testing.T) (*SoftwareKeyProvider, *mock.MockWalletUtils) {
	t.Helper()
	ctrl := gomock.NewController(t)
	w := mock.NewMockWalletUtils(ctrl)
	return NewSoftwareKeyProvider(w, "state-0", "w1"), w
}

func addKeyResult(t *testing.T, state string, info models.PublicKeyInfo) string {
	t.Helper()
	b, err := json.Marshal(models.AddKeyResult{NewEncryptedState: state, NewKey: info})
	require.NoError(t, err)
	return string(b)
}

// ── NewEmptyWallet ───────────────────────────────────────────────────────────

func TestNewEmptyWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mock.NewMockWalletUtils(ctrl)
	w.EXPECT().NewWallet(testCtx, "w1", "p1").Return("state-0", nil)

	p, err := NewEmptyWallet(testCtx, w, "w1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "w1", p.ID())
	assert.Equal(t, "state-0", p.EncryptedWallet())
}

func TestNewEmptyWallet_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mock.NewMockWalletUtils(ctrl)
	w.EXPECT().NewWallet(testCtx, "w1", "").Return("", models.ErrInvalidArgument)

	p, err := NewEmptyWallet(testCtx, w, "w1", "")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, models.ErrInitialization)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "newEmptyWallet", opErr.Op)
}

// ── ChangePass / ChangeID ────────────────────────────────────────────────────

func TestSoftwareKeyProvider_ChangePass(t *testing.T) {
	p, w := newMockedProvider(t)
	w.EXPECT().ChangePass(testCtx, "state-0", "w1", "old", "new").Return("state-1", nil)

	require.NoError(t, p.ChangePass(testCtx, "old", "new"))
	assert.Equal(t, "state-1", p.EncryptedWallet())
	assert.Equal(t, "w1", p.ID())
}

func TestSoftwareKeyProvider_ChangePass_FailureKeepsState(t *testing.T) {
	p, w := newMockedProvider(t)
	w.EXPECT().ChangePass(testCtx, "state-0", "w1", "bad", "new").Return("", models.ErrAuthentication)

	err := p.ChangePass(testCtx, "bad", "new")
	assert.ErrorIs(t, err, models.ErrAuthentication)
	assert.Equal(t, "state-0", p.EncryptedWallet())
}

func TestSoftwareKeyProvider_ChangeID(t *testing.T) {
	p, w := newMockedProvider(t)
	w.EXPECT().ChangeID(testCtx, "state-0", "w1", "w2", "p1").Return("state-1", nil)

	require.NoError(t, p.ChangeID(testCtx, "p1", "w2"))
	assert.Equal(t, models.EncryptedWallet{ID: "w2", State: "state-1"}, p.Snapshot())
}

func TestSoftwareKeyProvider_ChangeID_FailureKeepsPair(t *testing.T) {
	p, w := newMockedProvider(t)
	w.EXPECT().ChangeID(testCtx, "state-0", "w1", "w2", "bad").Return("", models.ErrAuthentication)

	err := p.ChangeID(testCtx, "bad", "w2")
	assert.ErrorIs(t, err, models.ErrAuthentication)
	assert.Equal(t, models.EncryptedWallet{ID: "w1", State: "state-0"}, p.Snapshot())
}

// ── NewKeyPair ───────────────────────────────────────────────────────────────

func TestSoftwareKeyProvider_NewKeyPair(t *testing.T) {
	p, w := newMockedProvider(t)
	info := models.PublicKeyInfo{
		ID:           "urn:uuid:1",
		Type:         models.EcdsaSecp256k1VerificationKey2019,
		PublicKeyHex: "02aa",
		Controller:   []string{"w1#key-1"},
	}
	w.EXPECT().
		NewKey(testCtx, "state-0", "w1", "p1", string(models.EcdsaSecp256k1VerificationKey2019), "w1#key-1").
		Return(addKeyResult(t, "state-1", info), nil)

	got, err := p.NewKeyPair(testCtx, "p1", models.EcdsaSecp256k1VerificationKey2019, "w1#key-1")
	require.NoError(t, err)
	assert.Equal(t, info, got)
	assert.Equal(t, "state-1", p.EncryptedWallet())
}

func TestSoftwareKeyProvider_NewKeyPair_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		err     error
		wantErr error
	}{
		{name: "capability error", err: models.ErrAuthentication, wantErr: models.ErrAuthentication},
		{name: "garbled result", raw: "{", wantErr: ErrMalformedResult},
		{name: "empty state", raw: `{"newEncryptedState":"","newKey":{}}`, wantErr: ErrMalformedResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, w := newMockedProvider(t)
			w.EXPECT().NewKey(testCtx, "state-0", "w1", "p1", string(models.Ed25519VerificationKey2018)).
				Return(tt.raw, tt.err)

			_, err := p.NewKeyPair(testCtx, "p1", models.Ed25519VerificationKey2018)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "state-0", p.EncryptedWallet())
		})
	}
}

// ── AddContent / SetKeyController ────────────────────────────────────────────

func TestSoftwareKeyProvider_AddContent(t *testing.T) {
	tests := []struct {
		name    string
		content any
		wantDoc string
	}{
		{name: "raw message", content: json.RawMessage(`{"id":"n1"}`), wantDoc: `{"id":"n1"}`},
		{name: "bytes", content: []byte(`[1,2]`), wantDoc: `[1,2]`},
		{name: "map", content: map[string]string{"id": "n2"}, wantDoc: `{"id":"n2"}`},
		{name: "string", content: "plain", wantDoc: `"plain"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, w := newMockedProvider(t)
			w.EXPECT().AddContent(testCtx, "state-0", "w1", "p1", tt.wantDoc).Return("state-1", nil)

			require.NoError(t, p.AddContent(testCtx, "p1", tt.content))
			assert.Equal(t, "state-1", p.EncryptedWallet())
		})
	}
}

func TestSoftwareKeyProvider_AddContent_NotSerialisable(t *testing.T) {
	p, _ := newMockedProvider(t)

	err := p.AddContent(testCtx, "p1", make(chan int))
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Equal(t, "state-0", p.EncryptedWallet())
}

func TestSoftwareKeyProvider_SetKeyController(t *testing.T) {
	p, w := newMockedProvider(t)
	args := models.KeyRefArgs{EncryptionPass: "p1", KeyRef: "k1"}

	w.EXPECT().SetKeyController(testCtx, "state-0", "w1", "p1", "k1", "a", "b").Return("state-1", nil)
	require.NoError(t, p.SetKeyController(testCtx, args, "a", "b"))

	w.EXPECT().SetKeyController(testCtx, "state-1", "w1", "p1", "k1", "c").Return("", models.ErrNotFound)
	assert.ErrorIs(t, p.SetKeyController(testCtx, args, "c"), models.ErrNotFound)
	assert.Equal(t, "state-1", p.EncryptedWallet())
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func TestSoftwareKeyProvider_GetPubKeys(t *testing.T) {
	p, w := newMockedProvider(t)

	w.EXPECT().GetKeys(testCtx, "state-0", "w1", "p1").Return("[]", nil)
	keys, err := p.GetPubKeys(testCtx, "p1")
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)

	w.EXPECT().GetKeys(testCtx, "state-0", "w1", "bad").Return("", models.ErrAuthentication)
	_, err = p.GetPubKeys(testCtx, "bad")
	assert.ErrorIs(t, err, models.ErrAuthentication)
}

func TestSoftwareKeyProvider_GetPubKey(t *testing.T) {
	p, w := newMockedProvider(t)
	args := models.KeyRefArgs{EncryptionPass: "p1", KeyRef: "k1"}

	w.EXPECT().GetKey(testCtx, "state-0", "w1", "p1", "k1").
		Return(`{"id":"k1","type":"Ed25519VerificationKey2018","publicKeyHex":"aa","controller":[]}`, nil)
	info, err := p.GetPubKey(testCtx, args)
	require.NoError(t, err)
	assert.Equal(t, "k1", info.ID)

	w.EXPECT().GetKey(testCtx, "state-0", "w1", "p1", "k1").Return("", models.ErrNotFound)
	_, err = p.GetPubKey(testCtx, args)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSoftwareKeyProvider_GetPubKeyByController(t *testing.T) {
	p, w := newMockedProvider(t)

	w.EXPECT().GetKeyByController(testCtx, "state-0", "w1", "p1", "c").Return("not json", nil)
	_, err := p.GetPubKeyByController(testCtx, "p1", "c")
	assert.ErrorIs(t, err, ErrMalformedResult)
}

// ── Private-key operations ───────────────────────────────────────────────────

func TestSoftwareKeyProvider_Sign(t *testing.T) {
	p, w := newMockedProvider(t)
	args := models.KeyRefArgs{EncryptionPass: "p1", KeyRef: "k1"}

	w.EXPECT().Sign(testCtx, "state-0", "w1", "p1", "k1", crypto.EncodeTransport([]byte("msg"))).
		Return(crypto.EncodeTransport([]byte("sig")), nil)

	sig, err := p.Sign(testCtx, args, []byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("sig"), sig)
}

func TestSoftwareKeyProvider_Decrypt(t *testing.T) {
	p, w := newMockedProvider(t)
	args := models.KeyRefArgs{EncryptionPass: "p1", KeyRef: "k1"}

	w.EXPECT().Decrypt(testCtx, "state-0", "w1", "p1", "k1", crypto.EncodeTransport([]byte("ct")), "").
		Return(crypto.EncodeTransport([]byte("pt")), nil)
	pt, err := p.Decrypt(testCtx, args, []byte("ct"), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("pt"), pt)

	w.EXPECT().Decrypt(testCtx, "state-0", "w1", "p1", "k1", gomock.Any(), crypto.EncodeTransport([]byte("ad"))).
		Return("", models.ErrDecryption)
	_, err = p.Decrypt(testCtx, args, []byte("ct"), []byte("ad"))
	assert.ErrorIs(t, err, models.ErrDecryption)
}

func TestSoftwareKeyProvider_ECDHKeyAgreement_MalformedResult(t *testing.T) {
	p, w := newMockedProvider(t)
	args := models.KeyRefArgs{EncryptionPass: "p1", KeyRef: "k1"}

	w.EXPECT().ECDHKeyAgreement(testCtx, "state-0", "w1", "p1", "k1", gomock.Any()).Return("not/base64url=", nil)
	_, err := p.ECDHKeyAgreement(testCtx, args, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedResult)
}

// ── Concurrency ──────────────────────────────────────────────────────────────

// Every mutation must observe the state produced by the previous one.
func TestSoftwareKeyProvider_MutationsAreSerialised(t *testing.T) {
	const writers = 32

	p, w := newMockedProvider(t)

	var (
		mu      sync.Mutex
		current = "state-0"
		n       = 0
	)
	w.EXPECT().AddContent(gomock.Any(), gomock.Any(), "w1", "p1", gomock.Any()).
		DoAndReturn(func(_ context.Context, state, _, _, _ string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if state != current {
				return "", fmt.Errorf("lost update: got %s, want %s", state, current)
			}
			n++
			current = fmt.Sprintf("state-%d", n)
			return current, nil
		}).Times(writers)

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- p.AddContent(testCtx, "p1", map[string]int{"n": i})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, fmt.Sprintf("state-%d", writers), p.EncryptedWallet())
}

func TestOperationError(t *testing.T) {
	err := opError("sign", models.ErrNotFound)
	assert.EqualError(t, err, "sign: key not found")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, opError("sign", nil))
}
