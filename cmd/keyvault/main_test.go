package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/awnumar/memguard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

// fakePasswords answers prompts from a queue.
type fakePasswords struct {
	mu      sync.Mutex
	answers []string
	prompts []string
}

func (f *fakePasswords) ReadPassword(prompt string) (*memguard.LockedBuffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	if len(f.answers) == 0 {
		return nil, errEmptyPassword
	}
	next := f.answers[0]
	f.answers = f.answers[1:]
	return lockPassword([]byte(next))
}

// harness runs keyvault commands against a file store in a temp dir, one
// fresh cli per invocation like separate processes.
type harness struct {
	t      *testing.T
	dir    string
	opener RepositoryOpener
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, dir: t.TempDir(), opener: openStorages}
}

type result struct {
	stdout string
	stderr string
	code   int
}

func (h *harness) run(stdin string, passwords []string, argv ...string) result {
	h.t.Helper()

	base := []string{
		"--storage-driver", config.DriverFile,
		"--wallet-dir", h.dir,
		"--argon-memory", "64",
		"--argon-threads", "1",
		"--log-level", "error",
	}

	in := bufio.NewReader(strings.NewReader(stdin))
	c := newCLI(models.NewAppBuildInfo("v1.2.3", "2026-10-18", "abc123"), in, &fakePasswords{answers: passwords}, h.opener)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), c, append(argv, base...), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func (h *harness) mustRun(stdin string, passwords []string, argv ...string) string {
	h.t.Helper()
	res := h.run(stdin, passwords, argv...)
	require.Equal(h.t, app.ExitOK, res.code, "stderr: %s", res.stderr)
	return res.stdout
}

func pw(p ...string) []string { return p }

// ── Wallet lifecycle ─────────────────────────────────────────────────────────

func TestCLI_Scenario(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("", pw("p1", "p1"), "init", "w1")
	assert.Equal(t, "wallet w1 created\n", out)

	out = h.mustRun("", pw("p1"), "keys", "w1")
	assert.JSONEq(t, "[]", out)

	out = h.mustRun("", pw("p1"), "new-key", "w1", "-t", string(models.EcdsaSecp256k1VerificationKey2019), "--controller", "w1#key-1")
	var key models.PublicKeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &key))
	assert.Equal(t, []string{"w1#key-1"}, key.Controller)

	sig := strings.TrimSpace(h.mustRun("hello there", pw("p1"), "sign", "w1", "w1#key-1"))

	out = h.mustRun("hello there", nil, "verify", "-t", string(key.Type), "--public-key", key.PublicKeyHex, "--signature", sig)
	assert.Equal(t, "signature is valid\n", out)

	res := h.run("hello ther", nil, "verify", "-t", string(key.Type), "--public-key", key.PublicKeyHex, "--signature", sig)
	assert.Equal(t, app.ExitFailure, res.code)
	assert.Contains(t, res.stderr, app.MsgInvalidSignature)

	h.mustRun("", pw("p1", "p2", "p2"), "change-pass", "w1")

	res = h.run("", pw("p1"), "keys", "w1")
	assert.Equal(t, app.ExitAuth, res.code)
	assert.Contains(t, res.stderr, app.MsgWrongPassword)

	out = h.mustRun("", pw("p2"), "keys", "w1")
	var keys []models.PublicKeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, []models.PublicKeyInfo{key}, keys)
}

func TestCLI_InitRejections(t *testing.T) {
	h := newHarness(t)

	res := h.run("", pw("p1", "other"), "init", "w1")
	assert.Equal(t, app.ExitUsage, res.code)

	res = h.run("", nil, "init", "w1")
	assert.Equal(t, app.ExitUsage, res.code)

	h.mustRun("", pw("p1", "p1"), "init", "w1")
	res = h.run("", pw("p1", "p1"), "init", "w1")
	assert.Equal(t, app.ExitConflict, res.code)
	assert.Contains(t, res.stderr, app.MsgWalletAlreadyExists)

	res = h.run("", nil, "init")
	assert.Equal(t, app.ExitUsage, res.code)
}

func TestCLI_ChangeIDListDelete(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", pw("p1", "p1"), "init", "w1")

	out := h.mustRun("", pw("p1"), "change-id", "w1", "w2")
	assert.Equal(t, "wallet w1 is now w2\n", out)

	assert.Equal(t, "w2\n", h.mustRun("", nil, "list"))

	res := h.run("", pw("p1"), "keys", "w1")
	assert.Equal(t, app.ExitNotFound, res.code)
	assert.Contains(t, res.stderr, app.MsgWalletNotFound)

	h.mustRun("", pw("p1"), "keys", "w2")

	res = h.run("", pw("wrong"), "delete", "w2")
	assert.Equal(t, app.ExitAuth, res.code)

	h.mustRun("", pw("p1"), "delete", "w2")
	assert.Empty(t, h.mustRun("", nil, "list"))
}

// ── Keys and content ─────────────────────────────────────────────────────────

func TestCLI_ImportControllerAndLookup(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", pw("p1", "p1"), "init", "w1")

	doc := `{"id":"imported","type":"Ed25519VerificationKey2018",` +
		`"privateKeyHex":"9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"}`
	h.mustRun(doc, pw("p1"), "import", "w1")

	notes := filepath.Join(t.TempDir(), "note.json")
	require.NoError(t, os.WriteFile(notes, []byte(`{"id":"note","text":"hi"}`), 0o600))
	h.mustRun("", pw("p1"), "import", "w1", "--in", notes)

	res := h.run("not json", pw("p1"), "import", "w1")
	assert.Equal(t, app.ExitUsage, res.code)

	out := h.mustRun("", pw("p1"), "keys", "w1", "imported")
	assert.Contains(t, out, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")

	res = h.run("", pw("p1"), "keys", "w1", "note")
	assert.Equal(t, app.ExitNotFound, res.code)

	h.mustRun("", pw("p1"), "controller", "w1", "imported", "alice", "bob")

	out = h.mustRun("", pw("p1"), "keys", "w1", "--controller", "bob")
	assert.Contains(t, out, `"id": "imported"`)

	res = h.run("", pw("p1"), "controller", "w1", "missing", "x")
	assert.Equal(t, app.ExitNotFound, res.code)
}

func TestCLI_NewKeyUnknownType(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", pw("p1", "p1"), "init", "w1")

	res := h.run("", pw("p1"), "new-key", "w1", "-t", "Bogus")
	assert.Equal(t, app.ExitUsage, res.code)

	res = h.run("", pw("p1"), "new-key", "w1", "-t", string(models.GpgVerificationKey2020))
	assert.Equal(t, app.ExitUsage, res.code)
}

// ── Encryption ───────────────────────────────────────────────────────────────

func TestCLI_EncryptDecryptECDH(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", pw("p1", "p1"), "init", "w1")

	var a, b models.PublicKeyInfo
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("", pw("p1"), "new-key", "w1", "-t", string(models.X25519KeyAgreementKey2019))), &a))
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("", pw("p1"), "new-key", "w1", "-t", string(models.X25519KeyAgreementKey2019))), &b))

	aad := "aGVhZGVy"
	ct := h.mustRun("top secret", nil, "encrypt", "--public-key", a.PublicKeyHex, "--aad", aad)

	pt := h.mustRun(ct, pw("p1"), "decrypt", "w1", a.ID, "--aad", aad)
	assert.Equal(t, "top secret", pt)

	res := h.run(ct, pw("p1"), "decrypt", "w1", a.ID)
	assert.Equal(t, app.ExitIntegrity, res.code)

	ab := h.mustRun("", pw("p1"), "ecdh", "w1", a.ID, "--peer", b.PublicKeyHex)
	ba := h.mustRun("", pw("p1"), "ecdh", "w1", b.ID, "--peer", a.PublicKeyHex)
	assert.Equal(t, ab, ba)

	res = h.run("x", nil, "encrypt", "-t", string(models.Ed25519VerificationKey2018), "--public-key", a.PublicKeyHex)
	assert.Equal(t, app.ExitUsage, res.code)
	assert.Contains(t, res.stderr, errNotAgreementType.Error())

	res = h.run("x", nil, "verify", "-t", string(models.X25519KeyAgreementKey2019), "--public-key", a.PublicKeyHex, "--signature", "AAAA")
	assert.Equal(t, app.ExitUsage, res.code)
	assert.Contains(t, res.stderr, errNotSigningType.Error())
}

// ── Stateless commands ───────────────────────────────────────────────────────

func TestCLI_Random(t *testing.T) {
	h := newHarness(t)

	out := strings.TrimSpace(h.mustRun("", nil, "random", "24"))
	assert.Len(t, out, 32)

	assert.Equal(t, app.ExitUsage, h.run("", nil, "random", "-1").code)
	assert.Equal(t, app.ExitUsage, h.run("", nil, "random", "many").code)

	out = strings.TrimSpace(h.mustRun("", nil, "random", "16", "--max-random-bytes", "16"))
	assert.Len(t, out, 22)
	assert.Equal(t, app.ExitUsage, h.run("", nil, "random", "17", "--max-random-bytes", "16").code)
}

func TestCLI_Version(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("", nil, "version")
	assert.Contains(t, out, "Build version: v1.2.3")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestCLI_UnknownFlag(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, app.ExitUsage, h.run("", nil, "list", "--bogus").code)
}

// ── Storage failures ─────────────────────────────────────────────────────────

func TestCLI_VersionConflictOnSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWalletRepository(ctrl)

	h := newHarness(t)
	h.mustRun("", pw("p1", "p1"), "init", "w1")

	files, err := store.NewFileWalletRepository(h.dir, logger.Nop())
	require.NoError(t, err)
	stored, err := files.Get(context.Background(), "w1")
	require.NoError(t, err)

	repo.EXPECT().Get(gomock.Any(), "w1").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.EncryptedWallet) (models.EncryptedWallet, error) {
			assert.Equal(t, stored.Version, w.Version)
			assert.NotEqual(t, stored.State, w.State)
			return models.EncryptedWallet{}, store.ErrVersionConflict
		})

	closed := false
	h.opener = func(context.Context, config.Storage, *logger.Logger) (store.WalletRepository, func() error, error) {
		return repo, func() error { closed = true; return nil }, nil
	}

	res := h.run("", pw("p1"), "new-key", "w1", "-t", string(models.Ed25519VerificationKey2018))
	assert.Equal(t, app.ExitConflict, res.code)
	assert.Contains(t, res.stderr, app.MsgVersionConflict)
	assert.True(t, closed)
}

func TestCLI_RepositorySeesCommandLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWalletRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "w1").
		DoAndReturn(func(ctx context.Context, id string) (models.EncryptedWallet, error) {
			logger.FromContext(ctx).Error().Str("wallet_id", id).Msg("lookup failed in storage")
			return models.EncryptedWallet{}, store.ErrWalletNotFound
		})

	h := newHarness(t)
	h.opener = func(context.Context, config.Storage, *logger.Logger) (store.WalletRepository, func() error, error) {
		return repo, func() error { return nil }, nil
	}

	res := h.run("", pw("p1"), "keys", "w1")
	assert.Equal(t, app.ExitNotFound, res.code)
	assert.Contains(t, res.stderr, "lookup failed in storage")
	assert.Contains(t, res.stderr, `"role":"keyvault"`)
}
