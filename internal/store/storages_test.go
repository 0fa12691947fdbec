package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

func TestNewStorages_FileDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{
		Driver: config.DriverFile,
		Files:  config.Files{Dir: filepath.Join(t.TempDir(), "w")},
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.WalletRepository)
	assert.NoError(t, s.Close())
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Driver: "etcd"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestCreateLocalDBDirIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")

	require.NoError(t, createLocalDBDirIfNotExists("file:"+filepath.Join(dir, "vault.db")+"?_busy_timeout=500"))
	assert.DirExists(t, dir)

	assert.NoError(t, createLocalDBDirIfNotExists(":memory:"))
	assert.NoError(t, createLocalDBDirIfNotExists("vault.db"))
}
