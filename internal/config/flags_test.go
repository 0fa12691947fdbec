package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-c", "/etc/keyvault.json",
		"--argon-time", "2",
		"--argon-memory", "32768",
		"--argon-threads", "1",
		"--max-random-bytes", "4096",
		"--storage-driver", "sqlite",
		"-d", "file:vault.db",
		"--db-timeout", "3s",
		"--wallet-dir", "/tmp/w",
		"--log-level", "error",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Crypto: Crypto{ArgonTime: 2, ArgonMemoryKiB: 32768, ArgonThreads: 1, MaxRandomBytes: 4096},
		Storage: Storage{
			Driver: "sqlite",
			DB:     DB{DSN: "file:vault.db", Timeout: 3 * time.Second},
			Files:  Files{Dir: "/tmp/w"},
		},
		Log:          Log{Level: "error"},
		JSONFilePath: "/etc/keyvault.json",
	}, cfg)
}

func TestParseFlags_UnsetFlagsStayEmpty(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// configuration flags yields an empty config instead of an error.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_RejectsInvalidValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"--argon-threads", "256"}))
}
