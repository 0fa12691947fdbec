// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// keyvault CLI. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable additionally carries the global KEYVAULT_ prefix.
type StructuredConfig struct {
	// Crypto holds the Argon2id cost used when sealing new vault states.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage selects and configures the wallet persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via KEYVAULT_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds the Argon2id parameters written into newly sealed vaults.
// Existing vaults keep the parameters stored in their header.
type Crypto struct {
	// Env: KEYVAULT_CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// Env: KEYVAULT_CRYPTO_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`

	// Env: KEYVAULT_CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`

	// MaxRandomBytes bounds a single random-bytes request.
	// Env: KEYVAULT_CRYPTO_MAX_RANDOM_BYTES
	MaxRandomBytes int `env:"MAX_RANDOM_BYTES"`
}

// Storage groups the persistence settings.
type Storage struct {
	// Driver is one of [DriverSQLite], [DriverPostgres] or [DriverFile].
	// Env: KEYVAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	DB DB `envPrefix:"DB_"`

	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is a PostgreSQL URL or a SQLite file name.
	// Env: KEYVAULT_STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Timeout bounds every repository call made by the CLI.
	// Env: KEYVAULT_STORAGE_DB_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Files holds settings for the flat-file backend.
type Files struct {
	// Dir is the directory holding one JSON file per wallet.
	// Env: KEYVAULT_STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

type Log struct {
	// Level is debug, info, warn or error.
	// Env: KEYVAULT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

// GetStructuredConfig loads, merges, defaults and validates the
// configuration. Sources are applied in increasing priority:
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags explicitly set in fs
//
// Fields still empty after merging receive the values of [Defaults].
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
