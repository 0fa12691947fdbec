// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
)

// validate checks that the merged and defaulted [StructuredConfig] can be
// used to open a wallet repository and seal vaults.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: driver %q requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverFile:
		if cfg.Storage.Files.Dir == "" {
			return fmt.Errorf("%w: file driver requires a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}

	kdf := crypto.KDFParams{
		Time:      cfg.Crypto.ArgonTime,
		MemoryKiB: cfg.Crypto.ArgonMemoryKiB,
		Threads:   cfg.Crypto.ArgonThreads,
	}
	if err := kdf.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}
	if cfg.Crypto.MaxRandomBytes < 1 {
		return fmt.Errorf("%w: max random bytes must be positive", ErrInvalidCryptoConfigs)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.Log.Level)
	}

	return nil
}
