package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// Storages groups the repositories used by the CLI.
type Storages struct {
	WalletRepository WalletRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver. SQL backends are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverFile:
		repo, err := NewFileWalletRepository(cfg.Files.Dir, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{WalletRepository: repo}, nil
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		WalletRepository: NewWalletRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
