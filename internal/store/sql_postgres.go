package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/migrations"
)

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN and checks it with
// a ping bounded by cfg.Timeout.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("cannot open wallet database")
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// a CLI invocation issues a handful of sequential statements
	conn.SetMaxOpenConns(2)
	conn.SetConnMaxIdleTime(time.Minute)

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("wallet database is unreachable")
		conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Debug().Str("func", "NewConnectPostgres").Msg("connected to wallet database")

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), log), nil
}
