package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// maxAttempts bounds retries of statements failing with a [Retryable]
// classification.
const maxAttempts = 3

// walletRepository is the SQL implementation of [WalletRepository] for both
// PostgreSQL and SQLite. Dialect differences live in [DB].
type walletRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewWalletRepository constructs a [WalletRepository] backed by db.
func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	return &walletRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// log prefers the request logger carried by ctx over the one given at
// construction.
func (r *walletRepository) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, r.logger)
}

// Save inserts a new record at version 1.
//
// Error handling:
//   - unique/primary key violation → [ErrWalletAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *walletRepository) Save(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	log := r.log(ctx)

	if wallet.ID == "" {
		return models.EncryptedWallet{}, ErrEmptyWalletID
	}

	now := r.now()
	wallet.Version = 1
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	query, args, err := buildInsertWalletQuery(r.builder, wallet)
	if err != nil {
		return models.EncryptedWallet{}, err
	}

	if _, err = r.exec(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletAlreadyExists, wallet.ID)
		}
		log.Err(err).Str("func", "walletRepository.Save").Str("wallet_id", wallet.ID).Msg("failed to insert wallet")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return wallet, nil
}

// Get returns the record stored under id or [ErrWalletNotFound].
func (r *walletRepository) Get(ctx context.Context, id string) (models.EncryptedWallet, error) {
	log := r.log(ctx)

	query, args, err := buildSelectWalletQuery(r.builder, id)
	if err != nil {
		return models.EncryptedWallet{}, err
	}

	var w models.EncryptedWallet
	err = r.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.State, &w.Version, &w.CreatedAt, &w.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletNotFound, id)
	case err != nil:
		log.Err(err).Str("func", "walletRepository.Get").Str("wallet_id", id).Msg("failed to scan wallet")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return w, nil
}

// Update replaces the state of wallet.ID if its stored version equals
// wallet.Version. A mismatch yields [ErrVersionConflict]; a missing record
// yields [ErrWalletNotFound].
func (r *walletRepository) Update(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	log := r.log(ctx)

	now := r.now()
	query, args, err := buildUpdateWalletQuery(r.builder, wallet, now)
	if err != nil {
		return models.EncryptedWallet{}, err
	}

	res, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "walletRepository.Update").Str("wallet_id", wallet.ID).Msg("failed to update wallet")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.expectOneRow(ctx, r.DB.DB, res, wallet.ID); err != nil {
		return models.EncryptedWallet{}, err
	}

	wallet.Version++
	wallet.UpdatedAt = now
	return wallet, nil
}

// Rename inserts the record under wallet.ID and deletes oldID at
// wallet.Version in one transaction. CreatedAt is carried over.
func (r *walletRepository) Rename(ctx context.Context, oldID string, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	log := r.log(ctx).With().Str("func", "walletRepository.Rename").Str("wallet_id", oldID).Logger()

	if wallet.ID == "" {
		return models.EncryptedWallet{}, ErrEmptyWalletID
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now()
	renamed := models.EncryptedWallet{
		ID:        wallet.ID,
		State:     wallet.State,
		Version:   wallet.Version + 1,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: now,
	}
	if renamed.CreatedAt.IsZero() {
		renamed.CreatedAt = now
	}

	query, args, err := buildDeleteWalletVersionQuery(r.builder, oldID, wallet.Version)
	if err != nil {
		return models.EncryptedWallet{}, err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to delete old wallet")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = r.expectOneRow(ctx, tx, res, oldID); err != nil {
		return models.EncryptedWallet{}, err
	}

	query, args, err = buildInsertWalletQuery(r.builder, renamed)
	if err != nil {
		return models.EncryptedWallet{}, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletAlreadyExists, wallet.ID)
		}
		log.Err(err).Msg("failed to insert renamed wallet")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return renamed, nil
}

// Delete removes the record stored under id.
func (r *walletRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteWalletQuery(r.builder, id)
	if err != nil {
		return err
	}

	res, err := r.exec(ctx, query, args...)
	if err != nil {
		r.log(ctx).Err(err).Str("func", "walletRepository.Delete").Str("wallet_id", id).Msg("failed to delete wallet")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, id)
	}
	return nil
}

func (r *walletRepository) List(ctx context.Context) ([]string, error) {
	query, args, err := buildListWalletIDsQuery(r.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.log(ctx).Err(err).Str("func", "walletRepository.List").Msg("failed to list wallets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// exec runs a statement, retrying errors the dialect classifies as
// [Retryable].
func (r *walletRepository) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err = r.ExecContext(ctx, query, args...)
		if err == nil || r.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		r.log(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying statement")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	return res, err
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// expectOneRow turns a zero-row versioned write into [ErrWalletNotFound] or
// [ErrVersionConflict], depending on whether the id still exists.
func (r *walletRepository) expectOneRow(ctx context.Context, q queryRower, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 1 {
		return nil
	}

	query, args, err := buildWalletExistsQuery(r.builder, id)
	if err != nil {
		return err
	}

	var current int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %q", ErrWalletNotFound, id)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return fmt.Errorf("%w: stored version is %d", ErrVersionConflict, current)
}
