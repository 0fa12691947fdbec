package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-vault/models"
)

const walletsTable = "wallets"

var walletColumns = []string{"id", "state", "version", "created_at", "updated_at"}

func buildInsertWalletQuery(b sq.StatementBuilderType, w models.EncryptedWallet) (string, []any, error) {
	return wrapBuild(b.Insert(walletsTable).
		Columns(walletColumns...).
		Values(w.ID, w.State, w.Version, w.CreatedAt, w.UpdatedAt).
		ToSql())
}

func buildSelectWalletQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuild(b.Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

// buildUpdateWalletQuery replaces the state only if the stored version still
// equals w.Version.
func buildUpdateWalletQuery(b sq.StatementBuilderType, w models.EncryptedWallet, now time.Time) (string, []any, error) {
	return wrapBuild(b.Update(walletsTable).
		Set("state", w.State).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"id": w.ID, "version": w.Version}).
		ToSql())
}

func buildDeleteWalletQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuild(b.Delete(walletsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

// buildDeleteWalletVersionQuery deletes the record only at the given version.
func buildDeleteWalletVersionQuery(b sq.StatementBuilderType, id string, version int64) (string, []any, error) {
	return wrapBuild(b.Delete(walletsTable).
		Where(sq.Eq{"id": id, "version": version}).
		ToSql())
}

func buildListWalletIDsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuild(b.Select("id").
		From(walletsTable).
		OrderBy("id").
		ToSql())
}

func buildWalletExistsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuild(b.Select("version").
		From(walletsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
