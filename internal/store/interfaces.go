package store

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_repository_mock.go -package=mock

// WalletRepository persists encrypted vault states keyed by wallet id.
//
// Version implements optimistic locking: Update and Rename succeed only when
// the supplied Version equals the stored one, and return the record with the
// incremented version.
type WalletRepository interface {
	Save(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error)
	Get(ctx context.Context, id string) (models.EncryptedWallet, error)
	Update(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error)

	// Rename moves the record stored under oldID to wallet.ID and replaces
	// its state in one transaction.
	Rename(ctx context.Context, oldID string, wallet models.EncryptedWallet) (models.EncryptedWallet, error)

	Delete(ctx context.Context, id string) error

	// List returns every stored wallet id in ascending order.
	List(ctx context.Context) ([]string, error)
}
