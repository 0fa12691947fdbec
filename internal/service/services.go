package service

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// Services bundles the native capability implementations.
type Services struct {
	Wallet models.WalletUtils
	Crypto models.CryptoUtils
}

// NewServices wires both capabilities from cfg. Zero fields of cfg select
// the built-in defaults.
func NewServices(cfg config.Crypto, logger *logger.Logger) *Services {
	suites := crypto.NewSuites()
	cipher := crypto.NewWalletCipher(crypto.KDFParams{
		Time:      cfg.ArgonTime,
		MemoryKiB: cfg.ArgonMemoryKiB,
		Threads:   cfg.ArgonThreads,
	})

	return &Services{
		Wallet: NewWalletService(cipher, suites, utils.NewUUIDGenerator(), logger),
		Crypto: NewCryptoService(suites, cfg.MaxRandomBytes, logger),
	}
}
