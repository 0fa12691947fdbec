package provider

import (
	"context"

	"github.com/MKhiriev/go-key-vault/internal/service"
)

// NewDefaultEmptyWallet is [NewEmptyWallet] over the built-in software
// implementation. Use [WithKDF] to tune the Argon2id cost.
func NewDefaultEmptyWallet(ctx context.Context, id, pass string, opts ...Option) (*SoftwareKeyProvider, error) {
	return NewEmptyWallet(ctx, defaultServices(opts).Wallet, id, pass, opts...)
}

// NewDefaultSoftwareKeyProvider is [NewSoftwareKeyProvider] over the
// built-in software implementation.
func NewDefaultSoftwareKeyProvider(encryptedWallet, id string, opts ...Option) *SoftwareKeyProvider {
	return NewSoftwareKeyProvider(defaultServices(opts).Wallet, encryptedWallet, id, opts...)
}

// NewDefaultCryptoProvider is [NewCryptoProvider] over the built-in software
// implementation.
func NewDefaultCryptoProvider(opts ...Option) *CryptoProvider {
	return NewCryptoProvider(defaultServices(opts).Crypto, opts...)
}

func defaultServices(opts []Option) *service.Services {
	o := applyOptions(opts)
	return service.NewServices(o.crypto, o.logger)
}
