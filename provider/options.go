package provider

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// Option configures a provider at construction.
type Option func(*options)

type options struct {
	logger *logger.Logger
	crypto config.Crypto
}

// WithZerolog sets the logger used for operation diagnostics. Providers are
// silent by default. Passwords, plaintext and private keys are never logged.
func WithZerolog(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithKDF sets the Argon2id cost used when the default constructors seal a
// vault. Zero values keep the defaults (t=1, m=64 MiB, p=4). Blobs record
// their own parameters, so opening is unaffected.
func WithKDF(time, memoryKiB uint32, threads uint8) Option {
	return func(o *options) {
		o.crypto.ArgonTime = time
		o.crypto.ArgonMemoryKiB = memoryKiB
		o.crypto.ArgonThreads = threads
	}
}

// WithMaxRandom sets the largest n accepted by [CryptoProvider.GetRandom].
// The default is 1 MiB.
func WithMaxRandom(n int) Option {
	return func(o *options) {
		o.crypto.MaxRandomBytes = n
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
