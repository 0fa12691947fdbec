package config

import "time"

// Defaults returns the configuration used for fields left empty by every
// source.
func Defaults() StructuredConfig {
	return StructuredConfig{
		Crypto: Crypto{
			ArgonTime:      1,
			ArgonMemoryKiB: 64 * 1024,
			ArgonThreads:   4,
			MaxRandomBytes: 1 << 20,
		},
		Storage: Storage{
			Driver: DriverFile,
			DB:     DB{Timeout: 5 * time.Second},
			Files:  Files{Dir: "./wallets"},
		},
		Log: Log{Level: "info"},
	}
}
