package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrUnknownDriver indicates a storage driver outside sqlite, postgres
	// and file.
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrInvalidStorageConfigs indicates a driver whose required settings
	// are missing (DSN for the SQL drivers, directory for the file driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates zero Argon2id parameters.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	ErrUnknownLogLevel      = errors.New("unknown log level")
)
