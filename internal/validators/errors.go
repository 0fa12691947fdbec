package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyWalletID      = errors.New("wallet id is required")
	ErrInvalidWalletID    = errors.New("wallet id contains control characters")
	ErrEmptyState         = errors.New("encrypted state is required")
	ErrInvalidState       = errors.New("encrypted state is not base64url")
	ErrInvalidVersion     = errors.New("invalid version")
	ErrEmptyKeyRef        = errors.New("key reference is required")
	ErrEmptyEncryptionKey = errors.New("encryption password is required")
)
