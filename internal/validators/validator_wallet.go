package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/models"
)

const (
	FieldID             = "id"
	FieldState          = "state"
	FieldVersion        = "version"
	FieldKeyRef         = "key_ref"
	FieldEncryptionPass = "encryption_pass"
)

type WalletValidator struct {
}

func NewWalletValidator() Validator {
	return &WalletValidator{}
}

func (v *WalletValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptedWallet:
		return v.validateEncryptedWallet(ctx, value, fields...)
	case *models.EncryptedWallet:
		return v.validateEncryptedWallet(ctx, *value, fields...)

	case models.KeyRefArgs:
		return v.validateKeyRefArgs(ctx, value, fields...)
	case *models.KeyRefArgs:
		return v.validateKeyRefArgs(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEncryptedWallet checks a record about to be persisted. The
// version is only meaningful for records that already exist, so it is not
// part of the default field set.
func (v *WalletValidator) validateEncryptedWallet(ctx context.Context, w models.EncryptedWallet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldState}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(w.ID) == "" {
				return ErrEmptyWalletID
			}
			if strings.IndexFunc(w.ID, unicode.IsControl) >= 0 {
				return ErrInvalidWalletID
			}
		case FieldState:
			if w.State == "" {
				return ErrEmptyState
			}
			if _, err := crypto.DecodeTransport(w.State); err != nil {
				return ErrInvalidState
			}
		case FieldVersion:
			if w.Version <= 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateKeyRefArgs(ctx context.Context, args models.KeyRefArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyRef, FieldEncryptionPass}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyRef:
			if args.KeyRef == "" {
				return ErrEmptyKeyRef
			}
		case FieldEncryptionPass:
			if args.EncryptionPass == "" {
				return ErrEmptyEncryptionKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
