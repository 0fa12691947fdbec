package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/models"
)

var (
	// errUsage marks command-line mistakes. It wraps
	// [models.ErrInvalidArgument] so they share its exit code.
	errUsage = fmt.Errorf("usage: %w", models.ErrInvalidArgument)

	errEmptyPassword    = fmt.Errorf("%w: password must not be empty", models.ErrInvalidArgument)
	errPasswordMismatch = fmt.Errorf("%w: passwords do not match", models.ErrInvalidArgument)
	errInvalidLength    = errors.New("length must be a decimal integer")
	errNotSigningType   = errors.New("not a signature key type")
	errNotAgreementType = errors.New("not a key-agreement key type")
)
