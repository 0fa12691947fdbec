// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"errors"
	"fmt"
)

// ErrMalformedResult is returned when the wallet capability answers with a
// payload that cannot be decoded. It points at a broken implementation, not
// at caller input.
var ErrMalformedResult = errors.New("malformed capability result")

// OperationError records the vault operation that failed. Err keeps the
// taxonomy sentinel in its chain.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Op: op, Err: err}
}
