// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/id_generator_mock.go -package=mock

// IDGenerator assigns reference ids to new vault records.
type IDGenerator interface {
	Generate() string
}
