// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNegativeTimeout is returned by [StructuredConfig.validate] when a
	// request timeout is set to a negative duration.
	ErrNegativeTimeout = errors.New("request timeout must not be negative")
	// ErrInvalidEnvConfigs is returned when an environment variable cannot
	// be converted to its config field type.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
)
