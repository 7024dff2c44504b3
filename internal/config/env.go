// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_, ADAPTER_ and WORKERS_
// variables. Every malformed variable is reported at once, wrapped in
// [ErrInvalidEnvConfigs].
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, errors.Join(aggregate.Errors...))
	}
	return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
}
