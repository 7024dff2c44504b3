// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary. Binary-specific requirements are checked
// on the derived views ([ClientConfig.validate]) or at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
