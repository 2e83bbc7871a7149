// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterKey == "" {
		return fmt.Errorf("%w: master key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.IPFS.APIAddress == "" || cfg.Adapter.Pinning.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.Pinning.APIKey == "" || cfg.Adapter.Pinning.SecretKey == "" {
		return fmt.Errorf("%w: pinning service credentials are required", ErrInvalidAdapterConfigs)
	}

	w := cfg.Workers
	if w.ImportGCInterval <= 0 || w.ImportGracePeriod <= 0 || w.ImportProbeTimeout <= 0 ||
		w.PinRefreshInterval <= 0 || w.PinQueuedTTL <= 0 || w.PinSettledTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	rl := w.RateLimit
	if rl.MaxConcurrent <= 0 || rl.Quota <= 0 || rl.Window <= 0 || rl.MaxQueued <= 0 || rl.MinSpacing < 0 {
		return fmt.Errorf("%w: rate limit", ErrInvalidWorkerConfigs)
	}

	return nil
}
