// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks the shared invariants of the merged [StructuredConfig].
// Role-specific rules live in [ClientConfig.validate] and
// [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.PushConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.PairingPollInterval <= 0 || w.PushDebounce <= 0 || w.PullInterval <= 0 ||
		w.PushConcurrency <= 0 || w.ClipboardPollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Namespace == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidServerConfigs
	}
	if cfg.PairRateLimit <= 0 || cfg.PairRateBurst <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
