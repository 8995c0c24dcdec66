// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := time.LoadLocation(cfg.App.QuotaTimezone); err != nil {
		return fmt.Errorf("%w: quota timezone: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.App.Analysis.Provider == "" || cfg.App.Analysis.APIKey == "" || cfg.App.Analysis.MaxTokens <= 0 {
		return ErrInvalidAnalysisConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AnalysisInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
