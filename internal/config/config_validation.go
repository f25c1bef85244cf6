// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries.
//
// Token verification needs both the sign key and the issuer; providing only
// one of them is rejected.
func (cfg *StructuredConfig) validate() error {
	if (cfg.App.TokenSignKey == "") != (cfg.App.TokenIssuer == "") {
		return ErrInvalidAppConfigs
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

	if cfg.App.TechnicianID <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Gateway.Version == "" {
		return ErrInvalidGatewayConfigs
	}

	return nil
}
