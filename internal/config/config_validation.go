// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills safe fallback values for fields no configuration
// source provided. Secrets never get defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = 168 * time.Hour // 7 days
	}

	if cfg.Storage.Files.UploadsDir == "" {
		cfg.Storage.Files.UploadsDir = "uploads"
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token signing key, issuer, or audience would silently degrade
// every session-token check, so all three are treated as fatal
// misconfigurations rather than runtime defaults. The database DSN is
// likewise required.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
		return ErrMissingTokenScope
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
