// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Every missing field is
// reported; the returned error wraps the sentinel of each failing group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.Stage == "" {
		errs = append(errs, fmt.Errorf("%w: STAGE is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: JWT_DURATION must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: SERVER_ADDRESS is required", ErrInvalidServerConfigs))
	}

	errs = append(errs, cfg.Storage.DB.validate()...)

	if cfg.RateLimit.Requests < 0 || cfg.RateLimit.Burst < 0 || cfg.RateLimit.Window < 0 {
		errs = append(errs, fmt.Errorf("%w: limits must not be negative", ErrInvalidRateLimitConfigs))
	}

	return errors.Join(errs...)
}

func (db DB) validate() []error {
	var errs []error

	switch db.Driver {
	case DriverSQLite:
		if db.Database == "" {
			errs = append(errs, fmt.Errorf("%w: DB_DATABASE is required", ErrInvalidStorageConfigs))
		}
	case DriverPostgres:
		required := []struct {
			name  string
			empty bool
		}{
			{"DB_HOST", db.Host == ""},
			{"DB_PORT", db.Port == 0},
			{"DB_USERNAME", db.Username == ""},
			{"DB_PASSWORD", db.Password == ""},
			{"DB_DATABASE", db.Database == ""},
		}
		for _, field := range required {
			if field.empty {
				errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidStorageConfigs, field.name))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedDriver, db.Driver))
	}

	return errs
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
