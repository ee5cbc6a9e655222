// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Media.Driver {
	case "", MediaDriverFS, MediaDriverS3:
	default:
		return fmt.Errorf("%w: unknown media driver %q", ErrInvalidStorageConfigs, cfg.Storage.Media.Driver)
	}

	return nil
}

// validateServer checks that the merged config carries everything the CMS
// server needs at startup.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if strings.TrimSpace(cfg.App.AdminEmail) == "" || strings.TrimSpace(cfg.App.AdminPassword) == "" {
		return fmt.Errorf("%w: admin e-mail and password are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Media.Driver {
	case MediaDriverS3:
		if cfg.Storage.Media.Bucket == "" || cfg.Storage.Media.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		if cfg.Storage.Media.Dir == "" {
			return fmt.Errorf("%w: media directory is required", ErrInvalidStorageConfigs)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Limits.LoginAttempts < 0 || cfg.Limits.LoginWindow < 0 {
		return fmt.Errorf("%w: negative login limits", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionDSN == "" || strings.Contains(cfg.Storage.SessionDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if u, err := url.Parse(cfg.Adapter.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
