// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "sign"
	cfg.App.AdminEmail = "admin@example.com"
	cfg.App.AdminPassword = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/cms"
	return cfg
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "blank admin email", mutate: func(cfg *StructuredConfig) { cfg.App.AdminEmail = "  " }, wantErr: ErrInvalidAppConfigs},
		{name: "missing admin password", mutate: func(cfg *StructuredConfig) { cfg.App.AdminPassword = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "fs without dir", mutate: func(cfg *StructuredConfig) { cfg.Storage.Media.Dir = "" }, wantErr: ErrInvalidStorageConfigs},
		{
			name: "s3 without bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Media.Driver = MediaDriverS3
				cfg.Storage.Media.Region = "eu-west-1"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 complete",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Media.Driver = MediaDriverS3
				cfg.Storage.Media.Bucket = "media"
				cfg.Storage.Media.Region = "eu-west-1"
			},
		},
		{name: "missing address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative window", mutate: func(cfg *StructuredConfig) { cfg.Limits.LoginWindow = -time.Second }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{ServerURL: "http://localhost:8080/api", RequestTimeout: time.Second},
		Storage: ClientStorage{SessionDSN: "session.db"},
	}
	require.NoError(t, valid.validate())

	inMemory := valid
	inMemory.Storage.SessionDSN = ":memory:"
	assert.ErrorIs(t, inMemory.validate(), ErrInvalidStorageConfigs)

	noTimeout := valid
	noTimeout.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)

	badURL := valid
	badURL.Adapter.ServerURL = "localhost"
	assert.ErrorIs(t, badURL.validate(), ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_OverridesWin(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_SERVER_URL", "http://env.example/api")

	cfg, err := GetClientConfig(&StructuredConfig{
		Storage: Storage{Session: Session{DSN: "/tmp/override.db"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://env.example/api", cfg.Adapter.ServerURL)
	assert.Equal(t, "/tmp/override.db", cfg.Storage.SessionDSN)
	assert.Equal(t, 60*time.Second, cfg.Adapter.RequestTimeout)
}
