package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the API base URL used by the client.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionDSN is the SQLite file holding the persisted session.
	SessionDSN string
}

// ClientConfig is the admin client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// LogFile is where the client logger writes; empty disables logging.
	LogFile string
	// LogLevel is applied with logger.SetLevel.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are owned by the client's command tree, so instead of
// parsing os.Args the caller passes the values it collected as overrides.
// Overrides win over the environment; a JSON file named by either source is
// applied last.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withConfig(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDSN: cfg.Storage.Session.DSN,
		},
		LogFile:  cfg.LogFile,
		LogLevel: cfg.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
