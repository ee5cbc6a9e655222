// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// CMS server and the admin client. It is populated by merging defaults, a
// .env file, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the admin account and the application
	// version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational database, the media blob store, Redis and the client
	// session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds the public read cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the admin client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Limits holds request throttling settings.
	Limits Limits `envPrefix:"LIMITS_"`

	// LogFile is where the admin client appends its log. The terminal
	// belongs to the TUI, so the client never logs to stdout.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name; empty keeps debug.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an admin token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminEmail is the only account allowed to log in.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminPassword is hashed with bcrypt at startup and never kept in
	// plaintext by the auth service.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Media holds the blob storage settings for videos, thumbnails and logos.
	Media Media `envPrefix:"MEDIA_"`

	// Redis holds the optional Redis connection used for login throttling.
	Redis Redis `envPrefix:"REDIS_"`

	// Session holds the admin client's local session database.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns is the number of connections kept open between requests.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime recycles connections older than this; zero keeps them.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Media driver names.
const (
	MediaDriverFS = "fs"
	MediaDriverS3 = "s3"
)

// Media holds blob storage settings.
type Media struct {
	// Driver selects the backend: "fs" or "s3".
	// Env: STORAGE_MEDIA_DRIVER
	Driver string `env:"DRIVER"`

	// Dir is the root directory of the filesystem driver.
	// Env: STORAGE_MEDIA_DIR
	Dir string `env:"DIR"`

	// Bucket is the S3 bucket name.
	// Env: STORAGE_MEDIA_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the S3 region.
	// Env: STORAGE_MEDIA_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the S3 endpoint (MinIO, localstack).
	// Env: STORAGE_MEDIA_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Prefix is prepended to every object key.
	// Env: STORAGE_MEDIA_PREFIX
	Prefix string `env:"PREFIX"`

	// UsePathStyle switches S3 to path-style addressing.
	// Env: STORAGE_MEDIA_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`

	// AccessKeyID and SecretAccessKey are static S3 credentials. When empty
	// the default AWS credential chain is used.
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Redis holds the Redis connection settings.
type Redis struct {
	// Addr is host:port. Empty disables Redis.
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Session holds the admin client's local session store settings.
type Session struct {
	// DSN is the SQLite file path of the session store.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a request
	// and writing its JSON response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list. "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// MaxUploadBytes caps the body of multipart requests.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Cache holds the public read cache settings.
type Cache struct {
	// TTL is how long a cached read stays valid.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// Size is the maximum number of cached entries.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`
}

// Adapter holds the admin client's connection to the server.
type Adapter struct {
	// ServerURL is the API base URL, e.g. "http://localhost:8080/api".
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MediaSweepInterval is how often orphaned media blobs are collected.
	// Zero disables the sweeper.
	// Env: WORKERS_MEDIA_SWEEP_INTERVAL
	MediaSweepInterval time.Duration `env:"MEDIA_SWEEP_INTERVAL"`

	// MediaSweepGrace protects freshly uploaded blobs from the sweeper.
	// Env: WORKERS_MEDIA_SWEEP_GRACE
	MediaSweepGrace time.Duration `env:"MEDIA_SWEEP_GRACE"`
}

// Limits holds throttling settings.
type Limits struct {
	// LoginAttempts is the number of login attempts allowed per client IP
	// within LoginWindow.
	// Env: LIMITS_LOGIN_ATTEMPTS
	LoginAttempts int `env:"LOGIN_ATTEMPTS"`

	// LoginWindow is the fixed throttling window.
	// Env: LIMITS_LOGIN_WINDOW
	LoginWindow time.Duration `env:"LOGIN_WINDOW"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "rexora-cms",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
			Media: Media{
				Driver: MediaDriverFS,
				Dir:    "./data/media",
			},
			Session: Session{
				DSN: "rexora-session.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
			MaxUploadBytes: 32 << 20,
		},
		Cache: Cache{
			TTL:  time.Minute,
			Size: 128,
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080/api",
			RequestTimeout: 60 * time.Second,
		},
		Workers: Workers{
			MediaSweepInterval: time.Hour,
			MediaSweepGrace:    24 * time.Hour,
		},
		Limits: Limits{
			LoginAttempts: 10,
			LoginWindow:   15 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (after loading .env, which never overrides
//     variables already set)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
