package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and string
// durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AdminEmail    string   `json:"admin_email"`
		AdminPassword string   `json:"admin_password"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Media struct {
			Driver          string `json:"driver"`
			Dir             string `json:"dir"`
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			Prefix          string `json:"prefix"`
			UsePathStyle    bool   `json:"use_path_style"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
		} `json:"media,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Session struct {
			DSN string `json:"dsn"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Cache struct {
		TTL  Duration `json:"ttl"`
		Size int      `json:"size"`
	} `json:"cache,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MediaSweepInterval Duration `json:"media_sweep_interval"`
		MediaSweepGrace    Duration `json:"media_sweep_grace"`
	} `json:"workers,omitempty"`

	Limits struct {
		LoginAttempts int      `json:"login_attempts"`
		LoginWindow   Duration `json:"login_window"`
	} `json:"limits,omitempty"`

	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			AdminEmail:    jsonCfg.App.AdminEmail,
			AdminPassword: jsonCfg.App.AdminPassword,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Media: Media{
				Driver:          jsonCfg.Storage.Media.Driver,
				Dir:             jsonCfg.Storage.Media.Dir,
				Bucket:          jsonCfg.Storage.Media.Bucket,
				Region:          jsonCfg.Storage.Media.Region,
				Endpoint:        jsonCfg.Storage.Media.Endpoint,
				Prefix:          jsonCfg.Storage.Media.Prefix,
				UsePathStyle:    jsonCfg.Storage.Media.UsePathStyle,
				AccessKeyID:     jsonCfg.Storage.Media.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.Media.SecretAccessKey,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Session: Session{
				DSN: jsonCfg.Storage.Session.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			MaxUploadBytes: jsonCfg.Server.MaxUploadBytes,
		},
		Cache: Cache{
			TTL:  time.Duration(jsonCfg.Cache.TTL),
			Size: jsonCfg.Cache.Size,
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			MediaSweepInterval: time.Duration(jsonCfg.Workers.MediaSweepInterval),
			MediaSweepGrace:    time.Duration(jsonCfg.Workers.MediaSweepGrace),
		},
		Limits: Limits{
			LoginAttempts: jsonCfg.Limits.LoginAttempts,
			LoginWindow:   time.Duration(jsonCfg.Limits.LoginWindow),
		},
		LogFile:      jsonCfg.LogFile,
		LogLevel:     jsonCfg.LogLevel,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
