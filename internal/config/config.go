package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// remote routine service
	RoutineServiceURL     string   `toml:"routine_service_url"`
	RoutineServiceTimeout Duration `toml:"routine_service_timeout"`
	// current week routine cache
	RoutineCacheSizeMB int      `toml:"routine_cache_size_mb"`
	RoutineCacheTTL    Duration `toml:"routine_cache_ttl"`
	// http
	AllowedOrigins          []string `toml:"allowed_origins"`
	WriteRateLimitPerMinute int      `toml:"write_rate_limit_per_minute"`
	SessionTTL              Duration `toml:"session_ttl"`
}

// Duration lets TOML files use values like "5s" or "12h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return nil, fmt.Errorf("no development config")
		}
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return nil, fmt.Errorf("no production config")
		}
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.RoutineServiceTimeout.Duration == 0 {
		c.RoutineServiceTimeout.Duration = 10 * time.Second
	}
	if c.RoutineCacheSizeMB == 0 {
		c.RoutineCacheSizeMB = 16
	}
	if c.RoutineCacheTTL.Duration == 0 {
		c.RoutineCacheTTL.Duration = time.Hour
	}
	if c.WriteRateLimitPerMinute == 0 {
		c.WriteRateLimitPerMinute = 30
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 7 * 24 * time.Hour
	}
}

// Secrets are never put in the TOML file.
type Secrets struct {
	RedisPassword       string `env:"FITROUTINE_REDIS_PASS"`
	SentryDSN           string `env:"SENTRY_DSN"`
	RoutineServiceToken string `env:"FITROUTINE_ROUTINE_SERVICE_TOKEN"`
	HoneycombEnabled    bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey     string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName     string `env:"OTEL_SERVICE_NAME, default=fitroutine"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

func LoadSecretsFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
