package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSqlite   = "sqlite"
)

// Config is the non-secret runtime configuration, read from the environment.
type Config struct {
	Env            string        `env:"PROFITCALC_ENV" envDefault:"dev"`
	Port           int           `env:"PORT" envDefault:"3009"`
	SecretsFile    string        `env:"SECRETS_FILE"`
	StorageDriver  string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SqlitePath     string        `env:"SQLITE_PATH" envDefault:"profitcalc.db"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"30"`
	RateWindow     time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	UseRedisLimit  bool          `env:"RATE_LIMIT_REDIS" envDefault:"false"`
	ExportTokenTTL time.Duration `env:"EXPORT_TOKEN_TTL" envDefault:"30m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

func LoadConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(cfg.StorageDriver)
	if cfg.StorageDriver != StorageDriverPostgres && cfg.StorageDriver != StorageDriverSqlite {
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}

	return &cfg, nil
}
