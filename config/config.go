package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config diisi dari environment (dan .env bila ada)
type Config struct {
	AppEnv      string        `env:"APP_ENV,default=development"`
	Host        string        `env:"HOST"`
	Port        int           `env:"PORT,default=4000"`
	StoreDriver string        `env:"STORE_DRIVER,default=mongo"`
	MongoURI    string        `env:"MONGO_URI,default=mongodb://localhost:27017"`
	DBName      string        `env:"DB_NAME,default=pujasari"`
	DBTimeout   time.Duration `env:"DB_TIMEOUT,default=10s"`
	LogLevel    string        `env:"LOG_LEVEL,default=info"`
	LogFormat   string        `env:"LOG_FORMAT,default=text"`
	CorsOrigins string        `env:"CORS_ORIGINS,default=*"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("baca environment: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.Host == "" {
		cfg.Host = "localhost"
		if cfg.IsProduction() {
			cfg.Host = "0.0.0.0"
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER tidak dikenal: %q", c.StoreDriver)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL tidak valid: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT tidak dikenal: %q", c.LogFormat)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT di luar jangkauan: %d", c.Port)
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT harus positif: %s", c.DBTimeout)
	}
	return nil
}

func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
