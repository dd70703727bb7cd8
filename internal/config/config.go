package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config se lee de variables de entorno sin prefijo (PORT, DB_DSN, ...).
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"pet-health-tracker"`

	// memory (default) | postgres | sqlite
	DBDriver Driver `envconfig:"DB_DRIVER" default:"memory"`
	// DSN de Postgres o path del archivo SQLite (":memory:" permitido)
	DBDSN string `envconfig:"DB_DSN"`

	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionMax   int           `envconfig:"SESSION_MAX" default:"10000"`
	CookieName   string        `envconfig:"COOKIE_NAME" default:"pet_session"`
	CookieSecure bool          `envconfig:"COOKIE_SECURE" default:"false"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = Driver(strings.ToLower(strings.TrimSpace(string(c.DBDriver))))
	if c.DBDriver == "" {
		c.DBDriver = DriverMemory
	}

	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required for DB_DRIVER=%s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	if c.SessionMax < 0 {
		return fmt.Errorf("SESSION_MAX must be >= 0, got %d", c.SessionMax)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must be >= 0, got %s", c.SessionTTL)
	}
	if strings.TrimSpace(c.CookieName) == "" {
		return fmt.Errorf("COOKIE_NAME must not be empty")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
