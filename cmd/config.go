package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"deliverydesk/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. DESK_HTTP_PORT.
const EnvPrefix = "DESK"

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	Storage       string `envconfig:"STORAGE" default:"memory"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	DBDsn         string `envconfig:"DB_DSN"`

	CurrentUserID     uint64 `envconfig:"CURRENT_USER_ID" default:"1"`
	DashboardSchedule string `envconfig:"DASHBOARD_SCHEDULE" default:"@every 1m"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var err error
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisAddr == "" {
			err = errors.Join(err, errors.New("redis storage needs DESK_REDIS_ADDR"))
		}
	case StoragePostgres:
		if c.DBDsn == "" {
			err = errors.Join(err, errors.New("postgres storage needs DESK_DB_DSN"))
		}
	default:
		err = errors.Join(err, fmt.Errorf("unknown storage %q", c.Storage))
	}
	if c.CurrentUserID == 0 {
		err = errors.Join(err, errors.New("DESK_CURRENT_USER_ID must be positive"))
	}
	if c.HTTPPort == "" {
		err = errors.Join(err, errors.New("DESK_HTTP_PORT is required"))
	}
	return err
}

func (c Config) UserID() kernel.ID {
	return kernel.ID(c.CurrentUserID)
}
