package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	DefaultRunAddress = ":8080"
	DefaultDriver     = "postgres"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"

	DriverMemory = "memory"
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	DBDriver    string `env:"DB_DRIVER"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
}

// New reads flags from args, then lets environment variables override them.
func New(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("workout-api", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", DefaultRunAddress, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.DBDriver, "driver", DefaultDriver, "database driver: postgres, pgx or memory")
	fs.StringVar(&cfg.LogLevel, "l", DefaultLogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", DefaultLogFormat, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "postgres", "pgx":
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI is required for driver %q", cfg.DBDriver)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}

	return cfg, nil
}
