// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON file, and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `env:"SERVER_ADDRESS" json:"address"`

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string `env:"DATABASE_URL" json:"database_dsn"`

	// SecretKey signs the session cookie. The default is a development
	// placeholder that production deployments are expected to override.
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`

	// SessionTTL controls how long an issued session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" json:"-"`

	// Config is the path to the config file.
	Config string `env:"CONFIG" json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "postgres://localhost:5432/flashcards?sslmode=disable", "db address")
	flag.StringVar(&options.SecretKey, "k", "dev-secret-change-me", "session signing key")
	flag.DurationVar(&options.SessionTTL, "t", 24*time.Hour, "session lifetime")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional JSON config file, and
// environment variables, in that order, so that environment variables win.
// It returns a pointer to the Options struct containing the parsed values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	return options
}
