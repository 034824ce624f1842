// Package config loads server configuration from an optional HCL file with
// environment variable overrides. A .env file in the working directory is
// honored so local development matches the deployed environment surface.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
)

const (
	// DefaultPort is the listen port used when PORT is not set.
	DefaultPort = 8000

	// DefaultDatabaseName is used when a database URL is configured without
	// an explicit name.
	DefaultDatabaseName = "cleanenergy"
)

// Config is the top-level configuration for the helio server.
type Config struct {
	// Port is the HTTP listen port.
	Port int `hcl:"port,optional"`

	// Database configures the document store. When no URL is configured the
	// server runs without a store and serves static fallback data.
	Database *Database `hcl:"database,block"`
}

// Database is the document store configuration.
type Database struct {
	// URL is the connection string, e.g. "mongodb://localhost:27017".
	URL string `hcl:"url,optional"`

	// Name is the database name.
	Name string `hcl:"name,optional"`
}

// NewConfig parses the HCL configuration file at path when path is not
// empty, then applies environment overrides (PORT, DATABASE_URL,
// DATABASE_NAME) and defaults.
func NewConfig(path string) (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("error parsing configuration file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// HasDatabase reports whether a document store is configured.
func (c *Config) HasDatabase() bool {
	return c.Database != nil && c.Database.URL != ""
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		c.Port = port
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if c.Database == nil {
			c.Database = &Database{}
		}
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		if c.Database == nil {
			c.Database = &Database{}
		}
		c.Database.Name = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Database != nil && c.Database.URL != "" && c.Database.Name == "" {
		c.Database.Name = DefaultDatabaseName
	}
}
