// Package config holds the process configuration. It is read once at startup
// and passed by value afterwards.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvSecret = "MOTORTRADE_SECRET"
	EnvDB     = "MOTORTRADE_DB"
	EnvAddr   = "MOTORTRADE_ADDR"
)

// Config is the application configuration.
type Config struct {
	Addr          string          `yaml:"addr"`
	DBPath        string          `yaml:"db"`
	LogPath       string          `yaml:"log"`
	SessionSecret string          `yaml:"session_secret"`
	MaxImageBytes int64           `yaml:"max_image_bytes"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig bounds form submissions per client IP. A zero PerSecond
// disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:          "0.0.0.0:5000",
		DBPath:        "motortrade.sqlite3",
		MaxImageBytes: 5 << 20,
		RateLimit: RateLimitConfig{
			PerSecond: 2,
			Burst:     10,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	// An empty file carries no overrides.
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvSecret); v != "" {
		c.SessionSecret = v
	}
	if v := getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvAddr); v != "" {
		c.Addr = v
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	if c.DBPath == "" {
		return errors.New("database path is empty")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be positive, got %d", c.MaxImageBytes)
	}
	if c.RateLimit.PerSecond < 0 {
		return fmt.Errorf("rate_limit.per_second must not be negative, got %s",
			strconv.FormatFloat(c.RateLimit.PerSecond, 'f', -1, 64))
	}
	if c.RateLimit.PerSecond > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}
