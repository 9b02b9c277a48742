// Package config holds the cmdform runtime configuration: defaults, an optional
// YAML file and CMDFORM_* environment variables, applied in that order before
// command line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type (
	// Config is the full runtime configuration.
	Config struct {
		Addr       string `yaml:"addr"`
		TreeFile   string `yaml:"tree"`
		Self       bool   `yaml:"self"`
		LogLevel   string `yaml:"logLevel"`
		Title      string `yaml:"title"`
		FormAction string `yaml:"formAction"`
		Metrics    bool   `yaml:"metrics"`
		Cache      Cache  `yaml:"cache"`
	}

	// Cache configures the rendered page cache.
	Cache struct {
		Backend       string        `yaml:"backend"`
		TTL           time.Duration `yaml:"ttl"`
		RedisAddr     string        `yaml:"redisAddr"`
		RedisPassword string        `yaml:"redisPassword"`
		RedisDB       int           `yaml:"redisDB"`
		Prefix        string        `yaml:"prefix"`
	}
)

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Metrics:  true,
		Cache: Cache{
			Backend:   CacheNone,
			TTL:       5 * time.Minute,
			RedisAddr: "localhost:6379",
		},
	}
}

// FromFile overlays the values found in the YAML file at path. Keys missing
// from the file keep their current value.
func (c *Config) FromFile(path string) error {
	if c == nil {
		return errors.New("config is nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open the config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err = yaml.NewDecoder(f).Decode(c); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return nil
		}
		return fmt.Errorf("failed to decode the config file: %w", err)
	}
	return nil
}

// Validate reports configuration values that cannot work together.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q (want %s, %s or %s)",
			c.Cache.Backend, CacheNone, CacheMemory, CacheRedis)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.TreeFile != "" && c.Self {
		return errors.New("tree file and self are mutually exclusive")
	}
	return nil
}
