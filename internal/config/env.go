package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type envVariable string

const (
	EnvAddr          envVariable = "CMDFORM_ADDR"           // listen address
	EnvTree          envVariable = "CMDFORM_TREE"           // command tree file
	EnvLogLevel      envVariable = "CMDFORM_LOG_LEVEL"      // logging level
	EnvTitle         envVariable = "CMDFORM_TITLE"          // page title
	EnvFormAction    envVariable = "CMDFORM_FORM_ACTION"    // form submit target
	EnvMetrics       envVariable = "CMDFORM_METRICS"        // expose /metrics
	EnvCache         envVariable = "CMDFORM_CACHE"          // cache backend
	EnvCacheTTL      envVariable = "CMDFORM_CACHE_TTL"      // cache entry lifetime
	EnvRedisAddr     envVariable = "CMDFORM_REDIS_ADDR"     // redis address
	EnvRedisPassword envVariable = "CMDFORM_REDIS_PASSWORD" //nolint:gosec // redis password
	EnvRedisDB       envVariable = "CMDFORM_REDIS_DB"       // redis database
)

// String returns environment variable name in the string representation.
func (e envVariable) String() string { return string(e) }

// Lookup retrieves the value of the environment variable.
func (e envVariable) Lookup() (string, bool) { return os.LookupEnv(string(e)) }

// ApplyEnv overlays the CMDFORM_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	strs := map[envVariable]*string{
		EnvAddr:          &c.Addr,
		EnvTree:          &c.TreeFile,
		EnvLogLevel:      &c.LogLevel,
		EnvTitle:         &c.Title,
		EnvFormAction:    &c.FormAction,
		EnvCache:         &c.Cache.Backend,
		EnvRedisAddr:     &c.Cache.RedisAddr,
		EnvRedisPassword: &c.Cache.RedisPassword,
	}
	for env, dst := range strs {
		if v, ok := env.Lookup(); ok {
			*dst = v
		}
	}

	if v, ok := EnvMetrics.Lookup(); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMetrics, err)
		}
		c.Metrics = b
	}
	if v, ok := EnvCacheTTL.Lookup(); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCacheTTL, err)
		}
		c.Cache.TTL = d
	}
	if v, ok := EnvRedisDB.Lookup(); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRedisDB, err)
		}
		c.Cache.RedisDB = n
	}
	return nil
}
