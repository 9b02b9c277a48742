package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/cmdform/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cmdform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig_FromFile(t *testing.T) {
	t.Run("empty file keeps defaults", func(t *testing.T) {
		c := config.Default()
		require.NoError(t, c.FromFile(writeFile(t, "")))
		assert.Equal(t, config.Default(), c)
	})

	t.Run("overlays set keys", func(t *testing.T) {
		c := config.Default()
		err := c.FromFile(writeFile(t, `
addr: ":9090"
tree: cli.yaml
title: My CLI
cache:
  backend: redis
  ttl: 30s
  redisDB: 2
`))
		require.NoError(t, err)

		assert.Equal(t, ":9090", c.Addr)
		assert.Equal(t, "cli.yaml", c.TreeFile)
		assert.Equal(t, "My CLI", c.Title)
		assert.Equal(t, config.CacheRedis, c.Cache.Backend)
		assert.Equal(t, 30*time.Second, c.Cache.TTL)
		assert.Equal(t, 2, c.Cache.RedisDB)
		// untouched
		assert.Equal(t, "info", c.LogLevel)
		assert.Equal(t, "localhost:6379", c.Cache.RedisAddr)
	})

	t.Run("broken yaml", func(t *testing.T) {
		c := config.Default()
		err := c.FromFile(writeFile(t, "addr: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode the config file")
	})

	t.Run("missing file", func(t *testing.T) {
		c := config.Default()
		err := c.FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open the config file")
	})
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(config.EnvAddr.String(), ":7070")
	t.Setenv(config.EnvCache.String(), config.CacheMemory)
	t.Setenv(config.EnvCacheTTL.String(), "1m")
	t.Setenv(config.EnvMetrics.String(), "false")
	t.Setenv(config.EnvRedisDB.String(), "3")

	c := config.Default()
	require.NoError(t, c.ApplyEnv())

	assert.Equal(t, ":7070", c.Addr)
	assert.Equal(t, config.CacheMemory, c.Cache.Backend)
	assert.Equal(t, time.Minute, c.Cache.TTL)
	assert.False(t, c.Metrics)
	assert.Equal(t, 3, c.Cache.RedisDB)
}

func TestConfig_ApplyEnv_Invalid(t *testing.T) {
	t.Setenv(config.EnvCacheTTL.String(), "soon")

	c := config.Default()
	err := c.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvCacheTTL.String())
}

func TestConfig_Validate(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	c.Cache.Backend = "memcached"
	assert.ErrorContains(t, c.Validate(), "unknown cache backend")

	c = config.Default()
	c.TreeFile = "cli.yaml"
	c.Self = true
	assert.ErrorContains(t, c.Validate(), "mutually exclusive")
}
