package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
quotes:
  provider: financego
  timeout: 3s
search:
  engine: bleve
session:
  ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("DASHBOARD_SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "financego", cfg.Quotes.Provider)
	assert.Equal(t, 3*time.Second, cfg.Quotes.Timeout)
	assert.Equal(t, "bleve", cfg.Search.Engine)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "cache:6379", cfg.Session.RedisAddr)
	assert.Equal(t, 2, cfg.Session.RedisDB)
	assert.Equal(t, "data/fortune100.json", cfg.Seed.Path)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Session.Store = "memcached"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.TTL = 0
	require.Error(t, cfg.Validate())

	require.NoError(t, Default().Validate())
}
