package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; empty values are ignored.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "DATABASE_PATH", "LOG_LEVEL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
		"LOOKUP_MODE", "LOOKUP_URL", "LOOKUP_TIMEOUT",
		"TERMINAL_SETTLE", "TERMINAL_ENTER", "TERMINAL_JITTER",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
lookup:
  mode: ipify
  timeout: 2s
terminal:
  settle_delay: 75ms
`), 0o600))
	clearEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("TERMINAL_JITTER", "0s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, LookupIpify, cfg.Lookup.Mode)
	assert.Equal(t, 2*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 75*time.Millisecond, cfg.Terminal.SettleDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.Terminal.EnterDelay)
	assert.Zero(t, cfg.Terminal.JitterMax)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOOKUP_TIMEOUT", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "LOOKUP_TIMEOUT")
	})
	t.Run("bad mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOOKUP_MODE", "dns")
		_, err := Load("")
		assert.ErrorContains(t, err, "lookup mode")
	})
	t.Run("bad gin mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GIN_MODE", "verbose")
		_, err := Load("")
		assert.ErrorContains(t, err, "gin mode")
	})
}
