package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dir", cfg.Store.Driver)
	assert.Equal(t, ".vendas", cfg.Store.DataDir)
	assert.Equal(t, "BRL", cfg.Currency)
	assert.Empty(t, cfg.Passcode)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "vendas.db", cfg.Store.SQLitePath)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("VENDAS_STORE", "sqlite")
	t.Setenv("VENDAS_CURRENCY", "EUR")
	t.Setenv("VENDAS_METRICS", "false")
	t.Setenv("VENDAS_REQUEST_TIMEOUT", "2s")
	t.Setenv("VENDAS_SQLITE_PATH", "/var/lib/vendas.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.False(t, cfg.Server.Metrics)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/vendas.db", cfg.Store.SQLitePath)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VENDAS_PASSCODE=1234\nVENDAS_LOG_LEVEL=debug\n"), 0o600))
	// t.Setenv restores whatever godotenv sets.
	t.Setenv("VENDAS_PASSCODE", "")
	os.Unsetenv("VENDAS_PASSCODE")
	t.Setenv("VENDAS_LOG_LEVEL", "")
	os.Unsetenv("VENDAS_LOG_LEVEL")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Passcode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadInvalidTimezone(t *testing.T) {
	t.Setenv("VENDAS_TIMEZONE", "Mars/Olympus")
	_, err := Load("")
	assert.Error(t, err)
}
