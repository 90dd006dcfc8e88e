package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_ParsesValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "https://lms.example/api",
		"-d", "/tmp/lms.db",
		"--config", "/etc/lms.json",
		"--api-key", "key-1",
		"--request-timeout", "10s",
		"--rate-limit", "1.5",
		"--download-retries", "4",
		"--network", "ethernet",
		"--mode", "online",
		"--temp-dir", "/tmp/cache",
		"--data-dir", "/tmp/data",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://lms.example/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/lms.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/lms.json", cfg.JSONFilePath)
	assert.Equal(t, "key-1", cfg.App.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1.5, cfg.Adapter.RateLimit)
	assert.Equal(t, uint64(4), cfg.Adapter.DownloadRetries)
	assert.Equal(t, "ethernet", cfg.Connection.Network)
	assert.Equal(t, "online", cfg.Connection.Mode)
	assert.Equal(t, "/tmp/cache", cfg.Storage.Files.TempDir)
	assert.Equal(t, "/tmp/data", cfg.Storage.Files.PersistentDir)
}

func TestBindFlags_ZeroWhenUnset(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}
