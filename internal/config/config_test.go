package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/es-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ELASTICSEARCH_URL",
		"ELASTICSEARCH_API_KEY",
		"ELASTICSEARCH_TIMEOUT",
		"LOG_LEVEL",
		config.FileEnv,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELASTICSEARCH_URL", "https://es.example.com:9243/")
	t.Setenv("ELASTICSEARCH_API_KEY", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "https://es.example.com:9243", cfg.ElasticsearchURL)
	require.Equal(t, "secret", cfg.APIKey)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELASTICSEARCH_URL", "http://localhost:9200")
	t.Setenv("ELASTICSEARCH_API_KEY", "k")
	t.Setenv("ELASTICSEARCH_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingSettings(t *testing.T) {
	clearEnv(t)

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrMissingSetting)
	require.EqualError(t, err, "ELASTICSEARCH_URL not set")

	t.Setenv("ELASTICSEARCH_URL", "http://localhost:9200")
	_, err = config.Load()
	require.ErrorIs(t, err, config.ErrMissingSetting)
	require.EqualError(t, err, "ELASTICSEARCH_API_KEY not set")
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELASTICSEARCH_URL", "http://localhost:9200")
	t.Setenv("ELASTICSEARCH_API_KEY", "k")

	t.Setenv("ELASTICSEARCH_TIMEOUT", "soon")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("ELASTICSEARCH_TIMEOUT", "-1s")
	_, err = config.Load()
	require.EqualError(t, err, "ELASTICSEARCH_TIMEOUT must be positive")
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "es-cli.yaml")
	content := "elasticsearch_url: http://file-es:9200\n" +
		"elasticsearch_api_key: from-file\n" +
		"elasticsearch_timeout: 12s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(config.FileEnv, path)
	t.Setenv("ELASTICSEARCH_API_KEY", "from-env")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "http://file-es:9200", cfg.ElasticsearchURL)
	require.Equal(t, "from-env", cfg.APIKey)
	require.Equal(t, 12*time.Second, cfg.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.FileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()
	require.Error(t, err)
}
