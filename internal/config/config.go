package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	keyURL      = "ELASTICSEARCH_URL"
	keyAPIKey   = "ELASTICSEARCH_API_KEY"
	keyTimeout  = "ELASTICSEARCH_TIMEOUT"
	keyLogLevel = "LOG_LEVEL"

	// FileEnv names an optional YAML file with the same keys.
	FileEnv = "ES_CLI_CONFIG"
)

// ErrMissingSetting is returned when a required setting is not provided.
var ErrMissingSetting = errors.New("not set")

// Config holds everything needed to reach the cluster.
type Config struct {
	ElasticsearchURL string
	APIKey           string
	Timeout          time.Duration
	LogLevel         string
}

// Load reads the configuration from the environment, a .env file in the
// working directory and the optional file named by ES_CLI_CONFIG, in that
// order of precedence.
func Load() (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyTimeout, "30s")
	v.SetDefault(keyLogLevel, "warn")
	for _, key := range []string{keyURL, keyAPIKey, keyTimeout, keyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	c := &Config{
		ElasticsearchURL: strings.TrimRight(strings.TrimSpace(v.GetString(keyURL)), "/"),
		APIKey:           strings.TrimSpace(v.GetString(keyAPIKey)),
		LogLevel:         v.GetString(keyLogLevel),
	}

	if c.ElasticsearchURL == "" {
		return nil, fmt.Errorf("%s %w", keyURL, ErrMissingSetting)
	}
	if c.APIKey == "" {
		return nil, fmt.Errorf("%s %w", keyAPIKey, ErrMissingSetting)
	}

	timeout, err := time.ParseDuration(v.GetString(keyTimeout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyTimeout, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", keyTimeout)
	}
	c.Timeout = timeout

	return c, nil
}
