package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures the careeros command-line client.
// Variables are read with the CAREEROS_ prefix.
type ClientConfig struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:8080"`
	HistoryFile string        `envconfig:"HISTORY_FILE"`
	RedisURL    string        `envconfig:"REDIS_URL"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig

	if err := envconfig.Process("careeros", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process client config: %w", err)
	}

	if cfg.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.HistoryFile = filepath.Join(home, ".careeros", "history.db")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("CAREEROS_TIMEOUT must be positive")
	}

	return &cfg, nil
}

// UseRedis reports whether the draft history should live in redis.
func (c *ClientConfig) UseRedis() bool {
	return c.RedisURL != ""
}
