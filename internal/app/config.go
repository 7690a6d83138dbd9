package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior for the TUI app. Fields come from flags
// and DYELE_* environment variables, flags winning.
type Config struct {
	DataDir   string `env:"DYELE_DATA_DIR"`
	LogPath   string `env:"DYELE_LOG_PATH"`
	Mode      string `env:"DYELE_MODE"`
	ASCIIOnly bool   `env:"DYELE_ASCII"`
}

// ConfigFromEnv reads DYELE_* variables into a Config. Validate still has to
// run before use.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "", "daily", "practice":
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.Mode == "" {
		c.Mode = "daily"
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "dyele")
	}
	return nil
}
