package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds client configuration, loaded from the environment. Flags on
// individual commands override these values.
type Config struct {
	// APIURL is the backend root. The client appends /api per request.
	APIURL string `env:"RIANTERM_API_URL" envDefault:"http://localhost:8000"`

	// AuthURL is the external identity broker. Login redirects the user
	// there with the return path attached.
	AuthURL string `env:"RIANTERM_AUTH_URL" envDefault:"https://auth.emergentagent.com"`

	// ReturnURL is the portal page the broker redirects back to after
	// consent; the one-time token arrives in its fragment, which the user
	// pastes into the login screen.
	ReturnURL string `env:"RIANTERM_RETURN_URL" envDefault:"http://localhost:3000/login"`

	// Timeout bounds a single backend request.
	Timeout time.Duration `env:"RIANTERM_TIMEOUT" envDefault:"15s"`

	// DataDir holds the cookie jar and the activity journal. Empty resolves
	// to $XDG_DATA_HOME/rianterm or ~/.local/share/rianterm.
	DataDir string `env:"RIANTERM_DATA_DIR"`
}

// Load parses configuration from the environment and resolves the data dir.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	return &cfg, nil
}

// JournalPath returns the SQLite activity journal path.
func (c *Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

// JarPath returns the persisted cookie jar path.
func (c *Config) JarPath() string {
	return filepath.Join(c.DataDir, "cookies.json")
}

func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rianterm"), nil
}
