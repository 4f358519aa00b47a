// ABOUTME: MacroFactor CLI configuration: refresh token and last-search cache.
// ABOUTME: Single JSON file under the user config dir, written atomically.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/macrofactor/internal/api"
)

// ErrNotLoggedIn means no usable config file exists yet. Authenticated
// commands fail with this before any network call.
var ErrNotLoggedIn = errors.New("not logged in: run 'macrofactor login' first")

// SearchCache holds the most recent food search, referenced by 1-based index
// from log-searched-food.
type SearchCache struct {
	Query   string                 `json:"query"`
	Results []api.SearchFoodResult `json:"results"`
}

// Config is the on-disk state. It is the only state kept between
// invocations.
type Config struct {
	RefreshToken string       `json:"refresh_token"`
	LastSearch   *SearchCache `json:"last_search,omitempty"`
}

// Path returns the config file path.
func Path() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "macrofactor", "config.json")
}

// Load reads config from disk. A missing file returns ErrNotLoggedIn; a
// present but unreadable or invalid file returns a wrapped error.
func Load() (*Config, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.RefreshToken == "" {
		return nil, ErrNotLoggedIn
	}
	return &cfg, nil
}

// Save writes config to disk atomically: the new content lands in a temp
// file in the same directory and is renamed over the old file, so a crash
// never leaves a partially written config.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
