// Package config loads GiggleGen's preferences. The file is read-only from the
// app's point of view: session state is never written back.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/errors"
)

// Environment variables that override the preferences file.
const (
	EnvCategory = "GIGGLEGEN_CATEGORY"
	EnvDark     = "GIGGLEGEN_DARK"
	EnvSeed     = "GIGGLEGEN_SEED"
	EnvCatalog  = "GIGGLEGEN_CATALOG"
	EnvNotify   = "GIGGLEGEN_NOTIFY"
	EnvShareURL = "GIGGLEGEN_SHARE_URL"
)

// Config holds the user's preferences.
type Config struct {
	InitialCategory string  `json:"initial_category,omitempty"` // Category selected at startup
	DarkTheme       bool    `json:"dark_theme,omitempty"`       // Start in the dark theme
	Notifications   bool    `json:"notifications,omitempty"`    // Desktop notice after copying
	CatalogPath     string  `json:"catalog_path,omitempty"`     // JSON file with extra jokes
	Seed            *uint64 `json:"seed,omitempty"`             // Fixed RNG seed, for reproducible runs
	ShareURL        string  `json:"share_url,omitempty"`        // Link attached to native shares

	filePath string
}

// Default returns the preferences used when no file exists.
func Default() *Config {
	return &Config{InitialCategory: string(catalog.DefaultCategory)}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gigglegen"), nil
}

// Path returns the default preferences file location.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads preferences from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.gigglegen/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads preferences from path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if cfg.InitialCategory == "" {
		cfg.InitialCategory = string(catalog.DefaultCategory)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FilePath returns the file the config was loaded from.
func (c *Config) FilePath() string {
	return c.filePath
}

// LoadDotEnv loads variables from the given .env files (or ./.env when none
// are given) into the process environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return errors.ConfigLoadFailed(strings.Join(present, ","), err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCategory); ok && v != "" {
		c.InitialCategory = v
	}
	if v, ok := lookup(EnvCatalog); ok && v != "" {
		c.CatalogPath = v
	}
	if v, ok := lookup(EnvShareURL); ok && v != "" {
		c.ShareURL = v
	}
	if v, ok := lookup(EnvDark); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ConfigInvalid(EnvDark + " must be a boolean")
		}
		c.DarkTheme = b
	}
	if v, ok := lookup(EnvNotify); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ConfigInvalid(EnvNotify + " must be a boolean")
		}
		c.Notifications = b
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.ConfigInvalid(EnvSeed + " must be a non-negative integer")
		}
		c.Seed = &n
	}
	return c.Validate()
}

// Validate checks that the preferences are usable.
func (c *Config) Validate() error {
	if _, err := catalog.Parse(c.InitialCategory); err != nil {
		return errors.ConfigInvalid("initial_category: " + err.Error())
	}
	return nil
}

// Category returns the validated initial category.
func (c *Config) Category() catalog.CategoryID {
	id, err := catalog.Parse(c.InitialCategory)
	if err != nil {
		return catalog.DefaultCategory
	}
	return id
}
