// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/citegrab/config.yml.
// Zero values fall back to the defaults below at the point of use.
type Config struct {
	OllamaURL       string `yaml:"ollama_url,omitempty" json:"ollama_url,omitempty"`
	Model           string `yaml:"model,omitempty" json:"model,omitempty"`
	PageRange       string `yaml:"page_range,omitempty" json:"page_range,omitempty"`
	OutputDir       string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	UnknownSentinel string `yaml:"unknown_sentinel,omitempty" json:"unknown_sentinel,omitempty"`
	OCRBinary       string `yaml:"ocr_binary,omitempty" json:"ocr_binary,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citegrab"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CatalogFile is the extraction catalog database name.
	CatalogFile = "catalog.db"

	// DefaultPageRange processes the first five and last three pages,
	// where bibliographic front and back matter lives.
	DefaultPageRange = "1-5,-3"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/citegrab/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// CatalogPath returns the path to the extraction catalog database.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/citegrab/catalog.db.
func CatalogPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, ConfigDir, CatalogFile)
}

// Load loads the global configuration file. Returns an empty config (not
// an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.OutputDir != "" {
		cfg.OutputDir = ExpandTilde(cfg.OutputDir)
	}

	configCache = &cfg
	return &cfg, nil
}

// Save writes the configuration, creating the config directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ResetCache()
	return nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// PageRangeOrDefault returns the configured page range or the default.
func (c *Config) PageRangeOrDefault() string {
	if c.PageRange != "" {
		return c.PageRange
	}
	return DefaultPageRange
}

// ExpandTilde expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
