// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSanitizeVars are the path-list variables the art-suite recipes
// clean up after each environment hook
var DefaultSanitizeVars = []string{
	"PATH",
	"CET_PLUGIN_PATH",
	"LD_LIBRARY_PATH",
	"DYLD_LIBRARY_PATH",
	"LIBRARY_PATH",
	"CMAKE_INSTALL_RPATH",
	"CMAKE_PREFIX_PATH",
	"ROOT_INCLUDE_PATH",
}

// Config holds fnalenv configuration
type Config struct {
	Generator      string   `yaml:"generator"`
	RecipePath     string   `yaml:"recipe_path,omitempty"`
	SystemPrefixes []string `yaml:"system_prefixes,omitempty"`
	SanitizeVars   []string `yaml:"sanitize_vars"`
	Format         string   `yaml:"format"`
	Debug          bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration.
// SystemPrefixes stays empty so the platform default applies.
func DefaultConfig() *Config {
	return &Config{
		Generator:    "",
		RecipePath:   "",
		SanitizeVars: append([]string(nil), DefaultSanitizeVars...),
		Format:       "sh",
		Debug:        false,
	}
}

// DefaultConfigPath returns $HOME/.config/fnalenv/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fnalenv", "config.yaml"), nil
}

// DefaultRecipePath returns $HOME/.config/fnalenv/recipes, where
// `fnalenv recipes sync` installs recipes when no recipe_path is set
func DefaultRecipePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fnalenv", "recipes"), nil
}

// LoadConfig loads configuration from file.
// A missing file yields DefaultConfig; fields absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
