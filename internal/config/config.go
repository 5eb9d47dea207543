// Package config provides the YAML configuration model with full
// load/save behavior, including first-run config creation and 0600
// permissions.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverlayConfig holds the persisted enabled flags for the built-in
// overlays. The flags mirror the view-menu checkboxes.
type OverlayConfig struct {
	Holidays            bool `yaml:"holidays" json:"holidays"`
	Sundays             bool `yaml:"sundays" json:"sundays"`
	FerienNiedersachsen bool `yaml:"ferien_niedersachsen" json:"ferien_niedersachsen"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API.
	Listen string `yaml:"listen" json:"listen"`

	// DocumentPath is the calendar document loaded at startup and
	// written by autosave.
	DocumentPath string `yaml:"document" json:"document"`

	// AutosaveCron is a cron-style schedule (e.g. "*/5 * * * *") for
	// persisting a modified document. Empty disables autosave.
	AutosaveCron string `yaml:"autosave" json:"autosave"`

	// LogLevel is DEBUG, INFO or ERROR.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Overlays are the initial enabled flags per overlay.
	Overlays OverlayConfig `yaml:"overlays" json:"overlays"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       "127.0.0.1:8080",
		DocumentPath: "kalender.json",
		AutosaveCron: "*/5 * * * *",
		LogLevel:     "INFO",
		Overlays: OverlayConfig{
			Holidays:            true,
			Sundays:             false,
			FerienNiedersachsen: true,
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.DocumentPath == "" {
		c.DocumentPath = "kalender.json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written there
//     (0600, parent directory created) and returned.
//   - If the file exists, it is unmarshaled and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename in the
// target directory) with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".kalender-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save is a convenience method delegating to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
