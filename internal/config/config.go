// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kk-code-lab/mfm/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultLastDirFile is where the last visited directory is written on quit.
const DefaultLastDirFile = "~/.mfmdir"

// Config is the on-disk configuration.
type Config struct {
	ShowHidden  bool     `yaml:"show_hidden"`   // list dotfiles at startup
	Editor      string   `yaml:"editor"`        // overrides $VISUAL/$EDITOR
	Shell       string   `yaml:"shell"`         // overrides $SHELL
	LastDirFile string   `yaml:"last_dir_file"` // session persistence target
	Ignore      []string `yaml:"ignore"`        // glob patterns never listed
	Log         struct {
		Level  string `yaml:"level"`
		Path   string `yaml:"path"` // empty disables logging
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		LastDirFile: DefaultLastDirFile,
		Ignore:      []string{},
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

// DefaultPath returns ~/.config/mfm/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mfm", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("no config file, using defaults", logging.String("path", path))
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if cfg.LastDirFile == "" {
		cfg.LastDirFile = DefaultLastDirFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects malformed ignore globs and unknown log settings.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	for i, pattern := range c.Ignore {
		if pattern == "" {
			return fmt.Errorf("ignore %d: pattern is empty", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("ignore %d: %q: %w", i, pattern, err)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	return nil
}

// LastDirPath returns LastDirFile with a leading ~ expanded.
func (c *Config) LastDirPath() (string, error) {
	return ExpandUserPath(c.LastDirFile)
}

// LoggingConfig converts the log section for logging.Init.
func (c *Config) LoggingConfig() (logging.Config, error) {
	path, err := ExpandUserPath(c.Log.Path)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, OutputPath: path}, nil
}

// ExpandUserPath replaces a leading "~" with the home directory.
func ExpandUserPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
