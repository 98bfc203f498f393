package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory
const AppName = "treewatch"

// Default display glyphs for rendered trees
const (
	DefaultFolderIcon = "📂"
	DefaultFileIcon   = "📄"
)

// Config holds CLI configuration
type Config struct {
	OutputFormat  string `yaml:"output_format,omitempty"`  // text, json, ndjson, table, yaml
	PathSeparator string `yaml:"path_separator,omitempty"` // joins full paths in text output
	FolderIcon    string `yaml:"folder_icon,omitempty"`
	FileIcon      string `yaml:"file_icon,omitempty"`
}

// Separator returns the configured path separator, defaulting to "/".
func (c *Config) Separator() string {
	if c == nil || c.PathSeparator == "" {
		return "/"
	}
	return c.PathSeparator
}

// Icons returns the folder and file glyphs, falling back to the defaults.
func (c *Config) Icons() (folder, file string) {
	folder, file = DefaultFolderIcon, DefaultFileIcon
	if c == nil {
		return folder, file
	}
	if c.FolderIcon != "" {
		folder = c.FolderIcon
	}
	if c.FileIcon != "" {
		file = c.FileIcon
	}
	return folder, file
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ReadConfig reads the config file from the default location
func ReadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads config from the given path
func Load(path string) (*Config, error) {
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

	return &cfg, nil
}

// Save saves config to the given path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
