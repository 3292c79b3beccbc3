// Package config handles the pdfsources configuration file and environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/matsen/pdfsources/internal/citation"
)

const (
	// AppDir is the directory name under XDG_CONFIG_HOME.
	AppDir = "pdfsources"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Environment variables that override file settings.
const (
	EnvStyle    = "PDFSOURCES_STYLE"
	EnvPDFDir   = "PDFSOURCES_PDF_DIR"
	EnvInfoDir  = "PDFSOURCES_INFO_DIR"
	EnvAnystyle = "ANYSTYLE_BIN"
)

// Config is the contents of ~/.config/pdfsources/config.yml.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Extract    ExtractConfig    `yaml:"extract"`
	Heuristics HeuristicsConfig `yaml:"heuristics,omitempty"`
}

// OutputConfig controls bibliography generation.
type OutputConfig struct {
	DefaultStyle string `yaml:"default_style"`
	Dedupe       bool   `yaml:"dedupe"`
}

// ExtractConfig controls how anystyle is run over PDFs.
type ExtractConfig struct {
	PDFDir        string        `yaml:"pdf_dir"`
	InfoDir       string        `yaml:"info_dir"`
	Binary        string        `yaml:"binary"`
	Timeout       time.Duration `yaml:"timeout"`
	Attempts      int           `yaml:"attempts"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	Cache         bool          `yaml:"cache"`
}

// HeuristicsConfig overrides the classifier word lists and validity filter.
// Empty lists and zero values keep the built-in defaults.
type HeuristicsConfig struct {
	citation.Heuristics `yaml:",inline"`
	citation.Filter     `yaml:",inline"`
}

// ErrCorrupt is returned when the config file exists but cannot be parsed.
var ErrCorrupt = errors.New("config file is corrupt")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultStyle: "chicago",
			Dedupe:       true,
		},
		Extract: ExtractConfig{
			PDFDir:        "pdfs",
			InfoDir:       "info",
			Binary:        "anystyle",
			Timeout:       5 * time.Minute,
			Attempts:      2,
			RatePerSecond: 2,
			Cache:         true,
		},
	}
}

// Path returns the config file path.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/pdfsources/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppDir, ConfigFile)
}

// Load reads the config at path. Keys missing from the file keep their
// default values. A missing file yields the defaults and os.ErrNotExist.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadOrDefault loads the config at path and never fails: a missing file is
// created with the defaults, and a corrupt one is ignored with a warning.
func LoadOrDefault(path string, logger *zap.Logger) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		return Default()
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(path); err != nil {
			logger.Debug("could not write default config", zap.String("path", path), zap.Error(err))
		}
	default:
		logger.Warn("using default config", zap.String("path", path), zap.Error(err))
	}
	return cfg
}

// ApplyEnv overrides file settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvStyle); v != "" {
		c.Output.DefaultStyle = v
	}
	if v := os.Getenv(EnvPDFDir); v != "" {
		c.Extract.PDFDir = v
	}
	if v := os.Getenv(EnvInfoDir); v != "" {
		c.Extract.InfoDir = v
	}
	if v := os.Getenv(EnvAnystyle); v != "" {
		c.Extract.Binary = v
	}
}

// Classifier returns a citation classifier with the configured word lists.
func (c *Config) Classifier() citation.Classifier {
	return citation.NewClassifier(c.Heuristics.Heuristics)
}

// Filter returns a validity filter with the configured overrides.
func (c *Config) Filter() citation.Filter {
	return citation.DefaultFilter().Merge(c.Heuristics.Filter)
}

// CachePath returns the extraction cache database path inside the info
// directory.
func (c *Config) CachePath() string {
	return filepath.Join(ExpandPath(c.Extract.InfoDir), "cache.db")
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
