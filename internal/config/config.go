// ABOUTME: Application configuration loading
// ABOUTME: Defaults, then TOML file, then DREAMDECODER_ environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. DREAMDECODER_DATA_DIR.
const EnvPrefix = "DREAMDECODER"

// Data file names inside DataDir.
const (
	JournalFile     = "dream_journal.csv"
	SymbolGuideFile = "symbol_guide.csv"
)

// Config holds runtime settings.
type Config struct {
	DataDir   string `toml:"data_dir" json:"data_dir" envconfig:"DATA_DIR"`
	HTTPAddr  string `toml:"http_addr" json:"http_addr" envconfig:"HTTP_ADDR"`
	LogLevel  string `toml:"log_level" json:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" json:"log_format" envconfig:"LOG_FORMAT"`
	CharmHost string `toml:"charm_host" json:"charm_host,omitempty" envconfig:"CHARM_HOST"`
	AutoSync  bool   `toml:"auto_sync" json:"auto_sync" envconfig:"AUTO_SYNC"`

	// Path is the file the config was read from, empty if none.
	Path string `toml:"-" json:"path,omitempty" ignored:"true"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		HTTPAddr:  ":5000",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration from path. An empty path resolves the
// project marker or user config from the working directory, and a missing
// resolved file is not an error. A relative data_dir is taken relative to
// the config file.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = ResolvePath(wd); err != nil {
			return nil, err
		}
	}

	fileCfg := Config{}
	_, err := toml.DecodeFile(path, &fileCfg)
	switch {
	case err == nil:
		cfg.merge(fileCfg, filepath.Dir(path))
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// merge copies the fields set in file over c.
func (c *Config) merge(file Config, base string) {
	if file.DataDir != "" {
		c.DataDir = file.DataDir
		if !filepath.IsAbs(c.DataDir) {
			c.DataDir = filepath.Join(base, c.DataDir)
		}
	}
	if file.HTTPAddr != "" {
		c.HTTPAddr = file.HTTPAddr
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		c.LogFormat = file.LogFormat
	}
	if file.CharmHost != "" {
		c.CharmHost = file.CharmHost
	}
	c.AutoSync = c.AutoSync || file.AutoSync
}

// JournalPath is the journal CSV location.
func (c *Config) JournalPath() string {
	return filepath.Join(c.DataDir, JournalFile)
}

// SymbolGuidePath is the symbol guide CSV location.
func (c *Config) SymbolGuidePath() string {
	return filepath.Join(c.DataDir, SymbolGuideFile)
}
