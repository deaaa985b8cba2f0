// Package config loads lobsterd settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvAddr     = "LOBSTER_ADDR"
	EnvDB       = "LOBSTER_DB"
	EnvLogLevel = "LOBSTER_LOG_LEVEL"
)

// Config is the top-level lobsterd configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
	Store  StoreConfig  `yaml:"store"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RenderConfig holds output defaults.
type RenderConfig struct {
	SVGScale     int `yaml:"svg_scale"`
	PNGScale     int `yaml:"png_scale"`
	Workers      int `yaml:"workers"` // 0 means GOMAXPROCS
	PreviewSeeds int `yaml:"preview_seeds"`
	MaxGallery   int `yaml:"max_gallery"`
	// CacheBytes bounds the in-memory cache of encoded renders.
	// Negative disables it.
	CacheBytes int `yaml:"cache_bytes"`
}

// StoreConfig locates the seed cache database.
type StoreConfig struct {
	Path string `yaml:"path"`
	// TotalTTL is how long a minted total pushed to PUT /total is trusted.
	TotalTTL time.Duration `yaml:"total_ttl"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path (if non-empty), applies defaults and then environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	cfg.applyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Render.SVGScale <= 0 {
		c.Render.SVGScale = 10
	}
	if c.Render.PNGScale <= 0 {
		c.Render.PNGScale = 10
	}
	if c.Render.Workers < 0 {
		c.Render.Workers = 0
	}
	if c.Render.PreviewSeeds <= 0 {
		c.Render.PreviewSeeds = 60
	}
	if c.Render.MaxGallery <= 0 {
		c.Render.MaxGallery = 256
	}
	if c.Render.CacheBytes == 0 {
		c.Render.CacheBytes = 64 << 20
	}
	if c.Store.Path == "" {
		c.Store.Path = "lobster.db"
	}
	if c.Store.TotalTTL <= 0 {
		c.Store.TotalTTL = 120 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		c.Store.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.SVGScale > 64 {
		errs = append(errs, fmt.Errorf("render.svg_scale %d exceeds 64", c.Render.SVGScale))
	}
	if c.Render.PNGScale > 64 {
		errs = append(errs, fmt.Errorf("render.png_scale %d exceeds 64", c.Render.PNGScale))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the slog level for LogLevel, defaulting to Info.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses a log level name case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
