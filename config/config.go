package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Log      LogConfig      `yaml:"log"`
	UI       UIConfig       `yaml:"ui"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port                   int           `yaml:"port"`
	Mode                   string        `yaml:"mode"`
	RateLimitPerSec        float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst         int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds        int           `yaml:"cache_ttl_seconds"`
	CacheTTL               time.Duration `yaml:"-"`
	AllowedOrigins         []string      `yaml:"allowed_origins"`
	ShutdownTimeoutSeconds int           `yaml:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the optional database backing the booking lookup.
// An empty DSN keeps the lookup on the built-in mock fixture.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	Seed                   bool   `yaml:"seed"`
}

// LookupConfig points the pages at a remote lookup API instead of the local store.
type LookupConfig struct {
	BaseURL        string        `yaml:"base_url"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// UIConfig holds presentation settings shared by the pages.
type UIConfig struct {
	ToastSeconds float64       `yaml:"toast_seconds"`
	ToastTTL     time.Duration `yaml:"-"`
	// Timezone is the IANA zone admission dates are read in.
	Timezone string `yaml:"timezone"`
}

// Location resolves Timezone, falling back to UTC+7 when the zone
// database is unavailable.
func (u UIConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(u.Timezone); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*60*60)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the configuration from the given path. A missing file yields
// the defaults when allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}
	// A negative TTL turns the response cache off.
	switch {
	case c.Server.CacheTTLSeconds == 0:
		c.Server.CacheTTLSeconds = 30
		c.Server.CacheTTL = 30 * time.Second
	case c.Server.CacheTTLSeconds < 0:
		c.Server.CacheTTL = 0
	default:
		c.Server.CacheTTL = time.Duration(c.Server.CacheTTLSeconds) * time.Second
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 5
	}
	c.Server.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 2
	}
	if c.Database.ConnMaxLifetimeMinutes <= 0 {
		c.Database.ConnMaxLifetimeMinutes = 30
	}

	if c.Lookup.TimeoutSeconds <= 0 {
		c.Lookup.TimeoutSeconds = 10
	}
	c.Lookup.Timeout = time.Duration(c.Lookup.TimeoutSeconds) * time.Second

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.UI.ToastSeconds <= 0 {
		c.UI.ToastSeconds = 3
	}
	c.UI.ToastTTL = time.Duration(c.UI.ToastSeconds * float64(time.Second))
	if c.UI.Timezone == "" {
		c.UI.Timezone = "Asia/Bangkok"
	}
}
