package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// TrustProxy enables client address extraction from X-Forwarded-For.
	// Only set this when the server sits behind a reverse proxy that
	// overwrites the header; otherwise clients can spoof their address
	// past the rate limiter.
	TrustProxy bool `yaml:"trust_proxy"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AdminConfig struct {
	// Key is the shared secret required by the contacts and stats
	// endpoints. The SENTINEL_ADMIN_KEY environment variable overrides
	// it. There is no default: the server refuses to start without one.
	Key string `yaml:"key"`
}

type LimitConfig struct {
	WindowMinutes int `yaml:"window_minutes"`
	Max           int `yaml:"max"`
}

func (l LimitConfig) Window() time.Duration {
	return time.Duration(l.WindowMinutes) * time.Minute
}

type RateLimitConfig struct {
	API     LimitConfig `yaml:"api"`
	Contact LimitConfig `yaml:"contact"`
}

type WebConfig struct {
	// Dist is the directory holding the built frontend. Empty disables
	// static serving (API only).
	Dist string `yaml:"dist"`
}

type ReportsConfig struct {
	// FontPath points at a TTF font used for PDF report downloads.
	// Empty disables the PDF format; markdown downloads always work.
	FontPath string `yaml:"font_path"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Web       WebConfig       `yaml:"web"`
	Reports   ReportsConfig   `yaml:"reports"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 3000,
		},
		Database: DatabaseConfig{
			Path: "sentinel.db",
		},
		RateLimit: RateLimitConfig{
			API:     LimitConfig{WindowMinutes: 15, Max: 1000},
			Contact: LimitConfig{WindowMinutes: 60, Max: 20},
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if key := os.Getenv("SENTINEL_ADMIN_KEY"); key != "" {
		cfg.Admin.Key = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Admin.Key == "" {
		return fmt.Errorf("admin key not configured: set admin.key or SENTINEL_ADMIN_KEY")
	}
	if c.RateLimit.API.WindowMinutes <= 0 || c.RateLimit.API.Max <= 0 {
		return fmt.Errorf("rate_limit.api window and max must be positive")
	}
	if c.RateLimit.Contact.WindowMinutes <= 0 || c.RateLimit.Contact.Max <= 0 {
		return fmt.Errorf("rate_limit.contact window and max must be positive")
	}
	return nil
}
