package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Backend     struct {
		URL        string        `yaml:"url"`
		AdminToken string        `yaml:"admin_token"`
		Timeout    time.Duration `yaml:"timeout"` // 0 = no timeout; a hung call holds its controller in loading
	} `yaml:"backend"`
	Trading struct {
		Symbol   string `yaml:"symbol"`
		Interval string `yaml:"interval"`
	} `yaml:"trading"`
	Alerts struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"alerts"`
	Server struct {
		Enabled         bool          `yaml:"enabled"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("CTP_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("CTP_ADMIN_TOKEN"); v != "" {
		c.Backend.AdminToken = v
	}
	if v := os.Getenv("CTP_SYMBOL"); v != "" {
		c.Trading.Symbol = v
	}
	if v := os.Getenv("CTP_INTERVAL"); v != "" {
		c.Trading.Interval = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Trading.Symbol == "" {
		c.Trading.Symbol = "BTCUSDT"
	}
	if c.Trading.Interval == "" {
		c.Trading.Interval = "1m"
	}
	if c.Alerts.TTL == 0 {
		c.Alerts.TTL = 5 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8081
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if c.Backend.AdminToken == "" {
		return fmt.Errorf("backend.admin_token is required")
	}
	if c.Alerts.TTL < 0 {
		return fmt.Errorf("alerts.ttl cannot be negative")
	}
	return nil
}
