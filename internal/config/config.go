package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Channel struct {
		BaseURL     string `yaml:"base_url"`
		PhoneID     string `yaml:"phone_id"`
		AccessToken string `yaml:"access_token"`
	} `yaml:"channel"`
	Delivery struct {
		// Pointers so an explicit 0 (no wait, no pacing) survives
		// defaulting; nil means "not configured".
		DefaultCountryCode string   `yaml:"default_country_code"`
		ReadyWaitSeconds   *int     `yaml:"ready_wait_seconds"`
		PaceMinutes        *float64 `yaml:"pace_minutes"`
	} `yaml:"delivery"`
	Templates struct {
		Greeting  string `yaml:"greeting"`
		Opening   string `yaml:"opening"`
		Footer    string `yaml:"footer"`
		Signature string `yaml:"signature"`
	} `yaml:"templates"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WHATSAPP_BASE_URL"); v != "" {
		cfg.Channel.BaseURL = v
	}
	if v := os.Getenv("WHATSAPP_PHONE_ID"); v != "" {
		cfg.Channel.PhoneID = v
	}
	if v := os.Getenv("WHATSAPP_ACCESS_TOKEN"); v != "" {
		cfg.Channel.AccessToken = v
	}
	if v := os.Getenv("DEFAULT_COUNTRY_CODE"); v != "" {
		cfg.Delivery.DefaultCountryCode = v
	}
	if v := os.Getenv("PACE_MINUTES"); v != "" {
		if pace, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Delivery.PaceMinutes = &pace
		}
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Channel.BaseURL == "" {
		cfg.Channel.BaseURL = "https://graph.facebook.com/v19.0"
	}
	if cfg.Delivery.DefaultCountryCode == "" {
		cfg.Delivery.DefaultCountryCode = "65"
	}
	if cfg.Delivery.ReadyWaitSeconds == nil {
		ready := 30
		cfg.Delivery.ReadyWaitSeconds = &ready
	}
	if cfg.Delivery.PaceMinutes == nil {
		pace := 2.0
		cfg.Delivery.PaceMinutes = &pace
	}

	return cfg, nil
}

// Validate checks general settings. Channel credentials are checked
// separately because a dry run never touches the channel.
func (c *Config) Validate() error {
	for _, r := range c.Delivery.DefaultCountryCode {
		if r < '0' || r > '9' {
			return fmt.Errorf("delivery.default_country_code must be digits only, got %q", c.Delivery.DefaultCountryCode)
		}
	}
	if c.Delivery.PaceMinutes != nil && *c.Delivery.PaceMinutes < 0 {
		return fmt.Errorf("delivery.pace_minutes must not be negative")
	}
	if c.Delivery.ReadyWaitSeconds != nil && *c.Delivery.ReadyWaitSeconds < 0 {
		return fmt.Errorf("delivery.ready_wait_seconds must not be negative")
	}
	return nil
}

// ValidateChannel checks the credentials a live send requires.
func (c *Config) ValidateChannel() error {
	if c.Channel.PhoneID == "" {
		return fmt.Errorf("channel.phone_id is required")
	}
	if c.Channel.AccessToken == "" {
		return fmt.Errorf("channel.access_token is required")
	}
	return nil
}
