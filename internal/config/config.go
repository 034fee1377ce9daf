// Package config loads portfolio settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	LookupClient = "client"
	LookupIpify  = "ipify"
)

type Config struct {
	Port         string         `yaml:"port"`
	GinMode      string         `yaml:"gin_mode"`
	DatabasePath string         `yaml:"database_path"`
	LogLevel     string         `yaml:"log_level"`
	Admin        AdminConfig    `yaml:"admin"`
	Lookup       LookupConfig   `yaml:"lookup"`
	Terminal     TerminalConfig `yaml:"terminal"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type LookupConfig struct {
	// Mode is LookupClient (use the request's client address) or LookupIpify.
	Mode    string        `yaml:"mode"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type TerminalConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
	EnterDelay  time.Duration `yaml:"enter_delay"`
	JitterMax   time.Duration `yaml:"jitter_max"`
}

func Default() Config {
	return Config{
		Port:         "8080",
		GinMode:      "release",
		DatabasePath: "portfolio.db",
		LogLevel:     "info",
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Lookup: LookupConfig{
			Mode:    LookupClient,
			URL:     "https://api.ipify.org?format=json",
			Timeout: 5 * time.Second,
		},
		Terminal: TerminalConfig{
			SettleDelay: 150 * time.Millisecond,
			EnterDelay:  300 * time.Millisecond,
			JitterMax:   20 * time.Millisecond,
		},
	}
}

// Load reads path (if non-empty) over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Admin.Username, "ADMIN_USERNAME")
	setString(&c.Admin.Password, "ADMIN_PASSWORD")
	setString(&c.Lookup.Mode, "LOOKUP_MODE")
	setString(&c.Lookup.URL, "LOOKUP_URL")

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.Lookup.Timeout, "LOOKUP_TIMEOUT"},
		{&c.Terminal.SettleDelay, "TERMINAL_SETTLE"},
		{&c.Terminal.EnterDelay, "TERMINAL_ENTER"},
		{&c.Terminal.JitterMax, "TERMINAL_JITTER"},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Lookup.Mode {
	case LookupClient, LookupIpify:
	default:
		return fmt.Errorf("unknown lookup mode %q", c.Lookup.Mode)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode %q", c.GinMode)
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.Terminal.SettleDelay < 0 || c.Terminal.EnterDelay < 0 || c.Terminal.JitterMax < 0 {
		return fmt.Errorf("terminal delays must not be negative")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
