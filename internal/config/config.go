// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config is the full application configuration, stored as TOML at
// ~/.portfolio-terminal/config.toml.
type Config struct {
	Database DatabaseConfig `toml:"database" json:"database"`
	Server   ServerConfig   `toml:"server" json:"server"`
	Contact  ContactConfig  `toml:"contact" json:"contact"`
	Resume   ResumeConfig   `toml:"resume" json:"resume"`
	UI       UIConfig       `toml:"ui" json:"ui"`
}

// DatabaseConfig locates the portfolio SQLite database.
type DatabaseConfig struct {
	Path string `toml:"path" json:"path"`
}

// ServerConfig configures the HTTP embedding.
type ServerConfig struct {
	Host string `toml:"host" json:"host"`
	Port int    `toml:"port" json:"port"`

	// AllowedOrigins is the CORS allowlist. Empty disables CORS headers.
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins"`

	// RateLimitRequests per RateLimitWindowSecs per client IP.
	RateLimitRequests   int `toml:"rate_limit_requests" json:"rate_limit_requests"`
	RateLimitWindowSecs int `toml:"rate_limit_window_secs" json:"rate_limit_window_secs"`

	// TrustedProxies lists proxy IPs whose X-Forwarded-For is believed.
	TrustedProxies []string `toml:"trusted_proxies" json:"trusted_proxies"`
}

// ContactConfig configures contact-form delivery.
type ContactConfig struct {
	WebhookURL string `toml:"webhook_url" json:"webhook_url"`
}

// ResumeConfig configures the resume endpoint.
type ResumeConfig struct {
	// PDFPath points at a pre-rendered resume PDF. When empty the resume
	// endpoint serves generated Markdown instead.
	PDFPath string `toml:"pdf_path" json:"pdf_path"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme string `toml:"theme" json:"theme"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: defaultDatabasePath()},
		Server: ServerConfig{
			Host:                "127.0.0.1",
			Port:                8080,
			RateLimitRequests:   30,
			RateLimitWindowSecs: 60,
		},
		UI: UIConfig{Theme: "default"},
	}
}

// Dir returns the configuration directory (~/.portfolio-terminal).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".portfolio-terminal"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultDatabasePath() string {
	dir, err := Dir()
	if err != nil {
		return "portfolio.db"
	}
	return filepath.Join(dir, "portfolio.db")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file if it exists, applies environment overrides,
// and validates the result. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration as TOML, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ApplyEnvOverrides lets environment variables win over file values.
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("PORTFOLIO_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if host := os.Getenv("PORTFOLIO_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("PORTFOLIO_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			c.Server.Port = n
		}
	}
	if url := os.Getenv("PORTFOLIO_CONTACT_WEBHOOK"); url != "" {
		c.Contact.WebhookURL = url
	}
	if path := os.Getenv("PORTFOLIO_RESUME_PDF"); path != "" {
		c.Resume.PDFPath = path
	}
	if theme := os.Getenv("PORTFOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// Validate clamps out-of-range values back to usable defaults instead of
// refusing to start.
func (c *Config) Validate() {
	if c.Database.Path == "" {
		c.Database.Path = defaultDatabasePath()
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitRequests < 1 {
		c.Server.RateLimitRequests = 30
	}
	if c.Server.RateLimitWindowSecs < 1 {
		c.Server.RateLimitWindowSecs = 60
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "default"
	}
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
