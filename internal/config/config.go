package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Port string `yaml:"port" env:"REPORT_HTTP_PORT"`
}

// UpstreamConfig points at the esports API.
type UpstreamConfig struct {
	BaseURL        string `yaml:"baseUrl" env:"UPSTREAM_BASE_URL"`
	Token          string `yaml:"token" env:"UPSTREAM_API_TOKEN"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" env:"UPSTREAM_HTTP_TIMEOUT"`
}

// AuthConfig carries the static bearer token the frontend presents.
type AuthConfig struct {
	Token string `yaml:"token" env:"REPORT_AUTH_TOKEN"`
}

// ReportConfig tunes document output.
type ReportConfig struct {
	IncludeRankColumn bool `yaml:"includeRankColumn" env:"REPORT_INCLUDE_RANK"`
}

// Config defines report service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Auth     AuthConfig     `yaml:"auth"`
	Report   ReportConfig   `yaml:"report"`
}

// Load reads configuration via the yaml/env loader and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP:     HTTPConfig{Port: "8086"},
		Upstream: UpstreamConfig{TimeoutSeconds: 30},
		Report:   ReportConfig{IncludeRankColumn: true},
	}

	if err := load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		return nil, errors.New("config: upstream base url required")
	}
	if strings.TrimSpace(cfg.Upstream.Token) == "" {
		return nil, errors.New("config: upstream api token required")
	}
	if strings.TrimSpace(cfg.Auth.Token) == "" {
		return nil, errors.New("config: auth token required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8086"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// UpstreamTimeout returns the per-fetch deadline.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.Upstream.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}
