// Package config loads service configuration from an optional YAML file with
// environment variable overrides. A .env file is honored before overrides so
// local development matches deployed behavior.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName    = "content-analysis"
	defaultServiceVersion = "1.0.0"
	defaultHost           = "127.0.0.1"
	defaultPort           = 3000
	defaultGlobalPerMin   = 60
	defaultAnalyzePerMin  = 30
	defaultLogLevel       = "info"
)

// Config holds all configuration for the analysis service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Host    string `yaml:"host"` // env HOST
	Port    int    `yaml:"port"` // env PORT
	Debug   bool   `yaml:"debug"`
}

// AuthConfig holds the API key checked on every analyze request. An empty
// key means fail-closed: the server rejects all requests rather than running
// open.
type AuthConfig struct {
	APIKey string `yaml:"api_key"` // env API_KEY
}

// RateLimitConfig holds the per-client request quotas.
type RateLimitConfig struct {
	GlobalPerMinute  int `yaml:"global_per_minute"`  // env RATE_LIMIT_GLOBAL
	AnalyzePerMinute int `yaml:"analyze_per_minute"` // env RATE_LIMIT_ANALYZE
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"` // env LOG_LEVEL
	Development bool   `yaml:"development"`
}

// Load reads the YAML file at path (if it exists), applies environment
// overrides, and fills defaults. Pass an empty path to configure from the
// environment alone.
func Load(path string) (*Config, error) {
	// Missing .env is fine; a present-but-broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Service.Host = v
	}
	if v, ok := envInt("PORT"); ok {
		cfg.Service.Port = v
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		cfg.Service.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v, ok := envInt("RATE_LIMIT_GLOBAL"); ok {
		cfg.RateLimit.GlobalPerMinute = v
	}
	if v, ok := envInt("RATE_LIMIT_ANALYZE"); ok {
		cfg.RateLimit.AnalyzePerMinute = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Host == "" {
		cfg.Service.Host = defaultHost
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultPort
	}
	if cfg.RateLimit.GlobalPerMinute == 0 {
		cfg.RateLimit.GlobalPerMinute = defaultGlobalPerMin
	}
	if cfg.RateLimit.AnalyzePerMinute == 0 {
		cfg.RateLimit.AnalyzePerMinute = defaultAnalyzePerMin
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
