package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Catalog      CatalogConfig   `mapstructure:"catalog"`
	Relay        RelayConfig     `mapstructure:"relay"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings. An empty Path disables the library.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// CatalogConfig contains settings for the remote drama catalog API
type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// RelayConfig contains image relay settings
type RelayConfig struct {
	AllowedDomains []string      `mapstructure:"allowed_domains"`
	UserAgent      string        `mapstructure:"user_agent"`
	Referer        string        `mapstructure:"referer"`
	Accept         string        `mapstructure:"accept"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// CacheConfig controls the in-memory cache of catalog responses
type CacheConfig struct {
	Enabled   bool                     `mapstructure:"enabled"`
	TTL       time.Duration            `mapstructure:"ttl"`
	MaxSizeMB int64                    `mapstructure:"max_size_mb"`
	TTLByPath map[string]time.Duration `mapstructure:"ttl_by_path"` // longest matching path prefix wins
}

// RateLimitConfig contains per-client rate limits, keyed by route group
type RateLimitConfig struct {
	Enabled   bool                 `mapstructure:"enabled"`
	Endpoints map[string]RateLimit `mapstructure:"endpoints"`
}

// RateLimit is a token bucket: RPS tokens per second with room for Burst
type RateLimit struct {
	RPS   int `mapstructure:"rps"`
	Burst int `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool  `mapstructure:"enable_cors"`
	EnableRequestID bool  `mapstructure:"enable_request_id"`
	MaxRequestBytes int64 `mapstructure:"max_request_bytes"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
