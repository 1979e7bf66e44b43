package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/xianplay-api/pkg/errors"
)

const (
	defaultConfigPath = "./config/settings.yaml"
	envPrefix         = "XIANPLAY"
)

// DefaultAllowedDomains are the hosts the image relay serves out of the box
var DefaultAllowedDomains = []string{
	"drmbox.xyz",
	"dramabox",
	"sansekai.my.id",
	"cloudfront.net",
}

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system from the default settings file.
// This should be called once at application startup
func Init() error {
	return InitWithFile(defaultConfigPath)
}

// InitWithFile initializes the configuration system reading the given YAML file.
// A missing file is not an error: defaults and environment variables still apply.
func InitWithFile(path string) error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(path)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			logrus.WithField("path", configPath).Debug("config file not found, using defaults")
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if len(config.Relay.AllowedDomains) == 0 {
		config.Relay.AllowedDomains = append([]string(nil), DefaultAllowedDomains...)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value, used by CLI flags
func Set(key string, value any) {
	viper.Set(key, value)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is not a valid port", port))
	}

	if viper.GetString("catalog.base_url") == "" {
		return apperrors.ConfigError("catalog.base_url", "must not be empty")
	}

	if viper.GetString("database.path") == "" {
		logrus.Warn("no database path configured, library endpoints are disabled")
	}

	if viper.GetInt64("relay.max_body_bytes") < 0 {
		viper.Set("relay.max_body_bytes", 0)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("%d is not a valid port", c.Server.Port))
	}

	if c.Catalog.BaseURL == "" {
		return apperrors.ConfigError("catalog.base_url", "must not be empty")
	}

	if len(c.Relay.AllowedDomains) == 0 {
		return apperrors.ConfigError("relay.allowed_domains", "must contain at least one domain")
	}

	for _, domain := range c.Relay.AllowedDomains {
		if strings.TrimSpace(domain) == "" {
			return apperrors.ConfigError("relay.allowed_domains", "contains an empty domain")
		}
	}

	if c.Relay.MaxBodyBytes < 0 {
		c.Relay.MaxBodyBytes = 0
	}

	return nil
}

// reset clears viper and the init guard so tests can load fresh configuration
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/xianplay.db")
	viper.SetDefault("database.verbose", false)

	// Catalog defaults
	viper.SetDefault("catalog.base_url", "https://dramabox.sansekai.my.id/api/dramabox")
	viper.SetDefault("catalog.timeout", 10*time.Second)
	viper.SetDefault("catalog.user_agent", "XianPlayAPI/1.0")

	// Relay defaults
	viper.SetDefault("relay.allowed_domains", DefaultAllowedDomains)
	viper.SetDefault("relay.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	viper.SetDefault("relay.referer", "https://www.dramabox.com/")
	viper.SetDefault("relay.accept", "image/webp,image/apng,image/*,*/*;q=0.8")
	viper.SetDefault("relay.timeout", 15*time.Second)
	viper.SetDefault("relay.max_body_bytes", 10485760)

	// Catalog response cache
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.ttl_by_path", map[string]any{
		"/api/v1/dramas/search": 2 * time.Minute,
		"/api/v1/dramas/vip":    15 * time.Minute,
	})

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]any{
		"relay":   map[string]any{"rps": 20, "burst": 40},
		"catalog": map[string]any{"rps": 10, "burst": 20},
		"library": map[string]any{"rps": 5, "burst": 10},
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.enable_request_id", true)
	viper.SetDefault("security.max_request_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
