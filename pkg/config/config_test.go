package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/xianplay-api/pkg/errors"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings file",
			content: `
server:
  host: "127.0.0.1"
  port: 8081
relay:
  allowed_domains:
    - "cdn.example.com"
cache:
  ttl_by_path:
    /api/v1/dramas/latest: 30s
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, []string{"cdn.example.com"}, cfg.Relay.AllowedDomains)
				assert.Equal(t, 30*time.Second, cfg.Cache.TTLByPath["/api/v1/dramas/latest"])
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8081
`,
			env: map[string]string{"XIANPLAY_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "missing config file with defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, DefaultAllowedDomains, cfg.Relay.AllowedDomains)
				assert.Equal(t, "https://dramabox.sansekai.my.id/api/dramabox", cfg.Catalog.BaseURL)
				assert.Equal(t, "https://www.dramabox.com/", cfg.Relay.Referer)
				assert.Equal(t, 15*time.Second, cfg.Relay.Timeout)
				assert.Equal(t, int64(10485760), cfg.Relay.MaxBodyBytes)
				assert.Equal(t, RateLimit{RPS: 20, Burst: 40}, cfg.RateLimiting.Endpoints["relay"])
				assert.Equal(t, 2*time.Minute, cfg.Cache.TTLByPath["/api/v1/dramas/search"])
				assert.Equal(t, 15*time.Minute, cfg.Cache.TTLByPath["/api/v1/dramas/vip"])
			},
		},
		{
			name: "invalid port",
			content: `
server:
  port: 70000
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			defer reset()

			path := filepath.Join(t.TempDir(), "settings.yaml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := InitWithFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Host: "localhost", Port: 8080},
			Catalog: CatalogConfig{BaseURL: "https://catalog.example/api"},
			Relay:   RelayConfig{AllowedDomains: []string{"dramabox"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "missing catalog url", mutate: func(c *Config) { c.Catalog.BaseURL = "" }, wantErr: true},
		{name: "empty allow-list", mutate: func(c *Config) { c.Relay.AllowedDomains = nil }, wantErr: true},
		{name: "blank allow-list entry", mutate: func(c *Config) { c.Relay.AllowedDomains = []string{" "} }, wantErr: true},
		{name: "empty database path is allowed", mutate: func(c *Config) { c.Database.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateClampsNegativeBodyCap(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8080},
		Catalog: CatalogConfig{BaseURL: "https://catalog.example/api"},
		Relay:   RelayConfig{AllowedDomains: []string{"dramabox"}, MaxBodyBytes: -5},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(0), cfg.Relay.MaxBodyBytes)
}
