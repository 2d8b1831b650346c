// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/librarydesk/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults used when nothing is configured.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.ServerPort)
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, config.SessionMemory, cfg.SessionBackend)
	assert.Equal(t, 5, cfg.PageSize)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_EnvFile verifies that a dotenv file is read and the process environment wins.
*/
func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_BASE_URL=http://library.internal:9000\nSERVER_PORT=7000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SERVER_PORT", "7100")
	t.Cleanup(func() { _ = os.Unsetenv("API_BASE_URL") })

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://library.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, "7100", cfg.ServerPort)
}

/*
TestLoad_MissingEnvFile verifies that an absent dotenv file is tolerated.
*/
func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

/*
TestConfig_Validate covers the cross-field rules.
*/
func TestConfig_Validate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			APIBaseURL:     "http://localhost:8080",
			SessionBackend: config.SessionMemory,
			PageSize:       5,
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"valid", func(*config.Config) {}, true},
		{"relative_url", func(c *config.Config) { c.APIBaseURL = "/api" }, false},
		{"redis_without_url", func(c *config.Config) { c.SessionBackend = config.SessionRedis }, false},
		{"redis_with_url", func(c *config.Config) {
			c.SessionBackend = config.SessionRedis
			c.RedisURL = "redis://localhost:6379/0"
		}, true},
		{"unknown_backend", func(c *config.Config) { c.SessionBackend = "disk" }, false},
		{"zero_page_size", func(c *config.Config) { c.PageSize = 0 }, false},
		{"largest_page_size", func(c *config.Config) { c.PageSize = 100 }, true},
		{"page_size_above_limit", func(c *config.Config) { c.PageSize = 101 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestLoad_RejectsOversizedPageSize verifies that a page size the tables cannot honor fails at startup.
*/
func TestLoad_RejectsOversizedPageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "500")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAGE_SIZE")
}
