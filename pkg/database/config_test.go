package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearDatabaseEnv(t)
		t.Setenv("DB_PASSWORD", "secret")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "specular", cfg.User)
		assert.Equal(t, "specular", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, 10, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("custom values", func(t *testing.T) {
		clearDatabaseEnv(t)
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "production")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_MAX_OPEN_CONNS", "50")
		t.Setenv("DB_MAX_IDLE_CONNS", "20")
		t.Setenv("DB_CONN_MAX_LIFETIME", "1h")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
		assert.Contains(t, cfg.DSN(), "host=db.example.com")
		assert.Contains(t, cfg.DSN(), "dbname=production")
	})

	invalid := []struct {
		name        string
		key         string
		value       string
		errContains string
	}{
		{"invalid port", "DB_PORT", "nope", "invalid DB_PORT"},
		{"invalid max open conns", "DB_MAX_OPEN_CONNS", "not_a_number", "invalid DB_MAX_OPEN_CONNS"},
		{"invalid max idle conns", "DB_MAX_IDLE_CONNS", "abc123", "invalid DB_MAX_IDLE_CONNS"},
		{"invalid lifetime", "DB_CONN_MAX_LIFETIME", "forever", "invalid DB_CONN_MAX_LIFETIME"},
		{"invalid idle time", "DB_CONN_MAX_IDLE_TIME", "later", "invalid DB_CONN_MAX_IDLE_TIME"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			clearDatabaseEnv(t)
			t.Setenv("DB_PASSWORD", "secret")
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}

	t.Run("missing password", func(t *testing.T) {
		clearDatabaseEnv(t)

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD is required")
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Database: "d",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing password", func(c *Config) { c.Password = "" }},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }},
		{"idle exceeds open", func(c *Config) { c.MaxIdleConns = c.MaxOpenConns + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
