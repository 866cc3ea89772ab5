package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"ENV", "CI", "SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_URL", "REDIS_DB",
		"JWT_SECRET",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "recipehub")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("DB_SSL_MODE", "require")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "recipehub", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigDevDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "recipehub", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
}

func TestLoadConfigCIRequiresSecrets(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CI", "true")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "recipes")

	// Missing TEST_DB_PASSWORD and TEST_JWT_SECRET
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("TEST_DB_PASSWORD", "pw")
	t.Setenv("TEST_JWT_SECRET", "secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "pw", cfg.DBPassword)
	assert.Equal(t, "secret", cfg.JWTSecret)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "pw",
		DBName:     "recipes",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=recipes sslmode=disable",
		cfg.DSN(),
	)
}

func TestGetEnvironment(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
