package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "240h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "http://localhost:8080/uploads", cfg.Storage.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Maintenance.SweepInterval)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MAINTENANCE_SWEEP_INTERVAL", "6h")
	t.Setenv("SEED_ADMIN_EMAIL", "admin@example.com")
	t.Setenv("SEED_ADMIN_PASSWORD", "admin123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 6*time.Hour, cfg.Maintenance.SweepInterval)
	assert.Equal(t, "admin@example.com", cfg.Seed.AdminEmail)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestValidate_SeedPairing(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "x"},
		JWT:      JWTConfig{Secret: "s", AccessExpiration: "1h"},
		Seed:     SeedConfig{AdminEmail: "admin@example.com"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Seed.AdminPassword = "admin123"
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "pw", Name: "hr", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:pw@db:5433/hr?sslmode=disable", cfg.DatabaseURL())
}
