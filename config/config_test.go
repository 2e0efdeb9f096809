package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongo", cfg.StorageBackend)
	assert.Equal(t, "lsweb", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.TokenExpiryHrs)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "admin@lsweb.com", cfg.AdminEmail)
	assert.Equal(t, "admin123", cfg.AdminPassword)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "supabase")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("TOKEN_EXPIRY_HOURS", "48")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_TO", "ventas@lsweb.com")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "supabase", cfg.StorageBackend)
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "service-key", cfg.SupabaseKey)
	assert.Equal(t, 48, cfg.TokenExpiryHrs)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "ventas@lsweb.com", cfg.EmailTo)
}

func TestGetEnvAsInt_InvalidValue(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_HOURS", "not-a-number")

	assert.Equal(t, 24, getEnvAsInt("TOKEN_EXPIRY_HOURS", 24))
}
