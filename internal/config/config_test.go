package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RESET_TOKEN_TTL", "")
	t.Setenv("PHOTO_STORAGE", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
	assert.Equal(t, "disk", cfg.PhotoStorage)
	assert.Equal(t, int64(5<<20), cfg.MaxPhotoBytes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RESET_TOKEN_TTL", "10m")
	t.Setenv("SESSION_STORE", "REDIS")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 10*time.Minute, cfg.ResetTokenTTL)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.CheckEmailDomain)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	assert.True(t, c.IsDev())

	c.Env = "production"
	assert.False(t, c.IsDev())
}
