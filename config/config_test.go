package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PHOTO_UPLOAD_POLICY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("OVERDUE_CHECK_INTERVAL", "")
	t.Setenv("RESOLVE_REQUIRES_PHOTO", "")

	cfg := Load()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, UploadPolicySkip, cfg.Photos.UploadPolicy)
	assert.Equal(t, "complaint-photos", cfg.Photos.Folder)
	assert.Equal(t, int64(5*1024*1024), cfg.Photos.MaxBytes)
	assert.True(t, cfg.Photos.ResolveRequiresPhoto)
	assert.Equal(t, time.Minute, cfg.Jobs.OverdueCheckInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "complaints:events", cfg.Redis.Channel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PHOTO_UPLOAD_POLICY", "FAIL")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OVERDUE_CHECK_INTERVAL", "30s")
	t.Setenv("RESOLVE_REQUIRES_PHOTO", "false")
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, UploadPolicyFail, cfg.Photos.UploadPolicy)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Jobs.OverdueCheckInterval)
	assert.False(t, cfg.Photos.ResolveRequiresPhoto)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
}

func TestLoad_UnknownPolicyFallsBackToSkip(t *testing.T) {
	t.Setenv("PHOTO_UPLOAD_POLICY", "retry")

	cfg := Load()

	assert.Equal(t, UploadPolicySkip, cfg.Photos.UploadPolicy)
}
