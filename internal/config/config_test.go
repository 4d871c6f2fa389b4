package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voterkyc/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(2048), cfg.KYC.MaxDocumentKB)
	assert.Equal(t, int64(2048*1024), cfg.KYC.MaxDocumentBytes())
	assert.Equal(t, "en-IN", cfg.KYC.DateLocale)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VOTERKYC_KYC_MAX_DOCUMENT_KB", "64")
	t.Setenv("VOTERKYC_KYC_DATE_LOCALE", "hi-IN")
	t.Setenv("VOTERKYC_CORS_ALLOWED_ORIGINS", "https://vote.example.in, ,https://admin.example.in")
	t.Setenv("VOTERKYC_ADMIN_USERNAME", "returning-officer")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(64), cfg.KYC.MaxDocumentKB)
	assert.Equal(t, "hi-IN", cfg.KYC.DateLocale)
	assert.Equal(t, []string{"https://vote.example.in", "https://admin.example.in"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "returning-officer", cfg.Admin.Username)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveDocumentLimit(t *testing.T) {
	t.Setenv("VOTERKYC_KYC_MAX_DOCUMENT_KB", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "votes", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/votes?sslmode=disable", db.DSN())
}
