package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {
			"environment": "production",
			"token_sign_key": "json-secret",
			"token_issuer": "auth-gate",
			"token_duration": "168h",
			"verify_otp_ttl": "24h",
			"reset_otp_ttl": "15m"
		},
		"storage": {
			"db": {"driver": "pgx", "dsn": "postgres://localhost/auth"}
		},
		"server": {
			"http_address": "localhost:8081",
			"request_timeout": "45s",
			"frontend_origin": "https://app.example.com"
		},
		"mail": {
			"smtp_host": "smtp.example.com",
			"smtp_port": 587,
			"from": "noreply@example.com",
			"sender_name": "Auth Gate"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Minute, cfg.App.ResetOtpTTL)
	assert.Equal(t, "postgres://localhost/auth", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "Auth Gate", cfg.Mail.SenderName)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also arrive as raw nanosecond numbers
	path := writeTempJSONConfig(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{"app": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
