package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns the minimal configuration that passes validation.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:  "development",
			TokenSignKey: "secret",
		},
		Storage: Storage{
			DB: DB{Driver: "pgx", DSN: "postgres://localhost/auth"},
		},
		Mail: Mail{Host: "smtp.example.com", From: "noreply@example.com"},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{TokenIssuer: "issuer-from-second-source"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer-from-second-source", cfg.App.TokenIssuer)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{TokenSignKey: "overridden-too-late"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey,
		"earlier sources take precedence over later ones")
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	base := validBase()
	base.App.TokenDuration = time.Hour

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// explicitly set values survive
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)

	// gaps are filled from the defaults
	assert.Equal(t, "go-auth-gate", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.VerifyOtpTTL)
	assert.Equal(t, 15*time.Minute, cfg.App.ResetOtpTTL)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown environment",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Environment = "staging" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing smtp host",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.Host = "" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name:    "missing from address",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.From = "" },
			wantErr: ErrInvalidMailConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, App{Environment: "production"}.IsProduction())
	assert.False(t, App{Environment: "development"}.IsProduction())
	assert.False(t, App{}.IsProduction())
}
