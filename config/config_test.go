package config_test

import (
	"testing"

	"quizbox/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadUsesEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "from-env")

	cfg := config.Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg := config.Load()
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, config.DefaultJWTSecret, cfg.JWTSecret)
}

func TestValidateRefusesPlaceholderSecretInProduction(t *testing.T) {
	cfg := &config.Config{Env: "production", JWTSecret: config.DefaultJWTSecret}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())

	dev := &config.Config{Env: "development", JWTSecret: config.DefaultJWTSecret}
	assert.NoError(t, dev.Validate())
}
