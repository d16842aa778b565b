package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "2022", DBName: "ideaboard", Env: "development"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{DBName: "ideaboard"}
	require.Error(t, cfg.Validate())
	assert.Contains(t, cfg.Validate().Error(), "PORT")

	cfg = &Config{Port: "2022"}
	require.Error(t, cfg.Validate())
	assert.Contains(t, cfg.Validate().Error(), "DB_NAME")
}

func TestValidateProductionRejectsWeakPassword(t *testing.T) {
	cfg := &Config{
		Port:       "2022",
		DBName:     "ideaboard",
		Env:        "production",
		DBPassword: "password",
	}
	require.Error(t, cfg.Validate())

	cfg.DBPassword = ""
	require.Error(t, cfg.Validate())

	cfg.DBPassword = "s3cure-enough-for-a-test"
	assert.NoError(t, cfg.Validate())
}

func TestEnvHelpers(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())

	assert.True(t, (&Config{Env: "test"}).IsTest())
	assert.False(t, (&Config{Env: "production"}).IsTest())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "2022", cfg.Port)
	assert.Equal(t, "ideaboard", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.IsTest())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "override")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "override", cfg.DBName)
}
