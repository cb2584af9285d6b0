package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("HUGGINGFACE_KEY", "hf-test")
	t.Setenv("FARMER_SECRET_KEY", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/farmer_test")
}

func TestValidatePasses(t *testing.T) {
	setRequiredEnv(t)

	cfg := New()
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsAllMissingKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("HUGGINGFACE_KEY", "")
	t.Setenv("FARMER_SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg := New()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "HUGGINGFACE_KEY")
	assert.Contains(t, err.Error(), "FARMER_SECRET_KEY")
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidateReportsSingleMissingKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HUGGINGFACE_KEY", "")

	cfg := New()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HUGGINGFACE_KEY")
	assert.NotContains(t, err.Error(), "OPENAI_API_KEY")
}

func TestDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")

	cfg := New()
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.WeatherTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.MarketTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Contains(t, cfg.Intents["weather"], "rain")
	assert.Contains(t, cfg.Intents["price"], "mandi")
}

func TestEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_TIMEOUT", "45s")
	t.Setenv("WEATHER_CACHE_TTL", "5m")
	t.Setenv("INTENT_KEYWORDS_WEATHER", "mausam, baarish")

	cfg := New()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.WeatherTTL)
	assert.Equal(t, []string{"mausam", "baarish"}, cfg.Intents["weather"])
}
