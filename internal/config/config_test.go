package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactDashboardAPI/internal/validation"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"IMPACT_API_URL":   "https://impact.example.com",
		"CLERK_SECRET_KEY": "sk_test_123",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.Addr())
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, BackendMemory, cfg.StateBackend)
	assert.Equal(t, AuthClerk, cfg.AuthMode)
	assert.Equal(t, 10*time.Second, cfg.ImpactAPITimeout)
	assert.Equal(t, 100.0, cfg.MonthlyTargetFallback)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.False(t, cfg.PushEnabled())
}

func TestFromEnvRequiresImpactURL(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{"CLERK_SECRET_KEY": "sk"}))
	require.Error(t, err)

	var ve *validation.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "IMPACT_API_URL", ve.Fields[0].Field)
}

func TestFromEnvBackendRequirements(t *testing.T) {
	base := map[string]string{
		"IMPACT_API_URL":   "https://impact.example.com",
		"CLERK_SECRET_KEY": "sk",
	}

	redis := copyEnv(base, "STATE_BACKEND", "redis")
	_, err := FromEnv(envOf(redis))
	assert.ErrorContains(t, err, "REDIS_ADDR")

	redis["REDIS_ADDR"] = "localhost:6379"
	cfg, err := FromEnv(envOf(redis))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)

	pg := copyEnv(base, "STATE_BACKEND", "postgres")
	_, err = FromEnv(envOf(pg))
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = FromEnv(envOf(copyEnv(base, "STATE_BACKEND", "etcd")))
	assert.ErrorContains(t, err, "STATE_BACKEND")
}

func TestFromEnvHS256NeedsSecret(t *testing.T) {
	env := map[string]string{
		"IMPACT_API_URL": "https://impact.example.com",
		"AUTH_MODE":      "hs256",
	}
	_, err := FromEnv(envOf(env))
	assert.ErrorContains(t, err, "JWT_SECRET")

	env["JWT_SECRET"] = "short"
	_, err = FromEnv(envOf(env))
	assert.ErrorContains(t, err, "JWT_SECRET")

	env["JWT_SECRET"] = "a-long-enough-test-secret"
	_, err = FromEnv(envOf(env))
	assert.NoError(t, err)
}

func TestFromEnvBadNumbers(t *testing.T) {
	env := map[string]string{
		"IMPACT_API_URL":     "https://impact.example.com",
		"CLERK_SECRET_KEY":   "sk",
		"IMPACT_API_TIMEOUT": "soon",
	}
	_, err := FromEnv(envOf(env))
	assert.ErrorContains(t, err, "IMPACT_API_TIMEOUT")
}

func copyEnv(m map[string]string, k, v string) map[string]string {
	out := map[string]string{k: v}
	for key, val := range m {
		out[key] = val
	}
	return out
}
