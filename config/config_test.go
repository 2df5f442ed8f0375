package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "saga",
			"log": map[string]any{
				"level": "info",
			},
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
		"cors": map[string]any{
			"allowOrigins": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "CORS_ALLOWORIGINS", want: "cors.allowOrigins"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "saga.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadWithEnv_FileAndOverrides(t *testing.T) {
	dir := writeConfig(t, `
env:
  serviceName: saga
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 2s
cors:
  allowOrigins: ["http://a"]
swagger:
  enabled: false
`)
	t.Setenv("SAGA_HTTP_PORT", "9999")
	t.Setenv("SAGA_ENV_LOG_LEVEL", "debug")
	t.Setenv("SAGA_SWAGGER_ENABLED", "true")

	cfg, err := LoadWithEnv[Config]("saga", dir)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.True(t, cfg.Swagger.Enabled)
	assert.Equal(t, []string{"http://a"}, cfg.CORS.AllowOrigins)
}

func TestLoadWithEnv_IgnoresUnprefixedVariables(t *testing.T) {
	dir := writeConfig(t, `
env:
  env: local
  serviceName: saga
http:
  port: 8080
`)
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithEnv[Config]("saga", dir)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env.Env)
	assert.Equal(t, "saga", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("nao-existe", t.TempDir())
	assert.ErrorContains(t, err, "config file nao-existe.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	assert.Equal(t, 9091, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ShutdownTimeout)
	assert.Equal(t, "saga", cfg.Env.ServiceName)
}

func TestNew_LoadsRepositoryConfig(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "saga", cfg.Env.ServiceName)
	assert.NotZero(t, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
}
