package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test")
	t.Setenv("UPSTREAM_API_TOKEN", "upstream-token")
	t.Setenv("REPORT_AUTH_TOKEN", "frontend-token")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8086", cfg.HTTPAddress())
	assert.Equal(t, "30s", cfg.UpstreamTimeout().String())
	assert.True(t, cfg.Report.IncludeRankColumn)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REPORT_HTTP_PORT", "9090")
	t.Setenv("UPSTREAM_HTTP_TIMEOUT", "5")
	t.Setenv("REPORT_INCLUDE_RANK", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, "5s", cfg.UpstreamTimeout().String())
	assert.False(t, cfg.Report.IncludeRankColumn)
}

func TestLoadRequiresUpstream(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	t.Setenv("UPSTREAM_API_TOKEN", "upstream-token")
	t.Setenv("REPORT_AUTH_TOKEN", "frontend-token")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresAuthToken(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test")
	t.Setenv("UPSTREAM_API_TOKEN", "upstream-token")
	t.Setenv("REPORT_AUTH_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}
