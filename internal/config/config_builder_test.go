package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{API: API{Endpoint: "https://a.klevu.com/x", Timeout: time.Second}},
		&StructuredConfig{API: API{Endpoint: "https://b.klevu.com/y"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://b.klevu.com/y", cfg.API.Endpoint)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestBuild_MergesParams(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{API: API{Params: map[string]string{"store": "1"}}},
		&StructuredConfig{API: API{Params: map[string]string{"lang": "en"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"store": "1", "lang": "en"}, cfg.API.Params)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{API: API{Method: "DELETE"}})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("API_ENDPOINT", "https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink")
	t.Setenv("LOG_LEVEL", "debug")

	b := newConfigBuilder(nil).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink", b.configs[0].API.Endpoint)
	assert.Equal(t, "debug", b.configs[0].Log.Level)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("API_TIMEOUT", "not-a-duration")

	b := newConfigBuilder(nil).withEnv()

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder([]string{"-m", "POST", "-p", "store=1"}).withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "POST", b.configs[0].API.Method)
	assert.Equal(t, map[string]string{"store": "1"}, b.configs[0].API.Params)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-unknown"}).withFlags()

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"api": map[string]any{"endpoint": "https://eu.klevu.com/rest/service", "timeout": "10s"},
	})

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://eu.klevu.com/rest/service", b.configs[1].API.Endpoint)
	assert.Equal(t, 10*time.Second, b.configs[1].API.Timeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "warn"}})
	second := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "error"}})

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "error", b.configs[2].Log.Level)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := newConfigBuilder(nil)
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilderChain_Priority verifies env < flags < JSON.
func TestBuilderChain_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"api": map[string]any{"endpoint": "https://json.klevu.com/api"},
	})
	t.Setenv("API_ENDPOINT", "https://env.klevu.com/api")
	t.Setenv("API_METHOD", "GET")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := newConfigBuilder([]string{"-m", "POST", "-log-level", "debug", "-c", path}).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "https://json.klevu.com/api", cfg.API.Endpoint)
	assert.Equal(t, "POST", cfg.API.Method)
	assert.Equal(t, "debug", cfg.Log.Level)
}
