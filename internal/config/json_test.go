package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"api": {
			"endpoint": "https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink",
			"method": "POST",
			"params": {"store": "1"},
			"rest_api_key": "ABCDE",
			"timeout": "30s",
			"insecure_skip_verify": true,
			"user_agent": "ua"
		},
		"log": { "level": "debug" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://tiers.klevu.com/uti/getFeaturesAndUpgradeLink", cfg.API.Endpoint)
	assert.Equal(t, "POST", cfg.API.Method)
	assert.Equal(t, map[string]string{"store": "1"}, cfg.API.Params)
	assert.Equal(t, "ABCDE", cfg.API.RestAPIKey)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, "ua", cfg.API.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
