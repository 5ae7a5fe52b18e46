package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"base_url":"https://api.example.com/api/v1","timeout_seconds":10,"verbose":true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"base_url": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"valid base url", Config{BaseURL: "http://localhost:8000/api/v1"}, false},
		{"invalid base url", Config{BaseURL: "not a url"}, true},
		{"url without host", Config{BaseURL: "/api/v1"}, true},
		{"negative timeout", Config{TimeoutSeconds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TimeoutSeconds: 5}
	merged := cfg.MergeWithDefaults(Config{BaseURL: "https://cfg.example.com", TimeoutSeconds: 30})

	assert.Equal(t, "https://cfg.example.com", merged.BaseURL)
	assert.Equal(t, 5, merged.TimeoutSeconds)
}

func TestMergeWithDefaults_BuiltInBaseURL(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultBaseURL, merged.BaseURL)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_OPTIMIZER_BASE_URL", "https://env.example.com/api/v1")
	t.Setenv("RESUME_OPTIMIZER_TIMEOUT_SECONDS", "15")

	cfg := FromEnv()
	assert.Equal(t, "https://env.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 12}
	assert.Equal(t, 12*time.Second, cfg.Timeout())
	assert.Equal(t, time.Duration(0), (&Config{}).Timeout())
}
