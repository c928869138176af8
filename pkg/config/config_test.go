package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/diabetes-risk/pkg/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:     "test-app",
			Mode:     "development",
			LogLevel: "info",
		},
		API: config.APIConfig{
			Port:         8080,
			MaxBodyBytes: 1024,
		},
		Artifacts: config.ArtifactsConfig{
			ScalerPath: "scaler.json",
			ModelPath:  "lr.json",
		},
		WebSocket: config.WebSocketConfig{
			Enabled:        true,
			MaxMessageSize: 1024,
			PingInterval:   30 * time.Second,
			PongTimeout:    60 * time.Second,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modifyFunc  func(*config.Config)
		expectErr   bool
		errContains string
	}{
		{
			name:       "valid config",
			modifyFunc: func(c *config.Config) {},
			expectErr:  false,
		},
		{
			name:        "invalid mode",
			modifyFunc:  func(c *config.Config) { c.App.Mode = "staging" },
			expectErr:   true,
			errContains: "app.mode must be one of",
		},
		{
			name:        "invalid port",
			modifyFunc:  func(c *config.Config) { c.API.Port = 70000 },
			expectErr:   true,
			errContains: "api.port must be between 1 and 65535",
		},
		{
			name:        "missing scaler path",
			modifyFunc:  func(c *config.Config) { c.Artifacts.ScalerPath = "" },
			expectErr:   true,
			errContains: "artifacts.scaler_path is required",
		},
		{
			name:        "same file for both artifacts",
			modifyFunc:  func(c *config.Config) { c.Artifacts.ModelPath = c.Artifacts.ScalerPath },
			expectErr:   true,
			errContains: "must differ",
		},
		{
			name:        "negative cache size",
			modifyFunc:  func(c *config.Config) { c.Features.CacheSize = -1 },
			expectErr:   true,
			errContains: "features.cache_size must not be negative",
		},
		{
			name: "ping interval not below pong timeout",
			modifyFunc: func(c *config.Config) {
				c.WebSocket.PingInterval = 90 * time.Second
			},
			expectErr:   true,
			errContains: "ping_interval must be less than pong_timeout",
		},
		{
			name: "websocket settings ignored when disabled",
			modifyFunc: func(c *config.Config) {
				c.WebSocket = config.WebSocketConfig{Enabled: false}
			},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modifyFunc(cfg)

			err := cfg.Validate()

			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "diabetes-risk", cfg.App.Name)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 15*time.Second, cfg.API.ReadTimeout)
	assert.Equal(t, "artifacts/scaler.json", cfg.Artifacts.ScalerPath)
	assert.Equal(t, "artifacts/lr.json", cfg.Artifacts.ModelPath)
	assert.True(t, cfg.Features.IncludeConfidence)
	assert.True(t, cfg.Features.LandingPage)
	assert.Equal(t, 1024, cfg.Features.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  mode: production
api:
  port: 9000
artifacts:
  base_dir: /opt/models
  model_path: classifier.json
features:
  include_confidence: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DIABETES_FEATURES_LANDING_PAGE", "false")
	t.Setenv("DIABETES_API_PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Mode)
	assert.Equal(t, 9100, cfg.API.Port)
	assert.Equal(t, "/opt/models", cfg.Artifacts.BaseDir)
	assert.Equal(t, "classifier.json", cfg.Artifacts.ModelPath)
	assert.Equal(t, "artifacts/scaler.json", cfg.Artifacts.ScalerPath)
	assert.False(t, cfg.Features.IncludeConfidence)
	assert.False(t, cfg.Features.LandingPage)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
