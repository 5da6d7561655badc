// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/setu/internal/platform/config"
)

/*
TestLoad_Defaults verifies the documented defaults with an empty environment.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.JSONLogs())
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.Empty(t, cfg.Proxy)
	assert.False(t, cfg.ExcludeAI)
}

/*
TestLoad_Overrides maps every SETU_* variable.
*/
func TestLoad_Overrides(t *testing.T) {
	preset := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(preset, []byte("num: 2\n"), 0o600))

	cfg, err := config.LoadFrom(map[string]string{
		"SETU_ENVIRONMENT": "production",
		"SETU_DEBUG":       "true",
		"SETU_LOG_FORMAT":  "json",
		"SETU_COLOR":       "never",
		"SETU_PRESET":      preset,
		"SETU_PROXY":       "i.pixiv.re",
		"SETU_EXCLUDE_AI":  "true",
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.JSONLogs())
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, preset, cfg.Preset)
	assert.Equal(t, "i.pixiv.re", cfg.Proxy)
	assert.True(t, cfg.ExcludeAI)
}

/*
TestConfig_Logging covers the log format and source decisions per environment.
*/
func TestConfig_Logging(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		jsonLogs bool
		debugSrc bool
	}{
		{"development_text", map[string]string{}, false, true},
		{"development_json", map[string]string{"SETU_LOG_FORMAT": "json"}, true, true},
		{"production_forces_json", map[string]string{"SETU_ENVIRONMENT": "production", "SETU_LOG_FORMAT": "text"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFrom(tt.vars)
			require.NoError(t, err)

			assert.Equal(t, tt.jsonLogs, cfg.JSONLogs())
			assert.Equal(t, tt.debugSrc, cfg.LogSource(slog.LevelDebug))
			assert.False(t, cfg.LogSource(slog.LevelInfo))
		})
	}
}

/*
TestLoad_Invalid rejects values outside their documented sets.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad_color", map[string]string{"SETU_COLOR": "rainbow"}},
		{"bad_log_format", map[string]string{"SETU_LOG_FORMAT": "xml"}},
		{"bad_environment", map[string]string{"SETU_ENVIRONMENT": "staging"}},
		{"bad_bool", map[string]string{"SETU_DEBUG": "maybe"}},
		{"bad_proxy", map[string]string{"SETU_PROXY": "not a host"}},
		{"missing_preset", map[string]string{"SETU_PRESET": "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.vars)
			assert.Error(t, err)
		})
	}
}
