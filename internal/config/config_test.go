package config

import (
	"testing"

	"hrdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATASET_PATH", "data/hr.csv")
	t.Setenv("PORT", "")
	t.Setenv("AGE_DEFAULT_MIN", "")
	t.Setenv("AGE_DEFAULT_MAX", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PPROF_ENABLED", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/hr.csv", cfg.Data.FilePath)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 18, cfg.Filters.DefaultAgeMin)
	assert.Equal(t, 60, cfg.Filters.DefaultAgeMax)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Empty(t, cfg.Server.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATASET_PATH", "hr.xlsx")
	t.Setenv("DATASET_SHEET", "Employees")
	t.Setenv("PORT", "9090")
	t.Setenv("AGE_DEFAULT_MIN", "25")
	t.Setenv("AGE_DEFAULT_MAX", "40")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hr.example.com, http://localhost:3000,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Employees", cfg.Data.Sheet)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Filters.DefaultAgeMin)
	assert.Equal(t, 40, cfg.Filters.DefaultAgeMax)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, []string{"https://hr.example.com", "http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dataset", map[string]string{"DATASET_PATH": ""}},
		{"inverted ages", map[string]string{"DATASET_PATH": "x.csv", "AGE_DEFAULT_MIN": "50", "AGE_DEFAULT_MAX": "20"}},
		{"bad log level", map[string]string{"DATASET_PATH": "x.csv", "LOG_LEVEL": "LOUD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AGE_DEFAULT_MIN", "")
			t.Setenv("AGE_DEFAULT_MAX", "")
			t.Setenv("LOG_LEVEL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadWithDataPath(t *testing.T) {
	t.Setenv("DATASET_PATH", "")
	t.Setenv("AGE_DEFAULT_MIN", "40")
	t.Setenv("AGE_DEFAULT_MAX", "")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithDataPath("flag.csv")
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.Data.FilePath)
	assert.Equal(t, 40, cfg.Filters.DefaultAgeMin)
	assert.Equal(t, "WARN", cfg.Log.Level)

	t.Setenv("DATASET_PATH", "env.csv")
	cfg, err = LoadWithDataPath("")
	require.NoError(t, err)
	assert.Equal(t, "env.csv", cfg.Data.FilePath)
}
