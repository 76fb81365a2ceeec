package config

import (
	"os"
	"strconv"
	"strings"

	"hrdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Server    ServerConfig
	Filters   FilterConfig
	Log       LogConfig
	Profiling ProfilingConfig
}

// DataConfig holds the dataset source settings
type DataConfig struct {
	FilePath string
	Sheet    string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	CORSOrigins []string // JSON API only; empty allows any origin
}

// FilterConfig holds sidebar defaults
type FilterConfig struct {
	DefaultAgeMin int
	DefaultAgeMax int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	return LoadWithDataPath("")
}

// LoadWithDataPath is Load with DATASET_PATH replaced by dataPath when it is
// non-empty, for callers that take the dataset from a flag.
func LoadWithDataPath(dataPath string) (*Config, error) {
	config := &Config{
		Data:      *loadDataConfig(),
		Server:    *loadServerConfig(),
		Filters:   *loadFilterConfig(),
		Log:       *loadLogConfig(),
		Profiling: *loadProfilingConfig(),
	}
	if dataPath != "" {
		config.Data.FilePath = dataPath
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		FilePath: getEnvOrDefault("DATASET_PATH", ""),
		Sheet:    getEnvOrDefault("DATASET_SHEET", ""),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", "release"),
		CORSOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", nil),
	}
}

func loadFilterConfig() *FilterConfig {
	return &FilterConfig{
		DefaultAgeMin: getEnvIntOrDefault("AGE_DEFAULT_MIN", 18),
		DefaultAgeMax: getEnvIntOrDefault("AGE_DEFAULT_MAX", 60),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level: strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.FilePath == "" {
		return errors.ConfigInvalid("DATASET_PATH is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Filters.DefaultAgeMin > config.Filters.DefaultAgeMax {
		return errors.ConfigInvalid("AGE_DEFAULT_MIN must not exceed AGE_DEFAULT_MAX")
	}
	switch config.Log.Level {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
