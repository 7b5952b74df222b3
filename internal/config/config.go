package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	applog "github.com/tirasundara/account-ledger/internal/log"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string
}

// LoadEnvFile loads a .env file from the working directory when present
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

func Load() *Config {
	return &Config{
		LogLevel:  getEnv("LEDGER_LOG_LEVEL", "warn"),
		LogFormat: getEnv("LEDGER_LOG_FORMAT", applog.FormatText),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	validFormats := []string{applog.FormatText, applog.FormatJSON}
	isValidFormat := false
	for _, format := range validFormats {
		if c.LogFormat == format {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// LoggerConfig converts the validated settings to a logger configuration
func (c *Config) LoggerConfig() applog.Config {
	level, err := applog.ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}

	cfg := applog.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.LogFormat
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
