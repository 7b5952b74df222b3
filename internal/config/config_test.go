package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults",
			config:  Config{LogLevel: "warn", LogFormat: "text"},
			wantErr: false,
		},
		{
			name:    "json debug",
			config:  Config{LogLevel: "debug", LogFormat: "json"},
			wantErr: false,
		},
		{
			name:        "invalid log level",
			config:      Config{LogLevel: "loud", LogFormat: "text"},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "invalid log format",
			config:      Config{LogLevel: "info", LogFormat: "xml"},
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	err := (&Config{LogLevel: "loud", LogFormat: "xml"}).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid log level") || !strings.Contains(err.Error(), "invalid log format") {
		t.Errorf("expected both problems to be reported, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "")
	t.Setenv("LEDGER_LOG_FORMAT", "")

	cfg := Load()
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default log format text, got %q", cfg.LogFormat)
	}

	lc := cfg.LoggerConfig()
	if lc.Level != slog.LevelWarn {
		t.Errorf("expected logger level warn, got %v", lc.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_LOG_FORMAT", "json")

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lc := cfg.LoggerConfig()
	if lc.Level != slog.LevelDebug {
		t.Errorf("expected logger level debug, got %v", lc.Level)
	}
	if lc.Format != "json" {
		t.Errorf("expected logger format json, got %q", lc.Format)
	}
}

func TestLoadEnvFile(t *testing.T) {
	// Register restoration, then remove so the .env value is not shadowed
	t.Setenv("LEDGER_LOG_LEVEL", "")
	os.Unsetenv("LEDGER_LOG_LEVEL")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("LEDGER_LOG_LEVEL=error\n"), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	LoadEnvFile(envFile)

	if got := Load().LogLevel; got != "error" {
		t.Errorf("expected log level from .env to be error, got %q", got)
	}
}

func TestLoadEnvFile_MissingFileIgnored(t *testing.T) {
	// Must not panic or exit
	LoadEnvFile(filepath.Join(t.TempDir(), "does-not-exist.env"))
}
