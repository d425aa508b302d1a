package config

import (
	"os"
	"testing"
)

func cleanupEnv() {
	for _, key := range []string{"PORT", "ADDRESS", "ENV", "LOG_LEVEL", "MAX_REQUEST_BODY", "MAX_HEADER_SIZE"} {
		_ = os.Unsetenv(key)
	}
}

func TestLoadValidConfig(t *testing.T) {
	_ = os.Setenv("PORT", "9000")
	_ = os.Setenv("ENV", "prod")
	_ = os.Setenv("LOG_LEVEL", "warn")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.Env != "prod" {
		t.Errorf("Expected env prod, got %s", cfg.Env)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.LogLevel)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Address != "0.0.0.0" {
		t.Errorf("Expected default address 0.0.0.0, got %s", cfg.Address)
	}
	if cfg.Env != "dev" {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.MaxRequestBody != 1048576 {
		t.Errorf("Expected default max request body 1MB, got %d", cfg.MaxRequestBody)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"not a number", "abc"},
		{"too large", "70000"},
		{"zero", "0"},
		{"negative", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Setenv("PORT", tt.port)
			defer cleanupEnv()

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for PORT=%q", tt.port)
			}
		})
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	_ = os.Setenv("ENV", "production-ish")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid ENV")
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	_ = os.Setenv("LOG_LEVEL", "verbose")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid LOG_LEVEL")
	}
}

func TestLoadInvalidSizeLimits(t *testing.T) {
	_ = os.Setenv("MAX_REQUEST_BODY", "209715200") // 200MB
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for oversized MAX_REQUEST_BODY")
	}
}
