package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSetupSetsDefault(t *testing.T) {
	logger := Setup("test", "debug")
	if logger == nil {
		t.Fatal("Setup returned nil logger")
	}
	if slog.Default() != logger {
		t.Error("Setup should install the logger as slog default")
	}
}

func TestWrappersBeforeSetup(t *testing.T) {
	defaultLogger = nil
	// Must not panic without Setup.
	Info("info message", "key", "value")
	Warn("warn message")
	Error("error message")
	Debug("debug message")
}
