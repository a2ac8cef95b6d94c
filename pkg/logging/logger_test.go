package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be Info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelDebug, Output: buf})

	logger.Info().Str("card", "Sol Ring").Msg("fetched")

	out := buf.String()
	if !strings.Contains(out, `"card":"Sol Ring"`) {
		t.Errorf("Output missing structured field: %s", out)
	}
	if !strings.Contains(out, `"message":"fetched"`) {
		t.Errorf("Output missing message: %s", out)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelWarn, Output: buf})

	logger.Info().Msg("should be filtered")
	logger.Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("Info message logged despite warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("Warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{input: LevelDebug, expected: zerolog.DebugLevel},
		{input: LevelInfo, expected: zerolog.InfoLevel},
		{input: LevelWarn, expected: zerolog.WarnLevel},
		{input: "warning", expected: zerolog.WarnLevel},
		{input: LevelError, expected: zerolog.ErrorLevel},
		{input: "DEBUG", expected: zerolog.DebugLevel},
		{input: "bogus", expected: zerolog.InfoLevel},
		{input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelDebug, Output: buf})

	logger := NewLogger("scryfall-client")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"scryfall-client"`) {
		t.Errorf("Output missing component field: %s", buf.String())
	}
}
