package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/nerrad567/gray-logic-sentry/internal/infrastructure/config"
)

func TestNewFormats(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		cfg := config.LoggingConfig{Level: "info", Format: format, Output: "stdout"}
		if New(cfg, "1.0.0") == nil {
			t.Errorf("New() with format %q returned nil", format)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriterFor(t *testing.T) {
	if writerFor("stderr") != os.Stderr {
		t.Error(`writerFor("stderr") should be stderr`)
	}
	if writerFor("stdout") != os.Stdout {
		t.Error(`writerFor("stdout") should be stdout`)
	}
	if writerFor("") != os.Stdout {
		t.Error("unrecognised output should fall back to stdout")
	}
}

func TestWithReturnsChildLogger(t *testing.T) {
	log := Default()
	child := log.With("component", "scenario")

	if child == nil {
		t.Fatal("With() returned nil")
	}
	if child == log {
		t.Error("With() should return a new logger, not the receiver")
	}
}

func TestRecordsCarryDefaultFields(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}).
		WithAttrs([]slog.Attr{
			slog.String("service", "sentry"),
			slog.String("version", "test"),
		})
	log := &Logger{Logger: slog.New(handler)}

	log.Info("scenarios loaded", "count", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["service"] != "sentry" {
		t.Errorf("service = %v, want sentry", record["service"])
	}
	if record["version"] != "test" {
		t.Errorf("version = %v, want test", record["version"])
	}
	if record["msg"] != "scenarios loaded" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["count"] != float64(3) {
		t.Errorf("count = %v, want 3", record["count"])
	}
}
