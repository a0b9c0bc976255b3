package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{raw: "", want: zerolog.InfoLevel, ok: false},
		{raw: "debug", want: zerolog.DebugLevel, ok: true},
		{raw: " WARNING ", want: zerolog.WarnLevel, ok: true},
		{raw: "off", want: zerolog.Disabled, ok: true},
		{raw: "loud", want: zerolog.InfoLevel, ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:   "error",
		EnvLogFormat:  "json",
		EnvLogNoColor: "true",
	}
	cfg := Config{Level: zerolog.InfoLevel}
	applyEnvOverrides(&cfg, func(key string) string { return env[key] })

	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("level = %v, want error", cfg.Level)
	}
	if !cfg.JSON {
		t.Fatal("expected json format")
	}
	if !cfg.NoColor {
		t.Fatal("expected no color")
	}
}

func TestNewWithConfigTagsService(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig("custody", Config{Level: zerolog.InfoLevel, JSON: true, Out: &buf})
	logger.Info().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["service"] != "custody" {
		t.Fatalf("service = %v, want custody", line["service"])
	}
	if line["message"] != "hello" {
		t.Fatalf("message = %v, want hello", line["message"])
	}
}
