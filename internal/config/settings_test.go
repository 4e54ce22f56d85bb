package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GAME_FPS", "GAME_SEED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", s.FPS, DefaultFPS)
	}
	if s.Seed != 0 {
		t.Errorf("Seed = %d, want 0", s.Seed)
	}
	if s.LogLevel != log.InfoLevel {
		t.Errorf("LogLevel = %v, want info", s.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GAME_FPS", "30")
	t.Setenv("GAME_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/invaders.log")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.FPS != 30 {
		t.Errorf("FPS = %d, want 30", s.FPS)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d, want 42", s.Seed)
	}
	if s.LogLevel != log.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", s.LogLevel)
	}
	if s.LogFile != "/tmp/invaders.log" {
		t.Errorf("LogFile = %q, want /tmp/invaders.log", s.LogFile)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"GAME_FPS", "fast"},
		{"GAME_FPS", "0"},
		{"GAME_FPS", "10000"},
		{"GAME_SEED", "-1"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if !errors.Is(err, ErrInvalidSetting) {
				t.Errorf("Load() error = %v, want ErrInvalidSetting", err)
			}
		})
	}
}

func TestGetEnv_Fallback(t *testing.T) {
	if got := GetEnv("INVADERS_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want fallback", got)
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", "score", 100)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=100") {
		t.Errorf("output = %q, want info line with score=100", out)
	}
}
