package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrInvalidSetting is returned when an environment setting cannot be used.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the runtime options read from the environment.
type Settings struct {
	FPS      int       // Frame driver rate
	Seed     uint64    // Enemy generation seed, 0 picks one at startup
	LogLevel log.Level // Minimum level written by NewLogger
	LogFile  string    // Log destination for the local game, none when empty

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	WebHost        string
	WebPort        string
	SSHDisplayHost string // Host name shown on the web landing page
}

// Load reads Settings from the environment, applying defaults for unset keys.
func Load() (Settings, error) {
	s := Settings{
		SSHHost:        GetEnv("SSH_HOST", "::"),
		SSHPort:        GetEnv("SSH_PORT", "2222"),
		SSHHostKey:     GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),
		WebHost:        GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort:        GetEnv("WEB_PORT", "8080"),
		SSHDisplayHost: GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		LogFile:        GetEnv("LOG_FILE", ""),
	}

	var err error
	if s.FPS, err = GetEnvInt("GAME_FPS", DefaultFPS); err != nil {
		return Settings{}, err
	}
	if s.FPS < 1 || s.FPS > MaxFPS {
		return Settings{}, fmt.Errorf("%w: GAME_FPS=%d out of range [1, %d]", ErrInvalidSetting, s.FPS, MaxFPS)
	}

	if s.Seed, err = GetEnvUint64("GAME_SEED", 0); err != nil {
		return Settings{}, err
	}

	level := GetEnv("LOG_LEVEL", "")
	if level == "" {
		level = "info"
	}
	if s.LogLevel, err = log.ParseLevel(level); err != nil {
		return Settings{}, fmt.Errorf("%w: LOG_LEVEL=%q: %v", ErrInvalidSetting, level, err)
	}

	return s, nil
}

// NewLogger creates the structured logger used across the game.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
