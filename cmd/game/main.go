package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, loop.ErrTerminalSize) {
			fmt.Fprintln(os.Stderr, "please enlarge your terminal and try again")
		}
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, settings.LogLevel)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		FPS:    settings.FPS,
		Seed:   settings.Seed,
		Logger: logger,
	})
}
