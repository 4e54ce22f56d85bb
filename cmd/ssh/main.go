package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop"
)

const shutdownTimeout = 5 * time.Second

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSHHost, "port", settings.SSHPort,
		"hostKeyPath", settings.SSHHostKey, "workingDir", workingDir,
		"fps", settings.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			gameMiddleware(ctx, settings, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("server stopped")
}

// gameMiddleware runs an independent game for every SSH session. Sessions
// end when the player quits, disconnects or serverCtx is cancelled.
func gameMiddleware(serverCtx context.Context, settings config.Settings, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessionLog := logger.With("session", uuid.NewString(), "user", sess.User())
			sessionLog.Info("new game session",
				"terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			ctx, cancel := context.WithCancel(sess.Context())
			defer cancel()
			stopAfter := context.AfterFunc(serverCtx, cancel)
			defer stopAfter()

			err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
				FPS:          settings.FPS,
				Seed:         settings.Seed,
				Logger:       sessionLog,
				TermSizeFunc: sizeTracker.getSize,
			})
			switch {
			case errors.Is(err, loop.ErrTerminalSize):
				fmt.Fprintf(sess, "Your terminal is too small (%dx%d). Please enlarge it and reconnect.\r\n",
					pty.Window.Width, pty.Window.Height)
				sessionLog.Warn("terminal too small", "err", err)
			case err != nil:
				sessionLog.Error("game error", "err", err)
			}

			sessionLog.Info("session ended")
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
