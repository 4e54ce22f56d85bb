package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/invaders/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(settings.WebHost, settings.WebPort),
		Handler:           newHandler(settings),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting web server", "url", "http://"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newHandler serves the landing page with the SSH connect command filled in.
func newHandler(settings config.Settings) http.Handler {
	page := strings.NewReplacer(
		"{{.SSHHost}}", settings.SSHDisplayHost,
		"{{.SSHPort}}", settings.SSHPort,
	).Replace(htmlPage)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}
