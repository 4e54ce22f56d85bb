// Package loop provides the frame driver: Input → Update → Draw at a fixed
// rate for one player's terminal.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
)

// ErrTerminalSize is returned when the terminal is too small to show the field.
var ErrTerminalSize = errors.New("terminal too small")

// Options configures Run.
type Options struct {
	FPS          int               // Frames per second, config.DefaultFPS when 0
	Seed         uint64            // Enemy generation seed, random when 0
	Logger       *log.Logger       // Discards when nil
	TermSizeFunc draw.TermSizeFunc // draw.DefaultTermSizeFunc when nil
}

// Session is one player's game: a world plus the terminal it is drawn on.
type Session struct {
	world        *game.World
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	edges        input.EdgeTracker
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	fits      bool       // Field fits the terminal
	prevState game.State // State drawn last frame
	running   bool
}

// NewSession sets up a game for the terminal behind w. It fails with
// ErrTerminalSize when the terminal cannot show the field.
func NewSession(w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termCols, termRows, err := termSizeFunc()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	cols, rows, offCol, offRow, ok := draw.Layout(termCols, termRows)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d", ErrTerminalSize, termCols, termRows)
	}

	worldOpts := []game.Option{game.WithLogger(logger)}
	if opts.Seed != 0 {
		worldOpts = append(worldOpts, game.WithSeed(opts.Seed))
	}

	canvas := draw.NewCanvas(cols, rows, config.FieldWidth, config.FieldHeight)
	canvas.SetOffset(offCol, offRow)

	return &Session{
		world:        game.New(worldOpts...),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offCol, offRow),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		fits:         true,
		prevState:    game.Playing,
		running:      true,
	}, nil
}

// World returns the session's game world.
func (s *Session) World() *game.World {
	return s.world
}

// Running reports whether the player has not quit yet.
func (s *Session) Running() bool {
	return s.running
}

// Frame runs one Input → Update → Draw step with the given frame delta.
func (s *Session) Frame(dt time.Duration, keys input.Keys) error {
	sig := s.edges.Signals(keys)
	if sig.Quit {
		s.running = false
		return nil
	}

	s.updateScreen()
	s.world.Update(dt, sig)

	return s.drawFrame()
}

// updateScreen handles terminal resize. On actual size changes it clears the
// terminal to remove residual pixels outside the new canvas area.
func (s *Session) updateScreen() {
	termCols, termRows, err := s.termSizeFunc()
	if err != nil {
		return
	}

	cols, rows, offCol, offRow, ok := draw.Layout(termCols, termRows)
	if ok != s.fits || cols != s.canvas.Cols() || rows != s.canvas.Rows() ||
		offCol != s.canvas.OffsetCol() || offRow != s.canvas.OffsetRow() {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.logger.Debug("terminal resized", "cols", termCols, "rows", termRows, "fits", ok)
	}
	s.fits = ok
	if !ok {
		return
	}

	s.canvas.Resize(cols, rows)
	s.canvas.SetOffset(offCol, offRow)
	s.chunkWriter.SetOffset(offCol, offRow)
}

// Run plays one game on the terminal behind r and w until the player quits,
// the input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	frameTime := time.Second / time.Duration(fps)

	s, err := NewSession(w, opts)
	if err != nil {
		return err
	}
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	s.logger.Info("game started", "fps", fps)

	timer := time.NewTimer(frameTime)
	defer timer.Stop()

	lastTime := time.Now()
	for s.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		state := s.world.State()
		if err := s.Frame(delta, input.ReadInput(stream)); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if s.world.State() != state {
			// Held keys don't carry over into the next round
			stream.Reset()
		}
		if !s.running {
			break
		}

		elapsed := time.Since(frameStart)
		timer.Reset(max(frameTime-elapsed, 0))
		select {
		case <-ctx.Done():
			s.logger.Info("game cancelled", "score", s.world.Score.Current, "best", s.world.Score.Best)
			draw.ClearScreen(w)
			return nil
		case <-timer.C:
		}
	}

	s.logger.Info("game ended", "score", s.world.Score.Current, "best", s.world.Score.Best)
	draw.ClearScreen(w)
	return nil
}
