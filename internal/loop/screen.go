package loop

import (
	"fmt"

	"github.com/tomz197/invaders/internal/game"
)

// Text shown over the field.
const (
	gameOverTitle  = "G A M E   O V E R"
	replayPrompt   = "Press [Enter] to Play Again"
	controlsHint   = "A D / < > move   SPACE fire   Q quit"
	tooSmallPrompt = "Terminal too small, please enlarge it"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	cw := s.chunkWriter

	if !s.fits {
		cw.SetOffset(0, 0)
		cw.WriteAt(1, 1, tooSmallPrompt)
		return cw.Flush()
	}

	snap := s.world.Snapshot()

	// On state transitions, do a full terminal clear so overlay text from
	// the previous state doesn't persist on screen.
	if snap.State != s.prevState {
		cw.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.prevState = snap.State
	}

	s.canvas.Clear()
	for _, e := range snap.Enemies {
		s.canvas.DrawEnemy(e)
	}
	for _, b := range snap.Bullets {
		s.canvas.DrawBullet(b)
	}
	s.canvas.DrawPlayer(snap.Player)

	if err := s.canvas.Render(cw); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(cw); err != nil {
		return err
	}

	s.drawUI(snap)

	return cw.Flush()
}

// drawUI draws the HUD and overlays.
func (s *Session) drawUI(snap game.Snapshot) {
	switch snap.State {
	case game.Playing:
		s.drawPlayingHUD(snap)
	case game.GameOver:
		s.drawGameOverScreen(snap)
	}
}

// drawPlayingHUD writes the score into the top border and the controls into
// the bottom one. Fields are padded so shrinking values leave no residue.
func (s *Session) drawPlayingHUD(snap game.Snapshot) {
	cw := s.chunkWriter
	cw.WriteAt(2, 0, fmt.Sprintf(" Score: %-8d", snap.Score.Current))

	if len(controlsHint)+4 <= s.canvas.Cols() {
		cw.WriteCentered(s.canvas.Cols()/2+1, s.canvas.Rows()+1, " "+controlsHint+" ")
	}
}

// drawGameOverScreen draws the round summary and the replay prompt.
func (s *Session) drawGameOverScreen(snap game.Snapshot) {
	cw := s.chunkWriter
	centerX := s.canvas.Cols()/2 + 1
	centerY := s.canvas.Rows()/2 + 1

	cw.WriteCentered(centerX, centerY-3, gameOverTitle)
	cw.WriteCentered(centerX, centerY-1, fmt.Sprintf("Score: %d", snap.Score.Current))
	cw.WriteCentered(centerX, centerY, fmt.Sprintf("Best: %d", snap.Score.Best))
	cw.WriteCentered(centerX, centerY+2, replayPrompt)
}
