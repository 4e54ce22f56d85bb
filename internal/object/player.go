package object

import "github.com/tomz197/invaders/internal/config"

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y  float64 // Position (center of ship)
	Speed float64 // Horizontal units per second
	Scale float64 // Visual scale
}

// NewPlayer creates the ship at the given position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:     x,
		Y:     y,
		Speed: config.PlayerSpeed,
		Scale: config.PlayerScale,
	}
}

// Update moves the ship sideways. Left and right are applied independently,
// so holding both nets out to zero. There is no wall clamp.
func (p *Player) Update(ctx UpdateContext) {
	step := p.Speed * ctx.Seconds()

	if ctx.Signals.MoveRight {
		p.X += step
	}
	if ctx.Signals.MoveLeft {
		p.X -= step
	}
}

// Sprite returns the player's render data.
func (p *Player) Sprite() Sprite {
	return Sprite{X: p.X, Y: p.Y, Scale: p.Scale}
}
