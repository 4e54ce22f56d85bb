// Package object defines the game entities and their per-frame behavior.
package object

import (
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/physics"
)

// Signals is an alias for the input package's Signals type.
type Signals = input.Signals

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Signals Signals
}

// Seconds returns the frame delta in seconds.
func (ctx UpdateContext) Seconds() float64 {
	return ctx.Delta.Seconds()
}

// Hitboxed is implemented by entities that take part in collisions.
type Hitboxed interface {
	Hitbox() physics.Circle
}

// Collides reports whether two entities' hitboxes overlap.
func Collides(a, b Hitboxed) bool {
	return physics.Overlaps(a.Hitbox(), b.Hitbox())
}

// Sprite is what the renderer needs to draw an entity.
type Sprite struct {
	X, Y   float64 // Center
	Radius float64 // Hitbox radius, 0 for entities without one
	Scale  float64 // Visual scale factor
}
