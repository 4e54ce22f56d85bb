package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Enemy sweeps side to side, dropping a row each time it turns around.
// Bigger enemies are tougher but slower.
type Enemy struct {
	X, Y        float64 // Position (center)
	Health      float64
	Speed       float64 // Horizontal units per second
	MovingRight bool
	Size        float64 // Size factor in [1.2, 2.0]
	hitbox      physics.Circle
}

// NewEnemy creates an enemy of the given size factor at (x,y).
//
// health = 50·size², radius = 70·size, and speed = 200·(3·(1−(1−size)²)+1).
func NewEnemy(x, y, size float64, movingRight bool) *Enemy {
	speedFactor := 1.0 - (1.0-size)*(1.0-size)

	return &Enemy{
		X:           x,
		Y:           y,
		Health:      config.EnemyBaseHealth * size * size,
		Speed:       config.EnemyBaseSpeed * (speedFactor*3.0 + 1.0),
		MovingRight: movingRight,
		Size:        size,
		hitbox:      physics.NewCircle(x, y, config.EnemyBaseRadius*size),
	}
}

// Update sweeps the enemy horizontally. Past either bound it turns around
// and steps down one row.
func (e *Enemy) Update(ctx UpdateContext) {
	step := e.Speed * ctx.Seconds()
	if e.MovingRight {
		e.X += step
	} else {
		e.X -= step
	}

	if e.X > config.EnemyBounceX {
		e.MovingRight = false
		e.Y -= config.EnemyStepDown
	} else if e.X < -config.EnemyBounceX {
		e.MovingRight = true
		e.Y -= config.EnemyStepDown
	}

	e.hitbox.MoveTo(e.X, e.Y)
}

// Damage subtracts amount from the enemy's health.
func (e *Enemy) Damage(amount float64) {
	e.Health -= amount
}

// IsDead reports whether the enemy's health is used up.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// Reached reports whether the enemy has dropped below y.
func (e *Enemy) Reached(y float64) bool {
	return e.Y < y
}

// Hitbox returns the enemy's collision circle.
func (e *Enemy) Hitbox() physics.Circle {
	return e.hitbox
}

// Sprite returns the enemy's render data.
func (e *Enemy) Sprite() Sprite {
	return Sprite{X: e.X, Y: e.Y, Radius: e.hitbox.Radius, Scale: config.EnemyScale * e.Size}
}
