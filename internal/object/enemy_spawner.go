package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/timer"
)

// RandSource is the randomness enemy generation draws from.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// EnemySpawner releases one random enemy at a fixed point on a steady cadence.
type EnemySpawner struct {
	X, Y  float64
	timer timer.Timer
	rng   RandSource
}

// NewEnemySpawner creates a spawner at the top-center spawn point.
func NewEnemySpawner(rng RandSource) *EnemySpawner {
	return &EnemySpawner{
		X:     config.EnemySpawnX,
		Y:     config.EnemySpawnY,
		timer: timer.New(config.EnemySpawnInterval, timer.Repeating),
		rng:   rng,
	}
}

// Update advances the spawn cadence. Returns a new enemy on the frames the
// cadence fires, nil otherwise.
func (s *EnemySpawner) Update(ctx UpdateContext) *Enemy {
	s.timer.Tick(ctx.Delta)
	if !s.timer.Finished() {
		return nil
	}
	return RandomEnemy(s.rng, s.X, s.Y)
}

// Timer exposes the spawn cadence.
func (s *EnemySpawner) Timer() *timer.Timer {
	return &s.timer
}

// RandomEnemy rolls an enemy's size (1.2 to 2.0 in steps of 0.2) and
// direction, then builds it at (x,y).
func RandomEnemy(rng RandSource, x, y float64) *Enemy {
	roll := rng.IntN(config.EnemySizeSteps) + 1
	size := float64(roll)/config.EnemySizeSteps + 1.0
	movingRight := rng.IntN(2) == 1
	return NewEnemy(x, y, size, movingRight)
}
