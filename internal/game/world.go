// Package game runs the invaders simulation: the player, bullet and enemy
// subsystems, collisions, scoring and the round state machine.
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/entity"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// World owns every live entity plus the score and round state. It is
// advanced one frame at a time by Update and is not safe for concurrent use.
type World struct {
	Player  *object.Player
	Bullets *entity.Registry[*object.Bullet]
	Enemies *entity.Registry[*object.Enemy]
	Spawner *object.EnemySpawner
	Score   Score

	state   State
	next    State
	pending bool // next holds a requested transition

	logger *log.Logger

	// Reused each frame by the collision pass
	grid       *physics.SpatialGrid
	enemyCache []*object.Enemy
}

// Option configures a World.
type Option func(*options)

type options struct {
	logger *log.Logger
	rng    object.RandSource
}

// WithLogger sets the logger for entity lifecycle and round events.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRand sets the random source used for enemy generation.
func WithRand(rng object.RandSource) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds enemy generation. Equal seeds give equal enemy sequences.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates a world in the Playing state with the player at its spawn
// point and no bullets or enemies.
func New(opts ...Option) *World {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &World{
		Player:  object.NewPlayer(config.PlayerSpawnX, config.PlayerSpawnY),
		Bullets: entity.NewRegistry[*object.Bullet](),
		Enemies: entity.NewRegistry[*object.Enemy](),
		Spawner: object.NewEnemySpawner(o.rng),
		state:   Playing,
		logger:  o.logger,
		grid: physics.NewSpatialGrid(
			-config.FieldWidth/2, -config.FieldHeight/2,
			config.FieldWidth, config.FieldHeight,
			config.CollisionCellSize,
		),
	}
}

// State returns the current round state.
func (w *World) State() State {
	return w.state
}

// Update advances the world by one frame.
//
// Phases run in a fixed order: player, bullet spawn, bullet move and
// lifetime, enemy spawn, enemy move, bullet/enemy collisions, dead enemy
// cleanup, round-end check. Collisions see this frame's bullet and enemy
// positions, and a killed enemy is gone before it can end the round.
// Requested state changes (round end, toggle) are applied last.
// Nothing but the toggle is processed while the round is over.
func (w *World) Update(dt time.Duration, sig input.Signals) {
	if dt < 0 {
		dt = 0
	}
	ctx := object.UpdateContext{Delta: dt, Signals: sig}

	if w.state == Playing {
		w.Player.Update(ctx)

		w.spawnBullet(ctx)
		w.updateBullets(ctx)

		w.spawnEnemies(ctx)
		w.moveEnemies(ctx)

		w.collideBullets()
		w.removeDeadEnemies()
		w.checkRoundEnd()
	}

	if sig.Toggle {
		w.toggle()
	}

	w.applyTransition()
}

// toggle requests the opposite of the current state.
func (w *World) toggle() {
	switch w.state {
	case Playing:
		w.request(GameOver)
	case GameOver:
		w.request(Playing)
	}
}

// request queues a state change for the end of the frame.
func (w *World) request(s State) {
	w.next = s
	w.pending = true
}

// applyTransition performs a queued state change and its enter/exit effects.
func (w *World) applyTransition() {
	if !w.pending {
		return
	}
	w.pending = false

	from, to := w.state, w.next
	if from == to {
		return
	}

	if from == GameOver {
		w.Score.resetCurrent()
	}

	w.state = to

	switch to {
	case GameOver:
		w.Score.recordBest()
		w.logger.Info("round over", "score", w.Score.Current, "best", w.Score.Best)
	case Playing:
		w.reset()
		w.logger.Info("round started", "best", w.Score.Best)
	}
}

// reset tears down every bullet and enemy for a fresh round.
func (w *World) reset() {
	w.Bullets.Clear()
	w.Enemies.Clear()
}
