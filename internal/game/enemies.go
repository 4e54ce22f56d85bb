package game

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/entity"
	"github.com/tomz197/invaders/internal/object"
)

// AddEnemy puts an enemy into play.
func (w *World) AddEnemy(e *object.Enemy) entity.ID {
	id := w.Enemies.Insert(e)
	w.logger.Debug("spawned enemy", "id", id, "size", e.Size, "health", e.Health, "speed", e.Speed)
	return id
}

// spawnEnemies releases an enemy whenever the spawn cadence fires.
func (w *World) spawnEnemies(ctx object.UpdateContext) {
	if e := w.Spawner.Update(ctx); e != nil {
		w.AddEnemy(e)
	}
}

func (w *World) moveEnemies(ctx object.UpdateContext) {
	for _, e := range w.Enemies.All() {
		e.Update(ctx)
	}
}

// removeDeadEnemies removes every enemy out of health and scores each kill.
func (w *World) removeDeadEnemies() {
	for id, e := range w.Enemies.All() {
		if !e.IsDead() {
			continue
		}
		if w.Enemies.Remove(id) {
			w.Score.Add(config.ScoreEnemyKill)
			w.logger.Debug("enemy destroyed", "id", id, "score", w.Score.Current)
		}
	}
}

// checkRoundEnd ends the round once any enemy drops below the line.
func (w *World) checkRoundEnd() {
	for id, e := range w.Enemies.All() {
		if e.Reached(config.RoundEndY) {
			w.logger.Debug("enemy reached bottom", "id", id, "y", e.Y)
			w.request(GameOver)
			return
		}
	}
}
