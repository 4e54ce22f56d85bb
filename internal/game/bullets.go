package game

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/entity"
	"github.com/tomz197/invaders/internal/object"
)

// SpawnBullet fires a bullet from the player's current position.
func (w *World) SpawnBullet() entity.ID {
	b := object.NewBullet(w.Player.X, w.Player.Y)
	id := w.Bullets.Insert(b)
	w.logger.Debug("spawned bullet", "id", id, "x", b.X, "y", b.Y)
	return id
}

// spawnBullet fires once per fire press.
func (w *World) spawnBullet(ctx object.UpdateContext) {
	if ctx.Signals.Fire {
		w.SpawnBullet()
	}
}

// updateBullets moves every bullet, then removes the ones whose lifetime ran out.
func (w *World) updateBullets(ctx object.UpdateContext) {
	for id, b := range w.Bullets.All() {
		if b.Update(ctx) {
			w.removeBullet(id, "expired")
		}
	}
}

// collideBullets lets each bullet hit at most one enemy: the earliest
// spawned enemy it overlaps. The bullet is removed and the enemy damaged.
//
// Enemies go into a spatial grid first; the grid only narrows down the
// candidates, the lowest index among overlapping candidates still wins, so
// the outcome matches scanning enemies in spawn order.
func (w *World) collideBullets() {
	if w.Bullets.Len() == 0 || w.Enemies.Len() == 0 {
		return
	}

	w.grid.Clear()
	w.enemyCache = w.enemyCache[:0]
	for _, e := range w.Enemies.All() {
		w.grid.Insert(e.X, e.Y, len(w.enemyCache))
		w.enemyCache = append(w.enemyCache, e)
	}

	for id, b := range w.Bullets.All() {
		hit := -1
		w.grid.QueryAround(b.X, b.Y, func(i int) bool {
			if (hit < 0 || i < hit) && object.Collides(b, w.enemyCache[i]) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		enemy := w.enemyCache[hit]
		w.removeBullet(id, "hit enemy")
		enemy.Damage(config.BulletDamage)
		w.logger.Debug("bullet collided with enemy", "bullet", id, "health", enemy.Health)
	}
}

// removeBullet deletes a bullet. Already removed bullets are ignored.
func (w *World) removeBullet(id entity.ID, reason string) {
	if w.Bullets.Remove(id) {
		w.logger.Debug("removed bullet", "id", id, "reason", reason)
	}
}
