package game

import "github.com/tomz197/invaders/internal/object"

// Snapshot is a read-only copy of what the renderer and HUD need from one
// frame. Entities are listed in spawn order.
type Snapshot struct {
	State   State
	Score   Score
	Player  object.Sprite
	Bullets []object.Sprite
	Enemies []object.Sprite
}

// Snapshot copies the world's visible state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		State:   w.state,
		Score:   w.Score,
		Player:  w.Player.Sprite(),
		Bullets: make([]object.Sprite, 0, w.Bullets.Len()),
		Enemies: make([]object.Sprite, 0, w.Enemies.Len()),
	}
	for _, b := range w.Bullets.All() {
		snap.Bullets = append(snap.Bullets, b.Sprite())
	}
	for _, e := range w.Enemies.All() {
		snap.Enemies = append(snap.Enemies, e.Sprite())
	}
	return snap
}
