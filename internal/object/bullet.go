package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/timer"
)

// Bullet is a projectile fired straight up by the player. It speeds up the
// longer it flies.
type Bullet struct {
	X, Y     float64     // Position
	Speed    float64     // Current upward speed
	Lifetime timer.Timer // Expires the bullet
	hitbox   physics.Circle
}

// NewBullet creates a bullet at position (x,y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		Speed:    config.BulletSpeed,
		Lifetime: timer.New(config.BulletLifetime, timer.Once),
		hitbox:   physics.NewCircle(x, y, config.BulletRadius),
	}
}

// Move accelerates the bullet and advances it upward.
func (b *Bullet) Move(ctx UpdateContext) {
	dt := ctx.Seconds()
	b.Speed += config.BulletAcceleration * dt
	b.Y += b.Speed * dt
	b.hitbox.MoveTo(b.X, b.Y)
}

// Age ticks the lifetime timer. Returns true once the bullet has expired.
func (b *Bullet) Age(ctx UpdateContext) bool {
	b.Lifetime.Tick(ctx.Delta)
	return b.Lifetime.Finished()
}

// Update moves the bullet and checks lifetime. Returns true if the bullet
// should be removed.
func (b *Bullet) Update(ctx UpdateContext) bool {
	b.Move(ctx)
	return b.Age(ctx)
}

// Hitbox returns the bullet's collision circle.
func (b *Bullet) Hitbox() physics.Circle {
	return b.hitbox
}

// Sprite returns the bullet's render data.
func (b *Bullet) Sprite() Sprite {
	return Sprite{X: b.X, Y: b.Y, Radius: b.hitbox.Radius, Scale: 1}
}
