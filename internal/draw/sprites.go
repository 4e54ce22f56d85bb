package draw

import "github.com/tomz197/invaders/internal/object"

// Sprite models in model units, scaled by Sprite.Scale and placed at the
// sprite's center.
var (
	// Cannon: wide base with a short barrel.
	playerModel = []Point{
		{-6, -3}, {6, -3}, {6, 0}, {1, 0}, {1, 4}, {-1, 4}, {-1, 0}, {-6, 0},
	}

	// Crab: body with two legs, fitting a radius of 28.
	enemyModel = []Point{
		{-28, -10}, {-20, -24}, {-12, -12}, {12, -12}, {20, -24},
		{28, -10}, {28, 8}, {16, 20}, {-16, 20}, {-28, 8},
	}
)

// bulletHalfLength is half the length of a bullet streak in model units.
const bulletHalfLength = 12

// place transforms a model into field coordinates for a sprite.
func (c *Canvas) place(model []Point, s object.Sprite) []Point {
	pts := c.BorrowPoints(len(model))
	for i, p := range model {
		pts[i] = Point{s.X + p.X*s.Scale, s.Y + p.Y*s.Scale}
	}
	return pts
}

// DrawPlayer draws the player's cannon.
func (c *Canvas) DrawPlayer(s object.Sprite) {
	c.DrawPolygon(c.place(playerModel, s), true)
}

// DrawEnemy draws an enemy.
func (c *Canvas) DrawEnemy(s object.Sprite) {
	c.DrawPolygon(c.place(enemyModel, s), true)
}

// DrawBullet draws a bullet as a short vertical streak.
func (c *Canvas) DrawBullet(s object.Sprite) {
	h := bulletHalfLength * s.Scale
	c.DrawLine(Point{s.X, s.Y - h}, Point{s.X, s.Y + h})
}

// DrawHitbox outlines a sprite's collision circle.
func (c *Canvas) DrawHitbox(s object.Sprite) {
	if s.Radius > 0 {
		c.DrawCircle(Point{s.X, s.Y}, s.Radius)
	}
}
