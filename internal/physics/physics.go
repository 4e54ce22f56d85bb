// Package physics provides circle collision and distance utilities.
package physics

// Circle is a circular hitbox. The center moves with its owner; the radius
// is fixed at creation.
type Circle struct {
	X, Y   float64 // Center
	Radius float64
}

// NewCircle creates a circle centered at (x, y). Negative radii are clamped to zero.
func NewCircle(x, y, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{X: x, Y: y, Radius: radius}
}

// MoveTo recenters the circle.
func (c *Circle) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Overlaps reports whether two circles touch or intersect.
// Circles whose centers are exactly the radius sum apart overlap.
func Overlaps(a, b Circle) bool {
	minDist := a.Radius + b.Radius
	return DistanceSquared(a.X, a.Y, b.X, b.Y) <= minDist*minDist
}
