// Package draw renders the play field to a terminal with half-block
// characters.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Point is a position in field coordinates.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Drawing happens in field coordinates: origin at the center of
// the field, y growing upward. The canvas scales them to terminal pixels.
//
// Render only writes cells that changed since the previous Render.
type Canvas struct {
	cols   int    // Terminal columns covered
	rows   int    // Terminal rows covered
	height int    // rows * 2 sub-pixels
	pixels []bool // Flat slice: [y * cols + x]
	drawn  []rune // Glyph last written per cell, 0 when unknown

	fieldWidth  float64
	fieldHeight float64
	scaleX      float64 // cols / fieldWidth
	scaleY      float64 // height / fieldHeight

	// 0-based terminal offsets: the canvas starts at (offsetCol+1, offsetRow+1).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas of cols x rows terminal cells showing a field
// of fieldWidth x fieldHeight units.
func NewCanvas(cols, rows int, fieldWidth, fieldHeight float64) *Canvas {
	c := &Canvas{
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
	c.Resize(cols, rows)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// field size. A size change forces a full redraw.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)

	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.height = rows * 2
		c.pixels = make([]bool, c.height*cols)
		c.drawn = make([]rune, rows*cols)
	}

	c.scaleX = float64(cols) / c.fieldWidth
	c.scaleY = float64(c.height) / c.fieldHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Cols returns the terminal column count covered by the canvas.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the terminal row count covered by the canvas.
func (c *Canvas) Rows() int {
	return c.rows
}

// Clear resets all pixels in the canvas. The terminal is untouched until
// the next Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.drawn)
}

// setPixel sets a pixel at sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = true
	}
}

// Pixel reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// toPixel maps field coordinates to sub-pixel coordinates.
func (c *Canvas) toPixel(p Point) Point {
	return Point{
		X: (p.X + c.fieldWidth/2) * c.scaleX,
		Y: (c.fieldHeight/2 - p.Y) * c.scaleY,
	}
}

// Set sets the pixel under a field position.
func (c *Canvas) Set(x, y float64) {
	p := c.toPixel(Point{x, y})
	c.setPixel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	a, b := c.toPixel(p1), c.toPixel(p2)
	x1, y1 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x2, y2 := int(math.Floor(b.X)), int(math.Floor(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline approximated by a polygon.
func (c *Canvas) DrawCircle(center Point, radius float64) {
	const segments = 24
	pts := c.BorrowPoints(segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Point{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
	}
	c.DrawPolygon(pts, false)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = c.toPixel(p)
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.height-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := range n {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i]-0.5)), 0)
			xEnd := min(int(math.Floor(intersections[i+1]-0.5)), c.cols-1)
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// cell returns the glyph for a terminal cell from its two sub-pixels.
func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[row*2*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes every cell that changed since the last Render.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := range c.rows {
		for col := range c.cols {
			ch := c.cell(col, row)
			i := row*c.cols + col
			if c.drawn[i] == ch {
				continue
			}
			c.drawn[i] = ch
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	if c.renderBuf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// RenderBorder draws a box around the canvas area. It needs one free cell
// on every side, which Layout always leaves.
func (c *Canvas) RenderBorder(w io.Writer) error {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1
	line := strings.Repeat("─", c.cols)

	var buf strings.Builder
	fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
	fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
	for row := top + 1; row < bottom; row++ {
		fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// FieldToCell converts a field position to a 1-based canvas cell
// (col, row), before the offset is applied.
func (c *Canvas) FieldToCell(x, y float64) (col, row int) {
	p := c.toPixel(Point{x, y})
	return int(math.Floor(p.X)) + 1, int(math.Floor(p.Y))/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
