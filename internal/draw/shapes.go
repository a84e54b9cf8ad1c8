package draw

import "math"

// Silhouettes for the game entities. All take the logical-space bounding box
// (x, y is the top-left corner) so callers can pass snapshot rectangles
// straight through. None of them allocate; point buffers come from the
// canvas.

// Ship draws the player craft as a filled delta wing.
func Ship(c *Canvas, x, y, w, h float64) {
	cx := x + w/2

	points := c.BorrowPoints(4)
	points[0] = Point{X: cx, Y: y}                 // Nose
	points[1] = Point{X: x + w, Y: y + h}          // Right wingtip
	points[2] = Point{X: cx, Y: y + h*0.65}        // Tail notch
	points[3] = Point{X: x, Y: y + h}              // Left wingtip
	c.DrawPolygon(points, true)
}

// asteroidRadii is the tumbling-rock outline, as fractions of the half
// extents. Eight vertices gives a convincing rock at terminal resolution.
var asteroidRadii = [8]float64{1.0, 0.78, 0.92, 0.72, 0.97, 0.8, 0.88, 0.75}

// Asteroid draws a rock as an irregular octagon rotated by angle (radians).
func Asteroid(c *Canvas, x, y, w, h, angle float64) {
	cx := x + w/2
	cy := y + h/2
	rx := w / 2
	ry := h / 2

	n := len(asteroidRadii)
	points := c.BorrowPoints(n)
	for i, dist := range asteroidRadii {
		vertAngle := angle + float64(i)*2*math.Pi/float64(n)
		points[i] = Point{
			X: cx + math.Cos(vertAngle)*rx*dist,
			Y: cy + math.Sin(vertAngle)*ry*dist,
		}
	}
	c.DrawPolygon(points, false)
}

// Saucer draws a flying saucer as a filled flat hexagon.
func Saucer(c *Canvas, x, y, w, h float64) {
	cy := y + h/2

	points := c.BorrowPoints(6)
	points[0] = Point{X: x, Y: cy}                  // Left tip
	points[1] = Point{X: x + w*0.25, Y: y}          // Upper left
	points[2] = Point{X: x + w*0.75, Y: y}          // Upper right
	points[3] = Point{X: x + w, Y: cy}              // Right tip
	points[4] = Point{X: x + w*0.75, Y: y + h}      // Lower right
	points[5] = Point{X: x + w*0.25, Y: y + h}      // Lower left
	c.DrawPolygon(points, true)
}

// Warship draws the boss as a filled angular hull with twin prongs.
func Warship(c *Canvas, x, y, w, h float64) {
	cy := y + h/2

	points := c.BorrowPoints(8)
	points[0] = Point{X: x, Y: cy}                  // Left tip
	points[1] = Point{X: x + w*0.2, Y: y}           // Left prong
	points[2] = Point{X: x + w*0.4, Y: y + h*0.3}   // Left notch
	points[3] = Point{X: x + w*0.6, Y: y + h*0.3}   // Right notch
	points[4] = Point{X: x + w*0.8, Y: y}           // Right prong
	points[5] = Point{X: x + w, Y: cy}              // Right tip
	points[6] = Point{X: x + w*0.7, Y: y + h}       // Right stern
	points[7] = Point{X: x + w*0.3, Y: y + h}       // Left stern
	c.DrawPolygon(points, true)
}

// Ring draws a regular octagon outline, used for the shield bubble.
func Ring(c *Canvas, cx, cy, r float64) {
	const n = 8
	points := c.BorrowPoints(n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / n
		points[i] = Point{
			X: cx + math.Cos(angle)*r,
			Y: cy + math.Sin(angle)*r,
		}
	}
	c.DrawPolygon(points, false)
}

// Pickup draws a power-up capsule as a diamond outline.
func Pickup(c *Canvas, x, y, w, h float64) {
	cx := x + w/2
	cy := y + h/2

	points := c.BorrowPoints(4)
	points[0] = Point{X: cx, Y: y}
	points[1] = Point{X: x + w, Y: cy}
	points[2] = Point{X: cx, Y: y + h}
	points[3] = Point{X: x, Y: cy}
	c.DrawPolygon(points, false)
}
