// Package object defines the simulated entities: the player ship, the enemy
// variants, bullets, power-ups, timed effects, and the cosmetic particles and
// texts. Entities embed geom.Rect; flipping Rect.Visible to false marks an
// entity dead and the simulation purges it during end-of-tick cleanup.
package object

import "math"

// VelocityToward returns a velocity of the given speed pointing from (x, y)
// to (tx, ty). Falls back to straight down when the points coincide.
func VelocityToward(x, y, tx, ty, speed float64) (vx, vy float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}

// SpreadVelocity returns a velocity of the given speed rotated angleDeg
// degrees away from straight down. Positive angles lean right.
func SpreadVelocity(speed, angleDeg float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180
	return math.Sin(rad) * speed, math.Cos(rad) * speed
}
