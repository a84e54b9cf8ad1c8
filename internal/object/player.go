package object

import (
	"math"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
)

// Player tuning.
const (
	PlayerWidth  = 40.0
	PlayerHeight = 30.0
	PlayerSpeed  = 10.0 // Max horizontal units per tick toward the target
	InitialLives = 3
)

// Combo tracks the hit streak that drives the score multiplier.
// Every confirmed kill deepens the streak; a miss (bullet off the top edge)
// or taking damage resets it to baseline.
type Combo struct {
	Streak      int
	Multiplier  float64
	LastShotHit bool
}

// RegisterKill extends the streak and recomputes the multiplier,
// clamped to [1.0, 3.0].
func (c *Combo) RegisterKill() {
	c.Streak++
	c.LastShotHit = true
	c.Multiplier = geom.Clamp(1.0+float64(c.Streak)*0.2, 1.0, 3.0)
}

// Reset drops the streak and multiplier back to baseline.
func (c *Combo) Reset() {
	c.Streak = 0
	c.LastShotHit = false
	c.Multiplier = 1.0
}

// Score applies the current multiplier to a base score, rounding to the
// nearest point.
func (c *Combo) Score(base int) int {
	return int(math.Round(float64(base) * c.Multiplier))
}

// Player is the ship at the bottom of the playfield. It only moves
// horizontally, sliding toward TargetX each tick; firing is automatic.
type Player struct {
	geom.Rect
	Lives        int
	Invulnerable int // Ticks of post-hit invulnerability remaining
	TargetX      float64
	Combo        Combo
}

// NewPlayer creates the ship centered horizontally near the bottom of view.
func NewPlayer(view geom.Size) *Player {
	x := view.W/2 - PlayerWidth/2
	y := view.H - PlayerHeight*2.5
	return &Player{
		Rect:    geom.NewRect(x, y, PlayerWidth, PlayerHeight),
		Lives:   InitialLives,
		TargetX: x + PlayerWidth/2,
		Combo:   Combo{Multiplier: 1.0},
	}
}

// Advance slides the ship toward TargetX, capped at PlayerSpeed per tick and
// clamped to the current view, and counts down invulnerability.
func (p *Player) Advance(view geom.Size) {
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}

	target := geom.Clamp(p.TargetX-p.W/2, 0, view.W-p.W)
	dx := target - p.X
	if dx > PlayerSpeed {
		dx = PlayerSpeed
	} else if dx < -PlayerSpeed {
		dx = -PlayerSpeed
	}
	p.X += dx

	// The view can shrink between ticks (rotation); stay inside it.
	p.X = geom.Clamp(p.X, 0, view.W-p.W)
	p.Y = view.H - PlayerHeight*2.5
}

// IsInvulnerable reports whether the ship currently ignores contact damage.
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}
