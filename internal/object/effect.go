package object

import "github.com/SparshMishra09/Astroid-Shooter/internal/geom"

// ActiveEffect tracks one power-up currently applied to the player.
// A zero Remaining means the effect is inactive.
type ActiveEffect struct {
	Type      PowerUpType
	Remaining int
	Charges   int
}

// Active reports whether the effect still has time left.
func (e *ActiveEffect) Active() bool {
	return e.Remaining > 0
}

// Apply starts the effect or refreshes its timer when picked up again.
// Shield pickups also restore the absorb charge.
func (e *ActiveEffect) Apply(typ PowerUpType) {
	e.Type = typ
	e.Remaining = EffectDuration(typ)
	if typ == PowerShield {
		e.Charges = ShieldCharges
	}
}

// Advance counts the effect down by one tick.
func (e *ActiveEffect) Advance() {
	if e.Remaining > 0 {
		e.Remaining--
		if e.Remaining == 0 {
			e.Charges = 0
		}
	}
}

// ConsumeCharge spends one shield charge and reports whether one was
// available. The effect ends immediately when the last charge is spent.
func (e *ActiveEffect) ConsumeCharge() bool {
	if e.Remaining <= 0 || e.Charges <= 0 {
		return false
	}
	e.Charges--
	if e.Charges == 0 {
		e.Remaining = 0
	}
	return true
}

// LaserBeam is the vertical beam emitted while the laser effect is
// active. It follows the player's horizontal center and reaches from
// the top of the field down to the player.
type LaserBeam struct {
	geom.Rect
	DamageTimer int
}

// NewLaserBeam creates a beam anchored to the player's position.
func NewLaserBeam(player *Player) *LaserBeam {
	b := &LaserBeam{
		Rect: geom.NewRect(0, 0, LaserBeamWidth, 0),
	}
	b.Follow(player)
	return b
}

// Follow re-anchors the beam to the player's current position.
func (b *LaserBeam) Follow(player *Player) {
	cx, _ := player.Center()
	b.X = cx - b.W/2
	b.Y = 0
	b.H = player.Y
}

// ReadyToDamage reports whether the periodic damage interval elapsed,
// resetting the timer when it did.
func (b *LaserBeam) ReadyToDamage() bool {
	b.DamageTimer++
	if b.DamageTimer >= LaserDamageInterval {
		b.DamageTimer = 0
		return true
	}
	return false
}
