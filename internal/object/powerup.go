package object

import (
	"math/rand"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
)

// PowerUpType identifies a collectible effect. Effects of different types
// stack; collecting the same type again only refreshes its timer.
type PowerUpType int

const (
	PowerShield PowerUpType = iota
	PowerRapidFire
	PowerTripleShot
	PowerLaser

	NumPowerUpTypes
)

// String returns the effect name for HUD labels and floating texts.
func (t PowerUpType) String() string {
	switch t {
	case PowerShield:
		return "SHIELD"
	case PowerRapidFire:
		return "RAPID FIRE"
	case PowerTripleShot:
		return "TRIPLE SHOT"
	case PowerLaser:
		return "LASER"
	default:
		return "?"
	}
}

// Power-up tuning.
const (
	PowerUpSize      = 30.0
	PowerUpFallSpeed = 2.2
	PowerUpLifeTicks = 600 // Despawn if nobody picks it up

	// Effect durations in ticks (60 ticks = 1 s).
	ShieldDuration     = 600
	RapidFireDuration  = 480
	TripleShotDuration = 360
	LaserDuration      = 240

	ShieldCharges       = 1
	TripleShotSpreadDeg = 15.0
	LaserBeamWidth      = 6.0
	LaserDamageInterval = 10 // Ticks between laser damage applications
)

// PowerUp is a falling pickup. It dies when collected, when its life runs
// out, or when it leaves the view.
type PowerUp struct {
	geom.Rect
	Type PowerUpType
	VY   float64
	Life int
}

// NewPowerUp creates a pickup of the given type centered on (x, y).
func NewPowerUp(typ PowerUpType, x, y float64) *PowerUp {
	return &PowerUp{
		Rect: geom.NewRect(x-PowerUpSize/2, y-PowerUpSize/2, PowerUpSize, PowerUpSize),
		Type: typ,
		VY:   PowerUpFallSpeed,
		Life: PowerUpLifeTicks,
	}
}

// RandomPowerUpType draws one of the four effect types uniformly.
func RandomPowerUpType(rng *rand.Rand) PowerUpType {
	return PowerUpType(rng.Intn(int(NumPowerUpTypes)))
}

// Advance drops the pickup and burns its lifetime.
func (p *PowerUp) Advance() {
	p.Y += p.VY
	p.Life--
	if p.Life <= 0 {
		p.Visible = false
	}
}

// EffectDuration returns the active duration, in ticks, granted by a pickup
// of the given type.
func EffectDuration(typ PowerUpType) int {
	switch typ {
	case PowerShield:
		return ShieldDuration
	case PowerRapidFire:
		return RapidFireDuration
	case PowerTripleShot:
		return TripleShotDuration
	case PowerLaser:
		return LaserDuration
	default:
		return 0
	}
}
