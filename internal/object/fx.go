package object

import (
	"math"
	"math/rand"
)

const (
	ExplosionParticles     = 12
	BossExplosionParticles = 20
	ParticleLifeTicks      = 30
	ParticleMinSpeed       = 1.0
	ParticleMaxSpeed       = 4.0
	ParticleSize           = 4.0

	FloatingTextLifeTicks = 45
	FloatingTextRiseSpeed = 0.8

	HitEffectLifeTicks = 8
	HitEffectSize      = 12.0
)

// Particle is a short-lived fragment thrown out by an explosion.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    int
	MaxLife int
}

// Advance moves the particle and counts its lifetime down.
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	if p.Life > 0 {
		p.Life--
	}
}

// Alive reports whether the particle should still be drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Fade is the remaining lifetime as a 0..1 fraction.
func (p *Particle) Fade() float64 {
	if p.MaxLife == 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Explosion is a burst of particles radiating from a destroyed object.
type Explosion struct {
	Particles []Particle
}

// NewExplosion creates a burst of count particles centered on x, y.
func NewExplosion(rng *rand.Rand, x, y float64, count int) *Explosion {
	e := &Explosion{Particles: make([]Particle, count)}
	for i := range e.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := ParticleMinSpeed + rng.Float64()*(ParticleMaxSpeed-ParticleMinSpeed)
		e.Particles[i] = Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    ParticleSize,
			Life:    ParticleLifeTicks,
			MaxLife: ParticleLifeTicks,
		}
	}
	return e
}

// Advance steps every particle in the burst.
func (e *Explosion) Advance() {
	for i := range e.Particles {
		e.Particles[i].Advance()
	}
}

// Alive reports whether any particle in the burst is still visible.
func (e *Explosion) Alive() bool {
	for i := range e.Particles {
		if e.Particles[i].Alive() {
			return true
		}
	}
	return false
}

// FloatingText is a score popup that drifts upward and fades out.
type FloatingText struct {
	Text    string
	X, Y    float64
	Life    int
	MaxLife int
}

// NewFloatingText creates a popup at x, y.
func NewFloatingText(text string, x, y float64) *FloatingText {
	return &FloatingText{
		Text:    text,
		X:       x,
		Y:       y,
		Life:    FloatingTextLifeTicks,
		MaxLife: FloatingTextLifeTicks,
	}
}

// Advance drifts the text upward and counts its lifetime down.
func (t *FloatingText) Advance() {
	t.Y -= FloatingTextRiseSpeed
	if t.Life > 0 {
		t.Life--
	}
}

// Alive reports whether the popup should still be drawn.
func (t *FloatingText) Alive() bool {
	return t.Life > 0
}

// Fade is the remaining lifetime as a 0..1 fraction.
func (t *FloatingText) Fade() float64 {
	if t.MaxLife == 0 {
		return 0
	}
	return float64(t.Life) / float64(t.MaxLife)
}

// HitEffect is a brief flash drawn where a bullet struck something
// without destroying it.
type HitEffect struct {
	X, Y float64
	Life int
}

// NewHitEffect creates a flash at x, y.
func NewHitEffect(x, y float64) *HitEffect {
	return &HitEffect{X: x, Y: y, Life: HitEffectLifeTicks}
}

// Advance counts the flash down.
func (h *HitEffect) Advance() {
	if h.Life > 0 {
		h.Life--
	}
}

// Alive reports whether the flash should still be drawn.
func (h *HitEffect) Alive() bool {
	return h.Life > 0
}
