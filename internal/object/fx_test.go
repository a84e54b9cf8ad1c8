package object

import "testing"

func TestNewExplosion_EmitsRequestedParticles(t *testing.T) {
	e := NewExplosion(testRng(), 100, 100, ExplosionParticles)

	if len(e.Particles) != ExplosionParticles {
		t.Fatalf("expected %d particles, got %d", ExplosionParticles, len(e.Particles))
	}
	if !e.Alive() {
		t.Fatal("fresh explosion should be alive")
	}

	for i := 0; i < ParticleLifeTicks; i++ {
		e.Advance()
	}
	if e.Alive() {
		t.Error("explosion should burn out after the particle lifetime")
	}
}

func TestFloatingText_RisesAndFades(t *testing.T) {
	ft := NewFloatingText("+30", 100, 200)
	y := ft.Y

	ft.Advance()

	if ft.Y >= y {
		t.Errorf("text should rise, moved from %v to %v", y, ft.Y)
	}
	if !ft.Alive() {
		t.Fatal("fresh text should be alive")
	}

	for i := 0; i < FloatingTextLifeTicks; i++ {
		ft.Advance()
	}
	if ft.Alive() {
		t.Error("text should fade out after its lifetime")
	}
	if ft.Fade() != 0 {
		t.Errorf("faded text should report 0 fade, got %v", ft.Fade())
	}
}
