package sim

import "github.com/SparshMishra09/Astroid-Shooter/internal/object"

// activateEffect applies a collected pickup. Different types stack; picking
// the same type again only refreshes its timer. The laser brings its beam
// entity with it.
func (s *Simulation) activateEffect(typ object.PowerUpType) {
	s.Effects[typ].Apply(typ)
	if typ == object.PowerLaser && s.Laser == nil {
		s.Laser = object.NewLaserBeam(s.Player)
	}
}

// updateEffects counts down the per-type timers and tears down whatever an
// expired effect left behind.
func (s *Simulation) updateEffects() {
	for i := range s.Effects {
		s.Effects[i].Advance()
	}
	if s.Laser != nil && !s.Effects[object.PowerLaser].Active() {
		s.Laser = nil
	}
}
