package sim

import "github.com/SparshMishra09/Astroid-Shooter/internal/object"

// updatePlayer runs the invulnerability countdown and the slide toward the
// input target, then re-anchors the laser beam to the new position.
func (s *Simulation) updatePlayer() {
	s.Player.Advance(s.view)
	if s.Laser != nil {
		s.Laser.Follow(s.Player)
	}
}

// updateAsteroids advances the plain asteroids and culls the ones that fell
// out of the view.
func (s *Simulation) updateAsteroids() {
	for _, a := range s.Asteroids {
		a.Advance(s.view)
		if a.Outside(s.view.W, s.view.H, OffscreenMargin) {
			a.Visible = false
		}
	}
}

// updateEnemies advances the special enemies and lets the shooting kinds
// fire on their intervals.
func (s *Simulation) updateEnemies() {
	for _, e := range s.Enemies {
		if !e.Visible {
			continue
		}
		e.Advance(s.view)
		if e.Outside(s.view.W, s.view.H, OffscreenMargin) {
			e.Visible = false
			continue
		}
		if e.ReadyToFire() {
			s.enemyFire(e)
		}
	}
}

// enemyFire emits the kind's shot pattern: UFOs aim a single bullet at the
// player, the boss fires a three-way spread downward.
func (s *Simulation) enemyFire(e *object.Enemy) {
	cx, _ := e.Center()
	muzzleY := e.Y + e.H

	switch e.Kind {
	case object.EnemyUFO:
		px, py := s.Player.Center()
		vx, vy := object.VelocityToward(cx, muzzleY, px, py, object.EnemyBulletSpeed)
		s.EnemyBullets = append(s.EnemyBullets, object.NewEnemyBullet(cx, muzzleY, vx, vy))
	case object.EnemyBoss:
		for _, deg := range []float64{-object.BossSpreadDegrees, 0, object.BossSpreadDegrees} {
			vx, vy := object.SpreadVelocity(object.EnemyBulletSpeed, deg)
			s.EnemyBullets = append(s.EnemyBullets, object.NewEnemyBullet(cx, muzzleY, vx, vy))
		}
	}
}

// updateBullets moves every bullet and culls the ones that left the view.
// Which player bullets left through the top is decided later, in cleanup.
func (s *Simulation) updateBullets() {
	for _, b := range s.Bullets {
		b.Advance()
		if b.Outside(s.view.W, s.view.H, OffscreenMargin) {
			b.Visible = false
		}
	}
	for _, b := range s.EnemyBullets {
		b.Advance()
		if b.Outside(s.view.W, s.view.H, OffscreenMargin) {
			b.Visible = false
		}
	}
}

// updatePowerUps advances the falling pickups and the active effect timers.
func (s *Simulation) updatePowerUps() {
	for _, p := range s.PowerUps {
		p.Advance()
		if p.Outside(s.view.W, s.view.H, OffscreenMargin) {
			p.Visible = false
		}
	}
	s.updateEffects()
}

// updateFX advances the cosmetic entities.
func (s *Simulation) updateFX() {
	for _, e := range s.Explosions {
		e.Advance()
	}
	for _, t := range s.Texts {
		t.Advance()
	}
	for _, h := range s.Hits {
		h.Advance()
	}
}

// cleanup purges everything that died this tick, reusing the backing arrays.
// A player bullet purged after crossing the top edge is a miss and resets
// the combo streak.
func (s *Simulation) cleanup() {
	keptBullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Visible {
			keptBullets = append(keptBullets, b)
			continue
		}
		if b.CrossedTop() {
			s.Player.Combo.Reset()
		}
	}
	s.Bullets = keptBullets

	keptAsteroids := s.Asteroids[:0]
	for _, a := range s.Asteroids {
		if a.Visible {
			keptAsteroids = append(keptAsteroids, a)
		}
	}
	s.Asteroids = keptAsteroids

	keptEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Visible {
			keptEnemies = append(keptEnemies, e)
		}
	}
	s.Enemies = keptEnemies

	keptShots := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		if b.Visible {
			keptShots = append(keptShots, b)
		}
	}
	s.EnemyBullets = keptShots

	keptPowerUps := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		if p.Visible {
			keptPowerUps = append(keptPowerUps, p)
		}
	}
	s.PowerUps = keptPowerUps

	keptExplosions := s.Explosions[:0]
	for _, e := range s.Explosions {
		if e.Alive() {
			keptExplosions = append(keptExplosions, e)
		}
	}
	s.Explosions = keptExplosions

	keptTexts := s.Texts[:0]
	for _, t := range s.Texts {
		if t.Alive() {
			keptTexts = append(keptTexts, t)
		}
	}
	s.Texts = keptTexts

	keptHits := s.Hits[:0]
	for _, h := range s.Hits {
		if h.Alive() {
			keptHits = append(keptHits, h)
		}
	}
	s.Hits = keptHits
}
