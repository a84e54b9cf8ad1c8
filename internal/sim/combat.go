package sim

import (
	"fmt"

	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/physics"
)

// resolveCollisions runs the pairwise checks in a fixed order: player
// bullets against asteroids, then against the special enemies, the laser
// beam, pickups, and finally the threats against the player. Dead entities
// never match; Overlaps requires both sides visible.
func (s *Simulation) resolveCollisions() {
	s.bulletsVsAsteroids()
	s.bulletsVsEnemies()
	s.laserVsTargets()
	s.playerVsPowerUps()
	s.playerVsThreats()
}

// indexEnemies loads the broad-phase grid with the centers of the visible
// entries of an enemy list. Candidates come back in slice order, so sweeps
// over them resolve exactly like a full scan.
func (s *Simulation) indexEnemies(list []*object.Enemy) *physics.Grid {
	if s.grid == nil {
		s.grid = physics.NewGrid(s.view.W, s.view.H, CollisionCellSize)
	} else {
		s.grid.Reset(s.view.W, s.view.H)
	}
	for i, e := range list {
		if e.Visible {
			cx, cy := e.Center()
			s.grid.Insert(cx, cy, i)
		}
	}
	return s.grid
}

// bulletsVsAsteroids kills both sides of every bullet/asteroid overlap.
// Scoring uses the multiplier as it stood before the kill extends the streak.
func (s *Simulation) bulletsVsAsteroids() {
	if len(s.Bullets) == 0 || len(s.Asteroids) == 0 {
		return
	}
	grid := s.indexEnemies(s.Asteroids)
	for _, b := range s.Bullets {
		if !b.Visible {
			continue
		}
		cx, cy := b.Center()
		for _, i := range grid.Candidates(cx, cy) {
			a := s.Asteroids[i]
			if !b.Rect.Overlaps(a.Rect) {
				continue
			}
			b.Visible = false
			a.Damage(a.Health)

			points := s.Player.Combo.Score(a.ScoreValue)
			s.Player.Combo.RegisterKill()
			s.addScore(points)
			s.onKill(a, points)
			break
		}
	}
}

// bulletsVsEnemies applies one damage per bullet to the special enemies.
func (s *Simulation) bulletsVsEnemies() {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return
	}
	grid := s.indexEnemies(s.Enemies)
	for _, b := range s.Bullets {
		if !b.Visible {
			continue
		}
		cx, cy := b.Center()
		for _, i := range grid.Candidates(cx, cy) {
			e := s.Enemies[i]
			if !b.Rect.Overlaps(e.Rect) {
				continue
			}
			b.Visible = false
			s.hitEnemy(e, 1, true)
			break
		}
	}
}

// laserVsTargets damages everything under the beam on the laser's damage
// interval. Laser kills score their raw value and never touch the combo.
func (s *Simulation) laserVsTargets() {
	if s.Laser == nil || !s.Laser.ReadyToDamage() {
		return
	}
	for _, a := range s.Asteroids {
		if !s.Laser.Rect.Overlaps(a.Rect) {
			continue
		}
		if a.Damage(1) {
			s.addScore(a.ScoreValue)
			s.onKill(a, a.ScoreValue)
		}
	}
	for _, e := range s.Enemies {
		if s.Laser.Rect.Overlaps(e.Rect) {
			s.hitEnemy(e, 1, false)
		}
	}
}

// hitEnemy applies damage to a special enemy and, on death, the scoring and
// follow-up spawns. combo selects whether the kill runs through the combo
// multiplier; boss fights never do.
func (s *Simulation) hitEnemy(e *object.Enemy, damage int, combo bool) {
	if e.Kind == object.EnemyBoss {
		if e.Damage(damage) {
			s.defeatBoss(e)
		} else {
			cx, cy := e.Center()
			s.Hits = append(s.Hits, object.NewHitEffect(cx, cy))
		}
		return
	}

	if !e.Damage(damage) {
		cx, cy := e.Center()
		s.Hits = append(s.Hits, object.NewHitEffect(cx, cy))
		return
	}

	points := e.ScoreValue
	if combo {
		points = s.Player.Combo.Score(e.ScoreValue)
		s.Player.Combo.RegisterKill()
	}
	s.addScore(points)
	s.onKill(e, points)

	if e.Kind == object.EnemyHugeAsteroid {
		s.queueSplit(e)
	}
}

// onKill applies the shared death effects: the boss kill counter, a small
// explosion, the score popup, and the power-up drop roll.
func (s *Simulation) onKill(e *object.Enemy, points int) {
	s.KillsSinceBoss++

	cx, cy := e.Center()
	s.Explosions = append(s.Explosions, object.NewExplosion(s.rng, cx, cy, object.ExplosionParticles))
	if points > 0 {
		s.Texts = append(s.Texts, object.NewFloatingText(fmt.Sprintf("+%d", points), cx, cy))
	}
	if s.rng.Float64() < PowerUpDropChance {
		s.PowerUps = append(s.PowerUps, object.NewPowerUp(object.RandomPowerUpType(s.rng), cx, cy))
	}
}

// queueSplit buffers the two small-fast fragments of a huge asteroid for the
// next tick's spawn phase; the enemy list is being iterated right now.
func (s *Simulation) queueSplit(e *object.Enemy) {
	cx, cy := e.Center()
	s.pending = append(s.pending,
		object.NewSplitAsteroid(s.rng, cx-object.SmallAsteroidSize, cy),
		object.NewSplitAsteroid(s.rng, cx, cy))
}

// defeatBoss awards the raw boss bounty and drops its guaranteed pickups.
func (s *Simulation) defeatBoss(e *object.Enemy) {
	s.BossesDefeated++
	s.KillsSinceBoss++
	s.addScore(e.ScoreValue)

	cx, cy := e.Center()
	s.Explosions = append(s.Explosions, object.NewExplosion(s.rng, cx, cy, object.BossExplosionParticles))
	s.Texts = append(s.Texts, object.NewFloatingText(fmt.Sprintf("+%d", e.ScoreValue), cx, cy))

	for i := 0; i < BossPowerUpDrops; i++ {
		x := cx + (s.rng.Float64()-0.5)*e.W
		s.PowerUps = append(s.PowerUps, object.NewPowerUp(object.RandomPowerUpType(s.rng), x, cy))
	}
}

// playerVsPowerUps collects every pickup the ship touches.
func (s *Simulation) playerVsPowerUps() {
	for _, p := range s.PowerUps {
		if !s.Player.Rect.Overlaps(p.Rect) {
			continue
		}
		p.Visible = false
		s.activateEffect(p.Type)

		cx, cy := p.Center()
		s.Texts = append(s.Texts, object.NewFloatingText(p.Type.String(), cx, cy))
	}
}

// playerVsThreats checks the ship against enemy bullets, asteroids, and
// enemies. An invulnerable ship skips contact checks entirely. Everything
// that connects dies with the hit, except the boss.
func (s *Simulation) playerVsThreats() {
	if s.Player.IsInvulnerable() {
		return
	}

	for _, b := range s.EnemyBullets {
		if !s.Player.Rect.Overlaps(b.Rect) {
			continue
		}
		b.Visible = false
		if s.contactHit() {
			return
		}
	}
	for _, a := range s.Asteroids {
		if !s.Player.Rect.Overlaps(a.Rect) {
			continue
		}
		a.Visible = false
		cx, cy := a.Center()
		s.Explosions = append(s.Explosions, object.NewExplosion(s.rng, cx, cy, object.ExplosionParticles))
		if s.contactHit() {
			return
		}
	}
	for _, e := range s.Enemies {
		if !s.Player.Rect.Overlaps(e.Rect) {
			continue
		}
		if e.Kind != object.EnemyBoss {
			e.Visible = false
			cx, cy := e.Center()
			s.Explosions = append(s.Explosions, object.NewExplosion(s.rng, cx, cy, object.ExplosionParticles))
		}
		if s.contactHit() {
			return
		}
	}
}

// contactHit applies one contact hit to the player and reports whether the
// remaining threat checks should stop this tick. A shield charge absorbs the
// hit without damage or combo loss; otherwise a life goes, invulnerability
// starts, and the streak resets. Zero lives ends the session.
func (s *Simulation) contactHit() bool {
	cx, cy := s.Player.Center()

	if s.Effects[object.PowerShield].ConsumeCharge() {
		s.Texts = append(s.Texts, object.NewFloatingText("BLOCKED", cx, cy))
		return false
	}

	s.Player.Lives--
	s.Player.Invulnerable = InvulnerabilityTicks
	s.Player.Combo.Reset()
	s.Explosions = append(s.Explosions, object.NewExplosion(s.rng, cx, cy, object.ExplosionParticles))

	if s.Player.Lives <= 0 {
		s.GameOver = true
		s.Player.Visible = false
	}
	return true
}
