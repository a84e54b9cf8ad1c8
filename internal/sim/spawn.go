package sim

import "github.com/SparshMishra09/Astroid-Shooter/internal/object"

// spawnBands holds the special-enemy probability band widths, in percent,
// for one wave tier. The draw walks them cumulatively in fixed order:
// small-fast, then huge-slow, then UFO. A roll past all bands spawns nothing.
type spawnBands struct {
	Small, Huge, UFO float64
}

// bandsForWave returns the band widths of the wave's difficulty tier.
func bandsForWave(wave int) spawnBands {
	switch {
	case wave <= 1:
		return spawnBands{}
	case wave <= 3:
		return spawnBands{Small: 15}
	case wave <= 5:
		return spawnBands{Small: 10, Huge: 5}
	case wave <= 8:
		return spawnBands{Small: 15, Huge: 8, UFO: 3}
	case wave <= 12:
		return spawnBands{Small: 20, Huge: 12, UFO: 5}
	default:
		return spawnBands{Small: 25, Huge: 15, UFO: 8}
	}
}

// asteroidInterval returns the plain-asteroid spawn period for a wave.
func asteroidInterval(wave int) int {
	iv := AsteroidBaseInterval - wave*AsteroidIntervalStep
	if iv < AsteroidMinInterval {
		iv = AsteroidMinInterval
	}
	return iv
}

// specialInterval returns the special-enemy decision period for a wave.
func specialInterval(wave int) int {
	iv := SpecialBaseInterval - (wave-1)*SpecialIntervalStep
	if iv < SpecialMinInterval {
		iv = SpecialMinInterval
	}
	return iv
}

// drainPending merges enemies buffered during the previous tick's collision
// phase into the live list. Runs before anything iterates the enemies.
func (s *Simulation) drainPending() {
	if len(s.pending) == 0 {
		return
	}
	s.Enemies = append(s.Enemies, s.pending...)
	s.pending = s.pending[:0]
}

// autoFire emits the player's shots on the fire cadence, halved while
// rapid-fire is active and fanned out to three bullets under triple-shot.
func (s *Simulation) autoFire() {
	interval := FireInterval
	if s.Effects[object.PowerRapidFire].Active() {
		interval = RapidFireInterval
	}
	s.fireTimer++
	if s.fireTimer < interval {
		return
	}
	s.fireTimer = 0

	cx, _ := s.Player.Center()
	s.Bullets = append(s.Bullets, object.NewBullet(cx, s.Player.Y))
	if s.Effects[object.PowerTripleShot].Active() {
		s.Bullets = append(s.Bullets,
			object.NewAngledBullet(cx, s.Player.Y, -object.TripleShotSpreadDeg),
			object.NewAngledBullet(cx, s.Player.Y, object.TripleShotSpreadDeg))
	}
}

// spawnAsteroids drops a plain asteroid at a random column whenever the
// wave-scaled timer fires.
func (s *Simulation) spawnAsteroids() {
	s.asteroidTimer++
	if s.asteroidTimer < asteroidInterval(s.Wave) {
		return
	}
	s.asteroidTimer = 0

	x := s.rng.Float64() * (s.view.W - object.AsteroidSize)
	s.Asteroids = append(s.Asteroids, object.NewAsteroid(s.rng, object.EnemyAsteroid, x))
}

// bossAlive reports whether a boss is currently on the field.
func (s *Simulation) bossAlive() bool {
	for _, e := range s.Enemies {
		if e.Kind == object.EnemyBoss && e.Visible {
			return true
		}
	}
	return false
}

// spawnSpecials runs the special-enemy decision tick: while a boss lives
// nothing else spawns, a full kill counter forces the next boss, and
// otherwise one banded random draw picks at most one variant.
func (s *Simulation) spawnSpecials() {
	s.specialTimer++
	if s.specialTimer < specialInterval(s.Wave) {
		return
	}
	s.specialTimer = 0

	if s.bossAlive() {
		return
	}
	if s.KillsSinceBoss >= BossKillThreshold {
		s.KillsSinceBoss = 0
		s.Enemies = append(s.Enemies, object.NewBoss(s.view, s.BossesDefeated))
		return
	}

	bands := bandsForWave(s.Wave)
	roll := s.rng.Float64() * 100
	switch {
	case roll < bands.Small:
		x := s.rng.Float64() * (s.view.W - object.SmallAsteroidSize)
		s.Enemies = append(s.Enemies, object.NewAsteroid(s.rng, object.EnemySmallAsteroid, x))
	case roll < bands.Small+bands.Huge:
		x := s.rng.Float64() * (s.view.W - object.HugeAsteroidSize)
		s.Enemies = append(s.Enemies, object.NewAsteroid(s.rng, object.EnemyHugeAsteroid, x))
	case roll < bands.Small+bands.Huge+bands.UFO:
		s.Enemies = append(s.Enemies, object.NewUFO(s.rng, s.view))
	}
}
