// Package sim implements the fixed-tick shooter simulation: entity
// collections, the wave state machine, spawn policy, collision resolution,
// and scoring. The engine is advanced by an external scheduler calling Tick
// at 60 Hz; it never blocks, draws, or touches I/O.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/physics"
)

// Simulation owns every entity collection and timer of one game session.
// It advances strictly tick-by-tick on one goroutine; the caller must finish
// one Tick before starting the next and must not mutate the collections.
type Simulation struct {
	rng  *rand.Rand
	view geom.Size
	grid *physics.Grid // Broad phase for the bullet sweeps, rebuilt per use

	Player       *object.Player
	Asteroids    []*object.Enemy // Plain asteroids from the asteroid timer
	Enemies      []*object.Enemy // Special variants from the spawn decision ticks
	Bullets      []*object.Bullet
	EnemyBullets []*object.EnemyBullet
	PowerUps     []*object.PowerUp
	Effects      [object.NumPowerUpTypes]object.ActiveEffect
	Laser        *object.LaserBeam

	Explosions []*object.Explosion
	Texts      []*object.FloatingText
	Hits       []*object.HitEffect

	// Enemies created mid-iteration (asteroid splits) wait here until the
	// next tick's spawn phase.
	pending []*object.Enemy

	Score     int
	HighScore int
	GameOver  bool
	Paused    bool

	Wave              int
	WaveTimer         int
	BreakTimer        int
	InBreak           bool
	WaveStartTimer    int // Non-blocking "WAVE N" banner countdown
	WaveCompleteTimer int // Non-blocking "WAVE COMPLETE" banner countdown
	breakBonusDone    bool

	fireTimer     int
	asteroidTimer int
	specialTimer  int

	KillsSinceBoss int
	BossesDefeated int

	started bool
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithSeed makes every random draw of the session reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// NewSimulation creates an engine. StartSession must run before the first
// Tick.
func NewSimulation(opts ...Option) *Simulation {
	s := &Simulation{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession validates the view and initializes a fresh session: wave 1,
// full lives, an empty field, and the wave-start banner running. The high
// score survives across sessions.
func (s *Simulation) StartSession(view geom.Size) error {
	if !view.Valid() {
		return fmt.Errorf("sim: invalid view %gx%g", view.W, view.H)
	}
	s.view = view

	s.Player = object.NewPlayer(view)
	s.Asteroids = nil
	s.Enemies = nil
	s.Bullets = nil
	s.EnemyBullets = nil
	s.PowerUps = nil
	s.Effects = [object.NumPowerUpTypes]object.ActiveEffect{}
	s.Laser = nil
	s.Explosions = nil
	s.Texts = nil
	s.Hits = nil
	s.pending = nil

	s.Score = 0
	s.GameOver = false
	s.Paused = false

	s.Wave = 1
	s.WaveTimer = 0
	s.BreakTimer = 0
	s.InBreak = false
	s.WaveStartTimer = WaveStartBannerTicks
	s.WaveCompleteTimer = 0
	s.breakBonusDone = false

	s.fireTimer = 0
	s.asteroidTimer = 0
	s.specialTimer = 0
	s.KillsSinceBoss = 0
	s.BossesDefeated = 0

	s.started = true
	return nil
}

// Restart discards all session state and begins again from wave 1.
func (s *Simulation) Restart(view geom.Size) error {
	return s.StartSession(view)
}

// SetTargetX feeds the horizontal input target for the next ticks. The value
// may lie outside the view; movement clamps against the live bounds.
func (s *Simulation) SetTargetX(x float64) {
	if s.Player != nil {
		s.Player.TargetX = x
	}
}

// TogglePause freezes or resumes the session. Everything, timers included,
// stops while paused. A finished session cannot be paused.
func (s *Simulation) TogglePause() {
	if !s.started || s.GameOver {
		return
	}
	s.Paused = !s.Paused
}

// SetHighScore seeds the best score loaded from the score store.
func (s *Simulation) SetHighScore(score int) {
	if score > s.HighScore {
		s.HighScore = score
	}
}

// Tick advances the simulation by one fixed step. It is a no-op before
// StartSession, while paused, and after game over. The view is re-read every
// tick so spawn and bounds logic track live resizes.
func (s *Simulation) Tick(view geom.Size) {
	if !s.started || s.Paused || s.GameOver {
		return
	}
	if view.Valid() {
		s.view = view
	}

	// Phase 1: wave state machine.
	s.advanceWave()

	// Phase 2: firing and spawning, suspended during a wave break.
	s.drainPending()
	if s.InBreak {
		s.breakSpawns()
		s.updatePowerUps()
		s.updateEnemies()
	} else {
		s.autoFire()
		s.spawnAsteroids()
		s.updatePowerUps()
		s.spawnSpecials()
		s.updateEnemies()
	}

	// Phase 3: movement.
	s.updatePlayer()
	s.updateAsteroids()
	s.updateBullets()
	s.updateFX()

	// Phase 4: collision resolution.
	s.resolveCollisions()

	// Phase 5: purge everything that died this tick.
	s.cleanup()
}

// addScore adds points and keeps the running high score current.
func (s *Simulation) addScore(points int) {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}
