package sim

import (
	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
)

// Snapshot is a value copy of everything a renderer needs for one frame.
// Mutating a snapshot never touches the live simulation.
type Snapshot struct {
	View    geom.Size
	Started bool

	Player       object.Player
	Asteroids    []object.Enemy
	Enemies      []object.Enemy
	Bullets      []object.Bullet
	EnemyBullets []object.EnemyBullet
	PowerUps     []object.PowerUp
	Effects      [object.NumPowerUpTypes]object.ActiveEffect
	Laser        object.LaserBeam
	HasLaser     bool

	Particles []object.Particle
	Texts     []object.FloatingText
	Hits      []object.HitEffect

	Score     int
	HighScore int
	Wave      int
	GameOver  bool
	Paused    bool

	InBreak           bool
	BreakTimer        int
	WaveStartTimer    int
	WaveCompleteTimer int
}

// Snapshot captures the current state for rendering. Only visible entities
// and still-burning effects are included.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		View:              s.view,
		Started:           s.started,
		Effects:           s.Effects,
		Score:             s.Score,
		HighScore:         s.HighScore,
		Wave:              s.Wave,
		GameOver:          s.GameOver,
		Paused:            s.Paused,
		InBreak:           s.InBreak,
		BreakTimer:        s.BreakTimer,
		WaveStartTimer:    s.WaveStartTimer,
		WaveCompleteTimer: s.WaveCompleteTimer,
	}
	if s.Player != nil {
		snap.Player = *s.Player
	}
	if s.Laser != nil {
		snap.Laser = *s.Laser
		snap.HasLaser = true
	}

	snap.Asteroids = copyEnemies(s.Asteroids)
	snap.Enemies = copyEnemies(s.Enemies)

	for _, b := range s.Bullets {
		if b.Visible {
			snap.Bullets = append(snap.Bullets, *b)
		}
	}
	for _, b := range s.EnemyBullets {
		if b.Visible {
			snap.EnemyBullets = append(snap.EnemyBullets, *b)
		}
	}
	for _, p := range s.PowerUps {
		if p.Visible {
			snap.PowerUps = append(snap.PowerUps, *p)
		}
	}
	for _, e := range s.Explosions {
		for _, pt := range e.Particles {
			if pt.Alive() {
				snap.Particles = append(snap.Particles, pt)
			}
		}
	}
	for _, t := range s.Texts {
		if t.Alive() {
			snap.Texts = append(snap.Texts, *t)
		}
	}
	for _, h := range s.Hits {
		if h.Alive() {
			snap.Hits = append(snap.Hits, *h)
		}
	}
	return snap
}

// copyEnemies value-copies the visible entries of an enemy list.
func copyEnemies(src []*object.Enemy) []object.Enemy {
	if len(src) == 0 {
		return nil
	}
	out := make([]object.Enemy, 0, len(src))
	for _, e := range src {
		if e.Visible {
			out = append(out, *e)
		}
	}
	return out
}
