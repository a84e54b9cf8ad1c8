package object

import (
	"math"
	"math/rand"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
)

// EnemyKind selects the behavior and stats of an Enemy. All enemies share one
// struct; the kind tag picks the movement and shooting variant.
type EnemyKind int

const (
	EnemyAsteroid EnemyKind = iota
	EnemySmallAsteroid
	EnemyHugeAsteroid
	EnemyUFO
	EnemyBoss
)

// String returns the kind name for logs and HUD labels.
func (k EnemyKind) String() string {
	switch k {
	case EnemyAsteroid:
		return "asteroid"
	case EnemySmallAsteroid:
		return "small-asteroid"
	case EnemyHugeAsteroid:
		return "huge-asteroid"
	case EnemyUFO:
		return "ufo"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy tuning. Sizes and speeds are in logical units (480×800 playfield).
const (
	AsteroidSize      = 40.0
	AsteroidBaseSpeed = 2.6 // Units per tick straight down

	SmallAsteroidSize  = AsteroidSize / 2
	SmallAsteroidSpeed = AsteroidBaseSpeed * 1.8

	HugeAsteroidSize   = AsteroidSize * 2
	HugeAsteroidSpeed  = AsteroidBaseSpeed * 0.5
	HugeAsteroidHealth = 3

	UFOWidth       = 60.0
	UFOHeight      = 30.0
	UFOPatrolSpeed = 2.5
	UFODriftSpeed  = 0.5
	UFOHealth      = 5
	UFOShotTicks   = 90

	BossWidth           = 120.0
	BossHeight          = 50.0
	BossPatrolSpeed     = 2.0
	BossBaseY           = 80.0
	BossZigzagAmplitude = 50.0
	BossZigzagRate      = 0.05
	BossBaseHealth      = 20
	BossMaxHealth       = 50
	BossShotTicks       = 60
	BossSpreadDegrees   = 20.0
)

// Score values per kind.
const (
	ScoreAsteroid      = 10
	ScoreSmallAsteroid = 15
	ScoreHugeAsteroid  = 30
	ScoreUFO           = 50
	ScoreBoss          = 200
)

// Enemy is any hostile entity: the three asteroid variants, the patrolling
// UFO, and the boss. Rotation fields only matter for asteroids; patrol,
// shooting, and zigzag fields only for UFOs and the boss.
type Enemy struct {
	geom.Rect
	Kind          EnemyKind
	VX, VY        float64
	Angle         float64 // Current rotation in radians (asteroids)
	RotationSpeed float64 // Radians per tick (asteroids)
	Health        int
	MaxHealth     int
	ScoreValue    int
	ShotTimer     int     // Ticks since the last shot (UFO, boss)
	BaseY         float64 // Zigzag anchor (boss)
	Age           int     // Ticks alive, drives the boss zigzag
}

// NewAsteroid creates one of the asteroid variants with its top edge just
// above the view, horizontally at x.
func NewAsteroid(rng *rand.Rand, kind EnemyKind, x float64) *Enemy {
	var size, speed float64
	health := 1
	score := ScoreAsteroid

	switch kind {
	case EnemySmallAsteroid:
		size, speed = SmallAsteroidSize, SmallAsteroidSpeed
		score = ScoreSmallAsteroid
	case EnemyHugeAsteroid:
		size, speed = HugeAsteroidSize, HugeAsteroidSpeed
		health = HugeAsteroidHealth
		score = ScoreHugeAsteroid
	default:
		kind = EnemyAsteroid
		size, speed = AsteroidSize, AsteroidBaseSpeed
	}

	return &Enemy{
		Rect:          geom.NewRect(x, -size, size, size),
		Kind:          kind,
		VY:            speed,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.1,
		Health:        health,
		MaxHealth:     health,
		ScoreValue:    score,
	}
}

// NewSplitAsteroid creates a small-fast asteroid at an explicit position,
// used when a huge asteroid breaks apart.
func NewSplitAsteroid(rng *rand.Rand, x, y float64) *Enemy {
	e := NewAsteroid(rng, EnemySmallAsteroid, x)
	e.Y = y
	return e
}

// NewUFO creates a UFO entering from a horizontal edge of the view.
func NewUFO(rng *rand.Rand, view geom.Size) *Enemy {
	x := 0.0
	vx := UFOPatrolSpeed
	if rng.Intn(2) == 1 {
		x = view.W - UFOWidth
		vx = -UFOPatrolSpeed
	}
	return &Enemy{
		Rect:       geom.NewRect(x, UFOHeight, UFOWidth, UFOHeight),
		Kind:       EnemyUFO,
		VX:         vx,
		VY:         UFODriftSpeed,
		Health:     UFOHealth,
		MaxHealth:  UFOHealth,
		ScoreValue: ScoreUFO,
	}
}

// NewBoss creates the boss centered at the top. Health grows with every boss
// already defeated this session, capped at BossMaxHealth.
func NewBoss(view geom.Size, bossesDefeated int) *Enemy {
	health := geom.ClampInt(BossBaseHealth+bossesDefeated*10, BossBaseHealth, BossMaxHealth)
	return &Enemy{
		Rect:       geom.NewRect(view.W/2-BossWidth/2, BossBaseY, BossWidth, BossHeight),
		Kind:       EnemyBoss,
		VX:         BossPatrolSpeed,
		Health:     health,
		MaxHealth:  health,
		ScoreValue: ScoreBoss,
		BaseY:      BossBaseY,
	}
}

// Advance moves the enemy one tick according to its kind.
func (e *Enemy) Advance(view geom.Size) {
	e.Age++

	switch e.Kind {
	case EnemyUFO:
		e.X += e.VX
		if e.X <= 0 || e.X+e.W >= view.W {
			e.X = geom.Clamp(e.X, 0, view.W-e.W)
			e.VX = -e.VX
		}
		e.Y += e.VY
	case EnemyBoss:
		e.X += e.VX
		if e.X <= 0 || e.X+e.W >= view.W {
			e.X = geom.Clamp(e.X, 0, view.W-e.W)
			e.VX = -e.VX
		}
		e.Y = e.BaseY + math.Sin(float64(e.Age)*BossZigzagRate)*BossZigzagAmplitude
	default:
		e.Y += e.VY
		e.Angle += e.RotationSpeed
	}

	e.ShotTimer++
}

// ReadyToFire reports whether a shooting kind has reached its fire interval
// and resets the interval timer when it has.
func (e *Enemy) ReadyToFire() bool {
	var interval int
	switch e.Kind {
	case EnemyUFO:
		interval = UFOShotTicks
	case EnemyBoss:
		interval = BossShotTicks
	default:
		return false
	}
	if e.ShotTimer < interval {
		return false
	}
	e.ShotTimer = 0
	return true
}

// Damage applies hits to the enemy. At zero health the enemy is marked dead
// (Visible=false, irreversible) and Damage reports the kill.
func (e *Enemy) Damage(points int) (killed bool) {
	if !e.Visible || e.Health <= 0 {
		return false
	}
	e.Health -= points
	if e.Health <= 0 {
		e.Visible = false
		return true
	}
	return false
}
