package object

import (
	"math"
	"math/rand"
	"testing"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewAsteroid_VariantStats(t *testing.T) {
	tests := []struct {
		name   string
		kind   EnemyKind
		size   float64
		speed  float64
		health int
		score  int
	}{
		{"plain", EnemyAsteroid, AsteroidSize, AsteroidBaseSpeed, 1, ScoreAsteroid},
		{"small", EnemySmallAsteroid, SmallAsteroidSize, SmallAsteroidSpeed, 1, ScoreSmallAsteroid},
		{"huge", EnemyHugeAsteroid, HugeAsteroidSize, HugeAsteroidSpeed, HugeAsteroidHealth, ScoreHugeAsteroid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewAsteroid(testRng(), tt.kind, 100)

			if e.W != tt.size || e.H != tt.size {
				t.Errorf("expected size %v, got %vx%v", tt.size, e.W, e.H)
			}
			if e.VY != tt.speed {
				t.Errorf("expected fall speed %v, got %v", tt.speed, e.VY)
			}
			if e.Health != tt.health {
				t.Errorf("expected health %d, got %d", tt.health, e.Health)
			}
			if e.ScoreValue != tt.score {
				t.Errorf("expected score value %d, got %d", tt.score, e.ScoreValue)
			}
			if e.Y != -tt.size {
				t.Errorf("expected spawn just above the view at %v, got %v", -tt.size, e.Y)
			}
			if !e.Visible {
				t.Error("new asteroid should be visible")
			}
		})
	}
}

func TestAdvance_AsteroidFallsAndRotates(t *testing.T) {
	e := NewAsteroid(testRng(), EnemyAsteroid, 100)
	e.RotationSpeed = 0.05
	x, y, angle := e.X, e.Y, e.Angle

	e.Advance(testView)

	if e.X != x {
		t.Errorf("asteroid should not drift horizontally, moved %v", e.X-x)
	}
	if e.Y != y+AsteroidBaseSpeed {
		t.Errorf("expected fall of %v, got %v", AsteroidBaseSpeed, e.Y-y)
	}
	if e.Angle != angle+0.05 {
		t.Errorf("expected rotation step 0.05, got %v", e.Angle-angle)
	}
}

func TestAdvance_UFOBouncesAtEdges(t *testing.T) {
	e := NewUFO(testRng(), testView)
	e.X = testView.W - UFOWidth - 1
	e.VX = UFOPatrolSpeed
	y := e.Y

	e.Advance(testView)

	if e.VX != -UFOPatrolSpeed {
		t.Errorf("expected patrol direction to flip, got VX=%v", e.VX)
	}
	if e.X != testView.W-UFOWidth {
		t.Errorf("expected UFO clamped to right edge %v, got %v", testView.W-UFOWidth, e.X)
	}
	if e.Y != y+UFODriftSpeed {
		t.Errorf("expected downward drift of %v, got %v", UFODriftSpeed, e.Y-y)
	}
}

func TestAdvance_BossFollowsZigzag(t *testing.T) {
	b := NewBoss(testView, 0)

	for i := 0; i < 10; i++ {
		b.Advance(testView)
	}

	want := BossBaseY + math.Sin(10*BossZigzagRate)*BossZigzagAmplitude
	if math.Abs(b.Y-want) > 1e-9 {
		t.Errorf("expected zigzag Y %v after 10 ticks, got %v", want, b.Y)
	}

	for i := 0; i < 1000; i++ {
		b.Advance(testView)
	}
	if b.X < 0 || b.X+b.W > testView.W {
		t.Errorf("boss left the view horizontally: X=%v", b.X)
	}
}

func TestNewBoss_HealthScalesWithDefeats(t *testing.T) {
	tests := []struct {
		defeated int
		want     int
	}{
		{0, 20},
		{1, 30},
		{3, 50},
		{5, 50},
	}

	for _, tt := range tests {
		b := NewBoss(testView, tt.defeated)
		if b.Health != tt.want {
			t.Errorf("after %d defeats expected boss health %d, got %d", tt.defeated, tt.want, b.Health)
		}
		if b.MaxHealth != b.Health {
			t.Errorf("expected MaxHealth to match Health, got %d vs %d", b.MaxHealth, b.Health)
		}
	}
}

func TestReadyToFire_RespectsInterval(t *testing.T) {
	e := NewUFO(testRng(), testView)

	fires := 0
	for i := 0; i < UFOShotTicks*2; i++ {
		e.Advance(testView)
		if e.ReadyToFire() {
			fires++
		}
	}
	if fires != 2 {
		t.Errorf("expected 2 shots over %d ticks, got %d", UFOShotTicks*2, fires)
	}
}

func TestReadyToFire_AsteroidsNeverFire(t *testing.T) {
	e := NewAsteroid(testRng(), EnemyAsteroid, 100)

	for i := 0; i < 500; i++ {
		e.Advance(testView)
		if e.ReadyToFire() {
			t.Fatal("asteroids must not fire")
		}
	}
}

func TestDamage_KillMarksDead(t *testing.T) {
	e := NewAsteroid(testRng(), EnemyHugeAsteroid, 100)

	if killed := e.Damage(1); killed {
		t.Error("huge asteroid should survive the first hit")
	}
	if killed := e.Damage(1); killed {
		t.Error("huge asteroid should survive the second hit")
	}
	if !e.Visible {
		t.Fatal("damaged asteroid should stay visible until dead")
	}

	if killed := e.Damage(1); !killed {
		t.Error("third hit should kill the huge asteroid")
	}
	if e.Visible {
		t.Error("dead enemy must be invisible")
	}
	if killed := e.Damage(1); killed {
		t.Error("dead enemy cannot be killed again")
	}
}
