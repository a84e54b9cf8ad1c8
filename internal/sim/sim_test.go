package sim

import (
	"math/rand"
	"testing"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
)

var testView = geom.Size{W: DefaultWidth, H: DefaultHeight}

// newTestSim starts a deterministic session on the default view.
func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	s := NewSimulation(WithSeed(1))
	if err := s.StartSession(testView); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return s
}

func TestStartSession_RejectsInvalidView(t *testing.T) {
	s := NewSimulation(WithSeed(1))

	for _, view := range []geom.Size{{W: 0, H: 800}, {W: 480, H: 0}, {W: -480, H: -800}} {
		if err := s.StartSession(view); err == nil {
			t.Errorf("expected an error for view %+v", view)
		}
	}

	s.Tick(testView)
	if s.WaveTimer != 0 || s.Wave != 0 {
		t.Error("ticks before a successful StartSession must be no-ops")
	}
}

func TestStartSession_InitialState(t *testing.T) {
	s := newTestSim(t)

	if s.Wave != 1 {
		t.Errorf("expected wave 1, got %d", s.Wave)
	}
	if s.InBreak {
		t.Error("sessions start in the active wave state")
	}
	if s.WaveStartTimer != WaveStartBannerTicks {
		t.Errorf("expected the wave-start banner running, got %d", s.WaveStartTimer)
	}
	if s.Player == nil || s.Player.Lives != object.InitialLives {
		t.Error("expected a fresh player with full lives")
	}
	if s.Score != 0 || s.GameOver || s.Paused {
		t.Error("expected a clean scoreboard")
	}
}

func TestTick_PauseFreezesEverything(t *testing.T) {
	s := newTestSim(t)
	s.Tick(testView)
	if s.WaveTimer != 1 {
		t.Fatalf("expected one elapsed tick, got %d", s.WaveTimer)
	}

	s.TogglePause()
	for i := 0; i < 10; i++ {
		s.Tick(testView)
	}
	if s.WaveTimer != 1 {
		t.Errorf("paused ticks must not advance anything, wave timer %d", s.WaveTimer)
	}

	s.TogglePause()
	s.Tick(testView)
	if s.WaveTimer != 2 {
		t.Errorf("expected the timer to resume, got %d", s.WaveTimer)
	}
}

func TestTick_GameOverIsTerminal(t *testing.T) {
	s := newTestSim(t)
	s.GameOver = true

	s.Tick(testView)
	if s.WaveTimer != 0 {
		t.Error("a finished session must ignore ticks")
	}

	s.TogglePause()
	if s.Paused {
		t.Error("a finished session cannot be paused")
	}
}

func TestRestart_KeepsOnlyHighScore(t *testing.T) {
	s := newTestSim(t)
	s.addScore(1234)
	s.Asteroids = append(s.Asteroids,
		object.NewAsteroid(rand.New(rand.NewSource(2)), object.EnemyAsteroid, 100))
	s.BossesDefeated = 2
	s.GameOver = true

	if err := s.Restart(testView); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if s.Score != 0 {
		t.Errorf("expected score reset, got %d", s.Score)
	}
	if s.HighScore != 1234 {
		t.Errorf("the high score must survive restarts, got %d", s.HighScore)
	}
	if len(s.Asteroids) != 0 {
		t.Error("expected an empty field after restart")
	}
	if s.GameOver || s.Wave != 1 || s.BossesDefeated != 0 {
		t.Error("expected a fresh session after restart")
	}
}

func TestSetHighScore_OnlyRaises(t *testing.T) {
	s := newTestSim(t)

	s.SetHighScore(500)
	if s.HighScore != 500 {
		t.Errorf("expected high score 500, got %d", s.HighScore)
	}
	s.SetHighScore(100)
	if s.HighScore != 500 {
		t.Errorf("a lower value must not replace the high score, got %d", s.HighScore)
	}
}

func TestSetTargetX_SlidesPlayer(t *testing.T) {
	s := newTestSim(t)
	start := s.Player.X

	s.SetTargetX(0)
	for i := 0; i < 10; i++ {
		s.Tick(testView)
	}

	if s.Player.X != start-10*object.PlayerSpeed {
		t.Errorf("expected the ship %v to the left, got %v", 10*object.PlayerSpeed, start-s.Player.X)
	}
}

func TestSnapshot_CopiesValuesAndSkipsDead(t *testing.T) {
	s := newTestSim(t)
	rng := rand.New(rand.NewSource(3))
	live := object.NewAsteroid(rng, object.EnemyAsteroid, 50)
	dead := object.NewAsteroid(rng, object.EnemyAsteroid, 150)
	dead.Visible = false
	s.Asteroids = append(s.Asteroids, live, dead)

	snap := s.Snapshot()

	if !snap.Started {
		t.Error("snapshot should report the running session")
	}
	if len(snap.Asteroids) != 1 {
		t.Fatalf("dead entities must not appear in snapshots, got %d", len(snap.Asteroids))
	}

	snap.Asteroids[0].X = 999
	snap.Player.X = 999
	if s.Asteroids[0].X == 999 || s.Player.X == 999 {
		t.Error("mutating a snapshot must not touch the live simulation")
	}
}

// TestSession_FirstKill drives 90 real ticks with one asteroid parked in the
// firing line and checks the full pipeline: auto-fire, flight, collision,
// scoring, and cleanup.
func TestSession_FirstKill(t *testing.T) {
	s := newTestSim(t)
	rng := rand.New(rand.NewSource(4))
	target := object.NewAsteroid(rng, object.EnemyAsteroid, testView.W/2-object.AsteroidSize/2)
	target.Y = 200
	s.Asteroids = append(s.Asteroids, target)

	sawExplosion := false
	for i := 0; i < 90; i++ {
		s.Tick(testView)
		if len(s.Explosions) > 0 {
			sawExplosion = true
		}
	}

	if target.Visible {
		t.Error("the asteroid in the firing line should be dead")
	}
	if s.Score != 10 {
		t.Errorf("expected exactly the base 10 points, got %d", s.Score)
	}
	if s.Player.Combo.Streak != 1 {
		t.Errorf("expected a streak of 1, got %d", s.Player.Combo.Streak)
	}
	if !sawExplosion {
		t.Error("the kill should have thrown an explosion")
	}
	if s.KillsSinceBoss != 1 {
		t.Errorf("expected one kill on the boss counter, got %d", s.KillsSinceBoss)
	}
	if len(s.Bullets) != 3 {
		t.Errorf("expected three shots still in flight, got %d", len(s.Bullets))
	}
	if len(s.Asteroids) != 2 {
		t.Errorf("expected the two wave spawns alive, got %d", len(s.Asteroids))
	}
}
