package object

import (
	"math"
	"testing"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
)

var testView = geom.Size{W: 480, H: 800}

func TestNewPlayer_CenteredAtBottom(t *testing.T) {
	p := NewPlayer(testView)

	cx, _ := p.Center()
	if cx != testView.W/2 {
		t.Errorf("expected player centered at %v, got %v", testView.W/2, cx)
	}
	if p.Y != testView.H-PlayerHeight*2.5 {
		t.Errorf("expected player near bottom at %v, got %v", testView.H-PlayerHeight*2.5, p.Y)
	}
	if !p.Visible {
		t.Error("new player should be visible")
	}
	if p.Lives != InitialLives {
		t.Errorf("expected %d lives, got %d", InitialLives, p.Lives)
	}
	if p.Combo.Multiplier != 1.0 {
		t.Errorf("expected baseline multiplier 1.0, got %v", p.Combo.Multiplier)
	}
}

func TestAdvance_MovesTowardTargetCapped(t *testing.T) {
	p := NewPlayer(testView)
	start := p.X

	p.TargetX = p.X + p.W/2 + 100
	p.Advance(testView)
	if p.X != start+PlayerSpeed {
		t.Errorf("expected capped step of %v, got %v", PlayerSpeed, p.X-start)
	}

	start = p.X
	p.TargetX = p.X + p.W/2 + 3
	p.Advance(testView)
	if p.X != start+3 {
		t.Errorf("expected exact step of 3, got %v", p.X-start)
	}
}

func TestAdvance_ClampsToView(t *testing.T) {
	p := NewPlayer(testView)

	p.TargetX = -1000
	for i := 0; i < 200; i++ {
		p.Advance(testView)
	}
	if p.X != 0 {
		t.Errorf("expected player clamped to left edge, got X=%v", p.X)
	}

	p.TargetX = testView.W + 1000
	for i := 0; i < 200; i++ {
		p.Advance(testView)
	}
	if p.X != testView.W-p.W {
		t.Errorf("expected player clamped to right edge %v, got X=%v", testView.W-p.W, p.X)
	}
}

func TestAdvance_InvulnerabilityCountsDown(t *testing.T) {
	p := NewPlayer(testView)
	p.Invulnerable = 2

	if !p.IsInvulnerable() {
		t.Fatal("player with timer should be invulnerable")
	}
	p.Advance(testView)
	if !p.IsInvulnerable() {
		t.Error("expected invulnerability after one tick")
	}
	p.Advance(testView)
	if p.IsInvulnerable() {
		t.Error("expected invulnerability to expire after two ticks")
	}
	p.Advance(testView)
	if p.Invulnerable != 0 {
		t.Errorf("timer should stop at zero, got %d", p.Invulnerable)
	}
}

func TestCombo_MultiplierGrowsAndClamps(t *testing.T) {
	c := Combo{Multiplier: 1.0}

	c.RegisterKill()
	if math.Abs(c.Multiplier-1.2) > 1e-9 {
		t.Errorf("expected multiplier 1.2 after one kill, got %v", c.Multiplier)
	}
	for i := 0; i < 4; i++ {
		c.RegisterKill()
	}
	if math.Abs(c.Multiplier-2.0) > 1e-9 {
		t.Errorf("expected multiplier 2.0 after five kills, got %v", c.Multiplier)
	}
	for i := 0; i < 20; i++ {
		c.RegisterKill()
	}
	if c.Multiplier != 3.0 {
		t.Errorf("expected multiplier capped at 3.0, got %v", c.Multiplier)
	}
	if c.Streak != 25 {
		t.Errorf("streak should keep counting past the cap, got %d", c.Streak)
	}
}

func TestCombo_ResetDropsToBaseline(t *testing.T) {
	c := Combo{Multiplier: 1.0}
	for i := 0; i < 7; i++ {
		c.RegisterKill()
	}

	c.Reset()

	if c.Streak != 0 {
		t.Errorf("expected streak 0 after reset, got %d", c.Streak)
	}
	if c.Multiplier != 1.0 {
		t.Errorf("expected multiplier 1.0 after reset, got %v", c.Multiplier)
	}
	if c.LastShotHit {
		t.Error("expected LastShotHit cleared after reset")
	}
}

func TestCombo_ScoreRounding(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		base       int
		want       int
	}{
		{"baseline", 1.0, 10, 10},
		{"exact", 2.0, 15, 30},
		{"rounds half up", 1.7, 15, 26},
		{"rounds down", 1.4, 31, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Combo{Multiplier: tt.multiplier}
			if got := c.Score(tt.base); got != tt.want {
				t.Errorf("Score(%d) with multiplier %v = %d, want %d", tt.base, tt.multiplier, got, tt.want)
			}
		})
	}
}
