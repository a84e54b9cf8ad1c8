package app

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SparshMishra09/Astroid-Shooter/internal/input"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		termW, termH                   int
		wantW, wantH, wantCol, wantRow int
	}{
		{100, 60, 60, 50, 20, 5},
		{40, 20, 40, 20, 0, 0},
		{60, 50, 60, 50, 0, 0},
		{200, 24, 60, 24, 70, 0},
	}

	for _, tt := range tests {
		w, h, col, row := clampTermSize(tt.termW, tt.termH)
		if w != tt.wantW || h != tt.wantH || col != tt.wantCol || row != tt.wantRow {
			t.Errorf("clampTermSize(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tt.termW, tt.termH, w, h, col, row, tt.wantW, tt.wantH, tt.wantCol, tt.wantRow)
		}
	}
}

func TestSteerTarget(t *testing.T) {
	const cx = 240.0

	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"idle", false, false, cx},
		{"left", true, false, cx - steerReach},
		{"right", false, true, cx + steerReach},
		{"both hold position", true, true, cx},
	}

	for _, tt := range tests {
		in := input.Input{Left: tt.left, Right: tt.right}
		if got := steerTarget(in, cx); got != tt.want {
			t.Errorf("%s: steerTarget = %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestInvulnBlinkVisible(t *testing.T) {
	tests := []struct {
		invulnerable int
		want         bool
	}{
		{0, true},  // Not invulnerable: always drawn
		{5, true},  // First blink window
		{7, false}, // Second window: hidden
		{12, true},
		{90, false},
	}

	for _, tt := range tests {
		if got := invulnBlinkVisible(tt.invulnerable); got != tt.want {
			t.Errorf("invulnBlinkVisible(%d) = %v, want %v", tt.invulnerable, got, tt.want)
		}
	}
}

func TestEffectStatus_Badges(t *testing.T) {
	var effects [object.NumPowerUpTypes]object.ActiveEffect

	if got := strings.TrimSpace(effectStatus(effects)); got != "" {
		t.Errorf("idle badges = %q, want empty", got)
	}

	effects[object.PowerShield] = object.ActiveEffect{Type: object.PowerShield, Remaining: 600, Charges: 1}
	effects[object.PowerLaser] = object.ActiveEffect{Type: object.PowerLaser, Remaining: 61}

	got := effectStatus(effects)
	if !strings.Contains(got, "[S 10s]") {
		t.Errorf("badges %q missing shield", got)
	}
	if !strings.Contains(got, "[L  2s]") {
		t.Errorf("badges %q missing laser (seconds round up)", got)
	}

	// Fixed width regardless of how many badges are active.
	if len(got) != len(effectStatus([object.NumPowerUpTypes]object.ActiveEffect{})) {
		t.Errorf("badge width varies: %d", len(got))
	}
}

func TestPickupGlyphs_CoverEveryType(t *testing.T) {
	want := map[object.PowerUpType]string{
		object.PowerShield:     "S",
		object.PowerRapidFire:  "R",
		object.PowerTripleShot: "T",
		object.PowerLaser:      "L",
	}

	for typ, glyph := range want {
		if pickupGlyphs[typ] != glyph {
			t.Errorf("pickupGlyphs[%v] = %q, want %q", typ, pickupGlyphs[typ], glyph)
		}
	}
}

// runApp drives a full session loop against an in-memory terminal until it
// exits on its own.
func runApp(t *testing.T, keys string) (*App, string) {
	t.Helper()

	var out bytes.Buffer
	a := New(bufio.NewReader(strings.NewReader(keys)), &out, Options{
		TermSizeFunc: func() (int, int, error) { return 80, 30, nil },
		Store:        score.NewStore(filepath.Join(t.TempDir(), "scores.json")),
		Seed:         1,
	})

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not exit")
	}
	return a, out.String()
}

func TestRun_QuitsCleanly(t *testing.T) {
	_, out := runApp(t, "q")

	if !strings.Contains(out, "\033[?25l") {
		t.Error("cursor was never hidden")
	}
	if !strings.HasSuffix(out, "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRun_SpaceStartsTheGame(t *testing.T) {
	// The stream closes right after the space, which ends the session; by
	// then the menu must have handed off to gameplay.
	a, out := runApp(t, " ")

	if a.screen != ScreenPlaying {
		t.Errorf("screen = %v, want ScreenPlaying", a.screen)
	}
	if !strings.Contains(out, "Score:") {
		t.Error("HUD never rendered")
	}
}
