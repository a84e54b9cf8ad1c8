package app

import (
	"github.com/SparshMishra09/Astroid-Shooter/internal/draw"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/sim"
)

// pickupGlyphs labels each power-up type on the playfield and in HUD badges.
var pickupGlyphs = [object.NumPowerUpTypes]string{"S", "R", "T", "L"}

// drawFrame renders one frame: playfield to the canvas, then text overlays,
// all flushed through the chunk writer in one batch.
func (a *App) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear so UI
	// from the previous screen doesn't linger.
	stateChanged := a.screen != a.prevScreen
	inactiveChanged := a.inactive != a.wasInactive
	if stateChanged || inactiveChanged {
		a.cw.WriteString("\033[H\033[2J")
		a.canvas.ForceRedraw()
		a.prevScreen = a.screen
		a.wasInactive = a.inactive
	}

	a.canvas.Clear()

	snap := a.sim.Snapshot()

	if a.screen != ScreenMenu && a.screen != ScreenShutdown {
		a.drawScene(&snap)
	}

	a.canvas.Render(a.cw)
	a.canvas.RenderBorder(a.cw)

	if a.screen == ScreenPlaying || a.screen == ScreenPaused {
		a.drawFloatingTexts(&snap)
		a.drawPickupLabels(&snap)
	}

	a.drawUI(&snap)

	return a.cw.Flush()
}

// drawScene paints the playfield onto the canvas.
func (a *App) drawScene(snap *sim.Snapshot) {
	c := a.canvas

	for i := range snap.Asteroids {
		e := &snap.Asteroids[i]
		draw.Asteroid(c, e.X, e.Y, e.W, e.H, e.Angle)
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		switch e.Kind {
		case object.EnemyUFO:
			draw.Saucer(c, e.X, e.Y, e.W, e.H)
		case object.EnemyBoss:
			draw.Warship(c, e.X, e.Y, e.W, e.H)
		default:
			draw.Asteroid(c, e.X, e.Y, e.W, e.H, e.Angle)
		}
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		c.FillRect(b.X, b.Y, b.W, b.H)
	}
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		c.FillRect(b.X, b.Y, b.W, b.H)
	}

	if snap.HasLaser {
		c.FillRect(snap.Laser.X, snap.Laser.Y, snap.Laser.W, snap.Laser.H)
	}

	for i := range snap.PowerUps {
		p := &snap.PowerUps[i]
		draw.Pickup(c, p.X, p.Y, p.W, p.H)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		c.SetFloat(p.X, p.Y)
	}
	for i := range snap.Hits {
		drawHitFlash(c, &snap.Hits[i])
	}

	if snap.Player.Visible && invulnBlinkVisible(snap.Player.Invulnerable) {
		p := &snap.Player
		draw.Ship(c, p.X, p.Y, p.W, p.H)
		if snap.Effects[object.PowerShield].Active() {
			cx, cy := p.Center()
			draw.Ring(c, cx, cy, p.W*0.8)
		}
	}
}

// drawHitFlash paints a short expanding cross where a shot connected.
func drawHitFlash(c *draw.Canvas, h *object.HitEffect) {
	grow := 1 - float64(h.Life)/float64(object.HitEffectLifeTicks)
	r := object.HitEffectSize / 2 * grow

	c.SetFloat(h.X-r, h.Y)
	c.SetFloat(h.X+r, h.Y)
	c.SetFloat(h.X, h.Y-r)
	c.SetFloat(h.X, h.Y+r)
}

// drawFloatingTexts overlays score popups at their playfield positions,
// marking the cells dirty so the canvas scrubs them next frame.
func (a *App) drawFloatingTexts(snap *sim.Snapshot) {
	termWidth := a.canvas.TerminalWidth()
	termHeight := a.canvas.TerminalHeight()

	for i := range snap.Texts {
		t := &snap.Texts[i]

		col, row := a.canvas.LogicalToTerminal(t.X, t.Y)
		col -= len(t.Text) / 2

		if row < 1 || row > termHeight {
			continue
		}
		if col < 1 || col+len(t.Text) > termWidth {
			continue
		}

		a.cw.WriteAt(col, row, draw.ColorYellow+t.Text+draw.ColorReset)
		a.canvas.MarkTextDirty(col, row, len(t.Text))
	}
}

// drawPickupLabels letters the falling power-ups so they are tellable apart
// at terminal resolution.
func (a *App) drawPickupLabels(snap *sim.Snapshot) {
	termWidth := a.canvas.TerminalWidth()
	termHeight := a.canvas.TerminalHeight()

	for i := range snap.PowerUps {
		p := &snap.PowerUps[i]

		cx, cy := p.Center()
		col, row := a.canvas.LogicalToTerminal(cx, cy)
		if row < 1 || row > termHeight || col < 1 || col > termWidth {
			continue
		}

		a.cw.WriteAt(col, row, draw.ColorMagenta+pickupGlyphs[p.Type]+draw.ColorReset)
		a.canvas.MarkTextDirty(col, row, 1)
	}
}
