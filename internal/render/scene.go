package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/sim"
)

// Palette. Colors are premultiplied; fadeColor scales every channel so faded
// variants stay valid.
var (
	colorBackground  = color.RGBA{R: 8, G: 10, B: 22, A: 255}
	colorShip        = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	colorShield      = color.RGBA{R: 90, G: 160, B: 255, A: 255}
	colorAsteroid    = color.RGBA{R: 176, G: 156, B: 132, A: 255}
	colorSaucer      = color.RGBA{R: 190, G: 120, B: 255, A: 255}
	colorBoss        = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	colorBullet      = color.RGBA{R: 255, G: 250, B: 160, A: 255}
	colorEnemyBullet = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	colorLaser       = color.RGBA{R: 255, G: 80, B: 200, A: 255}
	colorParticle    = color.RGBA{R: 255, G: 180, B: 60, A: 255}
	colorHitFlash    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHealthBack  = color.RGBA{R: 60, G: 20, B: 20, A: 255}
)

// pickupColors indexes object.PowerUpType.
var pickupColors = [object.NumPowerUpTypes]color.RGBA{
	{R: 90, G: 160, B: 255, A: 255},  // Shield
	{R: 255, G: 170, B: 60, A: 255},  // Rapid fire
	{R: 120, G: 230, B: 120, A: 255}, // Triple shot
	{R: 255, G: 80, B: 200, A: 255},  // Laser
}

var pickupGlyphs = [object.NumPowerUpTypes]string{"S", "R", "T", "L"}

// Debug font cell size, used to center and right-align text.
const (
	charWidth  = 6
	charHeight = 16
)

// Draw renders one frame from a fresh snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.sim.Snapshot()

	switch g.mode {
	case modeMenu:
		g.drawMenu(screen, &snap)
	case modePlaying:
		g.drawScene(screen, &snap)
		g.drawHUD(screen, &snap)
		if snap.Paused {
			g.drawPauseOverlay(screen)
		}
	case modeGameOver:
		g.drawScene(screen, &snap)
		g.drawGameOver(screen, &snap)
	}
}

func (g *Game) drawScene(screen *ebiten.Image, snap *sim.Snapshot) {
	for i := range snap.Asteroids {
		drawAsteroid(screen, &snap.Asteroids[i])
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		switch e.Kind {
		case object.EnemyUFO:
			drawSaucer(screen, e)
		case object.EnemyBoss:
			drawWarship(screen, e)
		default:
			drawAsteroid(screen, e)
		}
	}

	if snap.HasLaser {
		drawLaser(screen, &snap.Laser)
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorBullet, false)
	}
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorEnemyBullet, false)
	}
	for i := range snap.PowerUps {
		drawPickup(screen, &snap.PowerUps[i])
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		clr := fadeColor(colorParticle, p.Fade())
		vector.FillRect(screen, float32(p.X-p.Size/2), float32(p.Y-p.Size/2), float32(p.Size), float32(p.Size), clr, false)
	}
	for i := range snap.Hits {
		drawHitFlash(screen, &snap.Hits[i])
	}
	for i := range snap.Texts {
		t := &snap.Texts[i]
		ebitenutil.DebugPrintAt(screen, t.Text, int(t.X)-len(t.Text)*charWidth/2, int(t.Y)-charHeight/2)
	}

	p := &snap.Player
	if p.Visible && invulnBlinkVisible(p.Invulnerable) {
		drawShip(screen, p)
		if snap.Effects[object.PowerShield].Active() {
			cx, cy := p.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.W*0.8), 1.5, colorShield, true)
		}
	}
}

// vert is a screen-space polygon vertex.
type vert struct{ x, y float32 }

// strokeLoop outlines a closed polygon.
func strokeLoop(dst *ebiten.Image, pts []vert, width float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a.x, a.y, b.x, b.y, width, clr, true)
	}
}

// drawShip outlines the delta wing: nose, right wingtip, tail notch, left
// wingtip, plus a cockpit dot.
func drawShip(dst *ebiten.Image, p *object.Player) {
	cx := p.X + p.W/2
	pts := []vert{
		{float32(cx), float32(p.Y)},
		{float32(p.X + p.W), float32(p.Y + p.H)},
		{float32(cx), float32(p.Y + p.H*0.65)},
		{float32(p.X), float32(p.Y + p.H)},
	}
	strokeLoop(dst, pts, 2, colorShip)
	vector.FillCircle(dst, float32(cx), float32(p.Y+p.H*0.45), 2.5, colorShip, true)
}

// asteroidShape is the tumbling-rock outline, as fractions of the half
// extents.
var asteroidShape = [8]float64{1.0, 0.78, 0.92, 0.72, 0.97, 0.8, 0.88, 0.75}

func drawAsteroid(dst *ebiten.Image, e *object.Enemy) {
	cx, cy := e.Center()
	n := len(asteroidShape)

	var pts [8]vert
	for i, dist := range asteroidShape {
		vertAngle := e.Angle + float64(i)*2*math.Pi/float64(n)
		pts[i] = vert{
			x: float32(cx + math.Cos(vertAngle)*e.W/2*dist),
			y: float32(cy + math.Sin(vertAngle)*e.H/2*dist),
		}
	}
	strokeLoop(dst, pts[:], 1.5, colorAsteroid)
}

// drawSaucer outlines the flat hexagon hull with a dome at its center.
func drawSaucer(dst *ebiten.Image, e *object.Enemy) {
	cy := e.Y + e.H/2
	pts := []vert{
		{float32(e.X), float32(cy)},
		{float32(e.X + e.W*0.25), float32(e.Y)},
		{float32(e.X + e.W*0.75), float32(e.Y)},
		{float32(e.X + e.W), float32(cy)},
		{float32(e.X + e.W*0.75), float32(e.Y + e.H)},
		{float32(e.X + e.W*0.25), float32(e.Y + e.H)},
	}
	strokeLoop(dst, pts, 1.5, colorSaucer)
	vector.FillCircle(dst, float32(e.X+e.W/2), float32(cy), float32(e.H*0.25), colorSaucer, true)
}

// drawWarship outlines the boss hull, prongs and sterns included, and tops it
// with the health bar.
func drawWarship(dst *ebiten.Image, e *object.Enemy) {
	cy := e.Y + e.H/2
	pts := []vert{
		{float32(e.X), float32(cy)},
		{float32(e.X + e.W*0.2), float32(e.Y)},
		{float32(e.X + e.W*0.4), float32(e.Y + e.H*0.3)},
		{float32(e.X + e.W*0.6), float32(e.Y + e.H*0.3)},
		{float32(e.X + e.W*0.8), float32(e.Y)},
		{float32(e.X + e.W), float32(cy)},
		{float32(e.X + e.W*0.7), float32(e.Y + e.H)},
		{float32(e.X + e.W*0.3), float32(e.Y + e.H)},
	}
	strokeLoop(dst, pts, 2, colorBoss)
	drawBossHealth(dst, e)
}

// drawBossHealth paints the remaining-health bar just above the hull.
func drawBossHealth(dst *ebiten.Image, e *object.Enemy) {
	if e.MaxHealth <= 0 {
		return
	}
	frac := float64(e.Health) / float64(e.MaxHealth)
	if frac < 0 {
		frac = 0
	}

	x := float32(e.X)
	y := float32(e.Y - 8)
	w := float32(e.W)
	vector.FillRect(dst, x, y, w, 4, colorHealthBack, false)
	vector.FillRect(dst, x, y, w*float32(frac), 4, colorBoss, false)
	vector.StrokeRect(dst, x, y, w, 4, 1, fadeColor(colorBoss, 0.5), false)
}

func drawLaser(dst *ebiten.Image, b *object.LaserBeam) {
	vector.FillRect(dst, float32(b.X-2), float32(b.Y), float32(b.W+4), float32(b.H), fadeColor(colorLaser, 0.35), false)
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorLaser, false)
}

func drawPickup(dst *ebiten.Image, p *object.PowerUp) {
	cx, cy := p.Center()
	clr := pickupColors[p.Type]
	pts := []vert{
		{float32(cx), float32(p.Y)},
		{float32(p.X + p.W), float32(cy)},
		{float32(cx), float32(p.Y + p.H)},
		{float32(p.X), float32(cy)},
	}
	strokeLoop(dst, pts, 1.5, clr)
	glyph := pickupGlyphs[p.Type]
	ebitenutil.DebugPrintAt(dst, glyph, int(cx)-charWidth/2, int(cy)-charHeight/2)
}

func drawHitFlash(dst *ebiten.Image, h *object.HitEffect) {
	grow := 1 - float64(h.Life)/float64(object.HitEffectLifeTicks)
	r := object.HitEffectSize / 2 * grow
	clr := fadeColor(colorHitFlash, float64(h.Life)/float64(object.HitEffectLifeTicks))
	vector.StrokeCircle(dst, float32(h.X), float32(h.Y), float32(r), 1.5, clr, true)
}

// fadeColor scales all four channels, keeping the color premultiplied.
func fadeColor(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

func printCentered(dst *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(dst, text, (ScreenWidth-len(text)*charWidth)/2, y)
}

func printRight(dst *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(dst, text, ScreenWidth-len(text)*charWidth-8, y)
}

func (g *Game) drawMenu(screen *ebiten.Image, snap *sim.Snapshot) {
	y := ScreenHeight/2 - 140
	printCentered(screen, "A S T R O I D   S H O O T E R", y)
	printCentered(screen, "~ Slide, shoot, survive the waves ~", y+24)

	if snap.HighScore > 0 {
		printCentered(screen, fmt.Sprintf("High Score: %d", snap.HighScore), y+64)
	}

	printCentered(screen, "A D / arrows / drag  steer", y+104)
	printCentered(screen, "P or Esc  pause", y+120)
	printCentered(screen, "Q  quit", y+136)
	printCentered(screen, "Your ship fires on its own. Keep the streak alive.", y+168)

	if g.promptBlinkOn() {
		printCentered(screen, ">>  Press SPACE to Launch  <<", y+208)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High:  %d", snap.HighScore), 8, 24)
	printRight(screen, fmt.Sprintf("Lives: %d", snap.Player.Lives), 8)
	printRight(screen, fmt.Sprintf("Wave: %d", snap.Wave), 24)

	if snap.Player.Combo.Multiplier > 1 {
		text := fmt.Sprintf("x%.1f streak %d", snap.Player.Combo.Multiplier, snap.Player.Combo.Streak)
		ebitenutil.DebugPrintAt(screen, text, 8, ScreenHeight-24)
	}
	if badges := effectBadges(snap.Effects); badges != "" {
		printRight(screen, badges, ScreenHeight-24)
	}

	g.drawWaveBanner(screen, snap)
}

func (g *Game) drawWaveBanner(screen *ebiten.Image, snap *sim.Snapshot) {
	y := ScreenHeight/2 - 80
	switch {
	case snap.WaveStartTimer > 0:
		printCentered(screen, fmt.Sprintf("WAVE %d", snap.Wave), y)
	case snap.WaveCompleteTimer > 0:
		printCentered(screen, fmt.Sprintf("WAVE %d CLEAR  +%d", snap.Wave, sim.WaveBonusScore*snap.Wave), y)
	case snap.InBreak:
		secs := snap.BreakTimer/sim.TickRate + 1
		printCentered(screen, fmt.Sprintf("NEXT WAVE IN %d", secs), y)
	}
}

// effectBadges formats the active power-up timers, oldest type first.
func effectBadges(effects [object.NumPowerUpTypes]object.ActiveEffect) string {
	out := ""
	for typ := object.PowerUpType(0); typ < object.NumPowerUpTypes; typ++ {
		e := effects[typ]
		if !e.Active() {
			continue
		}
		secs := (e.Remaining + sim.TickRate - 1) / sim.TickRate
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("[%s %ds]", pickupGlyphs[typ], secs)
	}
	return out
}

func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	printCentered(screen, "P A U S E D", ScreenHeight/2-16)
	printCentered(screen, "P to resume, Q to quit", ScreenHeight/2+8)
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap *sim.Snapshot) {
	y := ScreenHeight/2 - 80
	printCentered(screen, "G A M E   O V E R", y)
	printCentered(screen, fmt.Sprintf("Score: %d", snap.Score), y+40)
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		printCentered(screen, "NEW HIGH SCORE!", y+56)
	} else {
		printCentered(screen, fmt.Sprintf("High score: %d", snap.HighScore), y+56)
	}
	printCentered(screen, fmt.Sprintf("Reached wave %d", snap.Wave), y+72)

	if g.promptBlinkOn() {
		printCentered(screen, ">>  Press SPACE to Restart  <<", y+112)
	}
}
