// Package render is the desktop shell: an Ebitengine front end over the same
// simulation the terminal client runs. One Update call is one simulation tick,
// so the fixed timestep rides on Ebitengine's 60 TPS loop.
package render

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
	"github.com/SparshMishra09/Astroid-Shooter/internal/sim"
)

// Window and playfield resolution. The logical playfield maps 1:1 onto
// pixels, so no scaling happens between simulation and screen coordinates.
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

const (
	steerReach       = 30.0 // Target offset while a steering key is held
	invulnBlinkTicks = 6
	promptBlinkTicks = 36 // Half-period of blinking prompts
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modeGameOver
)

// Options configures a Game. Zero values give a playable default.
type Options struct {
	// Logger receives session events. Defaults to a discarding logger.
	Logger *log.Logger
	// Store persists the high score across runs. Defaults to the user
	// config directory.
	Store *score.Store
	// Seed fixes the simulation RNG when non-zero.
	Seed int64
}

// Game drives the simulation from Ebitengine's game loop and draws each
// snapshot with vector primitives. It implements ebiten.Game.
type Game struct {
	sim    *sim.Simulation
	view   geom.Size
	store  *score.Store
	logger *log.Logger

	mode       mode
	frame      int
	scoreSaved bool
}

// New creates a Game showing the menu, with the stored high score loaded.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = score.NewStore(score.DefaultPath())
	}

	var simOpts []sim.Option
	if opts.Seed != 0 {
		simOpts = append(simOpts, sim.WithSeed(opts.Seed))
	}

	g := &Game{
		sim:    sim.NewSimulation(simOpts...),
		view:   geom.Size{W: sim.DefaultWidth, H: sim.DefaultHeight},
		store:  store,
		logger: logger,
	}

	if rec, err := store.Load(); err != nil {
		logger.Warn("could not load high score", "err", err)
	} else {
		g.sim.SetHighScore(rec.HighScore)
	}
	return g
}

// Update advances the shell by one frame: input first, then exactly one
// simulation tick while a session is live.
func (g *Game) Update() error {
	g.frame++

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.mode {
	case modeMenu, modeGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startGame()
		}
	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.sim.TogglePause()
		}
		g.steer()
		g.sim.Tick(g.view)
		if g.sim.GameOver {
			g.finishGame()
			g.mode = modeGameOver
		}
	}
	return nil
}

// steer feeds the slide target from the held keys or the pointer. The pointer
// wins when the left button is down, so drag steering works on touch screens.
func (g *Game) steer() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, _ := ebiten.CursorPosition()
		g.sim.SetTargetX(float64(mx))
		return
	}

	cx, _ := g.sim.Player.Center()
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	switch {
	case left && !right:
		g.sim.SetTargetX(cx - steerReach)
	case right && !left:
		g.sim.SetTargetX(cx + steerReach)
	}
}

func (g *Game) startGame() {
	if err := g.sim.StartSession(g.view); err != nil {
		g.logger.Error("could not start session", "err", err)
		return
	}
	g.scoreSaved = false
	g.mode = modePlaying
}

// finishGame logs the result and persists the high score once per session.
func (g *Game) finishGame() {
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true

	snap := g.sim.Snapshot()
	g.logger.Info("game over", "score", snap.Score, "wave", snap.Wave)

	best, err := g.store.UpdateHighScore(snap.Score)
	if err != nil {
		g.logger.Warn("could not save high score", "err", err)
		return
	}
	g.sim.SetHighScore(best)
}

// Layout fixes the logical resolution regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// promptBlinkOn gates blinking prompts at roughly 0.6 s per phase.
func (g *Game) promptBlinkOn() bool {
	return (g.frame/promptBlinkTicks)%2 == 0
}

// invulnBlinkVisible strobes the ship while post-hit invulnerability runs.
func invulnBlinkVisible(inv int) bool {
	if inv <= 0 {
		return true
	}
	return (inv/invulnBlinkTicks)%2 == 0
}
