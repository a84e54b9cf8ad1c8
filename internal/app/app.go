// Package app runs an interactive terminal session of the game: it owns the
// simulation, reads key input, and renders frames to the session writer.
// The same loop serves the local binary and SSH sessions.
package app

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SparshMishra09/Astroid-Shooter/internal/draw"
	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/input"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
	"github.com/SparshMishra09/Astroid-Shooter/internal/sim"
)

// Screen is the shell's screen phase. The simulation has its own pause and
// game-over state; these track what the session is showing around it.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
	ScreenShutdown
)

// Options configures an App.
type Options struct {
	TermSizeFunc     draw.TermSizeFunc
	Logger           *log.Logger
	Store            *score.Store
	Shutdown         <-chan struct{} // Closed when the server is going down
	DisconnectOnIdle bool
	Seed             int64 // 0 seeds from the clock
}

// App drives one interactive session.
type App struct {
	sim    *sim.Simulation
	store  *score.Store
	logger *log.Logger

	view   geom.Size
	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	writer io.Writer
	stream *input.Stream

	termSize draw.TermSizeFunc
	shutdown <-chan struct{}
	idleKick bool

	screen     Screen
	prevScreen Screen
	running    bool
	scoreSaved bool
	pauseHeld  bool

	in          input.Input
	lastInput   time.Time
	inactive    bool
	wasInactive bool

	delta         time.Duration
	shutdownTimer float64
}

// New creates a session reading keys from r and rendering to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *App {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	st := opts.Store
	if st == nil {
		st = score.NewStore(score.DefaultPath())
	}

	var simOpts []sim.Option
	if opts.Seed != 0 {
		simOpts = append(simOpts, sim.WithSeed(opts.Seed))
	}

	view := geom.Size{W: sim.DefaultWidth, H: sim.DefaultHeight}

	termWidth, termHeight, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, view.W, view.H)
	canvas.SetOffset(offsetCol, offsetRow)

	return &App{
		sim:       sim.NewSimulation(simOpts...),
		store:     st,
		logger:    logger,
		view:      view,
		canvas:    canvas,
		cw:        draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:    w,
		stream:    input.StartStream(r),
		termSize:  termSize,
		shutdown:  opts.Shutdown,
		idleKick:  opts.DisconnectOnIdle,
		screen:    ScreenMenu,
		running:   true,
		lastInput: time.Now(),
	}
}

// Run drives the session loop with the standard input, update, draw cycle.
// It blocks until the player quits, the reader goes away, or a server
// shutdown countdown completes.
func (a *App) Run() error {
	draw.HideCursor(a.writer)
	defer draw.ShowCursor(a.writer)
	draw.ClearScreen(a.writer)

	if rec, err := a.store.Load(); err != nil {
		a.logger.Warn("high score unavailable", "err", err)
	} else {
		a.sim.SetHighScore(rec.HighScore)
	}

	lastTime := time.Now()

	for a.running {
		frameStart := time.Now()
		a.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		a.processInput()
		a.processShutdown()
		a.updateScreen()

		switch a.screen {
		case ScreenMenu:
			a.updateMenu()
		case ScreenPlaying:
			a.updatePlaying()
		case ScreenPaused:
			a.updatePaused()
		case ScreenGameOver:
			a.updateGameOver()
		case ScreenShutdown:
			a.updateShutdown()
		}

		if err := a.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(a.writer)
	return nil
}

// processInput samples the key state and handles quit and inactivity.
func (a *App) processInput() {
	a.in = input.ReadInput(a.stream)

	if len(a.in.Pressed) > 0 {
		a.lastInput = time.Now()
		a.inactive = false
	} else if a.idleKick {
		idle := time.Since(a.lastInput).Seconds()
		if idle > inactivityDisconnectSeconds {
			a.running = false
		} else if idle > inactivityWarnSeconds {
			a.inactive = true
		}
	}

	if a.in.Quit || a.in.Closed {
		a.running = false
	}
}

// processShutdown switches to the shutdown notice when the server
// broadcasts that it is going down.
func (a *App) processShutdown() {
	if a.shutdown == nil || a.screen == ScreenShutdown {
		return
	}
	select {
	case <-a.shutdown:
		a.screen = ScreenShutdown
		a.shutdownTimer = shutdownSeconds
	default:
	}
}

// updateScreen handles terminal resize, clamping to the max render
// resolution. On actual changes, clears the terminal so residual content
// outside the new canvas area disappears.
func (a *App) updateScreen() {
	termWidth, termHeight, err := a.termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != a.canvas.TerminalWidth() || renderHeight != a.canvas.TerminalHeight() ||
		offsetCol != a.canvas.OffsetCol() || offsetRow != a.canvas.OffsetRow() {
		draw.ClearScreen(a.writer)
		a.canvas.ForceRedraw()
	}

	a.canvas.Resize(renderWidth, renderHeight)
	a.canvas.SetOffset(offsetCol, offsetRow)
	a.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > MaxTermWidth {
		renderWidth = MaxTermWidth
	}
	if renderHeight > MaxTermHeight {
		renderHeight = MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateMenu handles the title screen.
func (a *App) updateMenu() {
	if a.in.Space || a.in.Enter {
		a.startGame()
	}
}

// updatePlaying advances the simulation by one tick.
func (a *App) updatePlaying() {
	if a.pausePressed() {
		a.sim.TogglePause()
		a.screen = ScreenPaused
		return
	}

	if a.sim.Player != nil {
		cx, _ := a.sim.Player.Center()
		a.sim.SetTargetX(steerTarget(a.in, cx))
	}

	a.sim.Tick(a.view)

	if a.sim.GameOver {
		a.finishGame()
		a.screen = ScreenGameOver
	}
}

// updatePaused waits for the resume key while the simulation is frozen.
func (a *App) updatePaused() {
	if a.pausePressed() || a.in.Space || a.in.Enter {
		a.sim.TogglePause()
		a.screen = ScreenPlaying
	}
}

// updateGameOver handles the restart prompt.
func (a *App) updateGameOver() {
	if a.in.Space || a.in.Enter {
		a.restartGame()
	}
}

// updateShutdown counts down before auto-disconnecting.
func (a *App) updateShutdown() {
	a.shutdownTimer -= a.delta.Seconds()
	if a.shutdownTimer <= 0 {
		a.running = false
	}
}

// pausePressed edge-detects the pause keys so a held key toggles once.
func (a *App) pausePressed() bool {
	down := a.in.Pause || a.in.Escape
	pressed := down && !a.pauseHeld
	a.pauseHeld = down
	return pressed
}

// steerTarget converts held keys into a slide target for the ship.
// Opposing keys hold position rather than cancel to one side.
func steerTarget(in input.Input, centerX float64) float64 {
	switch {
	case in.Left && !in.Right:
		return centerX - steerReach
	case in.Right && !in.Left:
		return centerX + steerReach
	default:
		return centerX
	}
}

// startGame begins a fresh session from the menu.
func (a *App) startGame() {
	input.ResetKeyInput(a.stream)

	if err := a.sim.StartSession(a.view); err != nil {
		a.logger.Error("session start failed", "err", err)
		a.running = false
		return
	}
	a.scoreSaved = false
	a.screen = ScreenPlaying
	a.logger.Info("session started", "highScore", a.sim.HighScore)
}

// restartGame starts over from the game-over screen.
func (a *App) restartGame() {
	input.ResetKeyInput(a.stream)

	if err := a.sim.Restart(a.view); err != nil {
		a.logger.Error("restart failed", "err", err)
		a.running = false
		return
	}
	a.scoreSaved = false
	a.screen = ScreenPlaying
}

// finishGame persists the result, once per game over.
func (a *App) finishGame() {
	if a.scoreSaved {
		return
	}
	a.scoreSaved = true

	a.logger.Info("game over", "score", a.sim.Score, "wave", a.sim.Wave)

	best, err := a.store.UpdateHighScore(a.sim.Score)
	if err != nil {
		a.logger.Warn("high score not saved", "err", err)
		return
	}
	a.sim.SetHighScore(best)
}

// invulnBlinkVisible blinks the ship while invulnerability runs down.
func invulnBlinkVisible(invulnerable int) bool {
	if invulnerable <= 0 {
		return true
	}
	return (invulnerable/invulnBlinkTicks)%2 == 0
}
