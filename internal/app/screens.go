package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/SparshMishra09/Astroid-Shooter/internal/draw"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
	"github.com/SparshMishra09/Astroid-Shooter/internal/sim"
)

// drawUI draws the overlay for the current screen on top of the canvas.
func (a *App) drawUI(snap *sim.Snapshot) {
	termWidth := a.canvas.TerminalWidth()
	termHeight := a.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if a.screen == ScreenShutdown {
		a.drawShutdownScreen(centerX, centerY)
		return
	}

	if a.inactive {
		a.drawInactivityScreen(centerX, centerY)
		return
	}

	switch a.screen {
	case ScreenMenu:
		a.drawMenu(centerX, centerY, snap)
	case ScreenPlaying:
		a.drawHUD(termWidth, termHeight, snap)
	case ScreenPaused:
		a.drawHUD(termWidth, termHeight, snap)
		a.drawPauseOverlay(centerX, centerY)
	case ScreenGameOver:
		a.drawGameOverScreen(centerX, centerY, snap)
	}
}

// promptBlinkOn gates the blinking menu prompts on the wall clock.
func promptBlinkOn() bool {
	return time.Now().UnixMilli()/promptBlinkMs%2 == 0
}

// writeBanner centers (optionally colored) text over the canvas and marks
// the cells dirty so moving playfield content scrubs it next frame.
func (a *App) writeBanner(centerX, row int, color, text string) {
	col := centerX - len(text)/2
	if col < 1 {
		col = 1
	}
	if color != "" {
		a.cw.WriteAt(col, row, color+text+draw.ColorReset)
	} else {
		a.cw.WriteAt(col, row, text)
	}
	a.canvas.MarkTextDirty(col, row, len(text))
}

// drawMenu draws the title screen.
func (a *App) drawMenu(centerX, centerY int, snap *sim.Snapshot) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`   _    ___  _____  ___   ___   ___  ___  `,
		`  /_\  / __||_   _|| _ \ / _ \ |_ _||   \ `,
		` / _ \ \__ \  | |  |   /| (_) | | | | |) |`,
		`/_/ \_\|___/  |_|  |_|_\ \___/ |___||___/ `,
		` ___  _  _   ___   ___  _____  ___  ___   `,
		`/ __|| || | / _ \ / _ \|_   _|| __|| _ \  `,
		`\__ \| __ || (_) | (_) | | |  | _| |   /  `,
		`|___/|_||_| \___/ \___/  |_|  |___||_|_\  `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := a.cw
	titleStartY := centerY - 13
	if titleStartY < 1 {
		titleStartY = 1
	}
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ Slide, shoot, survive the waves ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	if snap.HighScore > 0 {
		highText := fmt.Sprintf("High Score: %d", snap.HighScore)
		cw.WriteAt(centerX-len(highText)/2, titleStartY+len(titleArt)+3, draw.ColorYellow+highText+draw.ColorReset)
	}

	controlsY := titleStartY + len(titleArt) + 5
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"A D / < >  . .  Steer",
		"P  . . . . . .  Pause",
		"Q  . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	note := "Your ship fires on its own. Keep the streak alive."
	cw.WriteAt(centerX-len(note)/2, controlsY+len(controlLines)+2, draw.ColorDim+note+draw.ColorReset)

	if promptBlinkOn() {
		prompt := ">>  Press SPACE to Launch  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+4, prompt)
	}
}

// drawHUD draws the in-game overlay. Text fields use fixed-width formatting
// so shrinking values don't leave residual characters on screen.
func (a *App) drawHUD(termWidth, termHeight int, snap *sim.Snapshot) {
	cw := a.cw

	scoreText := fmt.Sprintf("Score: %-8d", snap.Score)
	cw.WriteAt(2, 1, scoreText)

	highText := fmt.Sprintf("High:  %-8d", snap.HighScore)
	cw.WriteAt(2, 2, highText)

	livesText := fmt.Sprintf("Lives: %-2d", snap.Player.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	waveText := fmt.Sprintf("Wave: %-3d", snap.Wave)
	cw.WriteAt(termWidth-len(waveText)-1, 2, waveText)

	comboText := fmt.Sprintf("x%.1f streak %-5d", snap.Player.Combo.Multiplier, snap.Player.Combo.Streak)
	if snap.Player.Combo.Multiplier > 1.0 {
		cw.WriteAt(2, termHeight, draw.ColorYellow+comboText+draw.ColorReset)
	} else {
		cw.WriteAt(2, termHeight, comboText)
	}

	effectsText := effectStatus(snap.Effects)
	cw.WriteAt(termWidth-len(effectsText)-1, termHeight, effectsText)

	a.drawWaveBanner(termWidth/2, termHeight/2, snap)
}

// drawWaveBanner shows the wave transitions: the start card, the clear
// bonus, and the break countdown.
func (a *App) drawWaveBanner(centerX, centerY int, snap *sim.Snapshot) {
	row := centerY - 4

	switch {
	case snap.WaveStartTimer > 0:
		a.writeBanner(centerX, row, draw.ColorBrightCyan, fmt.Sprintf("WAVE %d", snap.Wave))
	case snap.WaveCompleteTimer > 0:
		banner := fmt.Sprintf("WAVE %d CLEAR  +%d", snap.Wave, sim.WaveBonusScore*snap.Wave)
		a.writeBanner(centerX, row, draw.ColorBrightCyan, banner)
	case snap.InBreak:
		banner := fmt.Sprintf("NEXT WAVE IN %d", snap.BreakTimer/sim.TickRate+1)
		a.writeBanner(centerX, row, draw.ColorCyan, banner)
	}
}

// effectStatus formats the active power-ups as fixed-width HUD badges.
func effectStatus(effects [object.NumPowerUpTypes]object.ActiveEffect) string {
	var b strings.Builder
	for i := range effects {
		e := &effects[i]
		if !e.Active() {
			continue
		}
		secs := (e.Remaining + sim.TickRate - 1) / sim.TickRate
		fmt.Fprintf(&b, "[%s %2ds] ", pickupGlyphs[i], secs)
	}
	return fmt.Sprintf("%32s", b.String())
}

// drawPauseOverlay dims the frozen playfield with a pause card.
func (a *App) drawPauseOverlay(centerX, centerY int) {
	a.writeBanner(centerX, centerY, draw.ColorBrightCyan, "P A U S E D")
	a.writeBanner(centerX, centerY+2, draw.ColorDim, "P to resume, Q to quit")
}

// drawGameOverScreen draws the end card over the frozen playfield.
func (a *App) drawGameOverScreen(centerX, centerY int, snap *sim.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleStartY := centerY - 6
	if titleStartY < 1 {
		titleStartY = 1
	}
	for i, line := range titleArt {
		a.writeBanner(centerX, titleStartY+i, draw.ColorRed, line)
	}

	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	a.writeBanner(centerX, titleStartY+len(titleArt)+2, "", scoreText)

	if snap.Score > 0 && snap.Score >= snap.HighScore {
		a.writeBanner(centerX, titleStartY+len(titleArt)+3, draw.ColorYellow, "NEW HIGH SCORE!")
	} else {
		highText := fmt.Sprintf("High score: %d", snap.HighScore)
		a.writeBanner(centerX, titleStartY+len(titleArt)+3, "", highText)
	}

	waveText := fmt.Sprintf("Reached wave %d", snap.Wave)
	a.writeBanner(centerX, titleStartY+len(titleArt)+4, "", waveText)

	if promptBlinkOn() {
		a.writeBanner(centerX, titleStartY+len(titleArt)+6, "", ">>  Press SPACE to Restart  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification.
func (a *App) drawShutdownScreen(centerX, centerY int) {
	cw := a.cw

	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(centerX-len(title)/2, centerY-3, draw.ColorRed+title+draw.ColorReset)

	msg1 := "The server is going down for maintenance."
	cw.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	cw.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(a.shutdownTimer) + 1
	countdown := fmt.Sprintf("Disconnecting in %2d seconds...", remaining)
	cw.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	cw.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}

// drawInactivityScreen draws the inactivity warning.
func (a *App) drawInactivityScreen(centerX, centerY int) {
	cw := a.cw

	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	idle := time.Since(a.lastInput).Seconds()
	msg := fmt.Sprintf("You will be disconnected in %2d seconds.", int(inactivityDisconnectSeconds-idle))
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}
