package app

import "time"

// Frame pacing. One simulation tick runs per rendered frame, keeping the
// fixed 60 Hz timestep and the render rate locked together.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution. 60 columns by 50 rows gives 60x100 half-block
// pixels, the same aspect as the 480x800 playfield; larger terminals get a
// centered canvas with a border.
const (
	MaxTermWidth  = 60
	MaxTermHeight = 50
)

// steerReach is how far from the ship the slide target sits while a
// steering key is held. More than one tick of travel, so the ship moves at
// full speed and key-repeat gaps don't stutter it.
const steerReach = 30.0

// Inactivity timeouts in seconds, enforced only when Options.DisconnectOnIdle
// is set. The SSH server sets it; the local shell does not.
const (
	inactivityWarnSeconds       = 90
	inactivityDisconnectSeconds = 120
)

// shutdownSeconds is how long the shutdown notice stays up before the
// session closes itself.
const shutdownSeconds = 10.0

// Blink cadences. Menu prompts blink on the wall clock; the invulnerable
// ship blinks on simulation ticks so it freezes with the game.
const (
	promptBlinkMs    = 600
	invulnBlinkTicks = 6
)
