package sim

// Simulation tuning constants.
// One tick is 1/60 s of simulated time; every interval and duration below is
// in ticks unless noted otherwise.

// TickRate is the fixed number of simulation ticks per second.
const TickRate = 60

// Playfield
const (
	DefaultWidth  = 480.0
	DefaultHeight = 800.0

	OffscreenMargin = 50.0 // Slack past the view edges before an entity is culled
)

// Firing
const (
	FireInterval      = 20
	RapidFireInterval = 10
)

// Player
const (
	InvulnerabilityTicks = 90
)

// Waves
const (
	WaveBaseDuration     = 2100
	WaveDurationStep     = 50
	WaveDurationStepMax  = 600
	WaveBreakTicks       = 180
	WaveBonusScore       = 200 // Per wave number, awarded on completion
	WaveStartBannerTicks = 90
	WaveDoneBannerTicks  = 120

	BreakBonusDelay  = 60 // Ticks into a break before the one-time bonus roll
	BreakBonusChance = 0.20
)

// Collision
const (
	// Broad-phase cell size. Must be at least the largest half-extent sum of
	// any colliding pair (boss width 120 against a bullet) and at least the
	// offscreen margin.
	CollisionCellSize = 64.0
)

// Spawning
const (
	AsteroidBaseInterval = 45
	AsteroidIntervalStep = 3
	AsteroidMinInterval  = 18

	SpecialBaseInterval = 180
	SpecialIntervalStep = 20
	SpecialMinInterval  = 90

	BossKillThreshold = 150 // Kills since the last boss that force the next one
)

// Power-ups
const (
	PowerUpDropChance = 0.05
	BossPowerUpDrops  = 2
)
