package sim

import (
	"fmt"

	"github.com/SparshMishra09/Astroid-Shooter/internal/geom"
	"github.com/SparshMishra09/Astroid-Shooter/internal/object"
)

// waveDuration returns the Active-state length of a wave in ticks. Wave 1
// runs exactly WaveBaseDuration; later waves grow by WaveDurationStep per
// wave up to a fixed ceiling.
func waveDuration(wave int) int {
	return WaveBaseDuration + geom.ClampInt((wave-1)*WaveDurationStep, 0, WaveDurationStepMax)
}

// advanceWave drives the Active/Break state machine and the banner timers.
// The banners are display-only countdowns and never gate gameplay.
func (s *Simulation) advanceWave() {
	if s.WaveStartTimer > 0 {
		s.WaveStartTimer--
	}
	if s.WaveCompleteTimer > 0 {
		s.WaveCompleteTimer--
	}

	if s.InBreak {
		s.BreakTimer--
		if s.BreakTimer <= 0 {
			s.InBreak = false
			s.Wave++
			s.WaveTimer = 0
			s.WaveStartTimer = WaveStartBannerTicks
		}
		return
	}

	s.WaveTimer++
	if s.WaveTimer >= waveDuration(s.Wave) {
		s.InBreak = true
		s.BreakTimer = WaveBreakTicks
		s.breakBonusDone = false
		s.WaveCompleteTimer = WaveDoneBannerTicks

		bonus := WaveBonusScore * s.Wave
		s.addScore(bonus)
		s.Texts = append(s.Texts,
			object.NewFloatingText(fmt.Sprintf("WAVE BONUS +%d", bonus), s.view.W/2, s.view.H/2))
	}
}

// breakSpawns rolls the one-time bonus drop once the break is a second old.
// On success a random pickup appears at the center of the view.
func (s *Simulation) breakSpawns() {
	if s.breakBonusDone || s.BreakTimer > WaveBreakTicks-BreakBonusDelay {
		return
	}
	s.breakBonusDone = true
	if s.rng.Float64() < BreakBonusChance {
		s.PowerUps = append(s.PowerUps,
			object.NewPowerUp(object.RandomPowerUpType(s.rng), s.view.W/2, s.view.H/2))
	}
}
