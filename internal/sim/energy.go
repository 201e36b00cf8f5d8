package sim

import (
	"math/rand/v2"

	"github.com/iburimskiy/stream-overlay/internal/config"
)

// Band is the color state of the energy meter.
type Band int

const (
	BandSynced Band = iota
	BandHot
	BandOverdrive
)

func (b Band) String() string {
	switch b {
	case BandOverdrive:
		return "OVERDRIVE"
	case BandHot:
		return "HOT"
	default:
		return "SYNCED"
	}
}

// Energy is the high-five hype meter: each trigger boosts it, and it cools
// down steadily.
type Energy struct {
	level     float64
	animating bool
	rng       *rand.Rand
	onTrigger []func()
}

func NewEnergy(rng *rand.Rand) *Energy {
	return &Energy{rng: rng}
}

func (e *Energy) Level() float64 {
	return e.level
}

// Animating reports whether the hand is in its punch pose.
func (e *Energy) Animating() bool {
	return e.animating
}

// Trigger boosts the meter and starts the punch pose. The caller ends the
// pose with Settle after config.HighFiveFlash.
func (e *Energy) Trigger() {
	e.animating = true
	e.level += config.EnergyBoost
	if e.level > 100 {
		e.level = 100
	}
	for _, fn := range e.onTrigger {
		fn()
	}
}

func (e *Energy) Settle() {
	e.animating = false
}

// Decay runs once per config.EnergyDecayTick.
func (e *Energy) Decay() {
	e.level -= config.EnergyDecay
	if e.level < 0 {
		e.level = 0
	}
}

// MaybeTrigger fires a simulated high five with probability
// config.HighFiveChance and reports whether it did.
func (e *Energy) MaybeTrigger() bool {
	if e.rng.Float64() >= config.HighFiveChance {
		return false
	}
	e.Trigger()
	return true
}

func (e *Energy) OnTrigger(fn func()) {
	e.onTrigger = append(e.onTrigger, fn)
}

func (e *Energy) Band() Band {
	switch {
	case e.level > 80:
		return BandOverdrive
	case e.level > 50:
		return BandHot
	default:
		return BandSynced
	}
}
