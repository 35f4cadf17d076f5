package simulation

import (
	"math/rand/v2"
	"time"
)

// FailureClock draws randomized failure intervals from an exponential
// distribution. It owns the run's only random source, so every draw
// advances the shared sequence.
type FailureClock struct {
	rnd  *rand.Rand
	seed uint64
}

// NewFailureClock seeds a clock. A zero seed picks one from the wall clock.
func NewFailureClock(seed uint64) *FailureClock {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FailureClock{
		rnd:  rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Seed returns the seed the clock was built with
func (c *FailureClock) Seed() uint64 {
	return c.seed
}

// Draw returns the number of days until the next failure for a machine with
// the given mean time to failure. The result is always at least 1.
func (c *FailureClock) Draw(meanDays int) int {
	days := int(c.rnd.ExpFloat64() * float64(meanDays))
	if days < 1 {
		days = 1
	}
	return days
}
