package systems

import (
	"math"
	"time"
)

// DefaultTargetFPS is the simulation rate when none is configured.
const DefaultTargetFPS = 60

// Timing holds the tick counter, the speed-to-pixels conversion and the
// diagnostic time counters for a session.
type Timing struct {
	TargetFPS int
	Ticks     int64

	// TicksToProcess is the number of ticks the last Accumulate call released.
	TicksToProcess int

	maxCatchUp   int
	tickDuration time.Duration
	accumulated  time.Duration

	processing time.Duration
	draw       time.Duration
}

// NewTiming creates timing for the given frame rate.
// maxCatchUp bounds how many ticks one Accumulate call may release.
func NewTiming(targetFPS, maxCatchUp int) *Timing {
	if targetFPS <= 0 {
		targetFPS = DefaultTargetFPS
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Timing{
		TargetFPS:    targetFPS,
		maxCatchUp:   maxCatchUp,
		tickDuration: time.Second / time.Duration(targetFPS),
	}
}

// TickDuration returns the nominal length of one tick.
func (t *Timing) TickDuration() time.Duration {
	return t.tickDuration
}

// PixelsPerFrame converts a speed in units per second into a per-tick pixel
// delta at the target frame rate. Movement and background scroll share it.
func (t *Timing) PixelsPerFrame(speed float64) int {
	return int(math.RoundToEven(speed / float64(t.TargetFPS)))
}

// Advance increments the tick counter after a simulation step.
func (t *Timing) Advance() {
	t.Ticks++
}

// Accumulate adds host elapsed time and returns how many fixed ticks are due.
// Time owed beyond the catch-up limit is dropped rather than carried.
func (t *Timing) Accumulate(elapsed time.Duration) int {
	if elapsed > 0 {
		t.accumulated += elapsed
	}
	n := int(t.accumulated / t.tickDuration)
	if n > t.maxCatchUp {
		n = t.maxCatchUp
		t.accumulated = 0
	} else {
		t.accumulated -= time.Duration(n) * t.tickDuration
	}
	t.TicksToProcess = n
	return n
}

// AddProcessing records time spent in simulation processing.
func (t *Timing) AddProcessing(d time.Duration) {
	if d > 0 {
		t.processing += d
	}
}

// AddDraw records time spent rendering.
func (t *Timing) AddDraw(d time.Duration) {
	if d > 0 {
		t.draw += d
	}
}

// Diagnostics is a read-only copy of the session counters.
type Diagnostics struct {
	Ticks        int64
	ProcessingMS int64
	DrawMS       int64
}

// Diagnostics returns the current counters.
func (t *Timing) Diagnostics() Diagnostics {
	return Diagnostics{
		Ticks:        t.Ticks,
		ProcessingMS: t.processing.Milliseconds(),
		DrawMS:       t.draw.Milliseconds(),
	}
}
