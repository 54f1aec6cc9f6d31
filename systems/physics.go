// Package systems contains the simulation steps applied to actors each tick.
package systems

import (
	"math"

	"github.com/pthm-cable/blaster/components"
)

// ComputeSpeed returns the actor's speed in units per second for this tick.
// With exactly two directional flags set the motion is treated as diagonal
// and MaxSpeed is divided by √2. Two opposite flags also count as two; their
// displacement cancels, so the reduced speed is never observable.
// The result is rounded half-to-even so repeated integer truncation carries no
// directional bias.
func ComputeSpeed(a *components.Actor) float64 {
	speed := float64(a.MaxSpeed)
	if a.Intent.DirectionCount() == 2 {
		speed /= math.Sqrt2
	}
	return math.RoundToEven(speed)
}

// Integrate proposes the actor's box for this tick and hands it to the
// behavior, which decides whether and how to commit it.
func Integrate(a *components.Actor, b Behavior, bounds components.Rect, timing *Timing) {
	ppf := timing.PixelsPerFrame(ComputeSpeed(a))
	dx, dy := Displacement(a.Intent, ppf)
	b.ProcessMovement(a, bounds, a.Box.Translate(dx, dy))
}

// Displacement converts intent flags into a per-tick pixel delta.
// Opposite flags held together net to zero.
func Displacement(in components.Intent, ppf int) (dx, dy int) {
	if in.Right {
		dx += ppf
	}
	if in.Left {
		dx -= ppf
	}
	if in.Down {
		dy += ppf
	}
	if in.Up {
		dy -= ppf
	}
	return dx, dy
}
