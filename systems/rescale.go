package systems

import (
	"math"

	"github.com/pthm-cable/blaster/components"
)

// ScaledSpeed returns baseSpeed at the given cumulative canvas scale, never negative.
func ScaledSpeed(baseSpeed int, scale float64) int {
	s := int(math.Round(float64(baseSpeed) * scale))
	if s < 0 {
		return 0
	}
	return s
}

// Rescale moves the actor from cumulative scale prev to next. Box and
// MaxSpeed are derived from the unscaled reference box and BaseSpeed, so
// rounding never accumulates across resizes. An axis the actor moved along
// since the last rescale is re-anchored from its current pixel position.
func Rescale(a *components.Actor, prev, next float64) {
	anchored := a.Ref.At(prev)
	if anchored.X != a.Box.X {
		a.Ref.X = float64(a.Box.X) / prev
	}
	if anchored.Y != a.Box.Y {
		a.Ref.Y = float64(a.Box.Y) / prev
	}

	a.Box = a.Ref.At(next)
	a.MaxSpeed = ScaledSpeed(a.BaseSpeed, next)
}
