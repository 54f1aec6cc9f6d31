package game

import (
	"fmt"
	"slices"

	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/systems"
)

// Snapshot is a read-only copy of what the render boundary draws.
type Snapshot struct {
	Sprites map[uint32]components.SpriteID
	Rects   map[uint32]components.Rect
	Order   []uint32 // actor IDs, ascending

	Score       int
	Running     bool
	Diagnostics systems.Diagnostics

	// TicksToProcess is how many ticks the last Update released.
	TicksToProcess int
	// ScrollPixels is how far the background moves this frame.
	ScrollPixels int
	Bounds       components.Rect
}

// Snapshot copies the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Sprites:        make(map[uint32]components.SpriteID),
		Rects:          make(map[uint32]components.Rect),
		Score:          g.score,
		Running:        g.running,
		Diagnostics:    g.timing.Diagnostics(),
		TicksToProcess: g.timing.TicksToProcess,
		ScrollPixels:   g.scrollPixels(),
		Bounds:         g.bounds,
	}

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		s.Sprites[a.ID] = a.Sprite
		s.Rects[a.ID] = a.Box
		s.Order = append(s.Order, a.ID)
	}
	slices.Sort(s.Order)

	return s
}

// Count returns how many actors in the snapshot use sprite.
func (s Snapshot) Count(sprite components.SpriteID) int {
	n := 0
	for _, sp := range s.Sprites {
		if sp == sprite {
			n++
		}
	}
	return n
}

// StatusLine returns the HUD text. With analytics the tick and timing
// counters follow the score.
func (s Snapshot) StatusLine(analytics bool) string {
	if !analytics {
		return fmt.Sprintf("Score: %d", s.Score)
	}
	return fmt.Sprintf("Score: %d ticks: %d drawMs: %d processMs: %d",
		s.Score, s.Diagnostics.Ticks, s.Diagnostics.DrawMS, s.Diagnostics.ProcessingMS)
}

// scrollPixels converts the background speed (canvas width / divisor per
// second) into this frame's offset using the same per-tick conversion as
// actor movement.
func (g *Game) scrollPixels() int {
	speed := float64(g.bounds.W) / float64(g.cfg.Timing.BackgroundScrollDivisor)
	return g.timing.PixelsPerFrame(speed) * g.timing.TicksToProcess
}
