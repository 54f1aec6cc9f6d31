// Package renderer draws game snapshots with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/game"
)

// DefaultPalette colors the built-in sprite handles.
var DefaultPalette = map[components.SpriteID]rl.Color{
	"pickle": {R: 90, G: 180, B: 70, A: 255},
	"nugget": {R: 220, G: 160, B: 60, A: 255},
	"laser":  {R: 255, G: 60, B: 60, A: 255},
}

// Sprites draws each actor's box in the color of its sprite handle.
// Unknown handles are drawn in magenta so missing entries are obvious.
type Sprites struct {
	palette map[components.SpriteID]rl.Color
	outline bool
}

// NewSprites creates a sprite renderer. A nil palette uses DefaultPalette.
func NewSprites(palette map[components.SpriteID]rl.Color) *Sprites {
	if palette == nil {
		palette = DefaultPalette
	}
	return &Sprites{palette: palette}
}

// SetOutline toggles drawing box outlines, useful when checking hit boxes.
func (s *Sprites) SetOutline(on bool) {
	s.outline = on
}

// Draw renders the snapshot with the canvas origin at (offsetX, offsetY).
func (s *Sprites) Draw(snap game.Snapshot, offsetX, offsetY int32) {
	for _, id := range snap.Order {
		r := snap.Rects[id]
		color, ok := s.palette[snap.Sprites[id]]
		if !ok {
			color = rl.Magenta
		}

		x := offsetX + int32(r.X)
		y := offsetY + int32(r.Y)
		rl.DrawRectangle(x, y, int32(r.W), int32(r.H), color)
		if s.outline {
			rl.DrawRectangleLines(x, y, int32(r.W), int32(r.H), rl.White)
		}
	}
}
