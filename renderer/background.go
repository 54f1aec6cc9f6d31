package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// star is a background point in canvas coordinates at scale 1.
type star struct {
	x, y  int
	size  int32
	color rl.Color
}

// Background renders a starfield that scrolls left by the snapshot's
// ScrollPixels each frame.
type Background struct {
	stars  []star
	width  int // reference canvas width the stars wrap at
	height int
	offset float64 // reference pixels
	base   rl.Color
}

// NewBackground scatters count stars over a canvas of the given reference size.
func NewBackground(width, height, count int, seed int64) *Background {
	rng := rand.New(rand.NewSource(seed))
	b := &Background{
		width:  width,
		height: height,
		base:   rl.Color{R: 10, G: 12, B: 30, A: 255},
	}
	for i := 0; i < count; i++ {
		shade := uint8(120 + rng.Intn(136))
		b.stars = append(b.stars, star{
			x:     rng.Intn(width),
			y:     rng.Intn(height),
			size:  int32(1 + rng.Intn(3)),
			color: rl.Color{R: shade, G: shade, B: shade, A: 255},
		})
	}
	return b
}

// Scroll advances the background by px pixels of a canvas drawn at scale.
func (b *Background) Scroll(px int, scale float64) {
	if b.width <= 0 || scale <= 0 {
		return
	}
	b.offset = math.Mod(b.offset+float64(px)/scale, float64(b.width))
}

// Draw fills the canvas and draws the stars, scaled to the current canvas size.
func (b *Background) Draw(offsetX, offsetY, canvasW, canvasH int32) {
	rl.DrawRectangle(offsetX, offsetY, canvasW, canvasH, b.base)
	if b.width <= 0 || b.height <= 0 {
		return
	}

	sx := float32(canvasW) / float32(b.width)
	sy := float32(canvasH) / float32(b.height)
	for _, s := range b.stars {
		x := float64(s.x) - b.offset
		if x < 0 {
			x += float64(b.width)
		}
		rl.DrawRectangle(
			offsetX+int32(float32(x)*sx),
			offsetY+int32(float32(s.y)*sy),
			s.size, s.size, s.color,
		)
	}
}
