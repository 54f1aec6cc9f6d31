package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// keyNames maps the key names used in config bindings to raylib key codes.
var keyNames = map[string]int32{
	"W":      rl.KeyW,
	"A":      rl.KeyA,
	"S":      rl.KeyS,
	"D":      rl.KeyD,
	"Up":     rl.KeyUp,
	"Down":   rl.KeyDown,
	"Left":   rl.KeyLeft,
	"Right":  rl.KeyRight,
	"Space":  rl.KeySpace,
	"Enter":  rl.KeyEnter,
	"Escape": rl.KeyEscape,
}

// KeyHandler receives key transitions by name.
type KeyHandler func(name string, down bool)

// PollKeys reports this frame's press and release transitions for every
// named key to handle. Must be called between BeginDrawing frames.
func PollKeys(handle KeyHandler) {
	for name, code := range keyNames {
		if rl.IsKeyPressed(code) {
			handle(name, true)
		}
		if rl.IsKeyReleased(code) {
			handle(name, false)
		}
	}
}
