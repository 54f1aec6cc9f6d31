package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Title is shown while no session is running.
const Title = "Nugget Blaster"

// Menu draws the title screen controls.
type Menu struct {
	Analytics bool
	HitBoxes  bool // outline actor boxes
}

// NewMenu creates the title screen with the analytics toggle preset.
func NewMenu(analytics bool) *Menu {
	return &Menu{Analytics: analytics}
}

// Draw renders the title, the start button and the option toggles,
// centered on the canvas. Returns true when start was clicked.
func (m *Menu) Draw(offsetX, offsetY, canvasW, canvasH int32) bool {
	titleSize := canvasH / 10
	titleW := rl.MeasureText(Title, titleSize)
	cx := offsetX + canvasW/2
	cy := offsetY + canvasH/2

	rl.DrawText(Title, cx-titleW/2, cy-titleSize*2, titleSize, rl.Gold)
	rl.DrawText("Press Enter to start", cx-rl.MeasureText("Press Enter to start", 20)/2, cy-titleSize/2, 20, rl.LightGray)

	start := gui.Button(rl.Rectangle{X: float32(cx - 80), Y: float32(cy + 20), Width: 160, Height: 36}, "Start")
	m.Analytics = gui.CheckBox(rl.Rectangle{X: float32(cx - 80), Y: float32(cy + 70), Width: 18, Height: 18}, "Analytics", m.Analytics)
	m.HitBoxes = gui.CheckBox(rl.Rectangle{X: float32(cx - 80), Y: float32(cy + 96), Width: 18, Height: 18}, "Hit boxes", m.HitBoxes)

	return start
}
