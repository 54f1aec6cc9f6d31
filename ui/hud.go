package ui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blaster/systems"
	"github.com/pthm-cable/blaster/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Status  string // score line, with analytics when enabled
	Legend  string
	FPS     int32
	OffsetX int32 // canvas letterbox offset
	OffsetY int32
	CanvasW int32
	CanvasH int32
	Padding int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	x := data.OffsetX + data.Padding
	y := data.OffsetY + data.Padding

	rl.DrawText(data.Status, x, y, 20, rl.White)
	if data.FPS > 0 {
		rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), x, y+24, 14, rl.LightGray)
	}

	if data.Legend != "" {
		rl.DrawText(data.Legend, x, data.OffsetY+data.CanvasH-data.Padding-14, 14, rl.Gray)
	}
}

// KeyLegend renders bindings as "Key=action" pairs grouped by action.
func KeyLegend(b systems.Bindings) string {
	byAction := make(map[systems.Action][]string)
	for _, key := range b.Keys() {
		a := b.Resolve(key)
		byAction[a] = append(byAction[a], key)
	}

	labels := []struct {
		action systems.Action
		label  string
	}{
		{systems.ActionMoveUp, "up"},
		{systems.ActionMoveDown, "down"},
		{systems.ActionMoveLeft, "left"},
		{systems.ActionMoveRight, "right"},
		{systems.ActionShoot, "shoot"},
		{systems.ActionStart, "start"},
	}

	var parts []string
	for _, l := range labels {
		if keys := byAction[l.action]; len(keys) > 0 {
			parts = append(parts, strings.Join(keys, "/")+": "+l.label)
		}
	}
	return strings.Join(parts, "  ")
}

// PerfPanel renders the per-phase tick breakdown.
type PerfPanel struct {
	registry *systems.SystemRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		registry: systems.NewSystemRegistry(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  p95: %s",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.P95TickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, info := range p.registry.All() {
		pct := stats.PhasePct[info.ID]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %6s %5.1f%%", info.Name, stats.PhaseAvg[info.ID].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
