package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/blaster/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it.
func (g *Game) flushTelemetry() {
	if g.collector == nil || !g.collector.ShouldFlush(g.timing.Ticks) {
		return
	}

	enemies, projectiles := g.countActors()
	stats := g.collector.Flush(g.timing.Ticks, enemies, projectiles, g.score)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// PerfStats returns the rolling performance statistics.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// sessionRecord summarizes the current session.
func (g *Game) sessionRecord() telemetry.SessionRecord {
	diag := g.timing.Diagnostics()
	ticks := diag.Ticks - g.sessionStart
	return telemetry.SessionRecord{
		Session:      g.session,
		StartTick:    g.sessionStart,
		EndTick:      diag.Ticks,
		DurationSec:  (g.timing.TickDuration() * time.Duration(ticks)).Seconds(),
		Score:        g.score,
		Kills:        g.sessionKills,
		ShotsFired:   g.sessionShots,
		ProcessingMS: diag.ProcessingMS - g.sessionDiag.ProcessingMS,
		DrawMS:       diag.DrawMS - g.sessionDiag.DrawMS,
	}
}
