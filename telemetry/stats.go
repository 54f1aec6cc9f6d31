package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated gameplay statistics for a tick window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Enemies     int `csv:"enemies"`
	Projectiles int `csv:"projectiles"`

	// Events during window
	EnemiesSpawned int `csv:"enemies_spawned"`
	EnemiesEscaped int `csv:"enemies_escaped"`
	ShotsFired     int `csv:"shots_fired"`
	DeniedCooldown int `csv:"denied_cooldown"`
	DeniedNotArmed int `csv:"denied_not_armed"`
	Hits           int `csv:"hits"`
	Kills          int `csv:"kills"`
	PlayerHits     int `csv:"player_hits"`

	HitRate float64 `csv:"hit_rate"`

	// Score at window end
	Score int `csv:"score"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("enemies", s.Enemies),
		slog.Int("projectiles", s.Projectiles),
		slog.Int("spawned", s.EnemiesSpawned),
		slog.Int("escaped", s.EnemiesEscaped),
		slog.Int("shots", s.ShotsFired),
		slog.Int("denied_cooldown", s.DeniedCooldown),
		slog.Int("hits", s.Hits),
		slog.Int("kills", s.Kills),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("score", s.Score),
	)
}

// LogStats logs the window at info level.
func (s WindowStats) LogStats() {
	slog.Info("window", "stats", s)
}

// sortedCopy returns an ascending copy of xs.
func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}
