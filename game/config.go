package game

import "github.com/pthm-cable/blaster/systems"

// Options holds configuration for game initialization that is not part of
// the YAML config.
type Options struct {
	Headless  bool
	Seed      int64         // overrides spawn.seed when nonzero
	Clock     systems.Clock // cooldown time source, nil = system clock
	OutputDir string        // CSV output directory, empty = disabled
	LogStats  bool          // log telemetry windows to slog
}

// DefaultOptions returns windowed options timed by the system clock, with
// CSV output and stats logging off.
func DefaultOptions() Options {
	return Options{
		Clock: systems.SystemClock{},
	}
}
