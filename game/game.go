// Package game holds the simulation context: the entity collection, the
// Stopped/Running state machine and the per-tick pipeline.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/config"
	"github.com/pthm-cable/blaster/systems"
	"github.com/pthm-cable/blaster/telemetry"
)

// Archetype names the simulation requires.
const (
	ArchetypePlayer     = "player"
	ArchetypeEnemy      = "enemy"
	ArchetypeProjectile = "projectile"
)

// ErrInvalidScale is returned by Rescale for non-positive or non-finite factors.
var ErrInvalidScale = errors.New("invalid scale factor")

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config

	world       *ecs.World
	actorMap    *ecs.Map1[components.Actor]
	actorFilter *ecs.Filter1[components.Actor]

	player    ecs.Entity
	hasPlayer bool
	nextID    uint32

	playerArch     config.ArchetypeConfig
	enemyArch      config.ArchetypeConfig
	projectileArch config.ArchetypeConfig

	behaviors *systems.BehaviorSet
	gate      *systems.Gate
	timing    *systems.Timing
	input     *systems.InputState
	bindings  systems.Bindings
	rng       *rand.Rand

	// Canvas
	reference components.Rect // canvas at scale 1
	bounds    components.Rect
	scale     float64

	// State
	running     bool
	score       int
	spawnEvery  int64
	sinceSpawn  int64
	pendingStop bool

	// Session tracking
	session      int
	sessionStart int64
	sessionDiag  systems.Diagnostics
	sessionKills int
	sessionShots int

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// New creates a stopped game from the given configuration.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("game: nil config")
	}

	g := &Game{
		cfg:       cfg,
		reference: components.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height),
		scale:     1,
		timing:    systems.NewTiming(cfg.Screen.TargetFPS, cfg.Timing.MaxCatchUpTicks),
		gate:      systems.NewGate(opts.Clock),
		input:     systems.NewInputState(),
		logStats:  opts.LogStats,
	}
	g.bounds = g.reference

	var ok bool
	for name, dst := range map[string]*config.ArchetypeConfig{
		ArchetypePlayer:     &g.playerArch,
		ArchetypeEnemy:      &g.enemyArch,
		ArchetypeProjectile: &g.projectileArch,
	} {
		if *dst, ok = cfg.Archetype(name); !ok {
			return nil, fmt.Errorf("game: missing archetype %q", name)
		}
	}

	bindings, err := systems.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.bindings = bindings

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Spawn.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.spawnEvery = int64(math.Round(cfg.Spawn.EnemyIntervalSec * float64(cfg.Screen.TargetFPS)))
	if g.spawnEvery < 1 {
		g.spawnEvery = 1
	}

	g.behaviors = systems.NewBehaviorSet(g.shotSpec())

	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow, nil)
	if cfg.Telemetry.LogEveryTicks > 0 {
		window := time.Duration(cfg.Telemetry.LogEveryTicks) * g.timing.TickDuration()
		g.collector = telemetry.NewCollector(window, g.timing.TickDuration())
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	g.resetWorld()

	slog.Info("game created",
		"seed", seed,
		"fps", g.timing.TargetFPS,
		"canvas", fmt.Sprintf("%dx%d", g.bounds.W, g.bounds.H),
		"headless", opts.Headless,
		"output", om.Dir(),
	)

	return g, nil
}

// resetWorld replaces the entity collection with an empty one.
func (g *Game) resetWorld() {
	g.world = ecs.NewWorld()
	g.actorMap = ecs.NewMap1[components.Actor](g.world)
	g.actorFilter = ecs.NewFilter1[components.Actor](g.world)
	g.hasPlayer = false
	g.nextID = 0
}

// Start moves Stopped -> Running with a fresh entity collection, a reset
// score and a newly spawned player. It does nothing while running.
func (g *Game) Start() {
	if g.running {
		return
	}

	g.resetWorld()
	g.input.Reset()
	g.score = 0
	g.sinceSpawn = 0
	g.pendingStop = false
	g.running = true

	g.session++
	g.sessionStart = g.timing.Ticks
	g.sessionDiag = g.timing.Diagnostics()
	g.sessionKills = 0
	g.sessionShots = 0

	g.spawnPlayer()

	slog.Info("session started", "session", g.session, "tick", g.timing.Ticks)
}

// Stop moves Running -> Stopped and drops the entity collection.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false

	rec := g.sessionRecord()
	slog.Info("session ended",
		"session", rec.Session,
		"score", rec.Score,
		"kills", rec.Kills,
		"shots", rec.ShotsFired,
		"duration_sec", rec.DurationSec,
	)
	if err := g.outputManager.WriteSession(rec); err != nil {
		slog.Error("failed to write session", "error", err)
	}

	g.resetWorld()
	g.input.Reset()
}

// IsRunning reports whether a session is in progress.
func (g *Game) IsRunning() bool {
	return g.running
}

// Score returns the current session's score.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks processed since creation.
func (g *Game) Ticks() int64 {
	return g.timing.Ticks
}

// Scale returns the cumulative canvas scale.
func (g *Game) Scale() float64 {
	return g.scale
}

// Bounds returns the current playfield rectangle.
func (g *Game) Bounds() components.Rect {
	return g.bounds
}

// Timing exposes the tick accounting, e.g. for background scroll.
func (g *Game) Timing() *systems.Timing {
	return g.timing
}

// Player returns a copy of the player actor, if one exists.
func (g *Game) Player() (components.Actor, bool) {
	if !g.hasPlayer || !g.world.Alive(g.player) {
		return components.Actor{}, false
	}
	return *g.actorMap.Get(g.player), true
}

// RecordDraw adds render time reported by the render boundary.
func (g *Game) RecordDraw(d time.Duration) {
	g.timing.AddDraw(d)
	g.perfCollector.RecordFrame()
}

// Rescale multiplies the canvas scale by factor between ticks. Actor boxes,
// speeds and the playfield are recomputed from their unscaled values at the
// new cumulative scale, then committed through each actor's behavior so the
// player stays inside the playfield.
func (g *Game) Rescale(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return nil
	}

	prev := g.scale
	g.scale *= factor
	g.bounds = g.reference.Scale(g.scale)
	g.behaviors.SetShot(g.shotSpec())

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		systems.Rescale(a, prev, g.scale)
		g.behaviors.For(a.Kind).ProcessMovement(a, g.bounds, a.Box)
	}

	slog.Debug("rescaled", "factor", factor, "scale", g.scale, "bounds", fmt.Sprintf("%dx%d", g.bounds.W, g.bounds.H))
	return nil
}

// Close ends any running session and flushes output files.
func (g *Game) Close() error {
	g.Stop()
	return g.outputManager.Close()
}

// shotSpec returns the projectile spec at the current scale.
func (g *Game) shotSpec() systems.ShotSpec {
	size := components.NewRect(0, 0, g.projectileArch.Width, g.projectileArch.Height).Scale(g.scale)
	return systems.ShotSpec{
		W:      size.W,
		H:      size.H,
		Sprite: components.SpriteID(g.projectileArch.Sprite),
		Speed:  g.projectileArch.BaseSpeed,
	}
}
