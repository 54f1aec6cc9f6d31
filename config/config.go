// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig      `yaml:"screen"`
	Timing     TimingConfig      `yaml:"timing"`
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
	Spawn      SpawnConfig       `yaml:"spawn"`
	Keys       map[string]string `yaml:"keys"`
	Telemetry  TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
// Width and Height are the reference canvas all archetype sizes are expressed in.
type ScreenConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TargetFPS   int     `yaml:"target_fps"`
	AspectRatio float64 `yaml:"aspect_ratio"` // width / height, enforced on resize
	EdgePadding int     `yaml:"edge_padding"` // HUD inset from the canvas edge
}

// TimingConfig holds fixed-timestep parameters.
type TimingConfig struct {
	MaxCatchUpTicks         int `yaml:"max_catch_up_ticks"`        // Upper bound on ticks run per host frame
	BackgroundScrollDivisor int `yaml:"background_scroll_divisor"` // Background speed = width / divisor per second
}

// ArchetypeConfig defines the template an actor is spawned from.
type ArchetypeConfig struct {
	Name            string `yaml:"name"`
	Sprite          string `yaml:"sprite"`
	BaseSpeed       int    `yaml:"base_speed"`        // units per second
	ShootCooldownMS int    `yaml:"shoot_cooldown_ms"` // fixed per archetype
	CanShoot        bool   `yaml:"can_shoot"`
	Damageable      bool   `yaml:"damageable"`
	HitPoints       int    `yaml:"hit_points"`
	PointsOnKill    int    `yaml:"points_on_kill"`
	Team            int    `yaml:"team"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
}

// SpawnConfig holds enemy spawning parameters.
type SpawnConfig struct {
	EnemyIntervalSec float64 `yaml:"enemy_interval_sec"`
	Seed             int64   `yaml:"seed"` // 0 = time-based
}

// TelemetryConfig holds diagnostics parameters.
type TelemetryConfig struct {
	Analytics     bool `yaml:"analytics"`       // Show tick/draw/process counters in the HUD
	PerfWindow    int  `yaml:"perf_window"`     // Ticks averaged by the perf collector
	LogEveryTicks int  `yaml:"log_every_ticks"` // Perf log cadence (0 = never)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickDuration   time.Duration  // 1 / TargetFPS
	ArchetypeIndex map[string]int // name -> index into Archetypes
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	for _, arch := range c.Archetypes {
		if arch.BaseSpeed < 0 {
			return fmt.Errorf("archetype %q: base_speed must not be negative", arch.Name)
		}
		if arch.HitPoints < 0 {
			return fmt.Errorf("archetype %q: hit_points must not be negative", arch.Name)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDuration = time.Second / time.Duration(c.Screen.TargetFPS)

	if c.Screen.AspectRatio == 0 {
		c.Screen.AspectRatio = float64(c.Screen.Width) / float64(c.Screen.Height)
	}
	if c.Timing.MaxCatchUpTicks < 1 {
		c.Timing.MaxCatchUpTicks = 1
	}
	if c.Timing.BackgroundScrollDivisor < 1 {
		c.Timing.BackgroundScrollDivisor = 20
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = c.Screen.TargetFPS
	}

	c.Derived.ArchetypeIndex = make(map[string]int, len(c.Archetypes))
	for i, arch := range c.Archetypes {
		c.Derived.ArchetypeIndex[arch.Name] = i
	}
}

// Archetype returns the named archetype and whether it exists.
func (c *Config) Archetype(name string) (ArchetypeConfig, bool) {
	i, ok := c.Derived.ArchetypeIndex[name]
	if !ok {
		return ArchetypeConfig{}, false
	}
	return c.Archetypes[i], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
