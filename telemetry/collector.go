package telemetry

import "time"

// Collector accumulates gameplay events within tick windows and produces WindowStats.
type Collector struct {
	windowDuration      time.Duration
	windowDurationTicks int64
	tickDuration        time.Duration

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	enemiesSpawned int
	enemiesEscaped int
	shotsFired     int
	deniedCooldown int
	deniedNotArmed int
	hits           int
	kills          int
	playerHits     int
}

// NewCollector creates a new stats collector.
// window: how long each stats window lasts in simulation time
// tickDuration: simulation time per tick
func NewCollector(window, tickDuration time.Duration) *Collector {
	if tickDuration <= 0 {
		tickDuration = time.Second / 60
	}
	ticksPerWindow := int64(window / tickDuration)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDuration:      window,
		windowDurationTicks: ticksPerWindow,
		tickDuration:        tickDuration,
	}
}

// RecordSpawn records an enemy spawn.
func (c *Collector) RecordSpawn() { c.enemiesSpawned++ }

// RecordEscape records an enemy leaving the playfield alive.
func (c *Collector) RecordEscape() { c.enemiesEscaped++ }

// RecordShot records a projectile fired.
func (c *Collector) RecordShot() { c.shotsFired++ }

// RecordDeniedCooldown records a shot blocked by an active cooldown.
func (c *Collector) RecordDeniedCooldown() { c.deniedCooldown++ }

// RecordDeniedNotArmed records a shot attempted by an actor that cannot fire.
func (c *Collector) RecordDeniedNotArmed() { c.deniedNotArmed++ }

// RecordHit records a projectile or contact hit on an enemy.
func (c *Collector) RecordHit() { c.hits++ }

// RecordKill records an enemy destroyed.
func (c *Collector) RecordKill() { c.kills++ }

// RecordPlayerHit records damage taken by the player.
func (c *Collector) RecordPlayerHit() { c.playerHits++ }

// ShouldFlush returns true if the current window is complete.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces WindowStats for the completed window and resets counters.
func (c *Collector) Flush(currentTick int64, enemies, projectiles, score int) WindowStats {
	var hitRate float64
	if c.shotsFired > 0 {
		hitRate = float64(c.hits) / float64(c.shotsFired)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      (time.Duration(currentTick) * c.tickDuration).Seconds(),
		Enemies:         enemies,
		Projectiles:     projectiles,
		EnemiesSpawned:  c.enemiesSpawned,
		EnemiesEscaped:  c.enemiesEscaped,
		ShotsFired:      c.shotsFired,
		DeniedCooldown:  c.deniedCooldown,
		DeniedNotArmed:  c.deniedNotArmed,
		Hits:            c.hits,
		Kills:           c.kills,
		PlayerHits:      c.playerHits,
		HitRate:         hitRate,
		Score:           score,
	}

	c.windowStartTick = currentTick
	c.enemiesSpawned = 0
	c.enemiesEscaped = 0
	c.shotsFired = 0
	c.deniedCooldown = 0
	c.deniedNotArmed = 0
	c.hits = 0
	c.kills = 0
	c.playerHits = 0

	return stats
}

// WindowDurationTicks returns the window length in ticks.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
