package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/systems"
)

// Update accounts a host frame interval and runs the ticks that are due.
// While stopped the ticks are still counted in TicksToProcess so the
// background keeps scrolling, but nothing is simulated.
// Returns the number of ticks simulated.
func (g *Game) Update(elapsed time.Duration) int {
	due := g.timing.Accumulate(elapsed)
	ran := 0
	for i := 0; i < due && g.running; i++ {
		g.Tick()
		ran++
	}
	return ran
}

// Tick runs one fixed simulation step. It does nothing while stopped.
func (g *Game) Tick() {
	if !g.running {
		return
	}

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(systems.PhaseInput)
	g.updateIntents()

	g.perfCollector.StartPhase(systems.PhaseMovement)
	g.updateMovement()

	g.perfCollector.StartPhase(systems.PhaseShooting)
	g.updateShooting()

	g.perfCollector.StartPhase(systems.PhaseCollision)
	g.updateCollisions()

	g.perfCollector.StartPhase(systems.PhaseCleanup)
	if g.cleanupDead() {
		g.pendingStop = true
	}

	g.perfCollector.StartPhase(systems.PhaseSpawn)
	g.updateSpawning()

	g.timing.Advance()
	g.timing.AddProcessing(g.perfCollector.EndTick())

	g.flushTelemetry()

	if g.pendingStop {
		g.pendingStop = false
		g.Stop()
	}
}

// updateIntents copies held keys into the player and AI decisions into enemies.
func (g *Game) updateIntents() {
	held := g.input.Intent()

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		switch a.Kind {
		case components.KindPlayer:
			a.Intent = held
		case components.KindEnemy:
			// Always advance, fire whenever the gate allows
			a.Intent = components.Intent{Left: true, Shoot: g.gate.CanShoot(a)}
		}
	}
}

// updateMovement integrates every actor's intent against the playfield.
func (g *Game) updateMovement() {
	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		systems.Integrate(a, g.behaviors.For(a.Kind), g.bounds, g.timing)
	}
}

// updateShooting fires through the cooldown gate and spawns the resulting
// projectiles once iteration is complete.
func (g *Game) updateShooting() {
	var shots []components.Projectile

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		if !a.Intent.Shoot || a.Kind == components.KindProjectile {
			continue
		}

		p, err := g.gate.Shoot(a, g.behaviors.For(a.Kind))
		if err != nil {
			if a.Kind == components.KindPlayer {
				g.recordDenial(a, err)
			}
			continue
		}
		shots = append(shots, p)
		if a.Kind == components.KindPlayer {
			g.sessionShots++
			if g.collector != nil {
				g.collector.RecordShot()
			}
		}
	}

	for _, p := range shots {
		g.spawnProjectile(p)
	}
}

// recordDenial logs a non-fatal shot denial and counts it by cause.
func (g *Game) recordDenial(a *components.Actor, err error) {
	slog.Debug("shot denied", "actor", a.ID, "kind", a.Kind.String(), "reason", err)
	if g.collector == nil {
		return
	}
	switch {
	case errors.Is(err, systems.ErrCooldownActive):
		g.collector.RecordDeniedCooldown()
	case errors.Is(err, systems.ErrNotArmed):
		g.collector.RecordDeniedNotArmed()
	}
}

// updateCollisions applies projectile hits and enemy contact with the player.
// Projectiles are consumed by their first hit.
func (g *Game) updateCollisions() {
	var projectiles, targets []*components.Actor
	var player *components.Actor

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		if !a.Alive() {
			continue
		}
		switch a.Kind {
		case components.KindProjectile:
			projectiles = append(projectiles, a)
		case components.KindPlayer:
			player = a
			targets = append(targets, a)
		default:
			targets = append(targets, a)
		}
	}

	for _, p := range projectiles {
		for _, t := range targets {
			if !systems.Hits(p, t) {
				continue
			}
			p.HitPoints = 0
			g.applyHit(t)
			break
		}
	}

	if player == nil {
		return
	}
	for _, t := range targets {
		if t.Kind != components.KindEnemy || !t.Alive() {
			continue
		}
		if systems.Hits(t, player) {
			// Contact destroys the enemy without scoring
			t.HitPoints = 0
			g.applyHit(player)
		}
	}
}

// applyHit removes one hit point from target and updates score and counters.
func (g *Game) applyHit(t *components.Actor) {
	destroyed := t.TakeDamage(1)

	switch t.Kind {
	case components.KindEnemy:
		if g.collector != nil {
			g.collector.RecordHit()
		}
		if destroyed {
			g.score += t.PointsOnKill
			g.sessionKills++
			if g.collector != nil {
				g.collector.RecordKill()
			}
		}
	case components.KindPlayer:
		if g.collector != nil {
			g.collector.RecordPlayerHit()
		}
		slog.Debug("player hit", "hit_points", t.HitPoints)
	}
}

// updateSpawning spawns an enemy every spawnEvery ticks.
func (g *Game) updateSpawning() {
	g.sinceSpawn++
	if g.sinceSpawn < g.spawnEvery {
		return
	}
	g.sinceSpawn = 0
	g.spawnEnemy()
}

// countActors returns the number of live enemies and projectiles.
func (g *Game) countActors() (enemies, projectiles int) {
	query := g.actorFilter.Query()
	for query.Next() {
		switch query.Get().Kind {
		case components.KindEnemy:
			enemies++
		case components.KindProjectile:
			projectiles++
		}
	}
	return enemies, projectiles
}

