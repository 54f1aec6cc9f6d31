package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/config"
	"github.com/pthm-cable/blaster/systems"
)

// actorFromArchetype builds an actor of the given kind at box, with the
// archetype's stats at the current scale.
func (g *Game) actorFromArchetype(kind components.Kind, arch config.ArchetypeConfig, box components.Rect) components.Actor {
	a := components.NewActor(kind, box, components.SpriteID(arch.Sprite))
	a.BaseSpeed = arch.BaseSpeed
	a.MaxSpeed = systems.ScaledSpeed(arch.BaseSpeed, g.scale)
	a.ShootCooldownMS = arch.ShootCooldownMS
	a.CanShoot = arch.CanShoot
	a.Damageable = arch.Damageable
	a.HitPoints = arch.HitPoints
	a.PointsOnKill = arch.PointsOnKill
	a.Team = arch.Team
	a.Ref = components.RefOf(box, g.scale)
	a.Ref.W, a.Ref.H = arch.Width, arch.Height
	return a
}

// archetypeSize returns the archetype's box size at the current scale.
func (g *Game) archetypeSize(arch config.ArchetypeConfig) (w, h int) {
	r := components.NewRect(0, 0, arch.Width, arch.Height).Scale(g.scale)
	return r.W, r.H
}

// addActor assigns an ID and inserts the actor into the world.
func (g *Game) addActor(a components.Actor) ecs.Entity {
	a.ID = g.nextID
	g.nextID++
	return g.actorMap.NewEntity(&a)
}

// spawnPlayer places the player at the left edge, vertically centered.
func (g *Game) spawnPlayer() {
	w, h := g.archetypeSize(g.playerArch)
	pad := components.NewRect(0, 0, g.cfg.Screen.EdgePadding, 0).Scale(g.scale).W
	box := components.NewRect(g.bounds.X+pad, g.bounds.Y+(g.bounds.H-h)/2, w, h)

	g.player = g.addActor(g.actorFromArchetype(components.KindPlayer, g.playerArch, box))
	g.hasPlayer = true
}

// spawnEnemy places an enemy flush with the right edge at a random height.
func (g *Game) spawnEnemy() ecs.Entity {
	w, h := g.archetypeSize(g.enemyArch)
	y := g.bounds.Y
	if span := g.bounds.H - h; span > 0 {
		y += g.rng.Intn(span + 1)
	}
	return g.spawnEnemyAt(g.bounds.Right()-w, y)
}

// spawnEnemyAt places an enemy with its top-left corner at (x, y).
func (g *Game) spawnEnemyAt(x, y int) ecs.Entity {
	w, h := g.archetypeSize(g.enemyArch)
	e := g.addActor(g.actorFromArchetype(components.KindEnemy, g.enemyArch, components.NewRect(x, y, w, h)))
	if g.collector != nil {
		g.collector.RecordSpawn()
	}
	return e
}

// spawnProjectile inserts a shot produced by a behavior.
func (g *Game) spawnProjectile(p components.Projectile) ecs.Entity {
	a := g.actorFromArchetype(components.KindProjectile, g.projectileArch, p.Box)
	if p.Sprite != "" {
		a.Sprite = p.Sprite
	}
	if p.BaseSpeed > 0 {
		a.BaseSpeed = p.BaseSpeed
		a.MaxSpeed = systems.ScaledSpeed(p.BaseSpeed, g.scale)
	}
	a.Team = p.Team
	a.Intent = p.Direction
	a.CanShoot = false
	return g.addActor(a)
}

// cleanupDead removes destroyed actors and non-player actors that left the
// canvas. Returns true if the player was destroyed.
func (g *Game) cleanupDead() (playerDead bool) {
	// First pass: collect (must complete before modifying the world)
	var toRemove []ecs.Entity

	query := g.actorFilter.Query()
	for query.Next() {
		a := query.Get()
		switch {
		case !a.Alive():
			if a.Kind == components.KindPlayer {
				playerDead = true
			}
			toRemove = append(toRemove, query.Entity())
		case a.Kind != components.KindPlayer && systems.OffCanvas(a, g.bounds):
			if a.Kind == components.KindEnemy && g.collector != nil {
				g.collector.RecordEscape()
			}
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove
	for _, e := range toRemove {
		if e == g.player {
			g.hasPlayer = false
		}
		g.world.RemoveEntity(e)
	}

	if playerDead {
		slog.Info("player destroyed", "tick", g.timing.Ticks, "score", g.score)
	}
	return playerDead
}
