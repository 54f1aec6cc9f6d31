package systems

import "github.com/pthm-cable/blaster/components"

// Behavior is the part of an actor that varies by Kind.
// The implementations in this file are the complete set.
type Behavior interface {
	// Shoot builds the projectile this actor fires. The cooldown gate decides
	// whether it is called.
	Shoot(a *components.Actor) components.Projectile
	// ProcessMovement decides whether and how the proposed box is committed.
	ProcessMovement(a *components.Actor, bounds, proposed components.Rect)
}

// ShotSpec describes the projectiles shooters produce, in current canvas pixels.
type ShotSpec struct {
	W, H   int
	Sprite components.SpriteID
	Speed  int // units per second, 0 = archetype default
}

// BaseBehavior commits every proposal and fires nothing useful.
type BaseBehavior struct{}

// Shoot returns an empty projectile.
func (BaseBehavior) Shoot(a *components.Actor) components.Projectile {
	return components.Projectile{Team: a.Team}
}

// ProcessMovement commits the proposal unconditionally.
func (BaseBehavior) ProcessMovement(a *components.Actor, _, proposed components.Rect) {
	a.Box = proposed
}

// PlayerBehavior fires to the right and stays inside the playfield.
type PlayerBehavior struct {
	Shot ShotSpec
}

// Shoot spawns a projectile at the right edge of the player, vertically centered.
func (p *PlayerBehavior) Shoot(a *components.Actor) components.Projectile {
	box := components.NewRect(
		a.Box.Right(),
		a.Box.Y+a.Box.H/2-p.Shot.H/2,
		p.Shot.W, p.Shot.H,
	)
	return components.Projectile{
		Box:       box,
		Team:      a.Team,
		Sprite:    p.Shot.Sprite,
		Direction: components.Intent{Right: true},
		BaseSpeed: p.Shot.Speed,
	}
}

// ProcessMovement clamps the proposal inside bounds.
func (p *PlayerBehavior) ProcessMovement(a *components.Actor, bounds, proposed components.Rect) {
	a.Box = proposed.ClampInside(bounds)
}

// EnemyBehavior fires to the left and commits every proposal, so enemies
// can drift off the playfield and be culled.
type EnemyBehavior struct {
	Shot ShotSpec
}

// Shoot spawns a projectile just left of the enemy, vertically centered.
func (e *EnemyBehavior) Shoot(a *components.Actor) components.Projectile {
	box := components.NewRect(
		a.Box.X-e.Shot.W,
		a.Box.Y+a.Box.H/2-e.Shot.H/2,
		e.Shot.W, e.Shot.H,
	)
	return components.Projectile{
		Box:       box,
		Team:      a.Team,
		Sprite:    e.Shot.Sprite,
		Direction: components.Intent{Left: true},
		BaseSpeed: e.Shot.Speed,
	}
}

// ProcessMovement commits the proposal.
func (e *EnemyBehavior) ProcessMovement(a *components.Actor, _, proposed components.Rect) {
	a.Box = proposed
}

// ProjectileBehavior is passive: it never fires and always commits.
type ProjectileBehavior struct {
	BaseBehavior
}

// BehaviorSet resolves a Kind to its behavior.
type BehaviorSet struct {
	player     PlayerBehavior
	enemy      EnemyBehavior
	projectile ProjectileBehavior
	base       BaseBehavior
}

// NewBehaviorSet creates the behaviors with the given projectile spec.
func NewBehaviorSet(shot ShotSpec) *BehaviorSet {
	return &BehaviorSet{
		player: PlayerBehavior{Shot: shot},
		enemy:  EnemyBehavior{Shot: shot},
	}
}

// SetShot replaces the projectile spec, e.g. after a rescale.
func (s *BehaviorSet) SetShot(shot ShotSpec) {
	s.player.Shot = shot
	s.enemy.Shot = shot
}

// For returns the behavior for kind. Unknown kinds get the base behavior.
func (s *BehaviorSet) For(kind components.Kind) Behavior {
	switch kind {
	case components.KindPlayer:
		return &s.player
	case components.KindEnemy:
		return &s.enemy
	case components.KindProjectile:
		return s.projectile
	}
	return s.base
}
