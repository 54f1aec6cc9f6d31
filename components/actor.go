package components

// DefaultBaseSpeed is used when an actor is built without an archetype.
const DefaultBaseSpeed = 400

// DefaultShootCooldownMS is the cooldown of an actor built without an archetype.
const DefaultShootCooldownMS = 1500

// Actor is the moving, shooting entity every variant shares.
type Actor struct {
	ID     uint32
	Kind   Kind
	Sprite SpriteID

	BaseSpeed int // units per second
	MaxSpeed  int // starts at BaseSpeed, rescaled with the canvas

	Intent Intent

	Team       int
	CanShoot   bool
	Damageable bool
	HitPoints  int

	ShootCooldownDeadline int64 // unix ms after which a shot is permitted
	ShootCooldownMS       int

	Box          Rect
	Ref          RefRect // Box at canvas scale 1, source of truth on rescale
	PointsOnKill int
}

// NewActor creates an actor with default stats at the given box.
func NewActor(kind Kind, box Rect, sprite SpriteID) Actor {
	return Actor{
		Kind:            kind,
		Sprite:          sprite,
		BaseSpeed:       DefaultBaseSpeed,
		MaxSpeed:        DefaultBaseSpeed,
		Damageable:      true,
		HitPoints:       1,
		ShootCooldownMS: DefaultShootCooldownMS,
		Box:             box,
		Ref:             RefOf(box, 1),
	}
}

// Alive reports whether the actor still has hit points.
func (a *Actor) Alive() bool {
	return a.HitPoints > 0
}

// TakeDamage removes hit points from a damageable actor, never going below zero.
// Returns true if this hit destroyed the actor.
func (a *Actor) TakeDamage(amount int) bool {
	if !a.Damageable || !a.Alive() || amount <= 0 {
		return false
	}
	a.HitPoints -= amount
	if a.HitPoints < 0 {
		a.HitPoints = 0
	}
	return a.HitPoints == 0
}

// Projectile describes a shot to be spawned by the engine.
type Projectile struct {
	Box       Rect
	Team      int
	Sprite    SpriteID
	Direction Intent // flags the projectile moves along
	BaseSpeed int    // 0 = use the projectile archetype speed
}
