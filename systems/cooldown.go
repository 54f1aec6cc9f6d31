package systems

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/blaster/components"
)

// Shot denial conditions. Both wrap ErrShootDenied.
var (
	ErrShootDenied    = errors.New("shot denied")
	ErrNotArmed       = fmt.Errorf("%w: actor cannot shoot", ErrShootDenied)
	ErrCooldownActive = fmt.Errorf("%w: cooldown active", ErrShootDenied)
)

// Gate decides when actors may fire, against a real-time clock.
// It does not depend on the tick counter, so cooldowns stay accurate when
// the frame rate varies.
type Gate struct {
	clock Clock
}

// NewGate creates a gate reading the given clock. A nil clock uses the system clock.
func NewGate(clock Clock) *Gate {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Gate{clock: clock}
}

// Clock returns the clock the gate reads.
func (g *Gate) Clock() Clock {
	return g.clock
}

// StartCooldown sets the actor's deadline to now + its cooldown duration.
// The deadline never moves backwards.
func (g *Gate) StartCooldown(a *components.Actor) {
	deadline := nowMS(g.clock) + int64(a.ShootCooldownMS)
	if deadline > a.ShootCooldownDeadline {
		a.ShootCooldownDeadline = deadline
	}
}

// CanShoot reports whether the actor is armed and its deadline has strictly passed.
func (g *Gate) CanShoot(a *components.Actor) bool {
	return a.CanShoot && nowMS(g.clock) > a.ShootCooldownDeadline
}

// Shoot fires the actor through its behavior and starts the cooldown.
// On denial no projectile is produced.
func (g *Gate) Shoot(a *components.Actor, b Behavior) (components.Projectile, error) {
	if !a.CanShoot {
		return components.Projectile{}, ErrNotArmed
	}
	if nowMS(g.clock) <= a.ShootCooldownDeadline {
		return components.Projectile{}, ErrCooldownActive
	}
	p := b.Shoot(a)
	g.StartCooldown(a)
	return p, nil
}
