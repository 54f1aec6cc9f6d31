package systems

import "github.com/pthm-cable/blaster/components"

// Hits reports whether attacker's box overlaps a damageable, living target
// on another team. Only detection happens here; there is no resolution.
func Hits(attacker, target *components.Actor) bool {
	if attacker.ID == target.ID || attacker.Team == target.Team {
		return false
	}
	if !target.Damageable || !target.Alive() {
		return false
	}
	return attacker.Box.Intersects(target.Box)
}

// OffCanvas reports whether the actor has left the playfield entirely.
func OffCanvas(a *components.Actor, bounds components.Rect) bool {
	return a.Box.Outside(bounds)
}
