package game

import (
	"log/slog"

	"github.com/pthm-cable/blaster/systems"
)

// HandleKey applies a key transition from the input boundary.
// Key names resolve through the configured bindings; unbound names are ignored.
// The start action only acts on key down while stopped.
func (g *Game) HandleKey(name string, down bool) {
	action := g.bindings.Resolve(name)
	switch action {
	case systems.ActionNone:
		return
	case systems.ActionStart:
		if down && !g.running {
			g.Start()
		}
		return
	}

	g.input.Key(name, action, down)
	slog.Debug("key", "name", name, "down", down)
}

// Autoplay starts a session if none is running and holds the first key
// bound to shoot. The session starts regardless of how start is bound.
// Returns false if no key is bound to shoot.
func (g *Game) Autoplay() bool {
	if !g.running {
		g.Start()
	}
	key, ok := g.bindings.KeyFor(systems.ActionShoot)
	if ok {
		g.HandleKey(key, true)
	}
	return ok
}

// Bindings returns the key bindings, e.g. for a key legend.
func (g *Game) Bindings() systems.Bindings {
	return g.bindings
}
