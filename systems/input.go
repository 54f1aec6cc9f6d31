package systems

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/blaster/components"
)

// Action is what a bound key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionShoot
	ActionStart
)

var actionNames = map[string]Action{
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"shoot":      ActionShoot,
	"start":      ActionStart,
}

// Bindings maps key names from the input boundary to actions.
type Bindings map[string]Action

// NewBindings parses a key name -> action name table.
func NewBindings(keys map[string]string) (Bindings, error) {
	b := make(Bindings, len(keys))
	for key, name := range keys {
		action, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", key, name)
		}
		b[key] = action
	}
	return b, nil
}

// Resolve returns the action bound to key. Unrecognized keys resolve to ActionNone.
func (b Bindings) Resolve(key string) Action {
	return b[key]
}

// Keys returns the bound key names in sorted order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeyFor returns the first key, in sorted order, bound to action.
func (b Bindings) KeyFor(action Action) (string, bool) {
	for _, k := range b.Keys() {
		if b[k] == action {
			return k, true
		}
	}
	return "", false
}

// InputState tracks which keys are held, so two keys bound to the same flag
// (e.g. W and Up) release cleanly.
type InputState struct {
	held map[string]Action
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{held: make(map[string]Action)}
}

// Key records a key transition for an already resolved action.
// ActionNone and ActionStart do not affect intents.
func (s *InputState) Key(key string, action Action, down bool) {
	if action == ActionNone || action == ActionStart {
		return
	}
	if down {
		s.held[key] = action
	} else {
		delete(s.held, key)
	}
}

// Reset releases every key.
func (s *InputState) Reset() {
	clear(s.held)
}

// Intent returns the flags implied by the held keys.
func (s *InputState) Intent() components.Intent {
	var in components.Intent
	for _, action := range s.held {
		switch action {
		case ActionMoveUp:
			in.Up = true
		case ActionMoveDown:
			in.Down = true
		case ActionMoveLeft:
			in.Left = true
		case ActionMoveRight:
			in.Right = true
		case ActionShoot:
			in.Shoot = true
		}
	}
	return in
}
