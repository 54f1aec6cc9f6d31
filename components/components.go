// Package components defines the plain data actors are made of.
package components

// Kind discriminates the closed set of actor variants.
// Every Kind maps to exactly one behavior in the systems package.
type Kind uint8

const (
	KindPlayer     Kind = iota // Input-driven ship, clamped to the playfield
	KindEnemy                  // AI-driven, drifts left and fires
	KindProjectile             // Passive, flies until it leaves the canvas
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// SpriteID is the handle the render boundary resolves to an image.
type SpriteID string

// Intent holds the movement and shoot flags set by input handling.
// The integrator only reads them.
type Intent struct {
	Right bool
	Left  bool
	Up    bool
	Down  bool
	Shoot bool
}

// DirectionCount returns how many of the four directional flags are set.
func (i Intent) DirectionCount() int {
	n := 0
	for _, set := range [4]bool{i.Right, i.Left, i.Up, i.Down} {
		if set {
			n++
		}
	}
	return n
}
