package systems

import (
	"errors"
	"testing"

	"github.com/pthm-cable/blaster/components"
)

func TestBehaviorSetResolvesClosedSet(t *testing.T) {
	set := NewBehaviorSet(ShotSpec{W: 24, H: 6, Sprite: "laser"})

	if _, ok := set.For(components.KindPlayer).(*PlayerBehavior); !ok {
		t.Errorf("expected *PlayerBehavior for player, got %T", set.For(components.KindPlayer))
	}
	if _, ok := set.For(components.KindEnemy).(*EnemyBehavior); !ok {
		t.Errorf("expected *EnemyBehavior for enemy, got %T", set.For(components.KindEnemy))
	}
	if _, ok := set.For(components.KindProjectile).(ProjectileBehavior); !ok {
		t.Errorf("expected ProjectileBehavior for projectile, got %T", set.For(components.KindProjectile))
	}
	if _, ok := set.For(components.Kind(99)).(BaseBehavior); !ok {
		t.Errorf("expected BaseBehavior for unknown kind, got %T", set.For(components.Kind(99)))
	}
}

func TestPlayerMovementClampsToBounds(t *testing.T) {
	set := NewBehaviorSet(ShotSpec{})
	timing := NewTiming(60, 1)
	bounds := components.NewRect(0, 0, 200, 100)

	a := components.NewActor(components.KindPlayer, components.NewRect(2, 50, 20, 10), "pickle")
	a.MaxSpeed = 600
	a.Intent = components.Intent{Left: true}

	Integrate(&a, set.For(a.Kind), bounds, timing)

	if a.Box.X != 0 {
		t.Errorf("expected player clamped to x=0, got %d", a.Box.X)
	}
}

func TestEnemyMovementLeavesBounds(t *testing.T) {
	set := NewBehaviorSet(ShotSpec{})
	timing := NewTiming(60, 1)
	bounds := components.NewRect(0, 0, 200, 100)

	a := components.NewActor(components.KindEnemy, components.NewRect(2, 50, 20, 10), "nugget")
	a.MaxSpeed = 600
	a.Intent = components.Intent{Left: true}

	Integrate(&a, set.For(a.Kind), bounds, timing)

	if a.Box.X != -8 {
		t.Errorf("expected enemy to commit x=-8, got %d", a.Box.X)
	}
}

func TestShotPlacement(t *testing.T) {
	shot := ShotSpec{W: 24, H: 6, Sprite: "laser", Speed: 900}
	set := NewBehaviorSet(shot)

	player := components.NewActor(components.KindPlayer, components.NewRect(100, 200, 96, 48), "pickle")
	p := set.For(player.Kind).Shoot(&player)
	if p.Box != components.NewRect(196, 221, 24, 6) {
		t.Errorf("unexpected player shot box %+v", p.Box)
	}
	if !p.Direction.Right || p.Direction.Left {
		t.Errorf("expected player shot to fly right, got %+v", p.Direction)
	}

	enemy := components.NewActor(components.KindEnemy, components.NewRect(500, 100, 64, 48), "nugget")
	enemy.Team = 1
	e := set.For(enemy.Kind).Shoot(&enemy)
	if e.Box != components.NewRect(476, 121, 24, 6) {
		t.Errorf("unexpected enemy shot box %+v", e.Box)
	}
	if !e.Direction.Left || e.Team != 1 {
		t.Errorf("expected team 1 shot flying left, got %+v", e)
	}
	if e.BaseSpeed != 900 || e.Sprite != "laser" {
		t.Errorf("expected shot spec carried into projectile, got %+v", e)
	}
}

func TestProjectileNeverShoots(t *testing.T) {
	set := NewBehaviorSet(ShotSpec{})
	gate := NewGate(NewManualClock(epoch))

	a := components.NewActor(components.KindProjectile, components.NewRect(0, 0, 4, 4), "laser")
	a.CanShoot = false

	if _, err := gate.Shoot(&a, set.For(a.Kind)); !errors.Is(err, ErrNotArmed) {
		t.Errorf("expected ErrNotArmed, got %v", err)
	}
}

func TestSetShotUpdatesShooters(t *testing.T) {
	set := NewBehaviorSet(ShotSpec{W: 24, H: 6})
	set.SetShot(ShotSpec{W: 48, H: 12})

	player := components.NewActor(components.KindPlayer, components.NewRect(0, 0, 10, 10), "pickle")
	if p := set.For(player.Kind).Shoot(&player); p.Box.W != 48 || p.Box.H != 12 {
		t.Errorf("expected rescaled shot 48x12, got %dx%d", p.Box.W, p.Box.H)
	}
}

func TestRescaleActor(t *testing.T) {
	a := components.NewActor(components.KindEnemy, components.NewRect(100, 50, 64, 48), "nugget")
	a.BaseSpeed = 400
	a.MaxSpeed = 400

	Rescale(&a, 1, 1.5)
	if a.Box != components.NewRect(150, 75, 96, 72) {
		t.Errorf("unexpected box after rescale %+v", a.Box)
	}
	if a.MaxSpeed != 600 {
		t.Errorf("expected MaxSpeed 600, got %d", a.MaxSpeed)
	}

	Rescale(&a, 1.5, 1)
	if a.Box != components.NewRect(100, 50, 64, 48) {
		t.Errorf("expected box restored, got %+v", a.Box)
	}
	if a.MaxSpeed != 400 {
		t.Errorf("expected MaxSpeed restored to 400, got %d", a.MaxSpeed)
	}
}

func TestRescaleRoundTripRestoresPixels(t *testing.T) {
	tests := []struct {
		name    string
		factors []float64
	}{
		{"shrink and grow", []float64{0.78125, 1.28}},
		{"repeated", []float64{0.78125, 1.28, 0.78125, 1.28}},
		{"uneven steps", []float64{0.93, 1 / 0.93, 0.93, 1 / 0.93}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := components.NewRect(10, 336, 96, 48)
			a := components.NewActor(components.KindPlayer, orig, "pickle")

			scale := 1.0
			for _, f := range tt.factors {
				next := scale * f
				Rescale(&a, scale, next)
				scale = next
			}

			if a.Box != orig {
				t.Errorf("expected %+v after round trip, got %+v", orig, a.Box)
			}
		})
	}
}

func TestRescaleReanchorsMovedActor(t *testing.T) {
	a := components.NewActor(components.KindEnemy, components.NewRect(100, 50, 64, 48), "nugget")

	Rescale(&a, 1, 2)
	a.Box = a.Box.Translate(-20, 0)

	Rescale(&a, 2, 1)
	if a.Box != components.NewRect(90, 50, 64, 48) {
		t.Errorf("expected moved position carried through rescale, got %+v", a.Box)
	}
}

func TestScaledSpeedNeverNegative(t *testing.T) {
	if got := ScaledSpeed(400, -1); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
