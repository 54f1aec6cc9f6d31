package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/blaster/camera"
	"github.com/pthm-cable/blaster/components"
	"github.com/pthm-cable/blaster/config"
	"github.com/pthm-cable/blaster/systems"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// testConfig returns defaults with a 600 px/s player (10 px per tick at
// 60 fps) and spawning pushed out of the way.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	i := cfg.Derived.ArchetypeIndex[ArchetypePlayer]
	cfg.Archetypes[i].BaseSpeed = 600
	cfg.Spawn.EnemyIntervalSec = 1000
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config) (*Game, *systems.ManualClock) {
	t.Helper()
	clock := systems.NewManualClock(epoch)
	g, err := New(cfg, Options{Headless: true, Seed: 42, Clock: clock})
	if err != nil {
		t.Fatal(err)
	}
	return g, clock
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func TestStartStop(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	if g.IsRunning() {
		t.Fatal("new game should be stopped")
	}
	if _, ok := g.Player(); ok {
		t.Fatal("stopped game should have no player")
	}

	g.HandleKey("Enter", true)
	if !g.IsRunning() {
		t.Fatal("start key should start the game")
	}
	p, ok := g.Player()
	if !ok {
		t.Fatal("expected a player after start")
	}
	if p.MaxSpeed != p.BaseSpeed {
		t.Errorf("expected MaxSpeed == BaseSpeed at scale 1, got %d vs %d", p.MaxSpeed, p.BaseSpeed)
	}

	g.Stop()
	if g.IsRunning() {
		t.Fatal("expected stopped")
	}
	if n := len(g.Snapshot().Rects); n != 0 {
		t.Errorf("expected entity collection dropped, got %d actors", n)
	}
}

func TestTickDoesNothingWhileStopped(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	g.Tick()
	if g.Ticks() != 0 {
		t.Errorf("expected no ticks while stopped, got %d", g.Ticks())
	}
}

func TestMoveDownFiveTicks(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	before, _ := g.Player()
	g.HandleKey("S", true)
	tickN(g, 5)
	after, _ := g.Player()

	if after.Box.Y-before.Box.Y != 50 {
		t.Errorf("expected Y to increase by 50, got %d", after.Box.Y-before.Box.Y)
	}
	if after.Box.X != before.Box.X {
		t.Errorf("expected X unchanged, got %d -> %d", before.Box.X, after.Box.X)
	}
	if after.Box.W != before.Box.W || after.Box.H != before.Box.H {
		t.Error("movement must not change box size")
	}
	if g.Ticks() != 5 {
		t.Errorf("expected 5 ticks, got %d", g.Ticks())
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	before, _ := g.Player()
	g.HandleKey("W", true)
	g.HandleKey("S", true)
	tickN(g, 3)
	after, _ := g.Player()

	if after.Box != before.Box {
		t.Errorf("expected no displacement, got %+v -> %+v", before.Box, after.Box)
	}
}

func TestAliasedKeysReleaseCleanly(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	g.HandleKey("S", true)
	g.HandleKey("Down", true)
	g.HandleKey("S", false)
	tickN(g, 1)
	p, _ := g.Player()
	if !p.Intent.Down {
		t.Fatal("Down still held, intent should remain")
	}

	g.HandleKey("Down", false)
	tickN(g, 1)
	p, _ = g.Player()
	if p.Intent.Down {
		t.Error("all keys released, intent should clear")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	before, _ := g.Player()
	g.HandleKey("F13", true)
	tickN(g, 2)
	after, _ := g.Player()

	if after.Box != before.Box {
		t.Errorf("unknown key moved the player: %+v -> %+v", before.Box, after.Box)
	}
}

func TestPlayerClampedToCanvas(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	g.HandleKey("Up", true)
	g.HandleKey("Left", true)
	tickN(g, 200)

	p, _ := g.Player()
	if p.Box.X != 0 || p.Box.Y != 0 {
		t.Errorf("expected player pinned at the top-left corner, got %+v", p.Box)
	}
}

func TestShootCooldown(t *testing.T) {
	g, clock := newTestGame(t, testConfig(t))
	g.Start()

	laser := components.SpriteID(g.projectileArch.Sprite)

	g.HandleKey("Space", true)
	tickN(g, 1)
	if n := g.Snapshot().Count(laser); n != 1 {
		t.Fatalf("expected 1 projectile after first shot, got %d", n)
	}

	// Cooldown is measured on the clock, not ticks
	tickN(g, 10)
	if n := g.Snapshot().Count(laser); n != 1 {
		t.Fatalf("expected cooldown to deny further shots, got %d projectiles", n)
	}

	clock.Advance(time.Duration(g.playerArch.ShootCooldownMS+1) * time.Millisecond)
	tickN(g, 1)
	if n := g.Snapshot().Count(laser); n != 2 {
		t.Errorf("expected a second shot after the cooldown, got %d projectiles", n)
	}
}

func TestProjectileCulledOffCanvas(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	laser := components.SpriteID(g.projectileArch.Sprite)

	g.HandleKey("Space", true)
	tickN(g, 1)
	g.HandleKey("Space", false)
	if g.Snapshot().Count(laser) != 1 {
		t.Fatal("expected a projectile in flight")
	}

	// 900 px/s is 15 px per tick; the canvas is 1280 wide
	tickN(g, 100)
	if n := g.Snapshot().Count(laser); n != 0 {
		t.Errorf("expected projectile culled, got %d", n)
	}
}

func TestKillScoresPoints(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	p, _ := g.Player()
	g.spawnEnemyAt(p.Box.Right()+100, p.Box.Y)

	g.HandleKey("Space", true)
	for i := 0; i < 30 && g.Score() == 0; i++ {
		g.Tick()
	}

	if g.Score() != g.enemyArch.PointsOnKill {
		t.Fatalf("expected score %d, got %d", g.enemyArch.PointsOnKill, g.Score())
	}
	if n := g.Snapshot().Count(components.SpriteID(g.enemyArch.Sprite)); n != 0 {
		t.Errorf("expected enemy removed, got %d", n)
	}
	if !g.IsRunning() {
		t.Error("game should still be running")
	}
}

func TestPlayerDeathStopsGame(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	g, err := New(cfg, Options{Headless: true, Seed: 1, Clock: systems.NewManualClock(epoch), OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	g.Start()

	g.actorMap.Get(g.player).HitPoints = 1
	p, _ := g.Player()
	g.spawnEnemyAt(p.Box.X, p.Box.Y)

	g.Tick()

	if g.IsRunning() {
		t.Fatal("expected game over after player destroyed")
	}
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 2 {
		t.Errorf("expected one session row, got:\n%s", data)
	}
}

func TestEnemyFireDamagesPlayer(t *testing.T) {
	g, clock := newTestGame(t, testConfig(t))
	g.Start()

	g.actorMap.Get(g.player).HitPoints = 2
	p, _ := g.Player()
	g.spawnEnemyAt(p.Box.Right()+200, p.Box.Y)

	// The enemy fires on its first tick; the shot closes the gap at 15 px
	// per tick while the enemy itself only covers 3.
	for i := 0; i < 20; i++ {
		g.Tick()
		if p, _ := g.Player(); p.HitPoints < 2 {
			break
		}
	}

	p, ok := g.Player()
	if !ok || p.HitPoints != 1 {
		t.Fatalf("expected player hit once by enemy fire, got %+v", p)
	}
	if !g.IsRunning() {
		t.Fatal("game should survive the first hit")
	}
	if n := g.Snapshot().Count(components.SpriteID(g.enemyArch.Sprite)); n != 1 {
		t.Errorf("expected the shooter still alive, got %d enemies", n)
	}
	if g.Score() != 0 {
		t.Errorf("enemy fire must not score, got %d", g.Score())
	}

	// Second shot once the cooldown has passed, long before contact
	clock.Advance(time.Duration(g.enemyArch.ShootCooldownMS+1) * time.Millisecond)
	for i := 0; i < 20 && g.IsRunning(); i++ {
		g.Tick()
	}
	if g.IsRunning() {
		t.Error("expected enemy fire to end the session")
	}
}

func TestAutoplayIgnoresRebindings(t *testing.T) {
	cfg := testConfig(t)
	cfg.Keys = map[string]string{"Enter": "shoot", "Return": "start"}
	g, _ := newTestGame(t, cfg)

	if !g.Autoplay() {
		t.Fatal("expected Enter found as the shoot key")
	}
	if !g.IsRunning() {
		t.Fatal("expected autoplay to start the session")
	}

	tickN(g, 1)
	if n := g.Snapshot().Count(components.SpriteID(g.projectileArch.Sprite)); n != 1 {
		t.Errorf("expected autoplay to fire, got %d projectiles", n)
	}

	g.Stop()
	cfg.Keys = map[string]string{"Return": "start"}
	g, _ = newTestGame(t, cfg)
	if g.Autoplay() {
		t.Error("expected no shoot key reported")
	}
	if !g.IsRunning() {
		t.Error("expected autoplay to start even without a shoot key")
	}
}

func TestRestartResetsScore(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()
	g.score = 500
	g.Stop()

	g.HandleKey("Enter", true)
	if g.Score() != 0 {
		t.Errorf("expected score reset on start, got %d", g.Score())
	}
}

func TestEnemiesSpawnOnInterval(t *testing.T) {
	cfg := testConfig(t)
	cfg.Spawn.EnemyIntervalSec = 0.5
	g, _ := newTestGame(t, cfg)
	g.Start()

	nugget := components.SpriteID(g.enemyArch.Sprite)

	tickN(g, 29)
	if n := g.Snapshot().Count(nugget); n != 0 {
		t.Fatalf("expected no enemies before the interval, got %d", n)
	}
	tickN(g, 1)
	if n := g.Snapshot().Count(nugget); n != 1 {
		t.Fatalf("expected one enemy at the interval, got %d", n)
	}

	snap := g.Snapshot()
	for _, id := range snap.Order {
		if snap.Sprites[id] != nugget {
			continue
		}
		r := snap.Rects[id]
		if r.Right() != snap.Bounds.Right() {
			t.Errorf("expected enemy flush with the right edge, got %+v", r)
		}
		if r.Y < 0 || r.Bottom() > snap.Bounds.Bottom() {
			t.Errorf("expected enemy inside vertical bounds, got %+v", r)
		}
	}
}

func TestRescaleRoundTrip(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()

	before, _ := g.Player()
	if err := g.Rescale(2); err != nil {
		t.Fatal(err)
	}
	mid, _ := g.Player()
	if mid.MaxSpeed != before.BaseSpeed*2 {
		t.Errorf("expected MaxSpeed doubled, got %d", mid.MaxSpeed)
	}
	if g.Bounds().W != 2*g.cfg.Screen.Width {
		t.Errorf("expected bounds doubled, got %+v", g.Bounds())
	}

	if err := g.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	after, _ := g.Player()
	if after.Box != before.Box {
		t.Errorf("expected box restored, got %+v -> %+v", before.Box, after.Box)
	}
	if after.MaxSpeed != before.MaxSpeed {
		t.Errorf("expected MaxSpeed restored, got %d", after.MaxSpeed)
	}
}

func TestRescaleWindowResizeRoundTrip(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()
	before, _ := g.Player()

	v := camera.New(g.cfg.Screen.Width, g.cfg.Screen.Height, 16.0/9.0)
	for _, w := range []int{1000, 1280, 1000, 1190, 1000, 1280} {
		if err := g.Rescale(v.Resize(w, 720)); err != nil {
			t.Fatal(err)
		}
		p, _ := g.Player()
		b := g.Bounds()
		if p.Box.X < b.X || p.Box.Y < b.Y || p.Box.Right() > b.Right() || p.Box.Bottom() > b.Bottom() {
			t.Fatalf("width %d: player %+v outside playfield %+v", w, p.Box, b)
		}
	}

	after, _ := g.Player()
	if after.Box != before.Box {
		t.Errorf("expected box restored, got %+v -> %+v", before.Box, after.Box)
	}
	if g.Bounds() != components.NewRect(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height) {
		t.Errorf("expected bounds restored, got %+v", g.Bounds())
	}
}

func TestRescaleKeepsSpawnedSizes(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()
	e := g.spawnEnemyAt(400, 200)

	for _, f := range []float64{0.78125, 1.28, 0.93} {
		if err := g.Rescale(f); err != nil {
			t.Fatal(err)
		}
	}

	w, h := g.archetypeSize(g.enemyArch)
	if box := g.actorMap.Get(e).Box; box.W != w || box.H != h {
		t.Errorf("expected rescaled enemy to match a fresh spawn %dx%d, got %+v", w, h, box)
	}
}

func TestRescaleRejectsInvalidFactor(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	for _, f := range []float64{0, -1} {
		if err := g.Rescale(f); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Rescale(%v): expected ErrInvalidScale, got %v", f, err)
		}
	}
}

func TestUpdateRunsDueTicks(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	// Stopped: ticks are released for scrolling but not simulated
	if ran := g.Update(50 * time.Millisecond); ran != 0 {
		t.Errorf("expected no ticks while stopped, got %d", ran)
	}
	if g.Snapshot().TicksToProcess != 3 {
		t.Errorf("expected 3 ticks to process, got %d", g.Snapshot().TicksToProcess)
	}

	g.Start()
	if ran := g.Update(time.Second); ran != g.cfg.Timing.MaxCatchUpTicks {
		t.Errorf("expected catch-up capped at %d, got %d", g.cfg.Timing.MaxCatchUpTicks, ran)
	}
}

func TestRecordDrawAccumulates(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	g.RecordDraw(3 * time.Millisecond)
	g.RecordDraw(4 * time.Millisecond)

	if d := g.Snapshot().Diagnostics.DrawMS; d != 7 {
		t.Errorf("expected 7ms draw time, got %d", d)
	}
}

func TestNewRejectsMissingArchetype(t *testing.T) {
	cfg := testConfig(t)
	delete(cfg.Derived.ArchetypeIndex, ArchetypeEnemy)

	if _, err := New(cfg, Options{Headless: true, Seed: 1}); err == nil {
		t.Error("expected error for missing enemy archetype")
	}
}

func TestSnapshotStatusLine(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))
	g.Start()
	tickN(g, 4)
	g.score = 300

	snap := g.Snapshot()
	if got := snap.StatusLine(false); got != "Score: 300" {
		t.Errorf("unexpected status %q", got)
	}
	if got := snap.StatusLine(true); !strings.HasPrefix(got, "Score: 300 ticks: 4 drawMs: 0 processMs: ") {
		t.Errorf("unexpected analytics status %q", got)
	}
}

func TestBackgroundScroll(t *testing.T) {
	g, _ := newTestGame(t, testConfig(t))

	// 1280 / 20 = 64 px/s, 1 px per tick at 60 fps
	g.Update(50 * time.Millisecond)
	if px := g.Snapshot().ScrollPixels; px != 3 {
		t.Errorf("expected 3 px scroll for 3 ticks, got %d", px)
	}

	g.Update(time.Millisecond)
	if px := g.Snapshot().ScrollPixels; px != 0 {
		t.Errorf("expected no scroll when no tick is due, got %d", px)
	}
}
