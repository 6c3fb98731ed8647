package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-fracture/internal/config"
	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/physics"
)

const dt = 0.1

type fakeRecorder struct {
	sessions int
	deaths   int
	clears   []clearCall
}

type clearCall struct {
	index   int
	name    string
	reward  int
	elapsed time.Duration
}

func (f *fakeRecorder) SessionStarted() error { f.sessions++; return nil }
func (f *fakeRecorder) Died() error           { f.deaths++; return nil }
func (f *fakeRecorder) Cleared(index int, name string, reward int, elapsed time.Duration) error {
	f.clears = append(f.clears, clearCall{index, name, reward, elapsed})
	return nil
}

func floorLevel(name string, goal physics.Vec3) levels.Level {
	return levels.Level{
		Name: name,
		Goal: goal,
		Platforms: []levels.Platform{
			{Position: physics.V3(0, -2, 0), Size: physics.V3(100, 1, 100), Color: "#334155"},
		},
	}
}

// Goal sits within reach of the spawn point, so the first tick wins.
func instantWinLevel(name string) levels.Level {
	return floorLevel(name, physics.V3(0, 3, 0))
}

func voidLevel() levels.Level {
	return levels.Level{
		Name: "VOID",
		Goal: physics.V3(1000, 0, 1000),
		Platforms: []levels.Platform{
			{Position: physics.V3(100, 0, 100), Size: physics.V3(4, 1, 4), Color: "#334155"},
		},
	}
}

func newTestGame(rec *fakeRecorder, campaign ...levels.Level) *Game {
	opts := Options{Config: config.DefaultRunnerConfig(), Campaign: campaign}
	if rec != nil {
		opts.Recorder = rec
	}
	return New(opts)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestStartCountsSessionOnce(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(rec, floorLevel("A", physics.V3(500, 0, 500)))

	g.Start(0)
	g.Restart()
	g.Step(frame(core.ActionRestart), dt)

	if rec.sessions != 1 {
		t.Errorf("sessions = %d, want 1", rec.sessions)
	}
	if g.State().Health != 100 {
		t.Errorf("health = %d, want 100", g.State().Health)
	}
}

func TestStartOutOfRangeUsesFirstSector(t *testing.T) {
	g := newTestGame(nil)
	g.Start(42)
	if g.LevelIndex() != 0 || g.Level().Name != "SECTOR 01: CALIBRATION" {
		t.Errorf("started on %d %q", g.LevelIndex(), g.Level().Name)
	}
}

func TestWinLatchAndReward(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(rec, instantWinLevel("A"), instantWinLevel("B"))
	g.Start(1)

	for i := 0; i < 10; i++ {
		g.Step(frame(), dt)
	}

	st := g.State()
	if !st.Won || st.Reward != 200 {
		t.Errorf("state = %+v, want won with reward 200", st)
	}
	if len(rec.clears) != 1 {
		t.Fatalf("clears = %d, want exactly 1", len(rec.clears))
	}
	c := rec.clears[0]
	if c.index != 1 || c.name != "B" || c.reward != 200 {
		t.Errorf("clear = %+v", c)
	}
	if c.elapsed != 100*time.Millisecond {
		t.Errorf("elapsed = %v, want 100ms", c.elapsed)
	}
	// The clock stops once the sector is cleared
	if g.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v", g.Elapsed())
	}
}

func TestNextAfterWinWraps(t *testing.T) {
	g := newTestGame(nil, instantWinLevel("A"), instantWinLevel("B"))
	g.Start(0)

	g.Step(frame(core.ActionNext), dt)
	if g.LevelIndex() != 0 {
		t.Fatal("next must be ignored before the sector is cleared")
	}

	g.Step(frame(), dt)
	g.Step(frame(core.ActionNext), dt)
	if g.LevelIndex() != 1 || g.State().Won {
		t.Fatalf("after next: index %d, state %+v", g.LevelIndex(), g.State())
	}

	g.Step(frame(), dt)
	g.Step(frame(core.ActionNext), dt)
	if g.LevelIndex() != 0 {
		t.Errorf("next after the last sector should wrap, got %d", g.LevelIndex())
	}
}

func TestFallDamageUntilDeath(t *testing.T) {
	rec := &fakeRecorder{}
	cfg := config.DefaultRunnerConfig()
	cfg.Session.RegenAmount = 0
	g := New(Options{Config: cfg, Campaign: []levels.Level{voidLevel()}, Recorder: rec})
	g.Start(0)

	var falls int
	for i := 0; i < 500 && !g.State().Dead; i++ {
		g.Step(frame(), dt)
		if g.LastEvents().Respawned {
			falls++
			if want := 100 - 25*falls; g.State().Health != max(want, 0) {
				t.Fatalf("after fall %d health = %d, want %d", falls, g.State().Health, want)
			}
		}
	}

	if !g.State().Dead || falls != 4 {
		t.Fatalf("dead = %v after %d falls", g.State().Dead, falls)
	}

	clock := g.Physics().Clock
	for i := 0; i < 50; i++ {
		g.Step(frame(), dt)
	}
	if rec.deaths != 1 {
		t.Errorf("deaths recorded = %d, want 1", rec.deaths)
	}
	if g.Physics().Clock != clock {
		t.Error("physics must not advance after death")
	}

	g.Step(frame(core.ActionRestart), dt)
	if st := g.State(); st.Dead || st.Health != 100 {
		t.Errorf("after restart: %+v", st)
	}
}

func TestRegeneration(t *testing.T) {
	g := newTestGame(nil, floorLevel("A", physics.V3(500, 0, 500)))
	g.Start(0)
	g.health = 50

	for i := 0; i < 10; i++ {
		g.Step(frame(), dt)
	}
	if g.State().Health != 55 {
		t.Errorf("health = %d, want 55 after 1s at +1/200ms", g.State().Health)
	}

	g.health = 99
	for i := 0; i < 10; i++ {
		g.Step(frame(), dt)
	}
	if g.State().Health != 100 {
		t.Errorf("regeneration must cap at max, got %d", g.State().Health)
	}
}

func TestNoRegenerationAfterWin(t *testing.T) {
	g := newTestGame(nil, instantWinLevel("A"))
	g.Start(0)
	g.health = 40

	for i := 0; i < 10; i++ {
		g.Step(frame(), dt)
	}
	if g.State().Health != 40 {
		t.Errorf("health = %d, regeneration should stop on win", g.State().Health)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(nil, floorLevel("A", physics.V3(500, 0, 500)))
	g.Start(0)

	g.Step(frame(core.ActionPause), dt)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionRight), dt)
	}
	if g.Physics().Clock != 0 {
		t.Errorf("clock advanced while paused: %v", g.Physics().Clock)
	}

	g.Step(frame(core.ActionPause), dt)
	if g.State().Paused || g.Physics().Clock == 0 {
		t.Error("unpausing should resume stepping in the same frame")
	}
}

func TestSpeedReadout(t *testing.T) {
	g := newTestGame(nil, floorLevel("A", physics.V3(500, 0, 500)))
	g.Start(0)

	g.Step(frame(core.ActionRight), dt)
	if g.Speed() != 85 {
		t.Errorf("speed = %d, want 85", g.Speed())
	}

	g.Step(frame(), dt)
	if g.Speed() != 0 {
		t.Errorf("speed = %d, want 0 after release", g.Speed())
	}
}

func TestShakeKickedByFallOut(t *testing.T) {
	g := newTestGame(nil, voidLevel())
	g.Start(0)

	for i := 0; i < 100 && !g.LastEvents().Respawned; i++ {
		g.Step(frame(), dt)
	}
	if !g.LastEvents().Respawned {
		t.Fatal("expected a fall-out")
	}
	if g.Shake() != 0.5 {
		t.Errorf("shake = %v, want 0.5", g.Shake())
	}
}

func TestShakerDecay(t *testing.T) {
	var s shaker
	s.kick(0.5)
	if s.value != 0.5 {
		t.Fatalf("value = %v", s.value)
	}

	s.kick(0.2)
	if s.value != 0.5 {
		t.Error("weaker kick should be ignored")
	}

	s.update(0.25)
	if s.value <= 0 || s.value >= 0.5 {
		t.Errorf("mid-decay value = %v", s.value)
	}

	s.update(0.3)
	if s.value != 0 || s.tween != nil {
		t.Errorf("shake should settle, value = %v", s.value)
	}
	if dx, dy := s.offset(3); dx != 0 || dy != 0 {
		t.Error("settled shake must not jitter")
	}

	s.kick(3)
	if s.value != 1 {
		t.Errorf("kick should clamp to 1, got %v", s.value)
	}
	if dx, dy := s.offset(0); dx == 0 && dy == 0 {
		t.Error("strong shake should jitter")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.00"},
		{1500 * time.Millisecond, "0:01.50"},
		{83*time.Second + 456*time.Millisecond, "1:23.45"},
		{-time.Second, "0:00.00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderSpawnView(t *testing.T) {
	g := newTestGame(nil)
	g.Start(0)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "SECTOR 01: CALIBRATION") {
		t.Errorf("HUD = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "DASH ●") {
		t.Errorf("dash should be ready: %q", s.Row(0))
	}
	// Playfield spans rows 1..22; the runner sits at its centre shifted by
	// the look-ahead
	if got := s.Get(40, 16); got != '●' {
		t.Errorf("runner cell = %q, want '●'\n%s", got, s.String())
	}
	if got := s.Get(35, 14); got != BelowChar {
		t.Errorf("start platform cell = %q, want %q", got, BelowChar)
	}
	// Goal is far ahead, so an arrow points up from the top edge
	if got := s.Get(40, 1); got != '▲' {
		t.Errorf("goal pointer = %q, want '▲'", got)
	}
	if !strings.Contains(s.String(), "System diagnostics.") {
		t.Error("sector description should show at start")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(nil, instantWinLevel("A"))
	g.Start(0)
	g.Step(frame(), dt)

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "SECTOR CLEARED") || !strings.Contains(s.String(), "+100 CR") {
		t.Errorf("win overlay missing:\n%s", s.String())
	}

	g = newTestGame(nil, floorLevel("A", physics.V3(500, 0, 500)))
	g.Start(0)
	g.Step(frame(core.ActionPause), dt)
	g.Render(s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
	// 21x5 box centred on 80x24, divider between title and subtitle
	if got := s.Get(40, 11); got != '┄' {
		t.Errorf("overlay divider = %q", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(nil)
	g.Start(0)
	s := core.NewScreen(30, 5)
	g.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("got:\n%s", s.String())
	}
}

func TestPlatformColor(t *testing.T) {
	if platformColor("#1e293b") != core.ColorGray {
		t.Error("dark slate should fall back to gray")
	}
	if platformColor("#0ea5e9") != "#0ea5e9" {
		t.Error("cyan should keep its colour")
	}
	if platformColor("nonsense") != core.ColorGray {
		t.Error("invalid colour should fall back to gray")
	}
}

func TestConfirmContinues(t *testing.T) {
	g := newTestGame(nil, instantWinLevel("A"), instantWinLevel("B"))
	g.Start(0)

	g.Step(frame(core.ActionConfirm), dt)
	if !g.State().Won || g.LevelIndex() != 0 {
		t.Fatal("confirm before the end screen should not skip the sector")
	}
	g.Step(frame(core.ActionConfirm), dt)
	if g.LevelIndex() != 1 {
		t.Errorf("confirm after a win should advance, index %d", g.LevelIndex())
	}

	cfg := config.DefaultRunnerConfig()
	cfg.Physics.FallDamage = 100
	g = New(Options{Config: cfg, Campaign: []levels.Level{voidLevel()}})
	g.Start(0)
	for i := 0; i < 100 && !g.State().Dead; i++ {
		g.Step(frame(), dt)
	}
	if !g.State().Dead {
		t.Fatal("expected death")
	}
	g.Step(frame(core.ActionConfirm), dt)
	if g.State().Dead || g.State().Health != 100 {
		t.Errorf("confirm after death should restart, got %+v", g.State())
	}
}
