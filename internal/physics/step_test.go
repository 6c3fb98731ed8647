package physics

import (
	"math"
	"testing"
)

// floor is a 10x1x10 platform whose top surface sits at y=0.5.
var floor = Platform{Position: V3(0, 0, 0), Size: V3(10, 1, 10)}

func newTestSim(platforms ...Platform) *Simulator {
	return NewSimulator(DefaultTuning(), World{
		Platforms: platforms,
		Goal:      V3(1000, 1000, 1000),
	})
}

// groundedState returns a state standing on floor.
func groundedState() State {
	s := State{Agent: NewAgent(V3(0, 0.5, 0))}
	s.Agent.Grounded = true
	return s
}

func TestGravityMonotonicity(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 1e6, 0))}

	deltas := []float64{0.016, 0.033, 0.001, 0.1, 0.05, 0.2, 0.016, 0.07}
	prev := s.Agent.Velocity.Y()
	clamped := false
	for i := 0; i < 200; i++ {
		s, _ = sim.Step(s, Input{}, deltas[i%len(deltas)])
		vy := s.Agent.Velocity.Y()
		if vy < -sim.Tuning.MaxFallSpeed {
			t.Fatalf("tick %d: vy=%f below terminal speed", i, vy)
		}
		if clamped {
			if vy != -sim.Tuning.MaxFallSpeed {
				t.Fatalf("tick %d: vy left the clamp, got %f", i, vy)
			}
			continue
		}
		if vy >= prev {
			t.Fatalf("tick %d: vy did not decrease (%f -> %f)", i, prev, vy)
		}
		if vy == -sim.Tuning.MaxFallSpeed {
			clamped = true
		}
		prev = vy
	}
	if !clamped {
		t.Error("expected velocity to reach terminal speed")
	}
}

func TestLandingSnap(t *testing.T) {
	sim := newTestSim(floor)
	s := State{Agent: NewAgent(V3(0, 5, 0))}
	s.Agent.Velocity = V3(0, -10, 0)

	landed := false
	for i := 0; i < 50; i++ {
		var ev Events
		s, ev = sim.Step(s, Input{}, 0.1)
		if ev.Grounded {
			landed = true
		}
	}

	if !landed {
		t.Fatal("agent never landed")
	}
	if s.Agent.Position.Y() != 0.5 {
		t.Errorf("expected y=0.5, got %f", s.Agent.Position.Y())
	}
	if s.Agent.Velocity.Y() != 0 {
		t.Errorf("expected vy=0, got %f", s.Agent.Velocity.Y())
	}
	if !s.Agent.Grounded {
		t.Error("expected grounded")
	}
	if s.Agent.JumpCount != 0 {
		t.Errorf("expected jump count reset, got %d", s.Agent.JumpCount)
	}
}

func TestDoubleJumpBudget(t *testing.T) {
	sim := newTestSim(floor)
	s := groundedState()
	const dt = 0.016

	press := Input{Jump: true}
	release := Input{}

	s, ev := sim.Step(s, press, dt)
	if !ev.Jumped || s.Agent.JumpCount != 1 {
		t.Fatalf("first press: jumped=%v count=%d", ev.Jumped, s.Agent.JumpCount)
	}

	s, _ = sim.Step(s, release, dt)
	s, ev = sim.Step(s, press, dt)
	if !ev.DoubleJumped || s.Agent.JumpCount != 2 {
		t.Fatalf("second press: doubleJumped=%v count=%d", ev.DoubleJumped, s.Agent.JumpCount)
	}
	wantVY := sim.Tuning.DoubleJumpForce - sim.Tuning.Gravity*dt
	if math.Abs(s.Agent.Velocity.Y()-wantVY) > 1e-9 {
		t.Errorf("double jump vy: want %f, got %f", wantVY, s.Agent.Velocity.Y())
	}

	s, _ = sim.Step(s, release, dt)
	before := s.Agent.Velocity.Y()
	s, ev = sim.Step(s, press, dt)
	if ev.Jumped || ev.DoubleJumped {
		t.Error("third press should be ignored")
	}
	if s.Agent.JumpCount != 2 {
		t.Errorf("jump count changed to %d", s.Agent.JumpCount)
	}
	want := before - sim.Tuning.Gravity*dt
	if math.Abs(s.Agent.Velocity.Y()-want) > 1e-9 {
		t.Errorf("third press altered vy: want %f, got %f", want, s.Agent.Velocity.Y())
	}
}

func TestJumpRequiresRisingEdge(t *testing.T) {
	sim := newTestSim(floor)
	s := groundedState()
	held := Input{Jump: true}

	s, ev := sim.Step(s, held, 0.016)
	if !ev.Jumped {
		t.Fatal("expected jump on first press")
	}
	for i := 0; i < 10; i++ {
		s, ev = sim.Step(s, held, 0.016)
		if ev.Jumped || ev.DoubleJumped {
			t.Fatalf("tick %d: holding jump re-triggered", i)
		}
	}
	if s.Agent.JumpCount != 1 {
		t.Errorf("expected jump count 1, got %d", s.Agent.JumpCount)
	}
}

func TestDoubleJumpAddsSteering(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 20, 0))}
	s.Agent.JumpCount = 1

	// Right is +X; the base move speed is set first, then the steer is added.
	s, ev := sim.Step(s, Input{Jump: true, Right: true}, 0.016)
	if !ev.DoubleJumped {
		t.Fatal("expected double jump")
	}
	want := sim.Tuning.MoveSpeed + sim.Tuning.DoubleJumpSteer
	if math.Abs(s.Agent.Velocity.X()-want) > 1e-9 {
		t.Errorf("vx: want %f, got %f", want, s.Agent.Velocity.X())
	}
}

func TestWalkOffEdgeAllowsOneAirJump(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 20, 0))}

	s, ev := sim.Step(s, Input{Jump: true}, 0.016)
	if !ev.DoubleJumped || s.Agent.JumpCount != 2 {
		t.Fatalf("airborne jump from count 0: doubleJumped=%v count=%d", ev.DoubleJumped, s.Agent.JumpCount)
	}
	s, _ = sim.Step(s, Input{}, 0.016)
	_, ev = sim.Step(s, Input{Jump: true}, 0.016)
	if ev.Jumped || ev.DoubleJumped {
		t.Error("no jumps should remain")
	}
}

func TestDashCooldown(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 1000, 0))}
	const dt = 0.1

	dashes := map[int]bool{}
	for tick := 0; tick <= 8; tick++ {
		in := Input{Forward: true}
		// Presses at t=0, t=0.3 and t=0.7; released otherwise.
		if tick == 0 || tick == 3 || tick == 7 {
			in.Dash = true
		}
		before := s.Agent.Velocity
		var ev Events
		s, ev = sim.Step(s, in, dt)
		if ev.Dashed {
			dashes[tick] = true
			if s.Agent.Velocity.Z() != -sim.Tuning.DashForce {
				t.Errorf("tick %d: dash vz want %f, got %f", tick, -sim.Tuning.DashForce, s.Agent.Velocity.Z())
			}
			if s.Agent.Velocity.Z() == before.Z() {
				t.Errorf("tick %d: dash produced no velocity change", tick)
			}
		}
	}

	if !dashes[0] {
		t.Error("dash at t=0 should succeed")
	}
	if dashes[3] {
		t.Error("dash at t=0.3 should be on cooldown")
	}
	if !dashes[7] {
		t.Error("dash at t=0.7 should succeed")
	}
	if len(dashes) != 2 {
		t.Errorf("expected 2 dashes, got %d", len(dashes))
	}
}

func TestDashNeedsDirection(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 1000, 0))}

	s, ev := sim.Step(s, Input{Dash: true}, 0.016)
	if ev.Dashed {
		t.Fatal("dash without direction should be a no-op")
	}
	if !math.IsInf(s.Agent.LastDash, -1) {
		t.Errorf("LastDash should be untouched, got %f", s.Agent.LastDash)
	}
}

func TestDashWindowDampsVelocity(t *testing.T) {
	sim := newTestSim()
	s := State{Agent: NewAgent(V3(0, 1000, 0))}
	const dt = 0.05

	s, ev := sim.Step(s, Input{Right: true, Dash: true}, dt)
	if !ev.Dashed {
		t.Fatal("expected dash")
	}
	if ev.Shake != sim.Tuning.DashShake {
		t.Errorf("dash shake: want %f, got %f", sim.Tuning.DashShake, ev.Shake)
	}

	// Inside the window new input is ignored and vx decays.
	s, _ = sim.Step(s, Input{Left: true}, dt)
	want := sim.Tuning.DashForce * sim.Tuning.DashDamping
	if math.Abs(s.Agent.Velocity.X()-want) > 1e-9 {
		t.Errorf("damped vx: want %f, got %f", want, s.Agent.Velocity.X())
	}

	// After the window closes input is velocity-set again.
	for i := 0; i < 5; i++ {
		s, _ = sim.Step(s, Input{Left: true}, dt)
	}
	if s.Agent.Velocity.X() != -sim.Tuning.MoveSpeed {
		t.Errorf("vx after dash: want %f, got %f", -sim.Tuning.MoveSpeed, s.Agent.Velocity.X())
	}
}

func TestWinIdempotence(t *testing.T) {
	sim := NewSimulator(DefaultTuning(), World{
		Platforms: []Platform{floor},
		Goal:      V3(0, 0.5, 0),
	})
	s := groundedState()

	wins := 0
	for i := 0; i < 10; i++ {
		var ev Events
		s, ev = sim.Step(s, Input{}, 0.016)
		if ev.Won {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one win signal, got %d", wins)
	}
	if !s.Won {
		t.Error("win latch should be set")
	}
}

func TestFallOutRespawn(t *testing.T) {
	sim := newTestSim(floor)
	s := State{Agent: NewAgent(V3(3, -51, 2))}
	s.Agent.Velocity = V3(1, -20, 1)
	s.Agent.JumpCount = 2

	s, ev := sim.Step(s, Input{}, 0.016)
	if s.Agent.Position != sim.World.SpawnPoint() {
		t.Errorf("expected spawn %v, got %v", sim.World.SpawnPoint(), s.Agent.Position)
	}
	if s.Agent.Velocity != (Vec3{}) {
		t.Errorf("expected zero velocity, got %v", s.Agent.Velocity)
	}
	if ev.Damage != 25 || !ev.Respawned {
		t.Errorf("expected one damage(25), got damage=%d respawned=%v", ev.Damage, ev.Respawned)
	}
	if ev.Shake != sim.Tuning.FallShake {
		t.Errorf("fall shake: want %f, got %f", sim.Tuning.FallShake, ev.Shake)
	}
	if s.Agent.JumpCount != 0 {
		t.Errorf("fresh agent should have no jumps used, got %d", s.Agent.JumpCount)
	}

	// The next tick starts from spawn and does not damage again.
	_, ev = sim.Step(s, Input{}, 0.016)
	if ev.Damage != 0 {
		t.Errorf("unexpected second damage %d", ev.Damage)
	}
}

func TestDeltaClamp(t *testing.T) {
	sim := newTestSim(floor)
	s := State{Agent: NewAgent(V3(0, 0.6, 0))}

	// A two second stall would tunnel straight through the floor unclamped.
	s, ev := sim.Step(s, Input{}, 2)
	if !ev.Grounded {
		t.Fatalf("expected landing after clamped stall, y=%f", s.Agent.Position.Y())
	}
	if s.Clock != sim.Tuning.MaxDelta {
		t.Errorf("clock should advance by the clamped delta, got %f", s.Clock)
	}

	before := s
	s, _ = sim.Step(s, Input{Forward: true}, math.NaN())
	if s.Agent.Position != before.Agent.Position {
		t.Errorf("NaN delta moved the agent: %v -> %v", before.Agent.Position, s.Agent.Position)
	}
	if s.Clock != before.Clock {
		t.Errorf("NaN delta advanced the clock")
	}
}

func TestFirstPlatformWins(t *testing.T) {
	low := Platform{Position: V3(0, 0, 0), Size: V3(10, 1, 10)}    // top 0.5
	high := Platform{Position: V3(0, 0.6, 0), Size: V3(10, 1, 10)} // top 1.1
	sim := newTestSim(low, high)

	s := State{Agent: NewAgent(V3(0, 1.2, 0))}
	s.Agent.Velocity = V3(0, -6, 0)

	s, ev := sim.Step(s, Input{}, 0.1)
	if !ev.Grounded {
		t.Fatal("expected a landing")
	}
	if s.Agent.Position.Y() != low.Top() {
		t.Errorf("list order should pick the first platform: want %f, got %f", low.Top(), s.Agent.Position.Y())
	}
}

func TestNoLandingWhenBelowSurface(t *testing.T) {
	sim := newTestSim(floor)
	s := State{Agent: NewAgent(V3(0, 0.2, 0))}

	_, ev := sim.Step(s, Input{}, 0.016)
	if ev.Grounded {
		t.Error("agent beneath the top surface must not land")
	}
}

func TestSidesAreNotSolid(t *testing.T) {
	wall := Platform{Position: V3(5, 0, 0), Size: V3(2, 10, 10)}
	sim := newTestSim(wall)
	s := State{Agent: NewAgent(V3(0, 0, 0))}

	for i := 0; i < 20; i++ {
		s, _ = sim.Step(s, Input{Right: true}, 0.05)
	}
	if s.Agent.Position.X() <= wall.Position.X() {
		t.Errorf("agent should clip through the side, x=%f", s.Agent.Position.X())
	}
}

func TestImpactShake(t *testing.T) {
	sim := newTestSim(floor)

	// Landing speeds include one 1ms tick of gravity (+0.04)
	tests := []struct {
		name string
		vy   float64
		want float64
	}{
		{"soft landing", -4, 0},
		{"hard landing", -15, 0.752},
		{"terminal landing", -40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Agent: NewAgent(V3(0, 0.55, 0))}
			s.Agent.Velocity = V3(0, tt.vy, 0)
			_, ev := sim.Step(s, Input{}, 0.001)
			if !ev.Grounded {
				t.Fatal("expected landing")
			}
			if math.Abs(ev.Impact-tt.want) > 1e-9 {
				t.Errorf("impact: want %f, got %f", tt.want, ev.Impact)
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	sim := newTestSim(floor)
	s := groundedState()
	snapshot := s

	_, _ = sim.Step(s, Input{Jump: true, Right: true}, 0.016)
	if s != snapshot {
		t.Error("Step modified its input state")
	}
}
