package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-fracture/internal/physics"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
func DefaultRunnerConfig() RunnerConfig {
	t := physics.DefaultTuning()
	return RunnerConfig{
		Physics: PhysicsConfig{
			MoveSpeed:        t.MoveSpeed,
			Gravity:          t.Gravity,
			MaxFallSpeed:     t.MaxFallSpeed,
			JumpForce:        t.JumpForce,
			DoubleJumpForce:  t.DoubleJumpForce,
			DoubleJumpSteer:  t.DoubleJumpSteer,
			DashForce:        t.DashForce,
			DashLift:         t.DashLift,
			DashDuration:     t.DashDuration,
			DashCooldown:     t.DashCooldown,
			DashDamping:      t.DashDamping,
			LandingTolerance: t.LandingTolerance,
			ImpactThreshold:  t.ImpactThreshold,
			ImpactScale:      t.ImpactScale,
			KillPlaneY:       t.KillPlaneY,
			FallDamage:       t.FallDamage,
			WinRadius:        t.WinRadius,
			MaxDelta:         t.MaxDelta,
			DashShake:        t.DashShake,
			FallShake:        t.FallShake,
		},
		Session: SessionConfig{
			MaxHealth:       100,
			RegenIntervalMs: 200,
			RegenAmount:     1,
			BaseReward:      100,
			RewardPerLevel:  100,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
