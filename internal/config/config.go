// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-fracture/internal/physics"
)

// RunnerConfig contains all tunable constants of a run.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig mirrors physics.Tuning.
type PhysicsConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force"`
	DoubleJumpSteer float64 `yaml:"double_jump_steer"`

	DashForce    float64 `yaml:"dash_force"`
	DashLift     float64 `yaml:"dash_lift"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`
	DashDamping  float64 `yaml:"dash_damping"`

	LandingTolerance float64 `yaml:"landing_tolerance"`
	ImpactThreshold  float64 `yaml:"impact_threshold"`
	ImpactScale      float64 `yaml:"impact_scale"`

	KillPlaneY float64 `yaml:"kill_plane_y"`
	FallDamage int     `yaml:"fall_damage"`
	WinRadius  float64 `yaml:"win_radius"`
	MaxDelta   float64 `yaml:"max_delta"`

	DashShake float64 `yaml:"dash_shake"`
	FallShake float64 `yaml:"fall_shake"`
}

// SessionConfig defines health and reward rules around the physics core.
type SessionConfig struct {
	MaxHealth       int `yaml:"max_health"`
	RegenIntervalMs int `yaml:"regen_interval_ms"` // 0 disables regeneration
	RegenAmount     int `yaml:"regen_amount"`      // 0 disables regeneration
	BaseReward      int `yaml:"base_reward"`
	RewardPerLevel  int `yaml:"reward_per_level"`
}

// RegenInterval returns the regeneration period.
func (s SessionConfig) RegenInterval() time.Duration {
	return time.Duration(s.RegenIntervalMs) * time.Millisecond
}

// Reward returns the credits granted for clearing the sector at levelIndex.
func (s SessionConfig) Reward(levelIndex int) int {
	return s.BaseReward + levelIndex*s.RewardPerLevel
}

// DifficultyConfig selects a preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Tuning converts the physics section into simulation constants.
func (c RunnerConfig) Tuning() physics.Tuning {
	p := c.Physics
	return physics.Tuning{
		MoveSpeed:        p.MoveSpeed,
		Gravity:          p.Gravity,
		MaxFallSpeed:     p.MaxFallSpeed,
		JumpForce:        p.JumpForce,
		DoubleJumpForce:  p.DoubleJumpForce,
		DoubleJumpSteer:  p.DoubleJumpSteer,
		DashForce:        p.DashForce,
		DashLift:         p.DashLift,
		DashDuration:     p.DashDuration,
		DashCooldown:     p.DashCooldown,
		DashDamping:      p.DashDamping,
		LandingTolerance: p.LandingTolerance,
		ImpactThreshold:  p.ImpactThreshold,
		ImpactScale:      p.ImpactScale,
		KillPlaneY:       p.KillPlaneY,
		FallDamage:       p.FallDamage,
		WinRadius:        p.WinRadius,
		MaxDelta:         p.MaxDelta,
		DashShake:        p.DashShake,
		FallShake:        p.FallShake,
	}
}

// Validate rejects values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	check(p.MaxDelta > 0, "physics.max_delta must be positive, got %v", p.MaxDelta)
	check(p.WinRadius > 0, "physics.win_radius must be positive, got %v", p.WinRadius)
	check(p.DashDamping >= 0 && p.DashDamping <= 1, "physics.dash_damping must be in [0,1], got %v", p.DashDamping)
	check(p.LandingTolerance >= 0, "physics.landing_tolerance must not be negative, got %v", p.LandingTolerance)
	check(p.FallDamage >= 0, "physics.fall_damage must not be negative, got %d", p.FallDamage)

	s := c.Session
	check(s.MaxHealth > 0, "session.max_health must be positive, got %d", s.MaxHealth)
	check(s.RegenIntervalMs >= 0, "session.regen_interval_ms must not be negative, got %d", s.RegenIntervalMs)
	check(s.RegenAmount >= 0, "session.regen_amount must not be negative, got %d", s.RegenAmount)

	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
