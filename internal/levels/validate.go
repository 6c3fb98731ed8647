package levels

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/neon-fracture/internal/physics"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level is playable:
//   - at least one platform, every size positive and finite
//   - every platform colour is a #rrggbb hex string
//   - the spawn point hovers above a platform
//   - the goal is within t.WinRadius of a platform top
func Validate(l Level, t physics.Tuning) error {
	if len(l.Platforms) == 0 {
		return ValidationError{Code: "NO_PLATFORMS", Message: "level has no platforms"}
	}

	for i, p := range l.Platforms {
		if !validSize(p.Size) {
			return ValidationError{
				Code:    "INVALID_SIZE",
				Message: fmt.Sprintf("platform %d has invalid size %v", i, p.Size),
			}
		}
		if !isHexColor(p.Color) {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("platform %d has colour %q, want #rrggbb", i, p.Color),
			}
		}
	}

	world := l.World()
	spawn := world.SpawnPoint()
	if !supported(world.Platforms, spawn) {
		return ValidationError{
			Code:    "SPAWN_UNSUPPORTED",
			Message: fmt.Sprintf("no platform below spawn %v", spawn),
		}
	}

	radius := t.WinRadius
	reachable := false
	for _, p := range world.Platforms {
		if p.ContainsXZ(l.Goal) && math.Abs(p.Top()-l.Goal.Y()) < radius {
			reachable = true
			break
		}
	}
	if !reachable {
		return ValidationError{
			Code:    "GOAL_UNREACHABLE",
			Message: fmt.Sprintf("goal %v is not within %.1f of any platform top", l.Goal, radius),
		}
	}

	return nil
}

// validSize rejects NaN, infinite and non-positive extents.
func validSize(v physics.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return false
		}
	}
	return true
}

func supported(platforms []physics.Platform, pt physics.Vec3) bool {
	for _, p := range platforms {
		if p.ContainsXZ(pt) && p.Top() <= pt.Y() {
			return true
		}
	}
	return false
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}
