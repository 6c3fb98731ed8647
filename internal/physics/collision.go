package physics

import "math"

// landing describes a resolved downward collision.
type landing struct {
	Platform int     // Index into the platform list
	Top      float64 // Height the agent snaps to
	Impact   float64 // |vy| before it was zeroed
}

// resolveLanding tests the candidate position against every platform and
// returns the first one the agent lands on, in list order.
//
// Only downward contact is modelled. There is no ceiling or side collision,
// so an agent passes freely through the sides of a platform it does not land
// on. The first platform that matches wins even if another top surface is
// closer.
func resolveLanding(platforms []Platform, prev, candidate Vec3, vy, tolerance float64) (landing, bool) {
	if vy > 0 {
		return landing{}, false
	}
	for i, p := range platforms {
		if !p.ContainsXZ(candidate) {
			continue
		}
		top := p.Top()
		if prev.Y() >= top && candidate.Y() <= top+tolerance {
			return landing{Platform: i, Top: top, Impact: math.Abs(vy)}, true
		}
	}
	return landing{}, false
}

// impactShake converts a landing speed into a shake intensity.
func impactShake(impact float64, t Tuning) float64 {
	if impact <= t.ImpactThreshold {
		return 0
	}
	return math.Min(impact*t.ImpactScale, 1)
}
