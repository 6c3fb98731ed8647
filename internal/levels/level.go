// Package levels provides the sector catalog and custom level loading.
// This package depends on physics but physics does not depend on levels.
package levels

import (
	"github.com/vovakirdan/neon-fracture/internal/physics"
)

// Platform is a static box plus the display hints the renderer uses.
type Platform struct {
	Position physics.Vec3
	Size     physics.Vec3
	Color    string // Hex colour, e.g. "#334155"
	Neon     bool   // Drawn highlighted
}

// Level is a complete sector definition.
type Level struct {
	ID          int
	Name        string
	Description string
	Platforms   []Platform
	Goal        physics.Vec3
	Spawn       *physics.Vec3 // nil means physics.DefaultSpawn
	FilePath    string        // Set for levels loaded from disk
}

// World returns the geometry the physics core consumes.
func (l Level) World() physics.World {
	platforms := make([]physics.Platform, len(l.Platforms))
	for i, p := range l.Platforms {
		platforms[i] = physics.Platform{Position: p.Position, Size: p.Size}
	}
	return physics.World{
		Platforms: platforms,
		Goal:      l.Goal,
		Spawn:     l.Spawn,
	}
}

// Bounds returns the X/Z extents covered by the level's platforms and goal.
func (l Level) Bounds() (minX, minZ, maxX, maxZ float64) {
	minX, maxX = l.Goal.X(), l.Goal.X()
	minZ, maxZ = l.Goal.Z(), l.Goal.Z()
	for _, p := range l.Platforms {
		hx, hz := p.Size.X()/2, p.Size.Z()/2
		minX = min(minX, p.Position.X()-hx)
		maxX = max(maxX, p.Position.X()+hx)
		minZ = min(minZ, p.Position.Z()-hz)
		maxZ = max(maxZ, p.Position.Z()+hz)
	}
	return minX, minZ, maxX, maxZ
}

func plat(x, y, z, w, h, d float64, color string, neon bool) Platform {
	return Platform{
		Position: physics.V3(x, y, z),
		Size:     physics.V3(w, h, d),
		Color:    color,
		Neon:     neon,
	}
}
