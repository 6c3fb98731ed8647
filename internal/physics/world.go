package physics

// Platform is a static axis-aligned box. Position is the centre and Size
// the full extents.
type Platform struct {
	Position Vec3
	Size     Vec3
}

// Top returns the height of the platform's top surface.
func (p Platform) Top() float64 {
	return p.Position.Y() + p.Size.Y()/2
}

// ContainsXZ reports whether the point lies strictly inside the platform's
// footprint. Points exactly on an edge are outside.
func (p Platform) ContainsXZ(pt Vec3) bool {
	hx, hz := p.Size.X()/2, p.Size.Z()/2
	return pt.X() > p.Position.X()-hx && pt.X() < p.Position.X()+hx &&
		pt.Z() > p.Position.Z()-hz && pt.Z() < p.Position.Z()+hz
}

// World is the immutable geometry of one level as the core sees it.
type World struct {
	Platforms []Platform
	Goal      Vec3
	Spawn     *Vec3 // nil means DefaultSpawn
}

// SpawnPoint returns where fresh agents appear.
func (w World) SpawnPoint() Vec3 {
	if w.Spawn != nil {
		return *w.Spawn
	}
	return DefaultSpawn
}
