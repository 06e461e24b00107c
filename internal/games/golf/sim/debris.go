package sim

// Debris tuning. Gravity matches the ball physics so ejected material
// arcs look consistent with everything else that falls.
const (
	debrisGravity  = 380.0
	debrisLifetime = 1.4
	maxDebris      = 2048
)

// Debris is one short-lived cosmetic particle. It never interacts with
// the grid or the ball; it exists only to be drawn.
type Debris struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Type   CellType
	Shade  int8
}

// Alpha is the particle's fade, 1 at spawn down to 0 at expiry.
func (d *Debris) Alpha() float64 {
	a := 1 - d.Life/debrisLifetime
	if a < 0 {
		return 0
	}
	return a
}

// DebrisSystem owns the live particle pool. Not safe for concurrent
// use; the game loop owns it.
type DebrisSystem struct {
	parts []Debris
	w, h  float64 // culling region
}

// NewDebrisSystem sizes the culling region to the world grid.
func NewDebrisSystem(g *Grid) *DebrisSystem {
	return &DebrisSystem{
		parts: make([]Debris, 0, 256),
		w:     float64(g.W),
		h:     float64(g.H),
	}
}

// Spawn converts one drained record into a live particle. When the
// pool is full the oldest-slot particle is recycled rather than
// growing without bound.
func (s *DebrisSystem) Spawn(c Conversion) {
	d := Debris{
		X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5,
		VX: c.VX, VY: c.VY,
		Type: c.Type, Shade: c.Shade,
	}
	if len(s.parts) >= maxDebris {
		s.parts[0] = d
		return
	}
	s.parts = append(s.parts, d)
}

// SpawnAll drains a conversion batch into the pool.
func (s *DebrisSystem) SpawnAll(cs []Conversion) {
	for _, c := range cs {
		s.Spawn(c)
	}
}

// Update integrates every particle one step and drops the dead.
// Removal is swap-with-last so a frame full of expiring particles
// stays O(n); draw order is irrelevant for single-cell sprites.
func (s *DebrisSystem) Update(dt float64) {
	for i := 0; i < len(s.parts); {
		p := &s.parts[i]
		p.Life += dt
		p.VY += debrisGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.Life >= debrisLifetime || p.X < -1 || p.X > s.w+1 || p.Y > s.h+1 {
			last := len(s.parts) - 1
			s.parts[i] = s.parts[last]
			s.parts = s.parts[:last]
			continue
		}
		i++
	}
}

// Particles exposes the live pool for rendering. The slice is only
// valid until the next Update or Spawn.
func (s *DebrisSystem) Particles() []Debris {
	return s.parts
}

// Len reports the live particle count.
func (s *DebrisSystem) Len() int {
	return len(s.parts)
}
