// Package sim implements the terrain simulation for the golf game:
// a destructible grid of material cells with falling/flowing rules,
// an active-region scheduler that keeps large grids cheap to update,
// and an impact-driven displacement system that turns struck terrain
// into flying debris. The package is UI-agnostic and deterministic
// for a fixed seed.
package sim

// CellType identifies the material occupying a grid cell.
// A cell has exactly one type at any time; transitions are single
// atomic writes.
type CellType uint8

const (
	Empty CellType = iota
	Sand
	Stone
	Dirt
	Water
	Ice
	Fire
	Smoke
	WinHole

	cellTypeCount
)

// String returns the material name.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Sand:
		return "Sand"
	case Stone:
		return "Stone"
	case Dirt:
		return "Dirt"
	case Water:
		return "Water"
	case Ice:
		return "Ice"
	case Fire:
		return "Fire"
	case Smoke:
		return "Smoke"
	case WinHole:
		return "WinHole"
	default:
		return "Unknown"
	}
}

// Solid reports whether the ball collides with this material.
// Water and gases are passable; the ball sinks/slows in them instead.
func (t CellType) Solid() bool {
	switch t {
	case Sand, Stone, Dirt, Ice:
		return true
	default:
		return false
	}
}

// Cell is the atomic grid unit. Shade is a stable per-cell color
// variation assigned at creation; rendering reads it, the simulation
// never does. It travels with the material when cells swap so grains
// keep their identity while falling.
type Cell struct {
	Type  CellType
	Shade int8 // [-8, 7] brightness offset for rendering
}

// pos is a grid coordinate. Kept small and comparable so it can be
// used in change lists and map keys without allocation.
type pos struct {
	X, Y int
}

// key packs a coordinate into a single map key. Cheaper to hash than
// a string and allocation-free in the per-tick hot path.
func (p pos) key() int64 {
	return int64(p.X)<<32 | int64(uint32(p.Y))
}

func keyPos(k int64) pos {
	return pos{X: int(k >> 32), Y: int(int32(uint32(k)))}
}
