package sim

// Grid owns the 2D array of cells. Dimensions are fixed at creation;
// resizing means building a new grid and copying the overlap.
// Cells are stored in row-major order: index = y*W + x.
//
// All accessors bounds-check. Out-of-range reads report "no cell"
// (ok=false) rather than Empty, so nothing outside the level can be
// mistaken for open space to fall into.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid creates an all-Empty grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y). ok is false out of bounds.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// TypeAt returns the material at (x, y). ok is false out of bounds;
// callers must treat that as "no cell", never as Empty.
func (g *Grid) TypeAt(x, y int) (CellType, bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	return g.cells[g.index(x, y)].Type, true
}

// Set writes a cell at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = c
	}
}

// SetType overwrites only the material at (x, y), keeping the cell's
// shade so repeated type transitions don't make terrain shimmer.
func (g *Grid) SetType(x, y int, t CellType) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)].Type = t
	}
}

// Clear resets (x, y) to Empty.
func (g *Grid) Clear(x, y int) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = Cell{}
	}
}

// Swap exchanges two cells. Both coordinates must be in bounds or the
// swap is dropped.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i, j := g.index(x1, y1), g.index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Solid reports whether the cell at (x, y) blocks the ball.
// Out-of-range coordinates count as solid so the ball cannot leave
// the level through terrain queries.
func (g *Grid) Solid(x, y int) bool {
	t, ok := g.TypeAt(x, y)
	if !ok {
		return true
	}
	return t.Solid()
}

// CountType returns the number of cells of the given material.
func (g *Grid) CountType(t CellType) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Type == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Resized returns a new grid of the given dimensions with the
// overlapping region copied over.
func (g *Grid) Resized(w, h int) *Grid {
	ng := NewGrid(w, h)
	cw, ch := g.W, g.H
	if w < cw {
		cw = w
	}
	if h < ch {
		ch = h
	}
	for y := 0; y < ch; y++ {
		copy(ng.cells[y*ng.W:y*ng.W+cw], g.cells[y*g.W:y*g.W+cw])
	}
	return ng
}
