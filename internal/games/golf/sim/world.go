package sim

// World ties the grid, the material catalog, the scheduler, and the
// impact queue together. It is exclusively owned by the simulation
// tick: collaborators (renderer, HUD, debug) read it between ticks
// only, so no locking is needed.
type World struct {
	Grid      *Grid
	Materials *Materials

	rng      *rng
	clusters *clusterIndex

	// Change lists: cells that moved this tick wake their clusters
	// next tick. Double-buffered so scheduling always reads the
	// previous tick's movement.
	changed     []pos
	prevChanged []pos

	// Tracked fire/smoke/steam cells, keyed by packed coordinate.
	// Sparse so decay and rise never scan the whole grid. The grid is
	// the source of truth; the periodic stray sweep reconciles drift.
	fire  map[int64]*flame
	smoke map[int64]*vapor
	steam map[int64]*vapor

	// Impact output, queued during collision resolution and drained
	// once per frame by the host loop.
	pending []Conversion
	melts   []pos

	// Per-cell update stamps guard against a cell being advanced twice
	// in one tick after moving in the iteration direction (horizontal
	// water flow is the offender).
	stamps []uint32

	ballX, ballY int
	ballValid    bool

	tick       uint64
	sweepTimer float64
}

// NewWorld creates a simulation world over the given grid. mats may be
// nil, in which case the built-in catalog is used.
func NewWorld(grid *Grid, mats *Materials, seed int64) *World {
	if mats == nil {
		mats = DefaultMaterials()
	}
	return &World{
		Grid:      grid,
		Materials: mats,
		rng:       newRNG(uint64(seed)),
		clusters:  newClusterIndex(grid.W, grid.H),
		fire:      make(map[int64]*flame),
		smoke:     make(map[int64]*vapor),
		steam:     make(map[int64]*vapor),
		stamps:    make([]uint32, grid.W*grid.H),
	}
}

// tickStamp is the stamp value for the current tick. Offset by one so
// the zero value of a fresh stamps slice never matches.
func (w *World) tickStamp() uint32 {
	return uint32(w.tick) + 1
}

// stampCell marks (x, y) as already updated this tick.
func (w *World) stampCell(x, y int) {
	if w.Grid.InBounds(x, y) {
		w.stamps[y*w.Grid.W+x] = w.tickStamp()
	}
}

func (w *World) cellStamped(x, y int) bool {
	return w.stamps[y*w.Grid.W+x] == w.tickStamp()
}

// SetBallPosition tells the scheduler where the ball is so nearby
// clusters stay awake. Pass ok=false when no ball is in play.
func (w *World) SetBallPosition(x, y int, ok bool) {
	w.ballX, w.ballY = x, y
	w.ballValid = ok
}

// Tick returns the current simulation tick counter.
func (w *World) Tick() uint64 {
	return w.tick
}

// Paint writes a material cell with a stable random shade. Intended
// for level construction and the ambient systems, not the per-tick
// rules (those swap existing cells).
func (w *World) Paint(x, y int, t CellType) {
	if !w.Grid.InBounds(x, y) {
		return
	}
	w.Grid.Set(x, y, Cell{Type: t, Shade: w.rng.shade()})
	w.markChanged(x, y)
}

// markChanged records that (x, y) moved or mutated this tick so its
// cluster wakes next tick.
func (w *World) markChanged(x, y int) {
	w.changed = append(w.changed, pos{X: x, Y: y})
}

// markMove records a swap from one cell to another. The moved-to cell
// and both vertically-adjacent cells are marked so stacks above keep
// cascading and whatever lands below gets re-examined.
func (w *World) markMove(fromX, fromY, toX, toY int) {
	w.changed = append(w.changed,
		pos{X: fromX, Y: fromY},
		pos{X: toX, Y: toY},
		pos{X: fromX, Y: fromY - 1},
		pos{X: toX, Y: toY + 1},
	)
}

// Step advances the terrain simulation one tick: scheduling pass, then
// behavior updates for cells inside active clusters. The fire/smoke
// lifecycle runs separately in UpdateAmbient with wall-clock dt.
func (w *World) Step() {
	w.prevChanged, w.changed = w.changed, w.prevChanged[:0]
	w.schedule(w.prevChanged)
	w.behaviorPass()
	w.tick++
}

// behaviorPass visits every cell inside an active cluster exactly
// once, bottom row first so a falling cell is not advanced twice in
// one tick. The x direction alternates per tick to avoid a sideways
// bias in diagonal slides.
func (w *World) behaviorPass() {
	leftToRight := w.tick%2 == 0
	for y := w.Grid.H - 1; y >= 0; y-- {
		if leftToRight {
			for x := 0; x < w.Grid.W; {
				if !w.clusters.activeAt(x, y) {
					// Skip to the next cluster column.
					x = (x/ClusterSize + 1) * ClusterSize
					continue
				}
				w.updateCell(x, y)
				x++
			}
		} else {
			for x := w.Grid.W - 1; x >= 0; {
				if !w.clusters.activeAt(x, y) {
					x = (x/ClusterSize)*ClusterSize - 1
					continue
				}
				w.updateCell(x, y)
				x--
			}
		}
	}
}

// ChangedThisTick returns how many change records the current tick has
// produced so far. Debug/telemetry only.
func (w *World) ChangedThisTick() int {
	return len(w.changed)
}
