package sim

// Per-tick behavior probabilities. Evaluated once per cell per
// eligible tick, never per neighbor.
const (
	waterSpreadChance = 0.85 // blocked water flowing sideways
)

// updateCell runs the material behavior rule for (x, y). Returns true
// when the cell moved. Called at most once per cell per tick by the
// scheduler; the rules must not assume they run every tick.
//
// Dirt is deliberately absent: it displaces like sand under impact but
// never falls on its own. Ice and stone have no spontaneous behavior
// either. Fire/smoke/steam live in the ambient pass (UpdateAmbient),
// which runs on wall-clock time instead of ticks.
func (w *World) updateCell(x, y int) bool {
	if w.cellStamped(x, y) {
		return false
	}
	t, ok := w.Grid.TypeAt(x, y)
	if !ok {
		return false
	}
	switch t {
	case Sand:
		return w.updateSand(x, y)
	case Water:
		return w.updateWater(x, y)
	default:
		return false
	}
}

// updateSand applies the falling-sand rule: straight down into Empty,
// sink through Water (swap, water rises), then diagonal slides with a
// fixed priority: both clear picks a random side, one clear picks
// that side, and a diagonal Water cell can be sunk through.
func (w *World) updateSand(x, y int) bool {
	below, ok := w.Grid.TypeAt(x, y+1)
	if ok && (below == Empty || below == Water) {
		w.moveCell(x, y, x, y+1)
		return true
	}

	dlType, dlOK := w.Grid.TypeAt(x-1, y+1)
	drType, drOK := w.Grid.TypeAt(x+1, y+1)
	dlClear := dlOK && dlType == Empty
	drClear := drOK && drType == Empty

	switch {
	case dlClear && drClear:
		if w.rng.intn(2) == 0 {
			w.moveCell(x, y, x-1, y+1)
		} else {
			w.moveCell(x, y, x+1, y+1)
		}
		return true
	case dlClear:
		w.moveCell(x, y, x-1, y+1)
		return true
	case drClear:
		w.moveCell(x, y, x+1, y+1)
		return true
	case dlOK && dlType == Water:
		w.moveCell(x, y, x-1, y+1)
		return true
	case drOK && drType == Water:
		w.moveCell(x, y, x+1, y+1)
		return true
	}
	return false
}

// updateWater applies the sand fall rules minus sinking, plus a
// horizontal spread into Empty neighbors when blocked beneath, which
// approximates fluid leveling.
func (w *World) updateWater(x, y int) bool {
	below, ok := w.Grid.TypeAt(x, y+1)
	if ok && below == Empty {
		w.moveCell(x, y, x, y+1)
		return true
	}

	dlType, dlOK := w.Grid.TypeAt(x-1, y+1)
	drType, drOK := w.Grid.TypeAt(x+1, y+1)
	dlClear := dlOK && dlType == Empty
	drClear := drOK && drType == Empty

	switch {
	case dlClear && drClear:
		if w.rng.intn(2) == 0 {
			w.moveCell(x, y, x-1, y+1)
		} else {
			w.moveCell(x, y, x+1, y+1)
		}
		return true
	case dlClear:
		w.moveCell(x, y, x-1, y+1)
		return true
	case drClear:
		w.moveCell(x, y, x+1, y+1)
		return true
	}

	// Blocked beneath: level out sideways.
	if w.rng.float() >= waterSpreadChance {
		return false
	}
	lType, lOK := w.Grid.TypeAt(x-1, y)
	rType, rOK := w.Grid.TypeAt(x+1, y)
	lClear := lOK && lType == Empty
	rClear := rOK && rType == Empty
	switch {
	case lClear && rClear:
		if w.rng.intn(2) == 0 {
			w.moveCell(x, y, x-1, y)
		} else {
			w.moveCell(x, y, x+1, y)
		}
		return true
	case lClear:
		w.moveCell(x, y, x-1, y)
		return true
	case rClear:
		w.moveCell(x, y, x+1, y)
		return true
	}
	return false
}

// moveCell swaps (x, y) with the destination, stamps the destination
// against a second update this tick, and records the movement for next
// tick's scheduling.
func (w *World) moveCell(fromX, fromY, toX, toY int) {
	w.Grid.Swap(fromX, fromY, toX, toY)
	w.stampCell(toX, toY)
	w.markMove(fromX, fromY, toX, toY)
}
