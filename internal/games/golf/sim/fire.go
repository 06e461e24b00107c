package sim

// Fire/smoke/steam lifecycle. These cells live in sparse tracked
// tables beside the grid so decay and rise never scan the whole
// level. The grid stays the source of truth: a periodic stray-cell
// sweep reconciles any drift caused by external mutation (impacts
// overwrite cells without consulting the tables).
const (
	fireRiseChance  = 0.20 // chance per tick to drift one cell up
	fireOutChance   = 0.03 // chance per tick to burn out early
	smokeRiseChance = 0.30
	steamRiseChance = 0.40

	smokeDecayRate  = 2.5 // smoke ages this much faster than real time
	steamLifeFactor = 0.7 // steam lives 0.7x as long as smoke would

	sweepInterval = 0.5 // seconds between stray-cell sweeps
)

// flame is one tracked Fire cell.
type flame struct {
	x, y     int
	lifetime float64
}

// vapor is one tracked Smoke or Steam cell. Both render as Smoke on
// the grid; which table an entry lives in decides its decay rate and
// rise behavior.
type vapor struct {
	x, y     int
	lifetime float64
}

// IgniteAt sets (x, y) on fire and tracks it. Existing stone and the
// win hole refuse to burn; anything else is overwritten.
func (w *World) IgniteAt(x, y int) {
	t, ok := w.Grid.TypeAt(x, y)
	if !ok || t == Stone || t == WinHole {
		return
	}
	props, _ := w.Materials.Props(Fire)
	w.Paint(x, y, Fire)
	w.fire[pos{X: x, Y: y}.key()] = &flame{x: x, y: y, lifetime: props.Lifetime}
}

// spawnSmoke converts (x, y) to a tracked Smoke cell.
func (w *World) spawnSmoke(x, y int, lifetime float64) {
	if !w.Grid.InBounds(x, y) {
		return
	}
	w.Grid.SetType(x, y, Smoke)
	w.smoke[pos{X: x, Y: y}.key()] = &vapor{x: x, y: y, lifetime: lifetime}
	w.markChanged(x, y)
}

// spawnSteam converts (x, y) to Steam: grid type Smoke, tracked in the
// steam table where it decays faster and rises more eagerly.
func (w *World) spawnSteam(x, y int, lifetime float64) {
	if !w.Grid.InBounds(x, y) {
		return
	}
	w.Grid.SetType(x, y, Smoke)
	w.steam[pos{X: x, Y: y}.key()] = &vapor{x: x, y: y, lifetime: lifetime * steamLifeFactor}
	w.markChanged(x, y)
}

// UpdateAmbient advances the fire/smoke/steam lifecycle by dt seconds
// of wall-clock time and periodically runs the stray-cell sweep.
func (w *World) UpdateAmbient(dt float64) {
	if dt <= 0 {
		return
	}
	w.updateFire(dt)
	w.updateVapor(w.smoke, dt*smokeDecayRate, smokeRiseChance, false)
	w.updateVapor(w.steam, dt*smokeDecayRate/steamLifeFactor, steamRiseChance, true)

	w.sweepTimer += dt
	if w.sweepTimer >= sweepInterval {
		w.sweepTimer = 0
		w.strayCellSweep()
	}
}

func (w *World) updateFire(dt float64) {
	props, _ := w.Materials.Props(Fire)

	// Snapshot the table first: a risen cell re-inserted during a range
	// loop may be produced by that same loop and update twice. Each
	// flame gets exactly one update per tick.
	flames := make([]*flame, 0, len(w.fire))
	for _, f := range w.fire {
		flames = append(flames, f)
	}

	for _, f := range flames {
		k := pos{X: f.x, Y: f.y}.key()
		if w.fire[k] != f {
			// Displaced by another entry since the snapshot.
			continue
		}

		// Reconcile: if something overwrote the cell, drop tracking.
		t, ok := w.Grid.TypeAt(f.x, f.y)
		if !ok || t != Fire {
			delete(w.fire, k)
			continue
		}

		f.lifetime -= dt
		if f.lifetime <= 0 {
			// Re-check the grid: the cell may have been overwritten
			// between the read above and now by a neighbor's rule.
			if cur, _ := w.Grid.TypeAt(f.x, f.y); cur == Fire {
				w.spawnSmoke(f.x, f.y, props.SmokeLifetime)
			}
			delete(w.fire, k)
			continue
		}

		// Boil one adjacent water cell into steam, extinguishing the
		// flame. One roll per tick, not per neighbor.
		if w.rng.float() < props.WaterBoilRate {
			if wx, wy, found := w.adjacentWater(f.x, f.y); found {
				w.Grid.Clear(wx, wy)
				w.spawnSteam(wx, wy, props.SmokeLifetime)
				w.Grid.Clear(f.x, f.y)
				w.markChanged(f.x, f.y)
				delete(w.fire, k)
				continue
			}
		}

		// Occasional upward drift.
		if w.rng.float() < fireRiseChance {
			if above, ok := w.Grid.TypeAt(f.x, f.y-1); ok && above == Empty {
				w.Grid.Swap(f.x, f.y, f.x, f.y-1)
				w.markMove(f.x, f.y, f.x, f.y-1)
				delete(w.fire, k)
				f.y--
				w.fire[pos{X: f.x, Y: f.y}.key()] = f
				continue
			}
		}

		// Spontaneous burnout: half the time leave smoke behind.
		if w.rng.float() < fireOutChance {
			if w.rng.intn(2) == 0 {
				w.spawnSmoke(f.x, f.y, props.SmokeLifetime)
			} else {
				w.Grid.Clear(f.x, f.y)
				w.markChanged(f.x, f.y)
			}
			delete(w.fire, k)
		}
	}
}

// adjacentWater returns the first Water cell among the 8 neighbors.
func (w *World) adjacentWater(x, y int) (int, int, bool) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if t, ok := w.Grid.TypeAt(x+dx, y+dy); ok && t == Water {
				return x + dx, y + dy, true
			}
		}
	}
	return 0, 0, false
}

// updateVapor decays and raises one vapor table. Steam tries both
// diagonals and takes whichever is open; smoke picks one at random.
func (w *World) updateVapor(table map[int64]*vapor, decay, riseChance float64, steam bool) {
	// Same snapshot discipline as updateFire: never range a table that
	// the loop body re-inserts into.
	vapors := make([]*vapor, 0, len(table))
	for _, v := range table {
		vapors = append(vapors, v)
	}

	for _, v := range vapors {
		k := pos{X: v.x, Y: v.y}.key()
		if table[k] != v {
			continue
		}

		t, ok := w.Grid.TypeAt(v.x, v.y)
		if !ok || t != Smoke {
			delete(table, k)
			continue
		}

		v.lifetime -= decay
		if v.lifetime <= 0 {
			// Clear only if the grid still holds what we track.
			if cur, _ := w.Grid.TypeAt(v.x, v.y); cur == Smoke {
				w.Grid.Clear(v.x, v.y)
				w.markChanged(v.x, v.y)
			}
			delete(table, k)
			continue
		}

		if w.rng.float() >= riseChance {
			continue
		}
		nx, ny, found := w.riseTarget(v.x, v.y, steam)
		if !found {
			continue
		}
		w.Grid.Swap(v.x, v.y, nx, ny)
		w.markMove(v.x, v.y, nx, ny)
		delete(table, k)
		v.x, v.y = nx, ny
		table[pos{X: nx, Y: ny}.key()] = v
	}
}

// riseTarget picks where a vapor cell moves: straight up when open,
// otherwise a diagonal. Steam checks both diagonals opportunistically;
// smoke commits to one random side.
func (w *World) riseTarget(x, y int, steam bool) (int, int, bool) {
	if t, ok := w.Grid.TypeAt(x, y-1); ok && t == Empty {
		return x, y - 1, true
	}
	first := -1
	if w.rng.intn(2) == 1 {
		first = 1
	}
	if t, ok := w.Grid.TypeAt(x+first, y-1); ok && t == Empty {
		return x + first, y - 1, true
	}
	if steam {
		if t, ok := w.Grid.TypeAt(x-first, y-1); ok && t == Empty {
			return x - first, y - 1, true
		}
	}
	return 0, 0, false
}

// strayCellSweep walks the grid looking for Fire/Smoke cells that no
// table tracks, typically left behind by impacts or explosions that
// overwrote terrain directly, and adopts them so they decay normally
// instead of burning forever.
func (w *World) strayCellSweep() {
	props, _ := w.Materials.Props(Fire)
	for y := 0; y < w.Grid.H; y++ {
		for x := 0; x < w.Grid.W; x++ {
			t, _ := w.Grid.TypeAt(x, y)
			switch t {
			case Fire:
				k := pos{X: x, Y: y}.key()
				if _, tracked := w.fire[k]; !tracked {
					w.fire[k] = &flame{x: x, y: y, lifetime: props.Lifetime}
				}
			case Smoke:
				k := pos{X: x, Y: y}.key()
				_, inSmoke := w.smoke[k]
				_, inSteam := w.steam[k]
				if !inSmoke && !inSteam {
					w.smoke[k] = &vapor{x: x, y: y, lifetime: props.SmokeLifetime}
				}
			}
		}
	}
}

// TrackedFlames returns the number of live tracked fire cells.
// Debug/telemetry only.
func (w *World) TrackedFlames() int {
	return len(w.fire)
}
