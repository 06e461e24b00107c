package sim

// ClusterSize is the edge length of the square scheduling partition.
// Clusters exist purely to decide which cells are update candidates;
// they have no physical meaning.
const ClusterSize = 16

// Scheduler tuning. Activity is advisory: an inactive cluster can only
// delay an update, never lose one, because the round-robin scan below
// eventually visits every cluster.
const (
	activityDecay  = 0.95 // per-tick exponential decay of cluster scores
	activityFloor  = 0.10 // decayed score above this keeps a cluster active
	scanBudget     = 20   // inactive clusters probed per tick by the backstop
	ballWakeRadius = 1    // clusters in each direction around the ball
	freshActivity  = 1.0  // score assigned on activation
)

// cluster is one fixed-size tile of the scheduling partition.
//
// State machine: Inactive -> Active on any of (ball proximity, a cell
// in the cluster changed last tick, backstop scan found an unsettled
// cell); Active -> Inactive when the decaying score falls below the
// floor with no re-trigger. Scores persist across ticks, flags do not.
type cluster struct {
	active     bool
	score      float64
	distToBall int
}

// clusterIndex partitions the grid into clusters and carries the
// round-robin scan cursor.
type clusterIndex struct {
	cw, ch   int
	clusters []cluster
	cursor   int
}

func newClusterIndex(gridW, gridH int) *clusterIndex {
	cw := (gridW + ClusterSize - 1) / ClusterSize
	ch := (gridH + ClusterSize - 1) / ClusterSize
	return &clusterIndex{
		cw:       cw,
		ch:       ch,
		clusters: make([]cluster, cw*ch),
	}
}

func (ci *clusterIndex) at(cx, cy int) *cluster {
	if cx < 0 || cx >= ci.cw || cy < 0 || cy >= ci.ch {
		return nil
	}
	return &ci.clusters[cy*ci.cw+cx]
}

// activate marks a cluster active and refreshes its score.
func (ci *clusterIndex) activate(cx, cy int) {
	if c := ci.at(cx, cy); c != nil {
		c.active = true
		if c.score < freshActivity {
			c.score = freshActivity
		}
	}
}

// activateCell activates the cluster containing grid cell (x, y).
func (ci *clusterIndex) activateCell(x, y int) {
	ci.activate(x/ClusterSize, y/ClusterSize)
}

// activeAt reports whether the cluster containing (x, y) is active.
func (ci *clusterIndex) activeAt(x, y int) bool {
	c := ci.at(x/ClusterSize, y/ClusterSize)
	return c != nil && c.active
}

// schedule runs the per-tick scheduling pass: decay, ball proximity,
// changed-cell wakeups, score promotion, and the budgeted backstop
// scan. changed is the previous tick's change list.
func (w *World) schedule(changed []pos) {
	ci := w.clusters

	// 1. Decay scores; clear flags. Flags are recomputed from scratch
	// every tick, scores carry history.
	for i := range ci.clusters {
		c := &ci.clusters[i]
		c.score *= activityDecay
		c.active = false
	}

	// 2. Wake clusters around the ball and record distances for
	// consumers that prioritize by proximity.
	if w.ballValid {
		bcx := w.ballX / ClusterSize
		bcy := w.ballY / ClusterSize
		for cy := 0; cy < ci.ch; cy++ {
			for cx := 0; cx < ci.cw; cx++ {
				dx := cx - bcx
				if dx < 0 {
					dx = -dx
				}
				dy := cy - bcy
				if dy < 0 {
					dy = -dy
				}
				d := dx
				if dy > d {
					d = dy
				}
				c := ci.at(cx, cy)
				c.distToBall = d
				if d <= ballWakeRadius {
					c.active = true
					c.score = freshActivity
				}
			}
		}
	}

	// 3. Wake clusters that saw movement last tick.
	for _, p := range changed {
		ci.activateCell(p.X, p.Y)
	}

	// 4. Promote clusters whose decayed score is still above the
	// floor, so recently-disturbed regions don't flicker off.
	for i := range ci.clusters {
		c := &ci.clusters[i]
		if c.score > activityFloor {
			c.active = true
		}
	}

	// 5. Backstop: round-robin over inactive clusters looking for any
	// cell that can still fall. This bounds worst-case per-tick cost
	// while guaranteeing no cell stays stuck mid-air forever.
	w.backstopScan()
}

// backstopScan probes up to scanBudget currently-inactive clusters for
// a Sand or Water cell with fallable space beneath it and
// force-activates any cluster where one is found.
func (w *World) backstopScan() {
	ci := w.clusters
	total := len(ci.clusters)
	if total == 0 {
		return
	}
	probed := 0
	for i := 0; i < total && probed < scanBudget; i++ {
		idx := ci.cursor
		ci.cursor = (ci.cursor + 1) % total
		c := &ci.clusters[idx]
		if c.active {
			continue
		}
		probed++
		cx := idx % ci.cw
		cy := idx / ci.cw
		if w.clusterHasUnsettled(cx, cy) {
			c.active = true
			c.score = freshActivity
		}
	}
}

// clusterHasUnsettled reports whether any Sand/Water cell in the
// cluster could move down into the cell directly beneath it.
func (w *World) clusterHasUnsettled(cx, cy int) bool {
	x0 := cx * ClusterSize
	y0 := cy * ClusterSize
	x1 := x0 + ClusterSize
	y1 := y0 + ClusterSize
	if x1 > w.Grid.W {
		x1 = w.Grid.W
	}
	if y1 > w.Grid.H {
		y1 = w.Grid.H
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t, _ := w.Grid.TypeAt(x, y)
			if t != Sand && t != Water {
				continue
			}
			below, ok := w.Grid.TypeAt(x, y+1)
			if !ok {
				continue
			}
			if below == Empty || (t == Sand && below == Water) {
				return true
			}
		}
	}
	return false
}

// ActiveClusterCount returns the number of clusters eligible for
// behavior updates this tick. Read-only; used by the HUD and the
// headless sim command.
func (w *World) ActiveClusterCount() int {
	n := 0
	for i := range w.clusters.clusters {
		if w.clusters.clusters[i].active {
			n++
		}
	}
	return n
}

// ClusterActive reports whether the cluster containing grid cell
// (x, y) is active. Debug/telemetry only.
func (w *World) ClusterActive(x, y int) bool {
	return w.clusters.activeAt(x, y)
}
