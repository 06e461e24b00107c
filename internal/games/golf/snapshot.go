package golf

import "github.com/vovakirdan/terragolf/internal/games/golf/sim"

// Snapshot captures the observable game state in primitive types.
// Float positions are quantized to milli-cells so two runs compare
// exactly rather than within epsilon.
type Snapshot struct {
	Tick      int
	Strokes   int
	State     string
	BallIndex int

	BallX, BallY int // milli-cells
	VelX, VelY   int // milli-cells per second

	DebrisCount int
	TerrainData []int // flattened cells, type and shade interleaved
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := g.world.Grid
	terrain := make([]int, 0, grid.W*grid.H*2)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c, _ := grid.Get(x, y)
			terrain = append(terrain, int(c.Type), int(c.Shade))
		}
	}

	return Snapshot{
		Tick:        g.tickCount,
		Strokes:     g.strokes,
		State:       g.state,
		BallIndex:   g.ballIndex,
		BallX:       int(g.ball.Pos.X * 1000),
		BallY:       int(g.ball.Pos.Y * 1000),
		VelX:        int(g.ball.Vel.X * 1000),
		VelY:        int(g.ball.Vel.Y * 1000),
		DebrisCount: g.debris.Len(),
		TerrainData: terrain,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Strokes)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallIndex)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VelX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VelY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DebrisCount) //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.TerrainData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

// TerrainCount returns how many cells of the given type the snapshot
// holds. Test helper for asserting destruction without poking the
// live grid.
func (snap *Snapshot) TerrainCount(t sim.CellType) int {
	n := 0
	for i := 0; i < len(snap.TerrainData); i += 2 {
		if snap.TerrainData[i] == int(t) {
			n++
		}
	}
	return n
}
