package sim

import "testing"

func TestBackstopWakesUntouchedCluster(t *testing.T) {
	w := newTestWorld(64, 64)
	// Write directly to the grid, bypassing Paint, so no change record
	// exists. Only the round-robin scan can find this cell.
	w.Grid.SetType(40, 58, Sand)

	for i := 0; i < 10; i++ {
		w.Step()
	}

	if tt, _ := w.Grid.TypeAt(40, 58); tt == Sand {
		t.Error("backstop scan never woke the cluster; sand still suspended")
	}
	if tt, _ := w.Grid.TypeAt(40, 63); tt != Sand {
		t.Error("sand did not reach the floor")
	}
}

func TestSettledWorldGoesIdle(t *testing.T) {
	w := newTestWorld(64, 64)
	for x := 0; x < 64; x++ {
		w.Paint(x, 63, Sand)
	}

	// Long enough for activity scores to decay below the floor.
	for i := 0; i < 120; i++ {
		w.Step()
	}

	if n := w.ActiveClusterCount(); n != 0 {
		t.Errorf("active clusters = %d; want 0 for settled terrain", n)
	}
}

func TestBallProximityKeepsClustersAwake(t *testing.T) {
	w := newTestWorld(64, 64)
	w.SetBallPosition(40, 40, true)

	for i := 0; i < 200; i++ {
		w.Step()
	}

	if !w.ClusterActive(40, 40) {
		t.Error("cluster under the ball went inactive")
	}
	// A distant corner has no reason to stay awake.
	if w.ClusterActive(0, 0) {
		t.Error("far corner cluster active with nothing happening there")
	}

	w.SetBallPosition(0, 0, false)
	for i := 0; i < 120; i++ {
		w.Step()
	}
	if n := w.ActiveClusterCount(); n != 0 {
		t.Errorf("active clusters = %d after ball removed; want 0", n)
	}
}

func TestChangedCellWakesOnlyItsCluster(t *testing.T) {
	w := newTestWorld(64, 64)
	w.Paint(5, 5, Sand)

	w.Step()

	if !w.ClusterActive(5, 5) {
		t.Error("painted cell's cluster not active")
	}
	if w.ClusterActive(50, 50) {
		t.Error("unrelated cluster active")
	}
}
