package sim

import "testing"

// sandBed fills the bottom rows of a fresh world with sand.
func sandBed(w, h, rows int) *World {
	world := NewWorld(NewGrid(w, h), nil, 1)
	for y := h - rows; y < h; y++ {
		for x := 0; x < w; x++ {
			world.Paint(x, y, Sand)
		}
	}
	return world
}

func contactAt(x, y int, speed float64) Contact {
	return Contact{
		CellX: x, CellY: y,
		PointX: float64(x) + 0.5, PointY: float64(y) + 0.5,
		Speed: speed,
	}
}

func TestImpactBelowThresholdDoesNothing(t *testing.T) {
	w := sandBed(32, 32, 8)
	before := w.Grid.CountType(Sand)

	res := w.OnImpact(contactAt(16, 24, 40), StandardModifiers())

	if res.Crater || res.DirectHit || res.Cleared != 0 {
		t.Errorf("slow impact destroyed terrain: %+v", res)
	}
	if res.Material != Sand {
		t.Errorf("material = %v; want Sand (side effects need it)", res.Material)
	}
	if n := w.Grid.CountType(Sand); n != before {
		t.Errorf("sand count changed: %d -> %d", before, n)
	}
	if got := len(w.DrainConversions()); got != 0 {
		t.Errorf("queued %d conversions; want 0", got)
	}
}

func TestImpactThresholdIsStrict(t *testing.T) {
	w := sandBed(32, 32, 8)

	// Exactly at the displacement threshold: no crater.
	res := w.OnImpact(contactAt(16, 24, 50), StandardModifiers())
	if res.Crater {
		t.Error("speed equal to threshold must not crater")
	}

	// Just above: crater.
	res = w.OnImpact(contactAt(16, 24, 50.01), StandardModifiers())
	if !res.Crater {
		t.Error("speed above threshold must crater")
	}
}

func TestImpactClearedMonotonicInSpeed(t *testing.T) {
	speeds := []float64{40, 60, 120, 240, 400}
	prev := -1
	for _, s := range speeds {
		w := sandBed(32, 32, 10)
		res := w.OnImpact(contactAt(16, 22, s), StandardModifiers())
		if res.Cleared < prev {
			t.Errorf("speed %.0f cleared %d cells; slower impact cleared %d", s, res.Cleared, prev)
		}
		prev = res.Cleared
	}
}

func TestDirectHitClearsStruckCell(t *testing.T) {
	w := sandBed(32, 32, 8)

	res := w.OnImpact(contactAt(16, 24, 120), StandardModifiers())

	if !res.DirectHit {
		t.Fatal("speed 120 should exceed the sand direct-hit threshold")
	}
	if tt, _ := w.Grid.TypeAt(16, 24); tt != Empty {
		t.Errorf("struck cell = %v; want Empty", tt)
	}
	if !res.Crater {
		t.Error("direct hit at this speed should also crater the area")
	}
	if res.Cleared < 2 {
		t.Errorf("cleared %d cells; want direct hit plus crater", res.Cleared)
	}
}

func TestCraterQueuesDebrisConversions(t *testing.T) {
	w := sandBed(32, 32, 8)

	res := w.OnImpact(contactAt(16, 24, 180), StandardModifiers())
	if res.Cleared == 0 {
		t.Fatal("impact cleared nothing")
	}

	convs := w.DrainConversions()
	if len(convs) != res.Cleared {
		t.Errorf("conversions = %d; want one per cleared cell, %d", len(convs), res.Cleared)
	}
	for _, c := range convs {
		if c.Type != Sand {
			t.Errorf("conversion type = %v; want Sand", c.Type)
		}
		if c.VX == 0 && c.VY == 0 {
			t.Errorf("conversion at (%d,%d) has zero velocity", c.X, c.Y)
		}
	}

	// The queue must not survive the drain.
	if got := len(w.DrainConversions()); got != 0 {
		t.Errorf("second drain returned %d conversions; want 0", got)
	}
}

func TestStoneIsIndestructible(t *testing.T) {
	w := NewWorld(NewGrid(16, 16), nil, 1)
	for x := 0; x < 16; x++ {
		w.Paint(x, 12, Stone)
	}

	mods := StandardModifiers()
	mods.DisplacementFactor = 0.001 // heavy ball, easier displacement everywhere else
	mods.BreaksIce = true

	res := w.OnImpact(contactAt(8, 12, 1e6), mods)

	if res.Crater || res.DirectHit || res.Cleared != 0 {
		t.Errorf("stone was affected: %+v", res)
	}
	if n := w.Grid.CountType(Stone); n != 16 {
		t.Errorf("stone count = %d; want 16", n)
	}
	if got := len(w.DrainConversions()); got != 0 {
		t.Errorf("stone impact queued %d conversions", got)
	}
}

func TestStoneSurvivesNeighboringCrater(t *testing.T) {
	w := sandBed(32, 32, 8)
	// Stone pillar in the middle of the blast zone.
	w.Paint(17, 24, Stone)
	w.Paint(17, 25, Stone)

	w.OnImpact(contactAt(16, 24, 300), StandardModifiers())

	if n := w.Grid.CountType(Stone); n != 2 {
		t.Errorf("stone count = %d; want 2", n)
	}
}

func TestIceMeltsOnlyWithBreakingBall(t *testing.T) {
	mods := StandardModifiers()

	w := NewWorld(NewGrid(16, 16), nil, 1)
	w.Paint(8, 8, Ice)

	// Standard ball: ice is untouched no matter the speed.
	w.OnImpact(contactAt(8, 8, 500), mods)
	w.DrainConversions()
	if tt, _ := w.Grid.TypeAt(8, 8); tt != Ice {
		t.Errorf("standard ball changed ice to %v", tt)
	}

	// Breaking ball: ice converts to water, but only at drain time.
	mods.BreaksIce = true
	w.OnImpact(contactAt(8, 8, 250), mods)
	if tt, _ := w.Grid.TypeAt(8, 8); tt != Ice {
		t.Errorf("melt applied before drain: cell = %v", tt)
	}
	convs := w.DrainConversions()
	if tt, _ := w.Grid.TypeAt(8, 8); tt != Water {
		t.Errorf("after drain cell = %v; want Water", tt)
	}
	// Melts change the grid in place; they never become flying debris.
	if len(convs) != 0 {
		t.Errorf("ice melt produced %d debris conversions; want 0", len(convs))
	}
}

func TestDisplacementFactorScalesThreshold(t *testing.T) {
	// Speed 30 is under the sand threshold for a standard ball but
	// over it for a mover that halves thresholds.
	w := sandBed(32, 32, 8)
	res := w.OnImpact(contactAt(16, 24, 30), StandardModifiers())
	if res.Crater {
		t.Fatal("standard ball cratered below threshold")
	}

	heavy := StandardModifiers()
	heavy.DisplacementFactor = 0.5
	res = w.OnImpact(contactAt(16, 24, 30), heavy)
	if !res.Crater {
		t.Error("halved threshold should crater at speed 30")
	}
}

func TestSuppressedCratersStillReportContact(t *testing.T) {
	w := sandBed(32, 32, 8)
	before := w.Grid.CountType(Sand)

	mods := StandardModifiers()
	mods.SuppressCraters = true
	mods.DirectHitFactor = 1e9 // keep the direct hit out of the way too

	res := w.OnImpact(contactAt(16, 24, 200), mods)

	if res.Material != Sand {
		t.Errorf("material = %v; want Sand", res.Material)
	}
	if !res.Crater {
		t.Error("crater condition should still be reported")
	}
	if res.Cleared != 0 {
		t.Errorf("suppressed crater cleared %d cells", res.Cleared)
	}
	if n := w.Grid.CountType(Sand); n != before {
		t.Errorf("sand count changed: %d -> %d", before, n)
	}
}

func TestSandDensityCapsLoneGrainCrater(t *testing.T) {
	// One grain of sand sitting on dirt: a fast hit must not blow a
	// full-radius hole out of the single grain's material budget.
	w := NewWorld(NewGrid(32, 32), nil, 1)
	for y := 25; y < 32; y++ {
		for x := 0; x < 32; x++ {
			w.Paint(x, y, Dirt)
		}
	}
	w.Paint(16, 24, Sand)

	res := w.OnImpact(contactAt(16, 24, 290), StandardModifiers())

	if res.Radius > 1.01 {
		t.Errorf("crater radius = %.2f; want at most 1 for a lone grain", res.Radius)
	}
	// Speed 290 is below the dirt displacement threshold, so the dirt
	// bed must be intact even inside the radius.
	if n := w.Grid.CountType(Dirt); n != 32*7 {
		t.Errorf("dirt count = %d; want %d", n, 32*7)
	}
}

func TestDrainAppliesMeltsEvenWhenQueueEmpty(t *testing.T) {
	w := NewWorld(NewGrid(8, 8), nil, 1)
	w.Paint(2, 2, Ice)

	mods := StandardModifiers()
	mods.BreaksIce = true
	mods.SuppressCraters = true
	w.OnImpact(contactAt(2, 2, 250), mods)

	if got := w.PendingConversions(); got != 0 {
		t.Fatalf("pending = %d; want 0 (melts are not conversions)", got)
	}
	w.DrainConversions()
	if tt, _ := w.Grid.TypeAt(2, 2); tt != Water {
		t.Errorf("cell = %v; want Water", tt)
	}
}
