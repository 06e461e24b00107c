package golf

import (
	"math"
	"testing"

	"github.com/vovakirdan/terragolf/internal/config"
	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

func testPhysics() config.GolfPhysics {
	return config.DefaultGolfConfig().Physics
}

func emptyWorld(w, h int) *sim.World {
	return sim.NewWorld(sim.NewGrid(w, h), nil, 1)
}

func TestBallFallsUnderGravity(t *testing.T) {
	w := emptyWorld(20, 20)
	b := &Ball{Pos: core.Vec2{X: 10.5, Y: 2.5}}
	phys := testPhysics()

	startY := b.Pos.Y
	for i := 0; i < 10; i++ {
		advanceBall(w, b, phys, 1.0/60.0)
	}
	if b.Pos.Y <= startY {
		t.Errorf("ball did not fall: y %f -> %f", startY, b.Pos.Y)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("got downward velocity %f, expected positive", b.Vel.Y)
	}
}

func TestBallArcRisesThenFalls(t *testing.T) {
	w := emptyWorld(60, 40)
	b := &Ball{Pos: core.Vec2{X: 5.5, Y: 30.5}, Vel: core.Vec2{X: 40, Y: -60}}
	phys := testPhysics()

	minY := b.Pos.Y
	for i := 0; i < 30; i++ {
		advanceBall(w, b, phys, 1.0/60.0)
		if b.Pos.Y < minY {
			minY = b.Pos.Y
		}
	}
	if minY >= 30.5 {
		t.Error("ball never rose above its launch height")
	}
	if b.Pos.Y <= minY {
		t.Error("ball never came back down after the apex")
	}
}

func TestBounceOffFloorEmitsContact(t *testing.T) {
	w := emptyWorld(10, 10)
	for x := 0; x < 10; x++ {
		w.Paint(x, 6, sim.Stone)
	}
	b := &Ball{Pos: core.Vec2{X: 3.5, Y: 3.5}, Vel: core.Vec2{X: 0, Y: 100}}
	phys := testPhysics()

	var contacts []sim.Contact
	for i := 0; i < 10 && len(contacts) == 0; i++ {
		cs, _ := advanceBall(w, b, phys, 1.0/60.0)
		contacts = append(contacts, cs...)
	}

	if len(contacts) == 0 {
		t.Fatal("no contact emitted on floor bounce")
	}
	if contacts[0].CellY != 6 {
		t.Errorf("contact cell y = %d, expected 6", contacts[0].CellY)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("got velocity y %f after bounce, expected upward", b.Vel.Y)
	}
}

func TestBounceLosesEnergy(t *testing.T) {
	w := emptyWorld(10, 10)
	for x := 0; x < 10; x++ {
		w.Paint(x, 6, sim.Stone)
	}
	b := &Ball{Pos: core.Vec2{X: 3.5, Y: 5.5}, Vel: core.Vec2{X: 0, Y: 120}}
	phys := testPhysics()

	advanceBall(w, b, phys, 1.0/60.0)

	if got := -b.Vel.Y; got >= 120 {
		t.Errorf("rebound speed %f not below incoming 120", got)
	}
}

func TestFastBallDoesNotTunnelThroughWall(t *testing.T) {
	w := emptyWorld(20, 10)
	for y := 0; y < 10; y++ {
		w.Paint(8, y, sim.Stone)
	}
	b := &Ball{Pos: core.Vec2{X: 2.5, Y: 4.5}, Vel: core.Vec2{X: 600, Y: 0}}
	phys := testPhysics()

	advanceBall(w, b, phys, 1.0/60.0)

	if b.Pos.X >= 8 {
		t.Errorf("ball tunneled through wall: x = %f", b.Pos.X)
	}
	if b.Vel.X >= 0 {
		t.Errorf("got velocity x %f, expected reflected leftward", b.Vel.X)
	}
}

func TestWaterDragSlowsBall(t *testing.T) {
	w := emptyWorld(12, 12)
	for x := 0; x < 12; x++ {
		for y := 4; y < 8; y++ {
			w.Paint(x, y, sim.Water)
		}
	}
	b := &Ball{Pos: core.Vec2{X: 5.5, Y: 5.5}, Vel: core.Vec2{X: 60, Y: 0}}
	phys := testPhysics()

	advanceBall(w, b, phys, 1.0/60.0)

	if b.Vel.X >= 60 {
		t.Errorf("got velocity x %f in water, expected below 60", b.Vel.X)
	}
}

func TestSlowSupportedBallComesToRest(t *testing.T) {
	w := emptyWorld(10, 10)
	for x := 0; x < 10; x++ {
		w.Paint(x, 6, sim.Dirt)
	}
	b := &Ball{Pos: core.Vec2{X: 3.5, Y: 5.2}, Vel: core.Vec2{X: 3, Y: 0}}
	phys := testPhysics()

	for i := 0; i < 5 && !b.Resting; i++ {
		advanceBall(w, b, phys, 1.0/60.0)
	}

	if !b.Resting {
		t.Fatal("slow supported ball never came to rest")
	}
	if b.Vel.X != 0 || b.Vel.Y != 0 {
		t.Errorf("resting ball keeps velocity (%f, %f)", b.Vel.X, b.Vel.Y)
	}
}

func TestRestingBallDoesNotMove(t *testing.T) {
	w := emptyWorld(10, 10)
	b := &Ball{Pos: core.Vec2{X: 3.5, Y: 3.5}, Resting: true}
	phys := testPhysics()

	cs, holed := advanceBall(w, b, phys, 1.0/60.0)
	if cs != nil || holed {
		t.Error("resting ball produced contacts or holed out")
	}
	if b.Pos.X != 3.5 || b.Pos.Y != 3.5 {
		t.Errorf("resting ball moved to (%f, %f)", b.Pos.X, b.Pos.Y)
	}
}

func TestBallDropsIntoHole(t *testing.T) {
	w := emptyWorld(12, 12)
	w.Paint(5, 7, sim.WinHole)
	b := &Ball{Pos: core.Vec2{X: 5.5, Y: 3.5}}
	phys := testPhysics()

	holed := false
	for i := 0; i < 120 && !holed; i++ {
		_, holed = advanceBall(w, b, phys, 1.0/60.0)
	}

	if !holed {
		t.Fatal("falling ball never holed out")
	}
	if b.CellX() != 5 || b.CellY() != 7 {
		t.Errorf("ball rests at (%d,%d), expected hole cell (5,7)", b.CellX(), b.CellY())
	}
}

func TestLaunchVelocityRespectsChargeAndScale(t *testing.T) {
	phys := testPhysics()

	low := launchVelocity(math.Pi/4, 0, phys, 1)
	high := launchVelocity(math.Pi/4, 1, phys, 1)
	if math.Abs(low.Len()-phys.MinPower) > 0.001 {
		t.Errorf("zero charge speed %f, expected %f", low.Len(), phys.MinPower)
	}
	if math.Abs(high.Len()-phys.MaxPower) > 0.001 {
		t.Errorf("full charge speed %f, expected %f", high.Len(), phys.MaxPower)
	}

	scaled := launchVelocity(math.Pi/4, 1, phys, 1.5)
	if math.Abs(scaled.Len()-phys.MaxPower*1.5) > 0.001 {
		t.Errorf("scaled speed %f, expected %f", scaled.Len(), phys.MaxPower*1.5)
	}

	up := launchVelocity(math.Pi/2, 0.5, phys, 1)
	if up.Y >= 0 {
		t.Errorf("straight-up shot has downward velocity %f", up.Y)
	}
}
