package golf

import (
	"math"

	"github.com/vovakirdan/terragolf/internal/config"
	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

// contactMinSpeed filters micro-bounces while the ball settles; the
// impact system would no-op them anyway but there is no point queueing
// dozens of dead contacts per tick.
const contactMinSpeed = 1.0

// Ball is the golf ball in continuous cell coordinates. The terrain
// grid is integer cells; the ball moves between them in float space
// and collides against whole cells.
type Ball struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Resting bool
}

// CellX returns the grid column the ball occupies.
func (b *Ball) CellX() int { return int(math.Floor(b.Pos.X)) }

// CellY returns the grid row the ball occupies.
func (b *Ball) CellY() int { return int(math.Floor(b.Pos.Y)) }

// advanceBall integrates one tick of ball flight against the terrain.
// It returns the collision contacts produced this tick and whether the
// ball dropped into a hole cell. Movement is sub-stepped so the ball
// never crosses more than one cell per collision check, which keeps
// fast shots from tunneling through thin walls.
func advanceBall(w *sim.World, b *Ball, phys config.GolfPhysics, dt float64) (contacts []sim.Contact, holed bool) {
	if b.Resting {
		return nil, false
	}

	b.Vel.Y += phys.Gravity * dt

	if t, ok := w.Grid.TypeAt(b.CellX(), b.CellY()); ok && t == sim.Water {
		b.Vel = b.Vel.Scale(phys.WaterDrag)
	}

	steps := int(b.Vel.Len()*dt) + 1
	stepDt := dt / float64(steps)

	for i := 0; i < steps; i++ {
		// X axis.
		nx := b.Pos.X + b.Vel.X*stepDt
		cx, cy := int(math.Floor(nx)), b.CellY()
		if t, ok := w.Grid.TypeAt(cx, cy); ok && t == sim.WinHole {
			b.Pos = core.Vec2{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
			b.Vel = core.Vec2{}
			return contacts, true
		}
		if w.Grid.Solid(cx, cy) && cx != b.CellX() {
			speed := b.Vel.Len()
			if speed > contactMinSpeed {
				contacts = append(contacts, sim.Contact{
					CellX: cx, CellY: cy,
					PointX: nx, PointY: b.Pos.Y,
					Speed: speed,
				})
			}
			b.Vel.X = -b.Vel.X * phys.Restitution
			b.Vel.Y *= phys.Friction
		} else {
			b.Pos.X = nx
		}

		// Y axis.
		ny := b.Pos.Y + b.Vel.Y*stepDt
		cx, cy = b.CellX(), int(math.Floor(ny))
		if t, ok := w.Grid.TypeAt(cx, cy); ok && t == sim.WinHole {
			b.Pos = core.Vec2{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
			b.Vel = core.Vec2{}
			return contacts, true
		}
		if w.Grid.Solid(cx, cy) && cy != b.CellY() {
			speed := b.Vel.Len()
			if speed > contactMinSpeed {
				contacts = append(contacts, sim.Contact{
					CellX: cx, CellY: cy,
					PointX: b.Pos.X, PointY: ny,
					Speed: speed,
				})
			}
			b.Vel.Y = -b.Vel.Y * phys.Restitution
			b.Vel.X *= phys.Friction
		} else {
			b.Pos.Y = ny
		}
	}

	// Rest detection: slow enough and supported from below.
	if b.Vel.Len() < phys.StopSpeed && w.Grid.Solid(b.CellX(), b.CellY()+1) {
		b.Vel = core.Vec2{}
		b.Resting = true
	}

	return contacts, false
}

// launchVelocity converts an aim angle and a charged power fraction
// into an initial velocity. Angle is in radians measured from the
// positive X axis, with negative Y pointing up the screen.
func launchVelocity(angle, charge float64, phys config.GolfPhysics, powerScale float64) core.Vec2 {
	power := core.LerpF(phys.MinPower, phys.MaxPower, core.ClampF(charge, 0, 1)) * powerScale
	return core.Vec2{
		X: math.Cos(angle) * power,
		Y: -math.Sin(angle) * power,
	}
}
