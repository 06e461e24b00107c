package sim

import "math"

// speedNorm is the relative speed at which the debris ejection factor
// saturates.
const speedNorm = 300.0

// Debris velocity shaping: craters throw material up and out, with a
// little jitter so a blast doesn't look like a stencil.
const (
	debrisUpwardBias = 0.18 // fraction of impact speed added straight up
	debrisJitter     = 0.06 // bounded random velocity fraction
)

// MoverModifiers describe how a particular moving body alters
// destruction. Supplied per impact by the ball subsystem; the
// simulation treats it as an opaque read-only parameter bag.
// Factors below 1 make displacement easier. Stone is categorically
// exempt from DisplacementFactor regardless of these values.
type MoverModifiers struct {
	DisplacementFactor float64
	DirectHitFactor    float64
	RadiusFactor       float64
	VelocityFactor     float64
	BreaksIce          bool
	SuppressCraters    bool
}

// StandardModifiers returns the neutral modifier set.
func StandardModifiers() MoverModifiers {
	return MoverModifiers{
		DisplacementFactor: 1,
		DirectHitFactor:    1,
		RadiusFactor:       1,
		VelocityFactor:     1,
	}
}

// Contact is one collision event from the physics layer. Positions are
// in cell coordinates. CellX/CellY identify the struck cell fixture as
// resolved by collision detection; PointX/PointY is the contact point.
// The struck cell matters for Ice: contact points land on the shared
// cell edge, and floor-rounding the point would target the wrong,
// already-empty neighbor.
type Contact struct {
	CellX, CellY   int
	PointX, PointY float64
	Speed          float64
}

// Conversion transfers a destroyed grid cell to the debris system:
// spawn a visual particle at (X, Y) with velocity (VX, VY) wearing the
// original material's color. Records are queued during collision
// resolution and drained exactly once, every frame.
type Conversion struct {
	X, Y   int
	VX, VY float64
	Type   CellType
	Shade  int8
}

// ImpactResult reports what an impact did, plus the struck material so
// the host can apply contact side effects (sand damping, water drag)
// even when no destruction occurred. Those side effects are logically
// independent of cratering and still apply when craters are
// suppressed.
type ImpactResult struct {
	Material  CellType
	Crater    bool
	DirectHit bool
	Cleared   int
	Radius    float64
}

// OnImpact consumes one collision event. It only queues grid clears,
// debris conversions, and ice melts. It never spawns particles or
// mutates anything the physics engine may still hold references into.
// Malformed or out-of-range coordinates degrade to a no-op.
func (w *World) OnImpact(c Contact, mods MoverModifiers) ImpactResult {
	cellX, cellY := c.CellX, c.CellY
	t, ok := w.Grid.TypeAt(cellX, cellY)
	if !ok {
		// Fall back to the contact point; the fixture may have been
		// reported with stale coordinates.
		cellX = int(math.Floor(c.PointX))
		cellY = int(math.Floor(c.PointY))
		t, ok = w.Grid.TypeAt(cellX, cellY)
		if !ok {
			return ImpactResult{}
		}
	}

	res := ImpactResult{Material: t}

	props, known := w.Materials.Props(t)
	if !known {
		// No material entry: not displaceable. Contact side effects
		// still apply via res.Material.
		return res
	}

	if c.Speed > w.displacementThreshold(t, props, mods) {
		res.Crater = true
	}

	// Direct hit: the exact struck cell is destroyed outright when the
	// higher bar is cleared. Checked before the area crater; order is
	// observable because the cleared cell no longer counts toward sand
	// density below.
	if w.directHitEligible(t, mods) && c.Speed > props.DirectHitThreshold*mods.DirectHitFactor {
		res.DirectHit = true
		if t == Ice {
			w.melts = append(w.melts, pos{X: cellX, Y: cellY})
		} else {
			cell, _ := w.Grid.Get(cellX, cellY)
			w.Grid.Clear(cellX, cellY)
			w.markChanged(cellX, cellY)
			res.Cleared++
			if c.Speed > props.DisplacementThreshold*mods.DisplacementFactor {
				w.pending = append(w.pending, Conversion{
					X: cellX, Y: cellY,
					VX: w.rng.rangeF(-1, 1) * c.Speed * debrisJitter,
					VY: -c.Speed * (debrisUpwardBias + debrisJitter*w.rng.float()),
					Type:  t,
					Shade: cell.Shade,
				})
			}
		}
	}

	if res.Crater && !mods.SuppressCraters {
		res.Radius = w.carveCrater(cellX, cellY, t, props, c.Speed, mods, &res)
	}

	return res
}

// displacementThreshold applies the mover's modifier, except for
// stone, which never gets the easier-displacement treatment.
func (w *World) displacementThreshold(t CellType, props MaterialProps, mods MoverModifiers) float64 {
	if t == Stone {
		return props.DisplacementThreshold
	}
	return props.DisplacementThreshold * mods.DisplacementFactor
}

// directHitEligible: only sand, dirt, and (mover permitting) ice can
// be destroyed by the direct-hit rule.
func (w *World) directHitEligible(t CellType, mods MoverModifiers) bool {
	switch t {
	case Sand, Dirt:
		return true
	case Ice:
		return mods.BreaksIce
	default:
		return false
	}
}

// carveCrater clears eligible cells within a speed-derived radius
// around the struck cell and queues debris conversions for those that
// independently clear their displacement threshold. Returns the final
// radius.
func (w *World) carveCrater(cx, cy int, struck CellType, props MaterialProps, speed float64, mods MoverModifiers, res *ImpactResult) float64 {
	radius := props.CraterBaseRadius
	if props.CraterSpeedDivisor > 0 {
		bonus := speed / props.CraterSpeedDivisor
		if bonus > props.CraterMaxRadius {
			bonus = props.CraterMaxRadius
		}
		radius += bonus
	}
	radius *= mods.RadiusFactor
	if radius <= 0 {
		return 0
	}

	// A lone sand grain on solid dirt must not blow a full-size hole:
	// cap the radius by the square root of the sand actually present
	// in the footprint. Dirt and ice are not density-capped.
	if struck == Sand {
		density := w.sandDensity(cx, cy, radius)
		limit := math.Sqrt(float64(density))
		if limit < radius {
			radius = limit
		}
		if radius <= 0 {
			return 0
		}
	}

	centerX := float64(cx) + 0.5
	centerY := float64(cy) + 0.5
	r := int(math.Ceil(radius))
	r2 := radius * radius
	speedScale := speed / speedNorm
	if speedScale > 1 {
		speedScale = 1
	}

	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			t, ok := w.Grid.TypeAt(x, y)
			if !ok {
				continue
			}
			switch t {
			case Sand, Dirt:
			case Ice:
				if !mods.BreaksIce {
					continue
				}
			default:
				// Stone is never affected by area craters.
				continue
			}

			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}

			cellProps, known := w.Materials.Props(t)
			if !known {
				continue
			}
			if !(speed > cellProps.DisplacementThreshold*mods.DisplacementFactor) {
				continue
			}

			if t == Ice {
				w.melts = append(w.melts, pos{X: x, Y: y})
				continue
			}

			dist := math.Sqrt(d2)
			dirX, dirY := 0.0, -1.0 // impact center itself ejects straight up
			if dist > 1e-9 {
				dirX = dx / dist
				dirY = dy / dist
			}
			impactFactor := (1 - dist/radius) * speedScale
			if impactFactor < 0 {
				impactFactor = 0
			}
			v := speed * impactFactor * cellProps.VelocityMultiplier * mods.VelocityFactor
			vx := dirX*v + w.rng.rangeF(-1, 1)*speed*debrisJitter
			vy := dirY*v - speed*debrisUpwardBias + w.rng.rangeF(-1, 1)*speed*debrisJitter

			cell, _ := w.Grid.Get(x, y)
			w.Grid.Clear(x, y)
			w.markChanged(x, y)
			res.Cleared++
			w.pending = append(w.pending, Conversion{
				X: x, Y: y, VX: vx, VY: vy, Type: t, Shade: cell.Shade,
			})
		}
	}
	return radius
}

// sandDensity counts sand cells inside the blast footprint.
func (w *World) sandDensity(cx, cy int, radius float64) int {
	r := int(math.Ceil(radius))
	r2 := radius * radius
	n := 0
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			t, ok := w.Grid.TypeAt(x, y)
			if !ok || t != Sand {
				continue
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r2 {
				n++
			}
		}
	}
	return n
}

// DrainConversions applies queued ice melts and hands the frame's
// pending debris conversions to the caller. The queue never survives
// to the next frame: after this call both queues are empty.
func (w *World) DrainConversions() []Conversion {
	for _, m := range w.melts {
		if t, ok := w.Grid.TypeAt(m.X, m.Y); ok && t == Ice {
			w.Grid.SetType(m.X, m.Y, Water)
			w.markChanged(m.X, m.Y)
		}
	}
	w.melts = w.melts[:0]

	out := w.pending
	w.pending = nil
	return out
}

// PendingConversions returns the number of queued debris records.
// Exposed for tests and telemetry.
func (w *World) PendingConversions() int {
	return len(w.pending)
}
