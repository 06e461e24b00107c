package sim

import "math"

// MaterialProps are tunable per-material constants consumed by the
// impact system and the fire lifecycle. A material without an entry is
// simply not displaceable.
//
// The numbers encode game balance, not structure: dirt is roughly 7x
// harder to displace than sand, ice needs a dedicated ball to shatter,
// and stone threshold values are effectively unreachable on top of its
// categorical exemptions. Tuned values live in the game config; the
// defaults here mirror it.
type MaterialProps struct {
	DisplacementThreshold float64 // min relative speed for crater/debris
	DirectHitThreshold    float64 // min relative speed to clear the struck cell outright
	CraterBaseRadius      float64 // crater radius at threshold speed
	CraterMaxRadius       float64 // cap on the speed-derived radius bonus
	CraterSpeedDivisor    float64 // speed units per extra radius cell
	VelocityMultiplier    float64 // debris ejection speed scale

	// Fire only.
	Lifetime      float64 // seconds before burnout
	SmokeLifetime float64 // lifetime of smoke left behind
	WaterBoilRate float64 // chance per tick to boil an adjacent water cell
}

// Materials is the material catalog, indexed by CellType.
type Materials struct {
	props [cellTypeCount]MaterialProps
	known [cellTypeCount]bool
}

// Props returns the properties for a material. ok is false when the
// material has no entry, which the impact system treats as "cannot be
// displaced" rather than an error.
func (m *Materials) Props(t CellType) (MaterialProps, bool) {
	if int(t) >= int(cellTypeCount) || !m.known[t] {
		return MaterialProps{}, false
	}
	return m.props[t], true
}

// Set installs or replaces the entry for a material.
func (m *Materials) Set(t CellType, p MaterialProps) {
	if int(t) < int(cellTypeCount) {
		m.props[t] = p
		m.known[t] = true
	}
}

// DefaultMaterials returns the built-in material catalog.
func DefaultMaterials() *Materials {
	m := &Materials{}
	m.Set(Sand, MaterialProps{
		DisplacementThreshold: 50,
		DirectHitThreshold:    100,
		CraterBaseRadius:      1,
		CraterMaxRadius:       5,
		CraterSpeedDivisor:    60,
		VelocityMultiplier:    0.55,
	})
	m.Set(Dirt, MaterialProps{
		DisplacementThreshold: 350,
		DirectHitThreshold:    700,
		CraterBaseRadius:      1,
		CraterMaxRadius:       3,
		CraterSpeedDivisor:    120,
		VelocityMultiplier:    0.40,
	})
	m.Set(Ice, MaterialProps{
		DisplacementThreshold: 150,
		DirectHitThreshold:    220,
		CraterBaseRadius:      1,
		CraterMaxRadius:       4,
		CraterSpeedDivisor:    90,
		VelocityMultiplier:    0,
	})
	// Stone carries an entry so contact side effects resolve, but its
	// thresholds are unreachable on top of the categorical exemptions.
	m.Set(Stone, MaterialProps{
		DisplacementThreshold: math.Inf(1),
		DirectHitThreshold:    math.Inf(1),
	})
	m.Set(Fire, MaterialProps{
		Lifetime:      3.0,
		SmokeLifetime: 1.6,
		WaterBoilRate: 0.3,
	})
	return m
}
