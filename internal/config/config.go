// Package config provides YAML-based configuration loading for the
// terragolf platform: ball physics, terrain simulation tuning, material
// properties, and the selectable ball types.
package config

// GolfConfig contains all configuration for the golf game.
type GolfConfig struct {
	Physics   GolfPhysics     `yaml:"physics"`
	Sim       SimConfig       `yaml:"sim"`
	Materials MaterialsConfig `yaml:"materials"`
	Balls     []BallConfig    `yaml:"balls"`
}

// GolfPhysics defines ball flight parameters. Speeds are in cells per
// second; the simulation integrates with the platform tick rate.
type GolfPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // downward acceleration
	Restitution float64 `yaml:"restitution"`  // bounce energy retention, 0..1
	Friction    float64 `yaml:"friction"`     // horizontal damping on bounce
	MinPower    float64 `yaml:"min_power"`    // launch speed at zero charge
	MaxPower    float64 `yaml:"max_power"`    // launch speed at full charge
	ChargeRate  float64 `yaml:"charge_rate"`  // power meter fill per second
	StopSpeed   float64 `yaml:"stop_speed"`   // below this the ball is at rest
	WaterDrag   float64 `yaml:"water_drag"`   // velocity retention per tick in water
	SandDamping float64 `yaml:"sand_damping"` // velocity retention on sand contact
}

// SimConfig defines terrain simulation tuning.
type SimConfig struct {
	Seed   int64 `yaml:"seed"`   // 0 means derive from the platform seed
	Debris bool  `yaml:"debris"` // visual debris particles on/off
}

// MaterialConfig mirrors the simulation's per-material constants.
// Zero-valued thresholds fall back to the built-in catalog.
type MaterialConfig struct {
	Displacement       float64 `yaml:"displacement"`         // min impact speed for craters
	DirectHit          float64 `yaml:"direct_hit"`           // min impact speed to clear the struck cell
	CraterBase         float64 `yaml:"crater_base"`          // crater radius at threshold speed
	CraterMax          float64 `yaml:"crater_max"`           // cap on the speed-derived bonus
	CraterSpeedDivisor float64 `yaml:"crater_speed_divisor"` // speed units per extra radius cell
	Velocity           float64 `yaml:"velocity"`             // debris ejection speed scale

	// Fire only.
	Lifetime      float64 `yaml:"lifetime"`
	SmokeLifetime float64 `yaml:"smoke_lifetime"`
	WaterBoilRate float64 `yaml:"water_boil_rate"`
}

// MaterialsConfig groups the tunable materials. Stone is absent on
// purpose: its behavior is categorical, not tunable.
type MaterialsConfig struct {
	Sand MaterialConfig `yaml:"sand"`
	Dirt MaterialConfig `yaml:"dirt"`
	Ice  MaterialConfig `yaml:"ice"`
	Fire MaterialConfig `yaml:"fire"`
}

// BallConfig defines one selectable ball type. Factors scale the
// destruction thresholds and effects: below 1 displaces easier.
type BallConfig struct {
	Name            string  `yaml:"name"`
	Displacement    float64 `yaml:"displacement"`     // displacement threshold factor
	DirectHit       float64 `yaml:"direct_hit"`       // direct-hit threshold factor
	Radius          float64 `yaml:"radius"`           // crater radius factor
	Velocity        float64 `yaml:"velocity"`         // debris velocity factor
	PowerScale      float64 `yaml:"power_scale"`      // launch power multiplier
	BreaksIce       bool    `yaml:"breaks_ice"`       // can shatter and melt ice
	SuppressCraters bool    `yaml:"suppress_craters"` // practice ball: no terrain damage
}

// CoursePreset represents a named course generation difficulty.
type CoursePreset string

const (
	CourseEasy   CoursePreset = "easy"
	CourseNormal CoursePreset = "normal"
	CourseHard   CoursePreset = "hard"
)

// GeneratorParams returns terrain generation knobs for a preset:
// surface roughness in cells and the fraction of the course covered by
// water and ice hazards.
func (p CoursePreset) GeneratorParams() (roughness int, hazardDensity float64) {
	switch p {
	case CourseEasy:
		return 2, 0.05
	case CourseHard:
		return 6, 0.25
	default:
		return 4, 0.12
	}
}
