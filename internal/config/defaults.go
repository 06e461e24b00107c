package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the default golf configuration. Used as
// the last-resort fallback when the embedded YAML fails to parse.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Physics: GolfPhysics{
			Gravity:     380,
			Restitution: 0.45,
			Friction:    0.80,
			MinPower:    40,
			MaxPower:    320,
			ChargeRate:  1.2,
			StopSpeed:   12,
			WaterDrag:   0.90,
			SandDamping: 0.35,
		},
		Sim: SimConfig{
			Seed:   0,
			Debris: true,
		},
		Materials: MaterialsConfig{
			Sand: MaterialConfig{
				Displacement:       50,
				DirectHit:          100,
				CraterBase:         1,
				CraterMax:          5,
				CraterSpeedDivisor: 60,
				Velocity:           0.55,
			},
			Dirt: MaterialConfig{
				Displacement:       350,
				DirectHit:          700,
				CraterBase:         1,
				CraterMax:          3,
				CraterSpeedDivisor: 120,
				Velocity:           0.40,
			},
			Ice: MaterialConfig{
				Displacement:       150,
				DirectHit:          220,
				CraterBase:         1,
				CraterMax:          4,
				CraterSpeedDivisor: 90,
			},
			Fire: MaterialConfig{
				Lifetime:      3.0,
				SmokeLifetime: 1.6,
				WaterBoilRate: 0.3,
			},
		},
		Balls: []BallConfig{
			{
				Name:         "standard",
				Displacement: 1.0,
				DirectHit:    1.0,
				Radius:       1.0,
				Velocity:     1.0,
				PowerScale:   1.0,
			},
			{
				Name:         "heavy",
				Displacement: 0.5,
				DirectHit:    0.6,
				Radius:       1.4,
				Velocity:     1.2,
				PowerScale:   0.8,
				BreaksIce:    true,
			},
			{
				Name:            "plastic",
				Displacement:    1.0,
				DirectHit:       1.0,
				Radius:          1.0,
				Velocity:        1.0,
				PowerScale:      1.1,
				SuppressCraters: true,
			},
		},
	}
}
