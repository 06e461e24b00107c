package golf

import (
	"github.com/vovakirdan/terragolf/internal/config"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

// BallType pairs a configured ball with the impact modifiers the
// simulation consumes. The player cycles through the configured set
// while aiming.
type BallType struct {
	Name       string
	PowerScale float64
	Mods       sim.MoverModifiers
}

// ballTypesFromConfig converts the configured ball list. An empty list
// degrades to a single standard ball so the game always has one.
func ballTypesFromConfig(balls []config.BallConfig) []BallType {
	if len(balls) == 0 {
		return []BallType{{Name: "standard", PowerScale: 1, Mods: sim.StandardModifiers()}}
	}

	out := make([]BallType, 0, len(balls))
	for _, b := range balls {
		bt := BallType{
			Name:       b.Name,
			PowerScale: b.PowerScale,
			Mods: sim.MoverModifiers{
				DisplacementFactor: b.Displacement,
				DirectHitFactor:    b.DirectHit,
				RadiusFactor:       b.Radius,
				VelocityFactor:     b.Velocity,
				BreaksIce:          b.BreaksIce,
				SuppressCraters:    b.SuppressCraters,
			},
		}
		if bt.PowerScale <= 0 {
			bt.PowerScale = 1
		}
		// Zero factors mean the field was omitted in YAML, not a ball
		// that cannot do anything.
		if bt.Mods.DisplacementFactor <= 0 {
			bt.Mods.DisplacementFactor = 1
		}
		if bt.Mods.DirectHitFactor <= 0 {
			bt.Mods.DirectHitFactor = 1
		}
		if bt.Mods.RadiusFactor <= 0 {
			bt.Mods.RadiusFactor = 1
		}
		if bt.Mods.VelocityFactor <= 0 {
			bt.Mods.VelocityFactor = 1
		}
		out = append(out, bt)
	}
	return out
}

// materialsFromConfig builds the simulation material catalog from the
// configured tuning values, falling back to a material's defaults for
// any zeroed block.
func materialsFromConfig(mc config.MaterialsConfig) *sim.Materials {
	mats := sim.DefaultMaterials()

	apply := func(t sim.CellType, c config.MaterialConfig) {
		if c == (config.MaterialConfig{}) {
			return
		}
		mats.Set(t, sim.MaterialProps{
			DisplacementThreshold: c.Displacement,
			DirectHitThreshold:    c.DirectHit,
			CraterBaseRadius:      c.CraterBase,
			CraterMaxRadius:       c.CraterMax,
			CraterSpeedDivisor:    c.CraterSpeedDivisor,
			VelocityMultiplier:    c.Velocity,
			Lifetime:              c.Lifetime,
			SmokeLifetime:         c.SmokeLifetime,
			WaterBoilRate:         c.WaterBoilRate,
		})
	}

	apply(sim.Sand, mc.Sand)
	apply(sim.Dirt, mc.Dirt)
	apply(sim.Ice, mc.Ice)
	apply(sim.Fire, mc.Fire)
	return mats
}
