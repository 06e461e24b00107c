package golf

import (
	"fmt"
	"math"

	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	HoleChar  = '∪'
	AimChar   = '·'
	MeterFull = '█'
	MeterRest = '░'
)

// hudRows is how many top rows the HUD occupies; terrain renders below.
const hudRows = 2

// cellGlyph picks the rune and color for a terrain cell. Shade nudges
// the glyph density so terrain of one material does not render as a
// flat slab.
func cellGlyph(c sim.Cell) (rune, core.Color) {
	switch c.Type {
	case sim.Sand:
		return shadeRamp(c.Shade, '░', '▒', '▒'), core.ColorYellow
	case sim.Dirt:
		return shadeRamp(c.Shade, '▒', '▓', '▓'), core.ColorBrown
	case sim.Stone:
		return '█', core.ColorGray
	case sim.Water:
		return '≈', core.ColorBlue
	case sim.Ice:
		return shadeRamp(c.Shade, '░', '▒', '▓'), core.ColorBrightCyan
	case sim.Fire:
		return shadeRamp(c.Shade, '△', '▲', '▲'), core.ColorBrightRed
	case sim.Smoke:
		return shadeRamp(c.Shade, '·', '░', '░'), core.ColorDarkGray
	case sim.WinHole:
		return HoleChar, core.ColorBrightGreen
	default:
		return ' ', core.ColorDefault
	}
}

// shadeRamp maps a cell shade to one of three glyph densities.
func shadeRamp(shade int8, lo, mid, hi rune) rune {
	switch {
	case shade < -3:
		return lo
	case shade > 3:
		return hi
	default:
		return mid
	}
}

// debrisGlyph fades a particle out as its alpha drops.
func debrisGlyph(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '▪'
	case alpha > 0.33:
		return '•'
	default:
		return '·'
	}
}

// debrisColor matches the particle to the material it came from.
func debrisColor(t sim.CellType) core.Color {
	switch t {
	case sim.Sand:
		return core.ColorYellow
	case sim.Dirt:
		return core.ColorBrown
	case sim.Ice:
		return core.ColorBrightCyan
	default:
		return core.ColorGray
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderTerrain(dst)
	g.renderDebris(dst)
	g.renderBall(dst)

	switch g.state {
	case StateAiming:
		g.renderAim(dst)
	case StateCharging:
		g.renderAim(dst)
		g.renderPowerMeter(dst)
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateWon:
		g.drawCenteredBox(dst, "IN THE HOLE!", g.winSubtitle())
	}
}

// renderHUD draws strokes, par, and the selected ball type.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Strokes: %d  Par: %d", g.strokes, g.level.Par)
	dst.DrawText(1, 0, left)

	dst.DrawTextCentered(0, g.level.Name)

	right := fmt.Sprintf("Ball: %s", g.BallTypeName())
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderTerrain draws the material grid below the HUD.
func (g *Game) renderTerrain(dst *core.Screen) {
	grid := g.world.Grid
	for y := 0; y < grid.H; y++ {
		sy := y + hudRows
		if sy >= dst.Height() {
			break
		}
		for x := 0; x < grid.W && x < dst.Width(); x++ {
			c, ok := grid.Get(x, y)
			if !ok || c.Type == sim.Empty {
				continue
			}
			r, col := cellGlyph(c)
			dst.SetColored(x, sy, r, col)
		}
	}
}

// renderDebris draws flying particles over the terrain.
func (g *Game) renderDebris(dst *core.Screen) {
	for _, p := range g.debris.Particles() {
		x, y := int(p.X), int(p.Y)+hudRows
		if x < 0 || x >= dst.Width() || y < hudRows || y >= dst.Height() {
			continue
		}
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		dst.SetColored(x, y, debrisGlyph(alpha), debrisColor(p.Type))
	}
}

// renderBall draws the ball on top of everything.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.ball.CellX(), g.ball.CellY()+hudRows
	if x >= 0 && x < dst.Width() && y >= hudRows && y < dst.Height() {
		dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
	}
}

// renderAim draws a dotted trajectory hint from the ball.
func (g *Game) renderAim(dst *core.Screen) {
	dx := math.Cos(g.angle)
	dy := -math.Sin(g.angle)
	for i := 2; i <= 7; i++ {
		x := g.ball.CellX() + int(math.Round(dx*float64(i)))
		y := g.ball.CellY() + int(math.Round(dy*float64(i))) + hudRows
		if x >= 0 && x < dst.Width() && y >= hudRows && y < dst.Height() {
			dst.SetColored(x, y, AimChar, core.ColorBrightYellow)
		}
	}
}

// renderPowerMeter draws the charge bar along the bottom row.
func (g *Game) renderPowerMeter(dst *core.Screen) {
	y := dst.Height() - 1
	width := dst.Width() - 12
	if width < 10 {
		width = 10
	}
	filled := int(g.charge * float64(width))

	dst.DrawText(1, y, "Power ")
	for i := 0; i < width; i++ {
		r := MeterRest
		if i < filled {
			r = MeterFull
		}
		col := core.ColorGreen
		if g.charge > 0.66 {
			col = core.ColorBrightRed
		} else if g.charge > 0.33 {
			col = core.ColorYellow
		}
		dst.SetColored(7+i, y, r, col)
	}
}

// winSubtitle summarizes the round against par.
func (g *Game) winSubtitle() string {
	diff := g.strokes - g.level.Par
	var vs string
	switch {
	case diff < 0:
		vs = fmt.Sprintf("%d under par", -diff)
	case diff == 0:
		vs = "even par"
	default:
		vs = fmt.Sprintf("%d over par", diff)
	}
	return fmt.Sprintf("%d strokes, %s  |  Press R to replay", g.strokes, vs)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
