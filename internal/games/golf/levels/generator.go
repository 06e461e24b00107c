package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/terragolf/internal/config"
)

// Generator dimensions. Courses narrower than this do not leave room
// for a tee shot, so Generate clamps up to these values.
const (
	minCourseWidth  = 40
	minCourseHeight = 16
)

const (
	sandTopDepth  = 3
	teeAirMargin  = 4
	holeEdgeSlack = 6
)

// Generate builds a random course for the given preset. The same seed
// always yields the same course.
func Generate(preset config.CoursePreset, seed int64, width, height int) (Level, error) {
	if width < minCourseWidth {
		width = minCourseWidth
	}
	if height < minCourseHeight {
		height = minCourseHeight
	}

	roughness, hazardDensity := preset.GeneratorParams()
	rnd := rand.New(rand.NewSource(seed))

	surface := surfaceLine(rnd, width, height, roughness)

	cells := make([][]byte, height)
	for y := range cells {
		cells[y] = make([]byte, width)
		for x := range cells[y] {
			cells[y][x] = charEmpty
		}
	}

	// Bedrock keeps craters from punching through the course floor.
	for x := 0; x < width; x++ {
		cells[height-1][x] = charStone
	}

	for x := 0; x < width; x++ {
		top := surface[x]
		for y := top; y < height-1; y++ {
			if y < top+sandTopDepth {
				cells[y][x] = charSand
			} else {
				cells[y][x] = charDirt
			}
		}
	}

	placeHazards(rnd, cells, surface, hazardDensity)

	holeX := width - 2 - rnd.Intn(holeEdgeSlack)
	digHole(cells, surface, holeX)

	teeX := 2 + rnd.Intn(3)
	teeY := surface[teeX] - teeAirMargin
	if teeY < 0 {
		teeY = 0
	}
	// The tee column must be clear air above the surface.
	for y := 0; y <= teeY; y++ {
		cells[y][teeX] = charEmpty
	}

	rows := make([]string, height)
	for y := range cells {
		rows[y] = string(cells[y])
	}

	lvl := Level{
		ID:     fmt.Sprintf("gen-%s-%d", preset, seed),
		Name:   fmt.Sprintf("Generated (%s)", preset),
		Par:    parForPreset(preset),
		TeeX:   teeX,
		TeeY:   teeY,
		Width:  width,
		Height: height,
		Rows:   rows,
	}
	if err := lvl.validate(); err != nil {
		return Level{}, fmt.Errorf("generated course invalid: %w", err)
	}
	return lvl, nil
}

// surfaceLine walks a terrain height profile across the course. The
// rougher the preset, the larger each step may be.
func surfaceLine(rnd *rand.Rand, width, height, roughness int) []int {
	minTop := height / 3
	maxTop := height - 4

	surface := make([]int, width)
	y := minTop + (maxTop-minTop)/2
	for x := 0; x < width; x++ {
		step := rnd.Intn(2*roughness+1) - roughness
		y += step
		if y < minTop {
			y = minTop
		}
		if y > maxTop {
			y = maxTop
		}
		surface[x] = y
	}
	return surface
}

// placeHazards carves water ponds into surface dips and freezes some
// of them over as ice, scaled by the preset's hazard density.
func placeHazards(rnd *rand.Rand, cells [][]byte, surface []int, density float64) {
	width := len(surface)
	hazardCols := int(float64(width) * density)

	for i := 0; i < hazardCols; i++ {
		x := 3 + rnd.Intn(width-6)
		span := 2 + rnd.Intn(4)
		frozen := rnd.Float64() < 0.3

		for dx := 0; dx < span && x+dx < width-1; dx++ {
			col := x + dx
			top := surface[col]
			depth := 1 + rnd.Intn(2)
			for dy := 0; dy < depth && top+dy < len(cells)-1; dy++ {
				if frozen {
					cells[top+dy][col] = charIce
				} else {
					cells[top+dy][col] = charWater
				}
			}
		}
	}
}

// digHole sinks a cup one column wide at holeX, with the hole cell at
// its bottom and clear air above so the ball can drop in.
func digHole(cells [][]byte, surface []int, holeX int) {
	height := len(cells)
	top := surface[holeX]
	bottom := top + 2
	if bottom >= height-1 {
		bottom = height - 2
	}
	for y := 0; y < bottom; y++ {
		cells[y][holeX] = charEmpty
	}
	cells[bottom][holeX] = charHole
}

func parForPreset(p config.CoursePreset) int {
	switch p {
	case config.CourseEasy:
		return 3
	case config.CourseHard:
		return 5
	default:
		return 4
	}
}
