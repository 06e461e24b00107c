package levels

import (
	"testing"

	"github.com/vovakirdan/terragolf/internal/config"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(config.CourseNormal, 42, 60, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(config.CourseNormal, 42, 60, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TeeX != b.TeeX || a.TeeY != b.TeeY {
		t.Errorf("tee differs: (%d,%d) vs (%d,%d)", a.TeeX, a.TeeY, b.TeeX, b.TeeY)
	}
	for y := range a.Rows {
		if a.Rows[y] != b.Rows[y] {
			t.Fatalf("row %d differs between identical seeds", y)
		}
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, _ := Generate(config.CourseNormal, 1, 60, 22)
	b, _ := Generate(config.CourseNormal, 2, 60, 22)
	same := true
	for y := range a.Rows {
		if a.Rows[y] != b.Rows[y] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateClampsSmallDimensions(t *testing.T) {
	lvl, err := Generate(config.CourseEasy, 7, 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Width < minCourseWidth || lvl.Height < minCourseHeight {
		t.Errorf("got %dx%d, expected at least %dx%d", lvl.Width, lvl.Height, minCourseWidth, minCourseHeight)
	}
}

func TestGeneratePresetsProduceValidCourses(t *testing.T) {
	for _, preset := range []config.CoursePreset{config.CourseEasy, config.CourseNormal, config.CourseHard} {
		for seed := int64(0); seed < 5; seed++ {
			lvl, err := Generate(preset, seed, 60, 22)
			if err != nil {
				t.Errorf("%s seed %d: %v", preset, seed, err)
				continue
			}
			if err := lvl.validate(); err != nil {
				t.Errorf("%s seed %d: %v", preset, seed, err)
			}
		}
	}
}

func TestGenerateParMatchesPreset(t *testing.T) {
	cases := []struct {
		preset config.CoursePreset
		par    int
	}{
		{config.CourseEasy, 3},
		{config.CourseNormal, 4},
		{config.CourseHard, 5},
	}
	for _, c := range cases {
		lvl, err := Generate(c.preset, 9, 60, 22)
		if err != nil {
			t.Fatalf("%s: %v", c.preset, err)
		}
		if lvl.Par != c.par {
			t.Errorf("%s: got par %d, expected %d", c.preset, lvl.Par, c.par)
		}
	}
}

func TestGenerateBuildsPlayableWorld(t *testing.T) {
	lvl, err := Generate(config.CourseNormal, 3, 60, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := lvl.BuildWorld(nil, 3)
	if w.Grid.W != lvl.Width || w.Grid.H != lvl.Height {
		t.Errorf("world is %dx%d, expected %dx%d", w.Grid.W, w.Grid.H, lvl.Width, lvl.Height)
	}
	if n := w.Grid.CountType(sim.Sand); n == 0 {
		t.Error("generated course has no sand surface")
	}
}
