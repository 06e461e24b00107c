package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

func TestParseYAMLValidLevel(t *testing.T) {
	data := []byte(`
id: test
name: Test Course
par: 4
tee:
  x: 1
  y: 0
rows:
  - "......"
  - "SSSSSS"
  - "DDDODD"
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.ID != "test" {
		t.Errorf("got id %q, expected %q", lvl.ID, "test")
	}
	if lvl.Par != 4 {
		t.Errorf("got par %d, expected 4", lvl.Par)
	}
	if lvl.Width != 6 || lvl.Height != 3 {
		t.Errorf("got %dx%d, expected 6x3", lvl.Width, lvl.Height)
	}
}

func TestParseYAMLDefaultsParToThree(t *testing.T) {
	data := []byte(`
id: nopar
tee:
  x: 0
  y: 0
rows:
  - "..O"
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Par != 3 {
		t.Errorf("got par %d, expected default 3", lvl.Par)
	}
}

func TestParseYAMLRejectsMissingID(t *testing.T) {
	data := []byte(`
rows:
  - "..O"
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("expected error for level without id")
	}
}

func TestParseYAMLRejectsNoRows(t *testing.T) {
	data := []byte(`
id: empty
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("expected error for level without terrain rows")
	}
}

func TestParseYAMLRejectsTeeInsideTerrain(t *testing.T) {
	data := []byte(`
id: buried
tee:
  x: 0
  y: 1
rows:
  - "..O"
  - "SSS"
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("expected error for tee inside terrain")
	}
}

func TestParseYAMLRejectsTeeOutsideCourse(t *testing.T) {
	data := []byte(`
id: offgrid
tee:
  x: 99
  y: 0
rows:
  - "..O"
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("expected error for tee outside the course")
	}
}

func TestParseYAMLRejectsMissingHole(t *testing.T) {
	data := []byte(`
id: nohole
tee:
  x: 0
  y: 0
rows:
  - "..."
  - "SSS"
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("expected error for level without a hole cell")
	}
}

func TestBuildWorldPlacesMaterials(t *testing.T) {
	lvl := Level{
		ID: "mats", TeeX: 0, TeeY: 0,
		Width: 5, Height: 3,
		Rows: []string{
			".....",
			"SW#IO",
			"DDDDD",
		},
	}
	w := lvl.BuildWorld(nil, 1)

	want := []struct {
		x, y int
		t    sim.CellType
	}{
		{0, 1, sim.Sand},
		{1, 1, sim.Water},
		{2, 1, sim.Stone},
		{3, 1, sim.Ice},
		{4, 1, sim.WinHole},
		{0, 2, sim.Dirt},
	}
	for _, c := range want {
		if tt, _ := w.Grid.TypeAt(c.x, c.y); tt != c.t {
			t.Errorf("cell (%d,%d): got %v, expected %v", c.x, c.y, tt, c.t)
		}
	}
}

func TestBuildWorldIgnitesFireCells(t *testing.T) {
	lvl := Level{
		ID: "burning", TeeX: 0, TeeY: 0,
		Width: 4, Height: 2,
		Rows: []string{
			"...O",
			"DFFD",
		},
	}
	w := lvl.BuildWorld(nil, 1)
	if n := w.TrackedFlames(); n != 2 {
		t.Errorf("got %d tracked flames, expected 2", n)
	}
}

func TestLoadAllSortsByID(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml": "id: beta\ntee: {x: 0, y: 0}\nrows: [\"..O\"]\n",
		"a.yaml": "id: alpha\ntee: {x: 0, y: 0}\nrows: [\"..O\"]\n",
		"x.txt":  "not a level",
		"c.yaml": "rows: [\"..O\"]\n", // invalid: no id, skipped
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("got %d levels, expected 2", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[1].ID != "beta" {
		t.Errorf("got order [%s %s], expected [alpha beta]", lvls[0].ID, lvls[1].ID)
	}
}

func TestLoadByIDFallsBackToBuiltin(t *testing.T) {
	lvl, err := NewLoader(t.TempDir()).LoadByID("dunes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.ID != "dunes" {
		t.Errorf("got id %q, expected %q", lvl.ID, "dunes")
	}
}

func TestBuiltinLevelsAllValidate(t *testing.T) {
	lvls := Builtin()
	if len(lvls) == 0 {
		t.Fatal("no builtin levels")
	}
	for _, lvl := range lvls {
		if err := lvl.validate(); err != nil {
			t.Errorf("builtin %s: %v", lvl.ID, err)
		}
		for y, row := range lvl.Rows {
			if len(row) != lvl.Width {
				t.Errorf("builtin %s: row %d is %d wide, expected %d", lvl.ID, y, len(row), lvl.Width)
			}
		}
	}
}
