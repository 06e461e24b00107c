// Package levels provides golf course loading and generation.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
)

// Level represents a complete course definition: terrain rows, the tee
// where the ball starts, and the par for the hole.
type Level struct {
	ID       string
	Name     string
	Par      int
	TeeX     int
	TeeY     int
	Width    int
	Height   int
	Rows     []string
	FilePath string
}

// yamlLevel is the on-disk YAML structure for a course file.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Par  int      `yaml:"par"`
	Tee  yamlTee  `yaml:"tee"`
	Rows []string `yaml:"rows"`
}

type yamlTee struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Terrain legend for course rows. Unknown characters parse as empty
// so sketching with spacing characters stays harmless.
const (
	charEmpty = '.'
	charSand  = 'S'
	charDirt  = 'D'
	charStone = '#'
	charWater = 'W'
	charIce   = 'I'
	charFire  = 'F'
	charHole  = 'O'
)

// cellForChar maps a legend character to a material.
func cellForChar(c rune) sim.CellType {
	switch c {
	case charSand:
		return sim.Sand
	case charDirt:
		return sim.Dirt
	case charStone:
		return sim.Stone
	case charWater, '~':
		return sim.Water
	case charIce:
		return sim.Ice
	case charFire:
		return sim.Fire
	case charHole:
		return sim.WinHole
	default:
		return sim.Empty
	}
}

// ParseYAML parses a YAML course file.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s has no terrain rows", yl.ID)
	}

	width := 0
	for _, row := range yl.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	par := yl.Par
	if par <= 0 {
		par = 3
	}

	lvl := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Par:    par,
		TeeX:   yl.Tee.X,
		TeeY:   yl.Tee.Y,
		Width:  width,
		Height: len(yl.Rows),
		Rows:   yl.Rows,
	}

	if err := lvl.validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// validate checks structural requirements: a tee inside the course in
// open air, and at least one hole cell to win into.
func (l *Level) validate() error {
	if l.TeeX < 0 || l.TeeX >= l.Width || l.TeeY < 0 || l.TeeY >= l.Height {
		return fmt.Errorf("level %s: tee (%d,%d) outside %dx%d course", l.ID, l.TeeX, l.TeeY, l.Width, l.Height)
	}
	if t := l.cellAt(l.TeeX, l.TeeY); t != sim.Empty {
		return fmt.Errorf("level %s: tee (%d,%d) is inside %v terrain", l.ID, l.TeeX, l.TeeY, t)
	}

	holes := 0
	for _, row := range l.Rows {
		for _, c := range row {
			if cellForChar(c) == sim.WinHole {
				holes++
			}
		}
	}
	if holes == 0 {
		return fmt.Errorf("level %s: no hole cell ('O')", l.ID)
	}
	return nil
}

// cellAt returns the material at (x, y) as parsed from the rows.
func (l *Level) cellAt(x, y int) sim.CellType {
	if y < 0 || y >= len(l.Rows) {
		return sim.Empty
	}
	row := l.Rows[y]
	if x < 0 || x >= len(row) {
		return sim.Empty
	}
	return cellForChar(rune(row[x]))
}

// BuildWorld materializes the course into a simulation world. Fire
// cells are ignited so they are tracked from the start.
func (l *Level) BuildWorld(mats *sim.Materials, seed int64) *sim.World {
	grid := sim.NewGrid(l.Width, l.Height)
	w := sim.NewWorld(grid, mats, seed)

	for y, row := range l.Rows {
		for x, c := range row {
			t := cellForChar(c)
			switch t {
			case sim.Empty:
			case sim.Fire:
				w.IgniteAt(x, y)
			default:
				w.Paint(x, y, t)
			}
		}
	}
	return w
}

// Loader handles loading courses from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new course loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all course files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		out = append(out, lvl)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// LoadFile loads a single course file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific course by ID, falling back to the built-in
// courses when no file matches.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err == nil {
		for _, lvl := range all {
			if lvl.ID == id {
				return lvl, nil
			}
		}
	}

	for _, lvl := range Builtin() {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level %q not found", id)
}
