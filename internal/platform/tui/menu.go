package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf/levels"
	"github.com/vovakirdan/terragolf/internal/storage"
)

// MenuItem represents a selectable course in the menu.
type MenuItem struct {
	LevelID  string
	Name     string
	Par      int
	Practice bool
}

// MenuModel is the Bubble Tea model for the course picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	practice       bool // 'm' toggles practice mode for the next selection
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a course
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing courses from the
// levels directory first and the built-in set after.
func NewMenuModel(store *storage.Store, levelsDir string, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, 8)
	seen := make(map[string]bool)

	if levelsDir != "" {
		if loaded, err := levels.NewLoader(levelsDir).LoadAll(); err == nil {
			for _, lvl := range loaded {
				items = append(items, MenuItem{LevelID: lvl.ID, Name: lvl.Name, Par: lvl.Par})
				seen[lvl.ID] = true
			}
		}
	}
	for _, lvl := range levels.Builtin() {
		if seen[lvl.ID] {
			continue
		}
		items = append(items, MenuItem{LevelID: lvl.ID, Name: lvl.Name, Par: lvl.Par})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 'm' toggles practice mode before the menu action mapping, which
	// has no binding for it.
	if msg.String() == "m" {
		m.practice = !m.practice
		return m, nil
	}

	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			selected.Practice = m.practice
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the round
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  T E R R A   G O L F  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Select a course"
	if m.practice {
		subtitle = "Select a course (practice: terrain damage off)"
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Course list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var best string
		if m.store != nil {
			if strokes, err := m.store.BestStrokes(item.LevelID); err == nil && strokes > 0 {
				best = fmt.Sprintf("  best %d", strokes)
			}
		}

		line := fmt.Sprintf("%s%s (par %d)%s", cursor, item.Name, item.Par, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  M: Practice  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID         string
	Practice        bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, levelsDir string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, levelsDir, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.LevelID = m.Selected().LevelID
		result.Practice = m.Selected().Practice
	} else {
		result.Quit = true
	}

	return result, nil
}
