package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf"
	"github.com/vovakirdan/terragolf/internal/platform/tui"
	"github.com/vovakirdan/terragolf/internal/registry"
	"github.com/vovakirdan/terragolf/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a course picker menu",
	Long: `Start Terra Golf in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a course.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select course
  M            - Toggle practice mode
  Tab          - Open scoreboard
  Q            - Quit

Examples:
  terragolf menu
  terragolf menu --fps 30
  terragolf menu --db ./rounds.db`,
	Run: runMenu,
}

var flagMenuLevelsDir string

func init() {
	menuCmd.Flags().StringVar(&flagMenuLevelsDir, "levels", "levels", "Directory with course files")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	golf.SetLevelsDir(flagMenuLevelsDir)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, flagMenuLevelsDir, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.LevelID == "" {
			break
		}

		gameID := "golf"
		if menuResult.Practice {
			gameID = "golf_practice"
		}
		golf.SetLevelID(menuResult.LevelID)

		// Fresh seed for each round so generated debris differs
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		// Create and run the selected round
		game, createErr := registry.Create(gameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			continue
		}

		if runErr := tui.Run(game, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
	}

	if store != nil {
		store.Close()
	}
}
