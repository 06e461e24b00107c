package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf"
	"github.com/vovakirdan/terragolf/internal/platform/tui"
	"github.com/vovakirdan/terragolf/internal/registry"
	"github.com/vovakirdan/terragolf/internal/storage"
)

var (
	flagConfig    string
	flagLevelsDir string
	flagGenerate  string
	flagPractice  bool
)

var playCmd = &cobra.Command{
	Use:   "play [course]",
	Short: "Play a round of golf",
	Long: `Start a round on the given course, or the first built-in course.

Controls:
  Up/Down    - Adjust aim angle
  Tab        - Cycle ball type
  Space      - Start the power meter, press again to swing
  P/Esc      - Pause
  R          - Replay the hole (after winning)
  Q/Ctrl+C   - Quit

Ball types (from config):
  standard - Balanced
  heavy    - Bigger craters, shatters ice, shorter flight
  plastic  - Flies further, leaves the course intact

Examples:
  terragolf play dunes
  terragolf play lakeside --practice
  terragolf play --generate hard
  terragolf play dunes --config ./my-golf.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "levels", "Directory with course files")
	playCmd.Flags().StringVar(&flagGenerate, "generate", "", "Generate a random course: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Practice mode: terrain damage off")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Configure the game before creation
	golf.SetConfigPath(flagConfig)
	golf.SetLevelsDir(flagLevelsDir)
	golf.SetCoursePreset(flagGenerate)
	if len(args) > 0 {
		golf.SetLevelID(args[0])
	}

	gameID := "golf"
	if flagPractice {
		gameID = "golf_practice"
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
