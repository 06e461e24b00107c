// terragolf is a terminal golf game played on destructible terrain.
//
// Usage:
//
//	terragolf play [course]     - Play a round
//	terragolf menu              - Interactive course picker
//	terragolf levels            - List available courses
//	terragolf scores <course>   - Show best rounds for a course
//	terragolf serve             - Start SSH server for remote play
//	terragolf sim [course]      - Run the terrain simulation headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.terragolf/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/terragolf/internal/games/golf"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terragolf",
	Short: "Terra Golf - destructible-terrain golf in your terminal",
	Long: `Terra Golf is a terminal golf game. Every shot deforms the course:
sand craters and slides, water spreads into the holes you blast,
ice shatters under the heavy ball, and fire burns across the terrain.

Available commands:
  play     - Play a round on a course
  menu     - Interactive course picker
  levels   - List available courses
  scores   - View best rounds
  serve    - Start SSH server for remote play
  sim      - Run the terrain simulation headless

Examples:
  terragolf play dunes
  terragolf play --generate hard
  terragolf menu
  terragolf serve --ssh :2222
  terragolf scores dunes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.terragolf/rounds.db", "Path to rounds database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
