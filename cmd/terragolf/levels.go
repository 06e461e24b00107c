package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terragolf/internal/games/golf/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available courses",
	Long: `List the built-in courses plus any course files found in the
levels directory. Use the course ID with 'terragolf play <id>'.`,
	Run: runLevels,
}

var flagLevelsListDir string

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsListDir, "levels", "levels", "Directory with course files")
}

func runLevels(cmd *cobra.Command, args []string) {
	seen := make(map[string]bool)
	var all []levels.Level

	if dirLevels, err := levels.NewLoader(flagLevelsListDir).LoadAll(); err == nil {
		for _, lvl := range dirLevels {
			seen[lvl.ID] = true
			all = append(all, lvl)
		}
	}
	for _, lvl := range levels.Builtin() {
		if !seen[lvl.ID] {
			all = append(all, lvl)
		}
	}

	if len(all) == 0 {
		fmt.Println("No courses available.")
		return
	}

	fmt.Println("Available courses:")
	fmt.Println()
	fmt.Printf("%-12s %-24s %-4s %s\n", "ID", "NAME", "PAR", "SIZE")
	fmt.Printf("%-12s %-24s %-4s %s\n", "--", "----", "---", "----")
	for _, lvl := range all {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("%-12s %-24s %-4d %s\n", lvl.ID, lvl.Name, lvl.Par, size)
	}
	fmt.Println()
	fmt.Printf("Total: %d course(s)\n", len(all))
	fmt.Println()
	fmt.Println("Play a course with: terragolf play <id>")
}
