package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/resource-rush/internal/game"
	"github.com/vovakirdan/resource-rush/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long: `Shows the move budget, gift requirement and obstacle counts
for every level of a run.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	fmt.Printf("Levels 1-%d:\n\n", cfg.Session.MaxLevels)
	fmt.Print(formatLevels(game.AllParams(cfg.Session.MaxLevels)))
	fmt.Println()
	fmt.Println("Run 'rush play --start-level <n>' to start at a level.")
}

// formatLevels renders the level table as aligned plain text.
func formatLevels(params []game.LevelParams) string {
	widths := make([]int, len(tui.LevelColumns))
	rows := make([][]string, 0, len(params))
	for i, col := range tui.LevelColumns {
		widths[i] = len(col)
	}
	for _, p := range params {
		row := tui.LevelRow(p)
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString(" ")
		for i, cell := range cells {
			fmt.Fprintf(&b, " %*s", widths[i], cell)
		}
		b.WriteString("\n")
	}

	writeRow(tui.LevelColumns)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	writeRow(dashes)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
