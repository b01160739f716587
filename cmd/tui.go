package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadlog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for leadlog.

Views available:
  - Entries: Browse the journal, newest first
  - People: Browse tracked people and their important dates
  - Reminders: Upcoming reminders

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() {
	s := openStore()
	if s == nil {
		return
	}

	if err := tui.Run(s, deps.Now); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: TUI failed: %v\n", err)
		deps.Exit(1)
		return
	}
}
