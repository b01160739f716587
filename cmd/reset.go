package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all journal data",
	Long: `Delete all entries and people and restore default categories, teams,
follow-up options and duration settings. The theme is kept.

The current entries are backed up before the reset. A confirmation
prompt is shown unless --yes is specified.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReset(cmd)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func runReset(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !promptConfirmation("Delete ALL journal data and restore defaults? [y/N]: ") {
			_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
			return
		}
	}

	if err := s.ResetAll(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Reset failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Journal reset to defaults")
}
