package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a journal snapshot",
	Long: `Replace all journal data with a previously exported json snapshot.

The current entries are backed up before the import. A confirmation
prompt is shown unless --yes is specified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runImport(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s\n", args[0])
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	s := openStore()
	if s == nil {
		return
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !promptConfirmation("Replace all journal data with this snapshot? [y/N]: ") {
			_, _ = fmt.Fprintln(deps.Stdout, "Import cancelled")
			return
		}
	}

	if err := s.ImportSnapshot(data); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Import failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d %s and %d %s\n",
		len(s.Entries()), pluralize("entry", len(s.Entries())),
		len(s.People()), pluralize("person", len(s.People())))
}
