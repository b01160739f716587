package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leadlog/internal/report"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:       "export [json|csv]",
	Short:     "Export the journal",
	Long: `Export the journal to stdout or a file.

The json format is a complete snapshot of all data and settings,
suitable for 'leadlog import'. The csv format is entries only, for
spreadsheets.

Examples:
  leadlog export json --out backup.json
  leadlog export csv > entries.csv`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"json", "csv"},
	Run: func(cmd *cobra.Command, args []string) {
		runExport(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) {
	s := openStore()
	if s == nil {
		return
	}

	out, _ := cmd.Flags().GetString("out")

	var data []byte
	switch args[0] {
	case "json":
		var err error
		data, err = s.ExportSnapshot()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to export")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	case "csv":
		if out == "" {
			if err := report.CSV(deps.Stdout, s.Entries(), s.Categories()); err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
				deps.Exit(1)
			}
			return
		}
		f, err := os.Create(out)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to create %s\n", out)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
		defer func() { _ = f.Close() }()
		if err := report.CSV(f, s.Entries(), s.Categories()); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n",
			len(s.Entries()), pluralize("entry", len(s.Entries())), out)
		return
	}

	if out == "" {
		_, _ = fmt.Fprintln(deps.Stdout, string(data))
		return
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write %s\n", out)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported snapshot to %s\n", out)
}
