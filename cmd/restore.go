package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"leadlog/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore entries from a backup",
	Long: `Restore the entries document from one of its backups.

Backups are created automatically before import, reset and archive.
Without an argument the available backups are listed. With a backup
number the entries are restored from that backup; the current state is
backed up first.

Examples:
  leadlog restore      # list backups
  leadlog restore 1    # restore the most recent backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRestore(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(args []string) {
	dir := deps.Config.DataDir
	if dir == "" {
		var err error
		dir, err = storage.DataDir()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot determine data directory")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	}
	docPath := filepath.Join(dir, storage.DocEntries)

	if len(args) == 0 {
		backups := storage.ListBackups(docPath)
		if len(backups) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "No backups found")
			return
		}
		for _, b := range backups {
			info, err := os.Stat(b.Path)
			if err != nil {
				continue
			}
			_, _ = fmt.Fprintf(deps.Stdout, "[%d] %s (%d bytes)\n",
				b.Number, info.ModTime().Format("Jan 2, 2006 15:04"), info.Size())
		}
		_, _ = fmt.Fprintln(deps.Stdout, "Restore one with 'leadlog restore N'")
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number %q\n", args[0])
		deps.Exit(1)
		return
	}

	if err := storage.RestoreBackup(docPath, n); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Restore failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored entries from backup %d\n", n)
}
