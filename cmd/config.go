package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leadlog/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Long: `Write a commented sample config file to the config directory.

Fails if a config file already exists.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func showConfig() {
	path, err := config.GetConfigPath()
	if err != nil {
		path = "(unknown)"
	}

	dataDir := deps.Config.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:    %s\n", path)
	_, _ = fmt.Fprintf(deps.Stdout, "Data dir:       %s\n", dataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "Log level:      %s\n", deps.Config.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "Default remind: %s\n", deps.Config.DefaultRemind)
}

func initConfig() {
	path, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot determine config path")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists at %s\n", path)
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(path, []byte(config.GenerateSampleConfig()), 0o644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote sample config to %s\n", path)
}
