package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leadlog/internal/model"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the colour theme",
	Long: `Show the current colour theme, or set it to light, dark or rainbow.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTheme(args)
	},
}

// durationCmd represents the duration settings command
var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Show or set coaching duration settings",
	Long: `Show or set the duration choices offered when logging an entry.

The choices run from the increment up to the maximum, in increment
steps. For example --max 60 --increment 15 offers 15, 30, 45 and 60.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDuration(cmd)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(durationCmd)

	durationCmd.Flags().Int("max", 0, "Longest duration in minutes")
	durationCmd.Flags().Int("increment", 0, "Step between choices in minutes")
}

func runTheme(args []string) {
	s := openStore()
	if s == nil {
		return
	}

	if len(args) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Current theme: %s\n", s.Theme().DisplayName())
		return
	}

	theme := model.Theme(strings.ToLower(args[0]))
	if err := s.SetTheme(theme); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown theme %q\n", args[0])
		_, _ = fmt.Fprintf(deps.Stderr, "Valid themes: %s, %s, %s\n",
			model.ThemeLight, model.ThemeDark, model.ThemeRainbow)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Theme set to %s\n", theme.DisplayName())
}

func runDuration(cmd *cobra.Command) {
	s := openStore()
	if s == nil {
		return
	}

	ds := s.DurationSettings()

	if !cmd.Flags().Changed("max") && !cmd.Flags().Changed("increment") {
		opts := make([]string, 0, len(ds.Options()))
		for _, o := range ds.Options() {
			opts = append(opts, fmt.Sprintf("%d", o))
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Max: %d min, increment: %d min\n", ds.Max, ds.Increment)
		_, _ = fmt.Fprintf(deps.Stdout, "Choices: %s\n", strings.Join(opts, ", "))
		return
	}

	if cmd.Flags().Changed("max") {
		ds.Max, _ = cmd.Flags().GetInt("max")
	}
	if cmd.Flags().Changed("increment") {
		ds.Increment, _ = cmd.Flags().GetInt("increment")
	}

	if err := s.SetDurationSettings(ds); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid duration settings")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Both values must be positive and the increment at most the max")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Duration settings updated: max %d min, increment %d min\n",
		ds.Max, ds.Increment)
}
