// Package cli provides the command-line interface for tinctheme.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tinctheme/internal/theme"
	"github.com/jmylchreest/tinctheme/internal/version"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tinctheme",
		Short: "Derive palettes and resolved styles from seed colours",
		Long: `tinctheme derives tonal palettes from seed colours and resolves theme
definitions into concrete style properties.

Styles inherit from each other, reference palette shades relative to their
background, and carry sparse overrides for states such as hover and press.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newStyleCmd())
	rootCmd.AddCommand(newThemesCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger builds a stderr logger from the global flags. TINCTHEME_LOG_LEVEL
// sets the level when neither --verbose nor --quiet is given.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if v := os.Getenv("TINCTHEME_LOG_LEVEL"); v != "" {
		level = hclog.LevelFromString(v)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tinctheme",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// newThemeRegistry returns a registry holding the built-in themes.
func newThemeRegistry(cmd *cobra.Command) *theme.Registry {
	reg := theme.NewBuilder().
		WithLogger(newLogger(cmd)).
		WithEnvConfig().
		Build()
	reg.Init()
	return reg
}

// previewEnabled reports whether colour previews should be written to w.
// Previews are suppressed when w is not a terminal.
func previewEnabled(requested bool, w io.Writer) bool {
	if !requested {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
