package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

// minContrastLargeText is the WCAG AA ratio for large text.
const minContrastLargeText = 3.0

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour> <colour>",
		Short: "Print the WCAG contrast ratio of two colours",
		Long: `Print the WCAG 2 contrast ratio between two colours and whether it meets
the AA and AAA thresholds.

Examples:
  tinctheme contrast black '#f3f2f1'
  tinctheme contrast 'rgb(0, 120, 212)' white`,
		Args: cobra.ExactArgs(2),
		RunE: runContrast,
	}
}

func runContrast(cmd *cobra.Command, args []string) error {
	a, ok := colour.Parse(args[0])
	if !ok {
		return fmt.Errorf("invalid colour %q", args[0])
	}
	b, ok := colour.Parse(args[1])
	if !ok {
		return fmt.Errorf("invalid colour %q", args[1])
	}

	ratio := colour.ContrastRatio(a, b)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s: %.2f:1\n", a, b, ratio)

	table := NewTable([]string{"LEVEL", "MINIMUM", "RESULT"})
	for _, level := range []struct {
		name string
		min  float64
	}{
		{"AA large text", minContrastLargeText},
		{"AA", colour.MinContrastAA},
		{"AAA", colour.MinContrastAAA},
	} {
		table.AddRow([]string{level.name, fmt.Sprintf("%.1f", level.min), passFail(ratio >= level.min)})
	}
	fmt.Fprint(out, table.Render())
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
