package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/palette"
	"github.com/jmylchreest/tinctheme/internal/swatch"
)

type paletteFlags struct {
	count           int
	anchor          bool
	tonal           bool
	invertThreshold float64
	direction       *enumValue
	format          *enumValue
	preview         bool
	png             string
}

func newPaletteCmd() *cobra.Command {
	defaults := palette.DefaultOptions()
	flags := paletteFlags{
		direction: newEnumValue("auto", "auto", "light-to-dark", "dark-to-light", "light", "dark"),
		format:    newEnumValue("table", "table", "hex", "json"),
	}

	cmd := &cobra.Command{
		Use:   "palette <seed>",
		Short: "Build a tonal palette from a seed colour",
		Long: `Build a palette of tonal variants from one seed colour.

Shade 0 and the last shade are the lightness extremes. The seed replaces the
shade closest to its own lightness, and by default the palette is rotated so
the seed sits at shade 0.

Examples:
  # Nine shades of an accent colour
  tinctheme palette '#0078d4'

  # Five shades without the pure extremes, as JSON
  tinctheme palette --count 5 --tonal --format json tomato

  # Write a PNG swatch
  tinctheme palette --png accent.png 'hsl(206, 100%, 42%)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "c", defaults.Count, "number of shades (minimum 5)")
	cmd.Flags().BoolVar(&flags.anchor, "anchor", defaults.AnchorSeed, "rotate the palette so the seed is shade 0")
	cmd.Flags().BoolVar(&flags.tonal, "tonal", false, "drop the pure lightness extremes")
	cmd.Flags().Float64Var(&flags.invertThreshold, "invert-threshold", defaults.InvertThreshold, "HSL lightness at or below which a seed counts as dark")
	cmd.Flags().VarP(flags.direction, "direction", "d", "shade direction (auto, light-to-dark, dark-to-light)")
	cmd.Flags().VarP(flags.format, "format", "f", "output format (table, hex, json)")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show colour previews in terminal")
	cmd.Flags().StringVar(&flags.png, "png", "", "also write a PNG swatch to this file")

	return cmd
}

func runPalette(cmd *cobra.Command, seedArg string, flags paletteFlags) error {
	logger := newLogger(cmd)

	seed, ok := colour.Parse(seedArg)
	if !ok {
		return fmt.Errorf("invalid seed colour %q", seedArg)
	}

	opts := palette.Options{
		Count:           flags.count,
		InvertThreshold: flags.invertThreshold,
		Direction:       palette.ParseDirection(flags.direction.String()),
		AnchorSeed:      flags.anchor,
		TonalOnly:       flags.tonal,
	}
	if opts.Count < palette.MinCount {
		logger.Warn("count raised to minimum", "requested", opts.Count, "count", palette.MinCount)
	}

	p := palette.Build(seed, opts)
	logger.Debug("built palette", "seed", seed.String(), "count", len(p), "direction", opts.Direction.String())

	if flags.png != "" {
		rows := []swatch.Row{{Label: seed.Hex(), Colors: p}}
		if err := swatch.WriteFile(flags.png, rows, swatch.DefaultOptions()); err != nil {
			return fmt.Errorf("failed to write swatch: %w", err)
		}
		logger.Info("wrote swatch", "path", flags.png)
	}

	out := cmd.OutOrStdout()
	switch flags.format.String() {
	case "json":
		data, err := json.MarshalIndent(p.Hex(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "hex":
		for _, h := range p.Hex() {
			fmt.Fprintln(out, h)
		}
	case "table":
		preview := previewEnabled(flags.preview, out)
		headers := []string{"SHADE", "HEX", "HSL", "LUMINANCE"}
		if preview {
			headers = append(headers, "PREVIEW")
		}
		table := NewTable(headers)
		seedIdx := p.Index(seed)
		for i, c := range p {
			hsl := c.HSL()
			shade := strconv.Itoa(i)
			if i == seedIdx {
				shade += "*"
			}
			row := []string{
				shade,
				c.String(),
				fmt.Sprintf("%.0f, %.0f%%, %.0f%%", hsl.H, hsl.S, hsl.L),
				fmt.Sprintf("%.3f", c.Luminance()),
			}
			if preview {
				row = append(row, colour.Preview(c, 8))
			}
			table.AddRow(row)
		}
		fmt.Fprint(out, table.Render())
	default:
		return fmt.Errorf("unknown format %q (want table, hex or json)", flags.format.String())
	}
	return nil
}
