package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/theme"
)

type styleFlags struct {
	theme   string
	update  string
	state   string
	format  *enumValue
	preview bool
}

func newStyleCmd() *cobra.Command {
	flags := styleFlags{format: newEnumValue("table", "table", "json")}

	cmd := &cobra.Command{
		Use:   "style [name]",
		Short: "Resolve a style to its properties",
		Long: `Resolve a style in a theme and print its properties.

Without a name the theme's default style is shown. Unknown style and theme
names fall back to the defaults. An update string derives a new theme from
the selected one before resolving.

Update commands:
  fg:<colour> bg:<colour> accent:<colour>   replace a seed colour
  type:<palette>                             move the background to a palette
  type:switch                                switch the background between bg and accent palettes
  deepen:<n>                                 shift the background shade by n
  shade:<n>                                  set the background shade to n
  theme:<name>                               use a registered theme

Examples:
  # Default style of the default theme
  tinctheme style

  # Primary buttons in the dark theme while hovered
  tinctheme style primaryButton --theme dark --state hover

  # Derive a theme with a new accent and a deeper background
  tinctheme style card --update 'accent:#c50f1f deepen:2' --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := theme.DefaultStyle
			if len(args) == 1 {
				name = args[0]
			}
			return runStyle(cmd, name, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.theme, "theme", "t", theme.DefaultTheme, "theme to resolve the style in")
	cmd.Flags().StringVarP(&flags.update, "update", "u", "", "update string applied to the theme")
	cmd.Flags().StringVarP(&flags.state, "state", "s", "", "apply a state override (hover, press, ...)")
	cmd.Flags().VarP(flags.format, "format", "f", "output format (table, json)")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

func runStyle(cmd *cobra.Command, name string, flags styleFlags) error {
	reg := newThemeRegistry(cmd)
	logger := newLogger(cmd)

	t := reg.GetTheme(flags.theme)
	if flags.update != "" {
		t = reg.ThemeFromUpdateString(flags.update, t)
	}
	style := t.Style(name)
	if style.Name() != name {
		logger.Warn("unknown style, using default", "style", name)
	}

	props := style.Properties()
	if flags.state != "" {
		if !slices.Contains(style.States(), flags.state) {
			logger.Warn("state changes nothing", "style", style.Name(), "state", flags.state)
		}
		props = style.StateProperties(flags.state)
	}

	out := cmd.OutOrStdout()
	switch flags.format.String() {
	case "json":
		doc := struct {
			Style      string                    `json:"style"`
			Theme      string                    `json:"theme,omitempty"`
			State      string                    `json:"state,omitempty"`
			Properties map[string]any            `json:"properties"`
			Selectors  map[string]map[string]any `json:"selectors,omitempty"`
		}{
			Style:      style.Name(),
			Theme:      t.Name(),
			State:      flags.state,
			Properties: props,
			Selectors:  style.Selectors(),
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal style: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "table":
		preview := previewEnabled(flags.preview, out)
		headers := []string{"PROPERTY", "VALUE"}
		if preview {
			headers = append(headers, "PREVIEW")
		}
		table := NewTable(headers)
		for _, key := range slices.Sorted(maps.Keys(props)) {
			value := fmt.Sprint(props[key])
			row := []string{key, value}
			if preview {
				row = append(row, propertyPreview(key, value))
			}
			table.AddRow(row)
		}
		fmt.Fprint(out, table.Render())
		if states := style.States(); len(states) > 0 && flags.state == "" {
			fmt.Fprintf(out, "\nstates: %s\n", strings.Join(states, ", "))
		}
	default:
		return fmt.Errorf("unknown format %q (want table or json)", flags.format.String())
	}
	return nil
}

// propertyPreview renders a swatch for colour-valued properties.
func propertyPreview(key, value string) string {
	if !strings.HasSuffix(key, "Color") {
		return ""
	}
	c, ok := colour.Parse(value)
	if !ok {
		return ""
	}
	return colour.Preview(c, 6)
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List registered themes",
		Long:  `List the registered themes with their parent and named styles.`,
		Args:  cobra.NoArgs,
		RunE:  runThemes,
	}
}

func runThemes(cmd *cobra.Command, _ []string) error {
	reg := newThemeRegistry(cmd)

	table := NewTable([]string{"NAME", "PARENT", "STYLES"})
	for _, name := range reg.ThemeNames() {
		t := reg.GetTheme(name)
		parent := t.Parent()
		if parent == "" {
			parent = "-"
		}
		table.AddRow([]string{name, parent, strings.Join(t.StyleNames(), ", ")})
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
