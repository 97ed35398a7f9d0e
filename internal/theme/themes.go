package theme

import (
	"github.com/jmylchreest/tinctheme/internal/aspect"
	"github.com/jmylchreest/tinctheme/internal/colourref"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Built-in theme names.
const (
	DefaultTheme = "default"
	DarkTheme    = "dark"
)

var builtinThemes = map[string]func() ThemeDefinition{
	DefaultTheme: defaultTheme,
	DarkTheme:    darkTheme,
}

// interactive returns hover and press states that deepen the background.
func interactive() map[string]map[string]any {
	return map[string]map[string]any{
		"hover": {aspect.ColorSetName: aspect.Slots{aspect.SlotBackground: colourref.Relative(1)}},
		"press": {aspect.ColorSetName: aspect.Slots{aspect.SlotBackground: colourref.Relative(2)}},
	}
}

func defaultTheme() ThemeDefinition {
	return ThemeDefinition{
		Default: Definition{
			Aspects: map[string]any{
				aspect.SeedColorsName: aspect.Seeds{
					palette.RoleForeground: {Color: "#000000"},
					palette.RoleBackground: {Color: "#f3f2f1"},
					palette.RoleAccent:     {Color: "#0078d4"},
				},
				aspect.ColorSetName: aspect.Slots{
					aspect.SlotBackground: colourref.Shade(palette.RoleBackground, 0),
					aspect.SlotColor:      colourref.Contrast(palette.RoleForeground, 0),
					aspect.SlotBorder:     colourref.Relative(3),
					aspect.SlotLink:       colourref.Apply(colourref.TransformContrastClosest, palette.RoleAccent, 0),
				},
				aspect.TypographyName: aspect.TypographyDefinition{
					Family: "Segoe UI, Helvetica Neue, sans-serif",
				},
				aspect.ValuesName: map[string]any{
					"borderWidth":   1,
					"borderRadius":  2,
					"padding":       8,
					"padding-small": 4,
					"padding-large": 16,
				},
			},
		},
		Styles: map[string]Definition{
			"button": {
				Aspects: map[string]any{
					aspect.ColorSetName: aspect.Slots{aspect.SlotBackground: colourref.Relative(2)},
				},
				States: interactive(),
			},
			"primaryButton": {
				Aspects: map[string]any{
					aspect.ColorSetName: aspect.Slots{aspect.SlotBackground: colourref.Switch(0)},
				},
				States: interactive(),
			},
			"themedButton": {
				Parent: "primaryButton",
			},
			"card": {
				Aspects: map[string]any{
					aspect.ColorSetName: aspect.Slots{aspect.SlotBorder: colourref.Relative(1)},
					aspect.ValuesName: map[string]any{
						"borderRadius": 4,
						"padding":      16,
					},
				},
			},
			"header": {
				Aspects: map[string]any{
					aspect.ColorSetName:   aspect.Slots{aspect.SlotBackground: colourref.Switch(0)},
					aspect.TypographyName: aspect.TypographyDefinition{Size: "large", Weight: "semibold"},
				},
			},
		},
	}
}

func darkTheme() ThemeDefinition {
	return ThemeDefinition{
		Parent: DefaultTheme,
		Default: Definition{
			Aspects: map[string]any{
				aspect.SeedColorsName: aspect.Seeds{
					palette.RoleForeground: {Color: "#ffffff"},
					palette.RoleBackground: {Color: "#201f1e"},
					palette.RoleAccent:     {Color: "#2b88d8"},
				},
			},
		},
	}
}
