package theme

import (
	"maps"

	"github.com/jmylchreest/tinctheme/internal/aspect"
)

// DefaultStyle is the name of every theme's root style.
const DefaultStyle = "default"

// Definition is a partial, inheritable style definition.
type Definition struct {
	// Parent names the style this one inherits from. Empty means the
	// theme's default style.
	Parent string `json:"parent,omitempty"`

	// Aspects holds a partial definition per aspect name.
	Aspects map[string]any `json:"aspects,omitempty"`

	// States holds sparse per-aspect overrides per interaction state
	// ("hover", "press", ...).
	States map[string]map[string]any `json:"states,omitempty"`
}

// ThemeDefinition describes a theme: a default style plus named styles,
// optionally inheriting from a parent theme.
type ThemeDefinition struct {
	Parent  string                `json:"parent,omitempty"`
	Default Definition            `json:"default"`
	Styles  map[string]Definition `json:"styles,omitempty"`
}

// mergeDefinition overlays over onto base. Neither input is modified.
func mergeDefinition(reg *aspect.Registry, base, over Definition) Definition {
	out := Definition{
		Parent:  base.Parent,
		Aspects: aspect.MergeDefinitions(reg, base.Aspects, over.Aspects),
		States:  mergeStates(reg, base.States, over.States),
	}
	if over.Parent != "" {
		out.Parent = over.Parent
	}
	return out
}

func mergeStates(reg *aspect.Registry, base, over map[string]map[string]any) map[string]map[string]any {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]map[string]any, len(base)+len(over))
	maps.Copy(out, base)
	for state, def := range over {
		out[state] = aspect.MergeDefinitions(reg, out[state], def)
	}
	return out
}

// mergeThemeDefinition overlays a child theme onto its parent's effective
// definition.
func mergeThemeDefinition(reg *aspect.Registry, base, over ThemeDefinition) ThemeDefinition {
	out := ThemeDefinition{
		Parent:  over.Parent,
		Default: mergeDefinition(reg, base.Default, over.Default),
		Styles:  base.Styles,
	}
	if len(over.Styles) > 0 {
		out.Styles = make(map[string]Definition, len(base.Styles)+len(over.Styles))
		maps.Copy(out.Styles, base.Styles)
		for name, def := range over.Styles {
			out.Styles[name] = mergeDefinition(reg, out.Styles[name], def)
		}
	}
	return out
}
