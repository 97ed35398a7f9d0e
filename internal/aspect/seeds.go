package aspect

import (
	"maps"
	"reflect"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Built-in aspect names.
const (
	SeedColorsName = "seedColors"
	PalettesName   = "palettes"
	ColorSetName   = "colorSet"
	TypographyName = "typography"
	ValuesName     = "values"
)

// Seeds maps palette roles to their seeds. It is both the definition and
// the resolved value of the seedColors aspect.
type Seeds map[string]palette.Seed

// SeedColors holds the seed colour for each palette role.
type SeedColors struct{}

// Name returns the aspect name.
func (SeedColors) Name() string { return SeedColorsName }

// DependsOn returns nil; seed colours depend on nothing.
func (SeedColors) DependsOn() []string { return nil }

// Default returns neutral fg, bg and accent seeds.
func (SeedColors) Default() any {
	return Seeds{
		palette.RoleForeground: {Color: "#000000"},
		palette.RoleBackground: {Color: "#ffffff"},
		palette.RoleAccent:     {Color: "#0078d4"},
	}
}

// Merge overlays seeds role by role.
func (SeedColors) Merge(base, over any) any {
	b, o := valueAs[Seeds](base), valueAs[Seeds](over)
	if len(o) == 0 {
		return b
	}

	out := make(Seeds, len(b)+len(o))
	maps.Copy(out, b)
	for role, seed := range o {
		out[role] = palette.MergeSeed(out[role], seed)
	}
	return out
}

// Resolve returns the merged seeds.
func (SeedColors) Resolve(ctx *Context, partial, full any) (any, bool) {
	seeds := valueAs[Seeds](full)
	if ctx.IsPartial {
		if len(valueAs[Seeds](partial)) == 0 {
			return nil, false
		}
		if prev, ok := ctx.Parent[SeedColorsName]; ok && reflect.DeepEqual(prev, any(seeds)) {
			return nil, false
		}
	}
	return seeds, true
}

// Commands returns the seed roles settable from an update string.
func (SeedColors) Commands() []string {
	return []string{palette.RoleForeground, palette.RoleBackground, palette.RoleAccent}
}

// ApplyUpdate replaces the seed colour for the role named by cmd. Colours
// that do not parse are ignored.
func (SeedColors) ApplyUpdate(cmd, param string, _ any) (any, bool) {
	c, ok := colour.Parse(param)
	if !ok {
		return nil, false
	}
	return Seeds{cmd: {Color: c.String()}}, true
}

// Palettes builds a palette for every seed.
type Palettes struct{}

// Name returns the aspect name.
func (Palettes) Name() string { return PalettesName }

// DependsOn returns the seedColors aspect.
func (Palettes) DependsOn() []string { return []string{SeedColorsName} }

// Default returns nil; palettes use the configured build options.
func (Palettes) Default() any { return (*palette.Options)(nil) }

// Merge lets a non-nil options override replace base.
func (Palettes) Merge(base, over any) any {
	if o := valueAs[*palette.Options](over); o != nil {
		opts := *o
		return &opts
	}
	return valueAs[*palette.Options](base)
}

// Resolve builds the palette set. The parent's set is reused when the seeds
// and options are unchanged.
func (Palettes) Resolve(ctx *Context, partial, full any) (any, bool) {
	own := valueAs[*palette.Options](partial)
	seedsValue, _ := ctx.Lookup(SeedColorsName)
	_, seedsChanged := ctx.Resolved[SeedColorsName]

	if ctx.IsPartial && !seedsChanged && own == nil {
		return nil, false
	}
	if !ctx.IsPartial && own == nil {
		if prev, ok := ctx.Parent[SeedColorsName]; ok && reflect.DeepEqual(prev, seedsValue) {
			if set, ok := ctx.Parent[PalettesName]; ok {
				return set, true
			}
		}
	}

	opts := ctx.Config.Palette
	if o := valueAs[*palette.Options](full); o != nil {
		opts = *o
	}
	return palette.BuildSet(valueAs[Seeds](seedsValue), opts), true
}
