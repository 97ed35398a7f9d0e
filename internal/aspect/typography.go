package aspect

import (
	"maps"
	"strconv"
)

// TypographyDefinition selects a font family plus size and weight variants
// from named scales. Size and Weight may also be plain numbers.
type TypographyDefinition struct {
	Family  string             `json:"family,omitempty"`
	Size    string             `json:"size,omitempty"`
	Weight  string             `json:"weight,omitempty"`
	Sizes   map[string]float64 `json:"sizes,omitempty"`
	Weights map[string]int     `json:"weights,omitempty"`
}

// ResolvedTypography is the resolved value of the typography aspect. In a
// state override only the fields that changed are set.
type ResolvedTypography struct {
	Family  string
	Size    float64
	Weight  int
	Sizes   map[string]float64
	Weights map[string]int
}

// Typography resolves font settings.
type Typography struct{}

// Name returns the aspect name.
func (Typography) Name() string { return TypographyName }

// DependsOn returns nil.
func (Typography) DependsOn() []string { return nil }

// Default returns a sans-serif face with a small set of size and weight
// variants.
func (Typography) Default() any {
	return TypographyDefinition{
		Family: "sans-serif",
		Size:   "medium",
		Weight: "regular",
		Sizes: map[string]float64{
			"small":  12,
			"medium": 14,
			"large":  18,
			"xLarge": 24,
		},
		Weights: map[string]int{
			"light":    300,
			"regular":  400,
			"semibold": 600,
			"bold":     700,
		},
	}
}

// Merge overlays non-empty fields; the variant scales merge by name.
func (Typography) Merge(base, over any) any {
	out := valueAs[TypographyDefinition](base)
	o, ok := over.(TypographyDefinition)
	if !ok {
		return out
	}
	if o.Family != "" {
		out.Family = o.Family
	}
	if o.Size != "" {
		out.Size = o.Size
	}
	if o.Weight != "" {
		out.Weight = o.Weight
	}
	if len(o.Sizes) > 0 {
		sizes := maps.Clone(out.Sizes)
		if sizes == nil {
			sizes = make(map[string]float64, len(o.Sizes))
		}
		maps.Copy(sizes, o.Sizes)
		out.Sizes = sizes
	}
	if len(o.Weights) > 0 {
		weights := maps.Clone(out.Weights)
		if weights == nil {
			weights = make(map[string]int, len(o.Weights))
		}
		maps.Copy(weights, o.Weights)
		out.Weights = weights
	}
	return out
}

// Resolve looks up the size and weight variants.
func (Typography) Resolve(ctx *Context, partial, full any) (any, bool) {
	def := valueAs[TypographyDefinition](full)
	out := ResolvedTypography{
		Family:  def.Family,
		Size:    lookupVariant(def.Sizes, def.Size, parseFloat),
		Weight:  lookupVariant(def.Weights, def.Weight, strconv.Atoi),
		Sizes:   def.Sizes,
		Weights: def.Weights,
	}
	if !ctx.IsPartial {
		return out, true
	}

	if _, ok := partial.(TypographyDefinition); !ok {
		return nil, false
	}
	prev := valueAs[ResolvedTypography](ctx.Parent[TypographyName])
	var diff ResolvedTypography
	if out.Family != prev.Family {
		diff.Family = out.Family
	}
	if out.Size != prev.Size {
		diff.Size = out.Size
	}
	if out.Weight != prev.Weight {
		diff.Weight = out.Weight
	}
	if diff.Family == "" && diff.Size == 0 && diff.Weight == 0 {
		return nil, false
	}
	return diff, true
}

// Properties returns fontFamily, fontSize and fontWeight for the fields set.
func (Typography) Properties(resolved any) map[string]any {
	t, ok := resolved.(ResolvedTypography)
	if !ok {
		return nil
	}
	props := make(map[string]any, 3)
	if t.Family != "" {
		props["fontFamily"] = t.Family
	}
	if t.Size > 0 {
		props["fontSize"] = t.Size
	}
	if t.Weight > 0 {
		props["fontWeight"] = t.Weight
	}
	return props
}

// Value answers "fontSize", "fontWeight" and "fontFamily". A modifier picks
// a named variant, e.g. ("fontSize", "large").
func (Typography) Value(resolved any, key, modifier string) (any, bool) {
	t, ok := resolved.(ResolvedTypography)
	if !ok {
		return nil, false
	}
	switch key {
	case "fontFamily":
		return t.Family, t.Family != ""
	case "fontSize":
		if modifier != "" {
			v, ok := t.Sizes[modifier]
			return v, ok
		}
		return t.Size, t.Size > 0
	case "fontWeight":
		if modifier != "" {
			v, ok := t.Weights[modifier]
			return v, ok
		}
		return t.Weight, t.Weight > 0
	}
	return nil, false
}

// lookupVariant returns scale[name], or name parsed as a number when it is
// not a variant.
func lookupVariant[T int | float64](scale map[string]T, name string, parse func(string) (T, error)) T {
	if v, ok := scale[name]; ok {
		return v
	}
	v, err := parse(name)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
