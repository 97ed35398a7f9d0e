package colourref

import (
	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Built-in transform names.
const (
	// TransformContrast picks the palette entry with the highest contrast
	// against the background.
	TransformContrast = "contrast"
	// TransformContrastClosest keeps the start shade when it already meets
	// the minimum contrast and otherwise behaves like TransformContrast.
	TransformContrastClosest = "contrast-closest"
	// TransformDeepen moves Shade steps along the background's palette.
	TransformDeepen = "deepen"
	// TransformSwap uses the background's switched palette at the
	// background's shade plus Shade.
	TransformSwap = "swap"
)

// DefaultTransforms returns the built-in transform table.
func DefaultTransforms() map[string]TransformFunc {
	return map[string]TransformFunc{
		TransformContrast:        contrastBest,
		TransformContrastClosest: contrastClosest,
		TransformDeepen:          deepen,
		TransformSwap:            swap,
	}
}

func contrastBest(r *Resolver, t Transform, bg Background) Key {
	return r.mostContrasting(t, bg, false)
}

func contrastClosest(r *Resolver, t Transform, bg Background) Key {
	return r.mostContrasting(t, bg, true)
}

func deepen(r *Resolver, t Transform, bg Background) Key {
	return r.absolute(Key{Palette: t.Palette, Shade: t.Shade, Kind: Offset}, bg)
}

func swap(r *Resolver, t Transform, bg Background) Key {
	return r.absolute(Key{Palette: t.Palette, Shade: t.Shade, Kind: SwitchedOffset}, bg)
}

// mostContrasting scans the target palette outward from the start shade
// within the allowed window, keeping the entry with the best contrast
// against the background. With closest set, a start shade that meets the
// minimum contrast is returned without scanning.
func (r *Resolver) mostContrasting(t Transform, bg Background, closest bool) Key {
	name := t.Palette
	if name == "" {
		name = palette.RoleForeground
	}
	p := r.Set[name]
	if len(p) == 0 {
		r.Logger.Debug("contrast target palette missing, using fallback", "palette", name)
		return FallbackKey
	}

	first, last := 0, len(p)-1
	if t.Range != nil {
		first = max(0, min(t.Range.First, last))
		last = max(first, min(t.Range.Last, len(p)-1))
	}
	start := max(first, min(t.Shade, last))

	bgColour := bg.Color
	if bgColour.IsZero() {
		bgColour = r.Lookup(bg.Key)
	}

	best, bestRatio := start, -1.0
	for i, idx := range ProbeOrder(start, first, last) {
		ratio := colour.ContrastRatio(p[idx], bgColour)
		if closest && i == 0 && ratio >= r.MinContrast {
			return Key{Palette: name, Shade: idx}
		}
		if ratio > bestRatio {
			best, bestRatio = idx, ratio
		}
	}
	return Key{Palette: name, Shade: best}
}

// ProbeOrder lists the shades in [first, last] in search order: start, then
// alternately one before, one after, two before, two after, and so on.
func ProbeOrder(start, first, last int) []int {
	if first > last || start < first || start > last {
		return nil
	}
	order := make([]int, 0, last-first+1)
	order = append(order, start)
	for d := 1; start-d >= first || start+d <= last; d++ {
		if start-d >= first {
			order = append(order, start-d)
		}
		if start+d <= last {
			order = append(order, start+d)
		}
	}
	return order
}
