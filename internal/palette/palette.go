// Package palette builds tonal palettes (shade arrays) from seed colours.
package palette

import (
	"math"
	"strings"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

// Palette is an ordered, fixed-length set of tonal variants indexed by shade.
type Palette []colour.Color

// Direction selects which lightness extreme sits at shade 0.
type Direction int

const (
	// DirectionAuto picks the direction from the seed's lightness and the
	// invert threshold: dark seeds start dark, light seeds start light.
	DirectionAuto Direction = iota
	// DirectionLightToDark puts the lightest bound at shade 0.
	DirectionLightToDark
	// DirectionDarkToLight puts the darkest bound at shade 0.
	DirectionDarkToLight
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case DirectionLightToDark:
		return "light-to-dark"
	case DirectionDarkToLight:
		return "dark-to-light"
	default:
		return "auto"
	}
}

// ParseDirection converts a string to a Direction, defaulting to auto.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "light-to-dark", "light":
		return DirectionLightToDark
	case "dark-to-light", "dark":
		return DirectionDarkToLight
	default:
		return DirectionAuto
	}
}

// controlPoints are the lightness values every palette passes through.
var controlPoints = []float64{0, 30, 50, 75, 100}

// MinCount is the smallest palette Build produces: one slot per control point.
var MinCount = len(controlPoints)

// Options controls palette generation.
type Options struct {
	// Count is the number of shades returned. Values below MinCount are
	// raised to MinCount.
	Count int

	// InvertThreshold is the HSL lightness (0-100) at or below which a seed
	// counts as dark for DirectionAuto.
	InvertThreshold float64

	Direction Direction

	// AnchorSeed rotates the palette so the seed is at shade 0.
	AnchorSeed bool

	// TonalOnly drops the pure lightness extremes from the result.
	TonalOnly bool
}

// DefaultOptions returns the options used for seed palettes.
func DefaultOptions() Options {
	return Options{
		Count:           9,
		InvertThreshold: 50,
		Direction:       DirectionAuto,
		AnchorSeed:      true,
	}
}

// Build generates a palette of opts.Count tonal variants of seed.
//
// Lightness runs between the extremes through the control points with linear
// spacing between them. The exact seed replaces the slot nearest to its own
// lightness (first match from shade 0 on ties). TonalOnly generates two extra
// slots and drops the extremes; the seed never lands on a dropped slot.
// AnchorSeed then rotates the result left so the seed is at shade 0.
func Build(seed colour.Color, opts Options) Palette {
	count := max(opts.Count, MinCount)
	n := count
	if opts.TonalOnly {
		n = count + 2
	}

	hsl := seed.HSL()
	ramp := lightnessRamp(n, startsLight(hsl.L, opts))

	slots := make(Palette, n)
	for i, l := range ramp {
		slots[i] = colour.FromHSL(hsl.H, hsl.S, l)
	}

	lo, hi := 0, n-1
	if opts.TonalOnly {
		lo, hi = 1, n-2
	}
	seedIdx := lo + nearest(ramp[lo:hi+1], hsl.L)
	slots[seedIdx] = seed

	if opts.TonalOnly {
		slots = slots[1 : n-1]
		seedIdx--
	}

	if opts.AnchorSeed && seedIdx != 0 {
		slots = rotate(slots, seedIdx)
	}
	return slots
}

// startsLight reports whether shade 0 is the lightest bound.
func startsLight(seedLightness float64, opts Options) bool {
	switch opts.Direction {
	case DirectionLightToDark:
		return true
	case DirectionDarkToLight:
		return false
	default:
		return seedLightness > opts.InvertThreshold
	}
}

// lightnessRamp returns n lightness values passing through every control
// point. Control point k sits at index round(k*(n-1)/(K-1)).
func lightnessRamp(n int, descending bool) []float64 {
	points := make([]float64, len(controlPoints))
	copy(points, controlPoints)
	if descending {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	ramp := make([]float64, n)
	ramp[0] = points[0]
	last := len(points) - 1
	prev := 0
	for k := 1; k <= last; k++ {
		idx := int(math.Round(float64(k*(n-1)) / float64(last)))
		span := idx - prev
		for i := prev + 1; i <= idx; i++ {
			t := float64(i-prev) / float64(span)
			ramp[i] = points[k-1] + (points[k]-points[k-1])*t
		}
		prev = idx
	}
	return ramp
}

// nearest returns the index of the value closest to target, first wins on ties.
func nearest(values []float64, target float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range values {
		if d := math.Abs(v - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// rotate returns a copy of p rotated left by k.
func rotate(p Palette, k int) Palette {
	out := make(Palette, 0, len(p))
	out = append(out, p[k:]...)
	return append(out, p[:k]...)
}

// FromColors builds a palette from an explicit list of colour strings.
// Unparseable entries become white.
func FromColors(colors []string) Palette {
	p := make(Palette, len(colors))
	for i, s := range colors {
		p[i] = colour.ParseOr(s, colour.White)
	}
	return p
}

// Index returns the index of the first entry equal to c, or -1.
func (p Palette) Index(c colour.Color) int {
	for i, entry := range p {
		if entry.Equal(c) {
			return i
		}
	}
	return -1
}

// Hex returns the canonical strings of every shade.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}

// Wrap maps shade into [0, n) with modulo arithmetic. Negative shades wrap
// from the end.
func Wrap(shade, n int) int {
	if n <= 0 {
		return 0
	}
	return ((shade % n) + n) % n
}
