// Package colour provides the colour value used by tinctheme, with parsing,
// colour-space conversion and WCAG contrast calculations.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is the primary representation of a colour.
// R, G and B are 0-255; A is an opacity percentage 0-100.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSSRgba returns the colour as "rgba(r, g, b, a)" with alpha in 0-1.
func (c RGBA) CSSRgba() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(float64(c.A)/100.0, 'f', -1, 64))
}

// canonical is the string form stored on every Color.
func (c RGBA) canonical() string {
	if c.A >= 100 {
		return c.Hex()
	}
	return c.CSSRgba()
}

// HSV holds hue in degrees [0, 360) and saturation/value as percentages 0-100.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL holds hue in degrees [0, 360) and saturation/lightness as percentages 0-100.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// derived holds representations computed on first use. Copies of a Color
// share the same slots, so each is computed at most once per value.
type derived struct {
	hsvOnce sync.Once
	hsv     HSV

	hslOnce sync.Once
	hsl     HSL

	lumOnce   sync.Once
	luminance float64
}

// Color is an immutable colour value. The zero Color is "no colour".
type Color struct {
	rgba  RGBA
	str   string
	cache *derived
}

// Common colours.
var (
	White = FromRGBA(255, 255, 255, 100)
	Black = FromRGBA(0, 0, 0, 100)
)

// FromRGBA creates a colour from 8-bit channels and an alpha percentage.
// Alpha values above 100 are clamped.
func FromRGBA(r, g, b, a uint8) Color {
	if a > 100 {
		a = 100
	}
	rgba := RGBA{R: r, G: g, B: b, A: a}
	return Color{rgba: rgba, str: rgba.canonical(), cache: &derived{}}
}

// FromHSL creates an opaque colour from hue in degrees and saturation and
// lightness percentages.
func FromHSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(NormaliseHue(h), clampUnit(s/100), clampUnit(l/100)))
}

// FromHSV creates an opaque colour from hue in degrees and saturation and
// value percentages.
func FromHSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(NormaliseHue(h), clampUnit(s/100), clampUnit(v/100)))
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return FromRGBA(r, g, b, 100)
}

// IsZero reports whether c is the "no colour" value.
func (c Color) IsZero() bool {
	return c.cache == nil
}

// RGBA returns the primary representation.
func (c Color) RGBA() RGBA {
	return c.rgba
}

// String returns the canonical form: "#rrggbb" when opaque, otherwise
// "rgba(r, g, b, a)".
func (c Color) String() string {
	return c.str
}

// Hex returns "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.rgba.Hex()
}

// Equal compares colours by RGBA only.
func (c Color) Equal(other Color) bool {
	return c.rgba == other.rgba
}

// HSV returns the HSV representation, computing it on first use.
func (c Color) HSV() HSV {
	if c.cache == nil {
		return c.computeHSV()
	}
	c.cache.hsvOnce.Do(func() {
		c.cache.hsv = c.computeHSV()
	})
	return c.cache.hsv
}

// HSL returns the HSL representation, computing it on first use.
func (c Color) HSL() HSL {
	if c.cache == nil {
		return c.computeHSL()
	}
	c.cache.hslOnce.Do(func() {
		c.cache.hsl = c.computeHSL()
	})
	return c.cache.hsl
}

// Luminance returns the WCAG relative luminance (0 darkest, 1 lightest),
// computing it on first use.
func (c Color) Luminance() float64 {
	if c.cache == nil {
		return relativeLuminance(c.rgba)
	}
	c.cache.lumOnce.Do(func() {
		c.cache.luminance = relativeLuminance(c.rgba)
	})
	return c.cache.luminance
}

// IsLight reports whether the colour's HSL lightness is above 50%.
func (c Color) IsLight() bool {
	return c.HSL().L > 50
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgba.R) / 255.0,
		G: float64(c.rgba.G) / 255.0,
		B: float64(c.rgba.B) / 255.0,
	}
}

func (c Color) computeHSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: NormaliseHue(h), S: s * 100, V: v * 100}
}

func (c Color) computeHSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: NormaliseHue(h), S: s * 100, L: l * 100}
}

// NormaliseHue maps any hue in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
