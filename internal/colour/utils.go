package colour

import "math"

// MinContrastAA is the WCAG AA contrast minimum for normal text.
const MinContrastAA = 4.5

// MinContrastAAA is the WCAG AAA contrast minimum for normal text.
const MinContrastAAA = 7.0

// relativeLuminance calculates the relative luminance according to WCAG 2.0.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func relativeLuminance(c RGBA) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Color) float64 {
	l1 := c1.Luminance()
	l2 := c2.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// WithLightness returns the colour with its HSL lightness replaced, keeping
// hue and saturation. Alpha is dropped.
func WithLightness(c Color, lightness float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H, hsl.S, lightness)
}
