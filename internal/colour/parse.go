package colour

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses a CSS-like colour string: a named colour, "transparent",
// #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() or hsla().
// Unrecognised input returns false rather than an error so callers can fall
// back to a default.
func Parse(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case s == "":
		return Color{}, false
	case s == "transparent":
		return FromRGBA(0, 0, 0, 0), true
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	}

	if named, ok := colornames.Map[s]; ok {
		return FromRGBA(named.R, named.G, named.B, 100), true
	}
	return Color{}, false
}

// MustParse parses s and panics if it is not a colour. Intended for
// package-level constants.
func MustParse(s string) Color {
	c, ok := Parse(s)
	if !ok {
		panic("colour: invalid colour " + strconv.Quote(s))
	}
	return c
}

// ParseOr parses s, returning fallback when s is not a colour.
func ParseOr(s string, fallback Color) Color {
	if c, ok := Parse(s); ok {
		return c
	}
	return fallback
}

// parseHex parses the digits of a hex colour without the leading '#'.
func parseHex(hex string) (Color, bool) {
	// Expand shorthand format (RGB -> RRGGBB, RGBA -> RRGGBBAA).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(hex); i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		channels = append(channels, uint8(v))
	}

	alpha := uint8(100)
	if len(channels) == 4 {
		alpha = uint8(math.Round(float64(channels[3]) * 100 / 255))
	}
	return FromRGBA(channels[0], channels[1], channels[2], alpha), true
}

// functionArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments.
func functionArgs(s string, names ...string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}

	name := strings.TrimSpace(s[:open])
	known := false
	for _, n := range names {
		if name == n {
			known = true
			break
		}
	}
	if !known {
		return nil, false
	}

	body := s[open+1 : len(s)-1]
	args := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(args) != 3 && len(args) != 4 {
		return nil, false
	}
	return args, true
}

// parseRGBFunc parses rgb() and rgba().
func parseRGBFunc(s string) (Color, bool) {
	args, ok := functionArgs(s, "rgb", "rgba")
	if !ok {
		return Color{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(args[i])
		if !ok {
			return Color{}, false
		}
		channels[i] = v
	}

	alpha := uint8(100)
	if len(args) == 4 {
		a, ok := parseAlpha(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	return FromRGBA(channels[0], channels[1], channels[2], alpha), true
}

// parseHSLFunc parses hsl() and hsla(). Saturation and lightness are
// percentages with or without the '%' sign.
func parseHSLFunc(s string) (Color, bool) {
	args, ok := functionArgs(s, "hsl", "hsla")
	if !ok {
		return Color{}, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, false
	}
	sat, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil || sat < 0 || sat > 100 {
		return Color{}, false
	}
	light, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil || light < 0 || light > 100 {
		return Color{}, false
	}

	c := FromHSL(h, sat, light)
	if len(args) == 4 {
		a, ok := parseAlpha(args[3])
		if !ok {
			return Color{}, false
		}
		rgba := c.RGBA()
		c = FromRGBA(rgba.R, rgba.G, rgba.B, a)
	}
	return c, true
}

// parseChannel parses an rgb() channel: 0-255 or a percentage.
func parseChannel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || v < 0 || v > 100 {
			return 0, false
		}
		return uint8(math.Round(v * 255 / 100)), true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(math.Round(v)), true
}

// parseAlpha parses an alpha component (0-1 or a percentage) into 0-100.
func parseAlpha(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || v < 0 || v > 100 {
			return 0, false
		}
		return uint8(math.Round(v)), true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, false
	}
	return uint8(math.Round(v * 100)), true
}
