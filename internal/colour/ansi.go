package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of the colour using 24-bit ANSI escapes.
func Preview(c Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rgba := c.RGBA()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgba.R, rgba.G, rgba.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText renders text centred on a block of the colour, choosing
// black or white text by contrast ratio.
func PreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := Black
	if ContrastRatio(White, c) > ContrastRatio(Black, c) {
		fg = White
	}

	rgba, fgRGBA := c.RGBA(), fg.RGBA()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgba.R, rgba.G, rgba.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgRGBA.R, fgRGBA.G, fgRGBA.B, ansiSuffix)

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg + fgSeq + display + ansiReset
}
