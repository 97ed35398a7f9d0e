// Package swatch renders palettes as PNG swatch sheets.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

// Row is one labelled line of colour cells.
type Row struct {
	Label  string
	Colors []colour.Color
}

// Options controls swatch layout.
type Options struct {
	// CellWidth and CellHeight are the size of each colour cell in pixels.
	CellWidth  int
	CellHeight int

	// LabelWidth is the width reserved for row labels. Zero hides labels.
	LabelWidth int

	// ShowHex prints each cell's hex value inside it.
	ShowHex bool
}

// DefaultOptions returns the default swatch layout.
func DefaultOptions() Options {
	return Options{
		CellWidth:  72,
		CellHeight: 48,
		LabelWidth: 64,
		ShowHex:    true,
	}
}

// Render draws rows into an RGBA image.
func Render(rows []Row, opts Options) *image.RGBA {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r.Colors))
	}
	width := opts.LabelWidth + cols*opts.CellWidth
	height := len(rows) * opts.CellHeight

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for y, row := range rows {
		top := y * opts.CellHeight
		if opts.LabelWidth > 0 {
			drawText(img, face, row.Label, opts.LabelWidth, top, opts.CellHeight, 4, image.Black)
		}
		for x, c := range row.Colors {
			left := opts.LabelWidth + x*opts.CellWidth
			cell := image.Rect(left, top, left+opts.CellWidth, top+opts.CellHeight)
			draw.Draw(img, cell, image.NewUniform(toColor(c)), image.Point{}, draw.Src)

			if opts.ShowHex {
				ink := image.Black
				if colour.ContrastRatio(c, colour.White) > colour.ContrastRatio(c, colour.Black) {
					ink = image.White
				}
				drawText(img, face, c.Hex(), opts.CellWidth, top, opts.CellHeight, left+4, ink)
			}
		}
	}
	return img
}

// Encode renders rows and writes them as PNG.
func Encode(w io.Writer, rows []Row, opts Options) error {
	if err := png.Encode(w, Render(rows, opts)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

// WriteFile renders rows to a PNG file.
func WriteFile(path string, rows []Row, opts Options) error {
	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	if err := Encode(f, rows, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawText writes s vertically centred in a band of the given height,
// clipped to maxWidth pixels.
func drawText(dst draw.Image, face font.Face, s string, maxWidth, top, height, left int, ink image.Image) {
	d := &font.Drawer{Dst: dst, Src: ink, Face: face}
	metrics := face.Metrics()
	baseline := top + (height+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	d.Dot = fixed.P(left, baseline)
	d.DrawString(clipText(face, s, maxWidth-8))
}

// clipText drops trailing runes from s until it fits in width pixels.
func clipText(face font.Face, s string, width int) string {
	for s != "" && font.MeasureString(face, s).Ceil() > width {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

func toColor(c colour.Color) color.NRGBA {
	rgba := c.RGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(int(rgba.A) * 255 / 100)}
}
