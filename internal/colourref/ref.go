// Package colourref resolves symbolic colour references against a palette
// set and a background colour.
package colourref

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Kind says how a Key relates to the background it is resolved against.
type Kind int

const (
	// Absolute keys name a palette and shade directly.
	Absolute Kind = iota
	// Switched keys use the background's switched palette (bg <-> accent).
	Switched
	// Offset keys add the background's shade to their own.
	Offset
	// SwitchedOffset combines Switched and Offset.
	SwitchedOffset
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Switched:
		return "switched"
	case Offset:
		return "offset"
	case SwitchedOffset:
		return "switched-offset"
	default:
		return "absolute"
	}
}

// Key addresses a shade in a named palette. An empty Palette means the
// background's palette.
type Key struct {
	Palette string `json:"palette,omitempty"`
	Shade   int    `json:"shade"`
	Kind    Kind   `json:"kind,omitempty"`
}

// String renders the key as "palette:shade" with "~" for switched and "+"
// for offset kinds.
func (k Key) String() string {
	var b strings.Builder
	if k.Kind == Switched || k.Kind == SwitchedOffset {
		b.WriteByte('~')
	}
	b.WriteString(k.Palette)
	b.WriteByte(':')
	if k.Kind == Offset || k.Kind == SwitchedOffset {
		fmt.Fprintf(&b, "%+d", k.Shade)
	} else {
		fmt.Fprintf(&b, "%d", k.Shade)
	}
	return b.String()
}

// FallbackKey is where every failed reference ends up.
var FallbackKey = Key{Palette: palette.RoleBackground, Shade: 0}

// Range limits a transform's search to shades First..Last inclusive.
type Range struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Transform invokes a named, table-driven colour function with up to two
// parameters: a palette and a shade.
type Transform struct {
	Name    string `json:"name"`
	Palette string `json:"palette,omitempty"`
	Shade   int    `json:"shade,omitempty"`
	Range   *Range `json:"range,omitempty"`
}

// Ref is a serialisable colour reference. Exactly one of Literal, Key or
// Transform is set; the zero Ref resolves to the fallback key.
type Ref struct {
	Literal   string     `json:"literal,omitempty"`
	Key       *Key       `json:"key,omitempty"`
	Transform *Transform `json:"transform,omitempty"`
}

// Literal references a colour string.
func Literal(s string) Ref {
	return Ref{Literal: s}
}

// Shade references an absolute palette shade.
func Shade(paletteName string, shade int) Ref {
	return Ref{Key: &Key{Palette: paletteName, Shade: shade}}
}

// Relative references the background's palette at its shade plus offset.
func Relative(offset int) Ref {
	return Ref{Key: &Key{Shade: offset, Kind: Offset}}
}

// Switch references the background's switched palette at an absolute shade.
func Switch(shade int) Ref {
	return Ref{Key: &Key{Shade: shade, Kind: Switched}}
}

// SwitchRelative references the background's switched palette at the
// background's shade plus offset.
func SwitchRelative(offset int) Ref {
	return Ref{Key: &Key{Shade: offset, Kind: SwitchedOffset}}
}

// Apply references a named transform.
func Apply(name, paletteName string, shade int) Ref {
	return Ref{Transform: &Transform{Name: name, Palette: paletteName, Shade: shade}}
}

// Contrast references the entry of paletteName that contrasts best with the
// background, searching from shade start.
func Contrast(paletteName string, start int) Ref {
	return Apply(TransformContrast, paletteName, start)
}

// IsZero reports whether no reference is set.
func (r Ref) IsZero() bool {
	return r.Literal == "" && r.Key == nil && r.Transform == nil
}

// String returns a readable description of the reference.
func (r Ref) String() string {
	switch {
	case r.Literal != "":
		return r.Literal
	case r.Key != nil:
		return r.Key.String()
	case r.Transform != nil:
		return fmt.Sprintf("%s(%s, %d)", r.Transform.Name, r.Transform.Palette, r.Transform.Shade)
	default:
		return "<none>"
	}
}

// SwitchPalette flips between the "bg" and "accent" namespaces. Any other
// palette switches to "accent".
func SwitchPalette(name string) string {
	if name == palette.RoleAccent {
		return palette.RoleBackground
	}
	return palette.RoleAccent
}
