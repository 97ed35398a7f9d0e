package palette

import (
	"maps"
	"slices"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

// Standard seed roles.
const (
	RoleForeground = "fg"
	RoleBackground = "bg"
	RoleAccent     = "accent"
)

// Seed describes how one role's palette is produced: either generated from
// a single Color or taken verbatim from Colors.
type Seed struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`

	// Options overrides the set-wide defaults when non-nil.
	Options *Options `json:"options,omitempty"`
}

// MergeSeed overlays over onto base. Setting Color clears an explicit
// Colors array and vice versa.
func MergeSeed(base, over Seed) Seed {
	out := base
	switch {
	case over.Color != "":
		out.Color = over.Color
		out.Colors = nil
	case over.Colors != nil:
		out.Colors = slices.Clone(over.Colors)
		out.Color = ""
	}
	if over.Options != nil {
		opts := *over.Options
		out.Options = &opts
	}
	return out
}

// Build produces the palette for this seed.
func (s Seed) Build(defaults Options) Palette {
	if len(s.Colors) > 0 {
		return FromColors(s.Colors)
	}
	opts := defaults
	if s.Options != nil {
		opts = *s.Options
	}
	return Build(colour.ParseOr(s.Color, colour.White), opts)
}

// Set maps role names ("fg", "bg", "accent", ...) to palettes.
type Set map[string]Palette

// BuildSet builds a palette for every seed.
func BuildSet(seeds map[string]Seed, defaults Options) Set {
	set := make(Set, len(seeds))
	for role, seed := range seeds {
		set[role] = seed.Build(defaults)
	}
	return set
}

// Has reports whether the set holds a non-empty palette for name.
func (s Set) Has(name string) bool {
	return len(s[name]) > 0
}

// Lookup returns the colour at shade in the named palette, wrapping the shade
// modulo the palette length.
func (s Set) Lookup(name string, shade int) (colour.Color, bool) {
	p := s[name]
	if len(p) == 0 {
		return colour.Color{}, false
	}
	return p[Wrap(shade, len(p))], true
}

// With returns a copy of the set with the given palettes replaced.
func (s Set) With(overrides Set) Set {
	out := maps.Clone(s)
	if out == nil {
		out = make(Set, len(overrides))
	}
	maps.Copy(out, overrides)
	return out
}

// Roles returns the palette names in sorted order.
func (s Set) Roles() []string {
	return slices.Sorted(maps.Keys(s))
}
