package aspect

import (
	"maps"
	"strconv"
	"strings"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/colourref"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Common colour slots.
const (
	SlotBackground = "background"
	SlotColor      = "color"
	SlotBorder     = "borderColor"
	SlotLink       = "linkColor"
)

// Slots maps colour slot names to references.
type Slots map[string]colourref.Ref

// ResolvedColors is the resolved value of the colorSet aspect.
type ResolvedColors struct {
	// Background is the absolute key the background resolved to. Relative
	// references in child styles resolve against it.
	Background colourref.Key

	// Keyed is false when the background came from a literal colour.
	Keyed bool

	// Colors holds the concrete colour per slot, including the background.
	Colors map[string]colour.Color
}

// ColorSet resolves colour slots against a background.
type ColorSet struct{}

// Name returns the aspect name.
func (ColorSet) Name() string { return ColorSetName }

// DependsOn returns the palettes aspect.
func (ColorSet) DependsOn() []string { return []string{PalettesName} }

// Default returns a background at bg shade 0 with contrasting text.
func (ColorSet) Default() any {
	return Slots{
		SlotBackground: colourref.Shade(palette.RoleBackground, 0),
		SlotColor:      colourref.Contrast(palette.RoleForeground, 0),
	}
}

// Merge replaces references slot by slot.
func (ColorSet) Merge(base, over any) any {
	b, o := valueAs[Slots](base), valueAs[Slots](over)
	if len(o) == 0 {
		return b
	}
	out := make(Slots, len(b)+len(o))
	maps.Copy(out, b)
	maps.Copy(out, o)
	return out
}

// Resolve resolves every slot.
//
// The background resolves against the parent's background, but only when
// this definition sets one (or there is no parent); otherwise the parent's
// background key is inherited so relative offsets are not applied twice.
// The remaining slots resolve against the new background.
func (ColorSet) Resolve(ctx *Context, partial, full any) (any, bool) {
	own := valueAs[Slots](partial)
	slots := valueAs[Slots](full)
	prev, hasPrev := ctx.Parent[ColorSetName].(ResolvedColors)
	_, palettesChanged := ctx.Resolved[PalettesName]

	if ctx.IsPartial && len(own) == 0 && !palettesChanged {
		return nil, false
	}

	setValue, _ := ctx.Lookup(PalettesName)
	r := colourref.NewResolver(valueAs[palette.Set](setValue), ctx.Logger)
	if ctx.Config.MinContrast > 0 {
		r.MinContrast = ctx.Config.MinContrast
	}

	parentBg := colourref.Background{Key: colourref.FallbackKey}
	if hasPrev {
		if prev.Keyed {
			parentBg = r.Background(prev.Background)
		} else {
			parentBg = colourref.Background{Key: prev.Background, Color: prev.Colors[SlotBackground]}
		}
	}

	bg, keyed := parentBg, !hasPrev || prev.Keyed
	ref, ownBg := own[SlotBackground]
	if !ownBg && !hasPrev {
		ref, ownBg = slots[SlotBackground], true
	}
	if ownBg {
		if key, ok := r.ResolveKey(ref, parentBg); ok {
			bg, keyed = colourref.Background{Key: key, Color: r.Lookup(key)}, true
		} else {
			bg, keyed = colourref.Background{Key: parentBg.Key, Color: r.Resolve(ref, parentBg)}, false
		}
	}

	colors := make(map[string]colour.Color, len(slots)+1)
	colors[SlotBackground] = bg.Color
	for name, ref := range slots {
		if name == SlotBackground {
			continue
		}
		colors[name] = r.Resolve(ref, bg)
	}

	out := ResolvedColors{Background: bg.Key, Keyed: keyed, Colors: colors}
	if !ctx.IsPartial || !hasPrev {
		return out, true
	}

	diff := make(map[string]colour.Color)
	for name, c := range colors {
		if p, ok := prev.Colors[name]; !ok || !p.Equal(c) {
			diff[name] = c
		}
	}
	if len(diff) == 0 {
		return nil, false
	}
	out.Colors = diff
	return out, true
}

// Properties maps slots to CSS-like properties. The background slot becomes
// "backgroundColor".
func (ColorSet) Properties(resolved any) map[string]any {
	rc, ok := resolved.(ResolvedColors)
	if !ok {
		return nil
	}
	props := make(map[string]any, len(rc.Colors))
	for name, c := range rc.Colors {
		if name == SlotBackground {
			name = "backgroundColor"
		}
		props[name] = c.String()
	}
	return props
}

// Commands returns the background update commands.
func (ColorSet) Commands() []string {
	return []string{"type", "deepen", "shade"}
}

// ApplyUpdate adjusts the background reference. "type" sets its palette
// (or flips it with "switch"), "deepen" adds to its shade and "shade"
// replaces it.
func (ColorSet) ApplyUpdate(cmd, param string, current any) (any, bool) {
	ref, ok := valueAs[Slots](current)[SlotBackground]
	if !ok || ref.IsZero() {
		ref = colourref.Shade(palette.RoleBackground, 0)
	}

	var next colourref.Ref
	switch cmd {
	case "type":
		next, ok = retypeBackground(ref, strings.ToLower(param))
	case "deepen", "shade":
		n, err := strconv.Atoi(param)
		if err != nil {
			return nil, false
		}
		next, ok = reshadeBackground(ref, n, cmd == "deepen")
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return Slots{SlotBackground: next}, true
}

func retypeBackground(ref colourref.Ref, param string) (colourref.Ref, bool) {
	flip := param == "switch" || param == "~"
	switch {
	case ref.Key != nil:
		k := *ref.Key
		switch {
		case flip && k.Kind == colourref.Switched:
			k.Kind = colourref.Absolute
		case flip && k.Kind == colourref.SwitchedOffset:
			k.Kind = colourref.Offset
		case flip:
			k.Palette = colourref.SwitchPalette(defaultPalette(k.Palette))
		default:
			k.Palette = param
			if k.Kind == colourref.Switched {
				k.Kind = colourref.Absolute
			} else if k.Kind == colourref.SwitchedOffset {
				k.Kind = colourref.Offset
			}
		}
		return colourref.Ref{Key: &k}, true
	case ref.Transform != nil:
		t := *ref.Transform
		if flip {
			t.Palette = colourref.SwitchPalette(defaultPalette(t.Palette))
		} else {
			t.Palette = param
		}
		return colourref.Ref{Transform: &t}, true
	default:
		if flip {
			return colourref.Shade(palette.RoleAccent, 0), true
		}
		return colourref.Shade(param, 0), true
	}
}

func reshadeBackground(ref colourref.Ref, n int, relative bool) (colourref.Ref, bool) {
	switch {
	case ref.Key != nil:
		k := *ref.Key
		if relative {
			k.Shade += n
		} else {
			k.Shade = n
		}
		return colourref.Ref{Key: &k}, true
	case ref.Transform != nil:
		t := *ref.Transform
		if relative {
			t.Shade += n
		} else {
			t.Shade = n
		}
		return colourref.Ref{Transform: &t}, true
	default:
		// A literal background has no shade to deepen.
		if relative {
			return colourref.Ref{}, false
		}
		return colourref.Shade(palette.RoleBackground, n), true
	}
}

func defaultPalette(name string) string {
	if name == "" {
		return palette.RoleBackground
	}
	return name
}
