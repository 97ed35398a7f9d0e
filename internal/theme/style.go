package theme

import (
	"maps"
	"slices"

	"github.com/jmylchreest/tinctheme/internal/aspect"
)

// Style is an immutable resolved style.
type Style struct {
	name    string
	aspects []aspect.Aspect
	full    map[string]any
	states  map[string]map[string]any
	values  aspect.Results
	props   map[string]any

	stateVals  map[string]aspect.Results
	stateProps map[string]map[string]any
}

// stateSelectors maps interaction states to CSS pseudo-class selectors.
var stateSelectors = map[string]string{
	"hover":    ":hover",
	"press":    ":active",
	"focus":    ":focus",
	"disabled": ":disabled",
}

// Name returns the style name.
func (s *Style) Name() string {
	return s.name
}

// Properties returns a copy of the style's flat property map.
func (s *Style) Properties() map[string]any {
	return maps.Clone(s.props)
}

// Value returns the resolved value of one aspect.
func (s *Style) Value(aspectName string) (any, bool) {
	v, ok := s.values[aspectName]
	return v, ok
}

// States returns the names of states that change anything, sorted.
func (s *Style) States() []string {
	return slices.Sorted(maps.Keys(s.stateVals))
}

// State returns the sparse resolved values of a state override.
func (s *Style) State(name string) (aspect.Results, bool) {
	v, ok := s.stateVals[name]
	return v, ok
}

// StateProperties returns the style's properties with a state's sparse
// properties applied. Unknown states return the base properties.
func (s *Style) StateProperties(name string) map[string]any {
	props := maps.Clone(s.props)
	maps.Copy(props, s.stateProps[name])
	return props
}

// Selectors maps pseudo-class selectors (":hover", ":active", ...) to the
// sparse properties each state changes.
func (s *Style) Selectors() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.stateProps))
	for state, props := range s.stateProps {
		sel, ok := stateSelectors[state]
		if !ok {
			sel = ":" + state
		}
		out[sel] = maps.Clone(props)
	}
	return out
}

// Values resolves keys to literal values, asking aspects that provide
// parameterised lookups first and falling back to the property map. Keys
// with no value are omitted.
func (s *Style) Values(keys []string, modifier string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, ok := s.provide(key, modifier); ok {
			out[key] = v
			continue
		}
		maps.Copy(out, GetValues(s.props, []string{key}, modifier))
	}
	return out
}

func (s *Style) provide(key, modifier string) (any, bool) {
	for _, a := range s.aspects {
		vp, ok := a.(aspect.ValueProvider)
		if !ok {
			continue
		}
		resolved, ok := s.values[a.Name()]
		if !ok {
			continue
		}
		if v, ok := vp.Value(resolved, key, modifier); ok {
			return v, true
		}
	}
	return nil, false
}

// GetValues picks keys from a property map. With a modifier, "key-modifier"
// is preferred over "key".
func GetValues(props map[string]any, keys []string, modifier string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if modifier != "" {
			if v, ok := props[key+"-"+modifier]; ok {
				out[key] = v
				continue
			}
		}
		if v, ok := props[key]; ok {
			out[key] = v
		}
	}
	return out
}

// GetStyle returns the properties of a style in theme. A nil theme yields
// nil.
func GetStyle(t *Theme, name string) map[string]any {
	if t == nil {
		return nil
	}
	return t.Style(name).Properties()
}
