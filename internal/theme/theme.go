// Package theme resolves theme definitions into cached, fully resolved
// styles and keeps a registry of named themes.
package theme

import (
	"maps"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tinctheme/internal/aspect"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Theme is a resolved theme. Its default style is resolved when the theme is
// created; named styles resolve lazily on first request and are cached.
type Theme struct {
	name    string
	def     ThemeDefinition
	aspects []aspect.Aspect
	reg     *aspect.Registry
	config  aspect.Config
	logger  hclog.Logger

	defaultStyle *Style

	mu     sync.Mutex
	styles map[string]*Style
}

func newTheme(name string, def ThemeDefinition, reg *aspect.Registry, config aspect.Config, logger hclog.Logger) *Theme {
	t := &Theme{
		name:    name,
		def:     def,
		aspects: reg.All(),
		reg:     reg,
		config:  config,
		logger:  logger,
		styles:  make(map[string]*Style),
	}
	t.defaultStyle = t.resolve(DefaultStyle, def.Default, nil)
	return t
}

// Name returns the theme's registered name. Themes built by CreateTheme or
// an update string have no name.
func (t *Theme) Name() string {
	return t.name
}

// Parent returns the parent theme's name.
func (t *Theme) Parent() string {
	return t.def.Parent
}

// Definition returns the effective definition after merging the parent
// chain. The result must not be modified.
func (t *Theme) Definition() ThemeDefinition {
	return t.def
}

// Default returns the default style.
func (t *Theme) Default() *Style {
	return t.defaultStyle
}

// Palettes returns the palette set of the default style.
func (t *Theme) Palettes() palette.Set {
	set, _ := t.defaultStyle.Value(aspect.PalettesName)
	s, _ := set.(palette.Set)
	return s
}

// StyleNames returns the named styles in sorted order, excluding the
// default style.
func (t *Theme) StyleNames() []string {
	return slices.Sorted(maps.Keys(t.def.Styles))
}

// Style returns the named style, resolving it on first request. Empty and
// unknown names return the default style.
func (t *Theme) Style(name string) *Style {
	return t.style(name, nil)
}

func (t *Theme) style(name string, resolving map[string]bool) *Style {
	if name == "" || name == DefaultStyle {
		return t.defaultStyle
	}

	t.mu.Lock()
	s, ok := t.styles[name]
	t.mu.Unlock()
	if ok {
		return s
	}

	def, ok := t.def.Styles[name]
	if !ok {
		t.logger.Debug("unknown style, using default", "style", name)
		return t.defaultStyle
	}
	if resolving[name] {
		t.logger.Warn("style parent cycle, using default", "style", name)
		return t.defaultStyle
	}
	if resolving == nil {
		resolving = make(map[string]bool)
	}
	resolving[name] = true

	parent := t.style(def.Parent, resolving)
	s = t.resolve(name, def, parent)

	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.styles[name]; ok {
		return existing
	}
	t.styles[name] = s
	return s
}

// resolve runs every aspect over a style definition. parent is nil for the
// default style.
func (t *Theme) resolve(name string, own Definition, parent *Style) *Style {
	s := &Style{
		name:       name,
		aspects:    t.aspects,
		full:       make(map[string]any, len(t.aspects)),
		stateVals:  make(map[string]aspect.Results),
		stateProps: make(map[string]map[string]any),
	}

	var parentValues aspect.Results
	var parentStates map[string]map[string]any
	for _, a := range t.aspects {
		base := a.Default()
		if parent != nil {
			base = parent.full[a.Name()]
		}
		s.full[a.Name()] = a.Merge(base, own.Aspects[a.Name()])
	}
	if parent != nil {
		parentValues = parent.values
		parentStates = parent.states
	}

	s.values = t.run(own.Aspects, s.full, parentValues, false)
	s.props = properties(t.aspects, s.values)

	s.states = mergeStates(t.reg, parentStates, own.States)
	for state, overrides := range s.states {
		full := make(map[string]any, len(t.aspects))
		for _, a := range t.aspects {
			full[a.Name()] = a.Merge(s.full[a.Name()], overrides[a.Name()])
		}
		vals := t.run(overrides, full, s.values, true)
		if len(vals) == 0 {
			continue
		}
		s.stateVals[state] = vals
		s.stateProps[state] = properties(t.aspects, vals)
	}

	t.logger.Trace("resolved style", "theme", t.name, "style", name, "states", len(s.stateVals))
	return s
}

func (t *Theme) run(partial, full map[string]any, parent aspect.Results, isPartial bool) aspect.Results {
	out := make(aspect.Results, len(t.aspects))
	for _, a := range t.aspects {
		ctx := &aspect.Context{
			Name:      a.Name(),
			IsPartial: isPartial,
			Parent:    parent,
			Resolved:  out,
			Config:    t.config,
			Logger:    t.logger.Named(a.Name()),
		}
		if v, ok := a.Resolve(ctx, partial[a.Name()], full[a.Name()]); ok {
			out[a.Name()] = v
		}
	}
	return out
}

func properties(aspects []aspect.Aspect, values aspect.Results) map[string]any {
	props := make(map[string]any)
	for _, a := range aspects {
		pm, ok := a.(aspect.PropertyMapper)
		if !ok {
			continue
		}
		if v, ok := values[a.Name()]; ok {
			maps.Copy(props, pm.Properties(v))
		}
	}
	return props
}
