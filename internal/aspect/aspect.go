// Package aspect provides the pluggable resolution units that turn a style
// definition into resolved style values.
package aspect

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Aspect resolves one category of style values (colours, typography, raw
// values) from a definition.
type Aspect interface {
	// Name returns the aspect's unique name (e.g., "colorSet").
	Name() string

	// DependsOn lists aspects that must resolve first.
	DependsOn() []string

	// Default returns the definition used when nothing overrides it.
	Default() any

	// Merge overlays a partial definition onto base without mutating either.
	Merge(base, over any) any

	// Resolve produces the resolved value for a style. partial is the
	// style's own definition for this aspect (possibly nil) and full is the
	// merged effective definition. In partial mode the result holds only
	// what differs from ctx.Parent, and false means nothing differs.
	Resolve(ctx *Context, partial, full any) (any, bool)
}

// PropertyMapper is implemented by aspects that contribute to a style's
// flat property map.
type PropertyMapper interface {
	Properties(resolved any) map[string]any
}

// UpdateHandler is implemented by aspects that accept update-string
// commands.
type UpdateHandler interface {
	// Commands returns the command names this aspect handles.
	Commands() []string

	// ApplyUpdate returns a partial definition for this aspect that applies
	// cmd with param on top of current, the effective definition so far.
	ApplyUpdate(cmd, param string, current any) (any, bool)
}

// ValueProvider is implemented by aspects that answer parameterised value
// lookups such as a font size variant.
type ValueProvider interface {
	Value(resolved any, key, modifier string) (any, bool)
}

// Results maps aspect names to resolved values.
type Results map[string]any

// Config holds settings shared by every aspect.
type Config struct {
	// MinContrast is the ratio a "closest" contrast search accepts at its
	// start shade without scanning further.
	MinContrast float64

	// Palette holds the default palette build options.
	Palette palette.Options
}

// DefaultConfig returns the default aspect configuration.
func DefaultConfig() Config {
	return Config{
		MinContrast: colour.MinContrastAA,
		Palette:     palette.DefaultOptions(),
	}
}

// Context carries what an aspect can see while resolving.
type Context struct {
	// Name is the aspect being resolved.
	Name string

	// IsPartial is set when resolving a state override.
	IsPartial bool

	// Parent holds the parent style's resolved values. Nil at the root.
	Parent Results

	// Resolved holds values already produced in this pass.
	Resolved Results

	Config Config
	Logger hclog.Logger
}

// Lookup returns an aspect's value from this pass, falling back to the
// parent's.
func (c *Context) Lookup(name string) (any, bool) {
	if v, ok := c.Resolved[name]; ok {
		return v, true
	}
	v, ok := c.Parent[name]
	return v, ok
}

func valueAs[T any](v any) T {
	t, _ := v.(T)
	return t
}
