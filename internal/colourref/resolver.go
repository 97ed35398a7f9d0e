package colourref

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tinctheme/internal/colour"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

// Background is the absolute key and colour a reference is resolved against.
type Background struct {
	Key   Key
	Color colour.Color
}

// TransformFunc computes an absolute key for a transform invocation.
type TransformFunc func(r *Resolver, t Transform, bg Background) Key

// Resolver turns references into concrete colours. Resolution is total:
// malformed references fall back rather than fail.
type Resolver struct {
	Set         palette.Set
	Transforms  map[string]TransformFunc
	MinContrast float64
	Logger      hclog.Logger
}

// NewResolver creates a resolver over set with the built-in transforms.
func NewResolver(set palette.Set, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{
		Set:         set,
		Transforms:  DefaultTransforms(),
		MinContrast: colour.MinContrastAA,
		Logger:      logger,
	}
}

// Background resolves key into a Background.
func (r *Resolver) Background(key Key) Background {
	abs := r.absolute(key, Background{Key: FallbackKey})
	return Background{Key: abs, Color: r.Lookup(abs)}
}

// Resolve returns the colour ref describes against bg.
func (r *Resolver) Resolve(ref Ref, bg Background) colour.Color {
	if ref.Literal != "" {
		c, ok := colour.Parse(ref.Literal)
		if !ok {
			r.Logger.Debug("unparseable colour literal, using white", "literal", ref.Literal)
			return colour.White
		}
		return c
	}

	key, _ := r.ResolveKey(ref, bg)
	return r.Lookup(key)
}

// ResolveKey returns the absolute key ref describes against bg. Literal
// references have no key and return false. The result never carries a
// relative kind, so resolving it again yields the same key.
func (r *Resolver) ResolveKey(ref Ref, bg Background) (Key, bool) {
	switch {
	case ref.Literal != "":
		return Key{}, false
	case ref.Key != nil:
		return r.absolute(*ref.Key, bg), true
	case ref.Transform != nil:
		fn, ok := r.Transforms[ref.Transform.Name]
		if !ok {
			r.Logger.Debug("unknown transform, using contrast", "transform", ref.Transform.Name)
			fn = contrastBest
		}
		return fn(r, *ref.Transform, bg), true
	default:
		return FallbackKey, true
	}
}

// absolute applies a key's relative kind against bg. Shades wrap modulo the
// target palette length after any offset is added.
func (r *Resolver) absolute(k Key, bg Background) Key {
	name := k.Palette
	if name == "" {
		name = bg.Key.Palette
	}

	shade := k.Shade
	switch k.Kind {
	case Switched:
		name = SwitchPalette(name)
	case Offset:
		shade += bg.Key.Shade
	case SwitchedOffset:
		name = SwitchPalette(name)
		shade += bg.Key.Shade
	}

	if p := r.Set[name]; len(p) > 0 {
		shade = palette.Wrap(shade, len(p))
	}
	return Key{Palette: name, Shade: shade}
}

// Lookup returns the colour at an absolute key, falling back to "bg" shade 0
// and then to white. Each fallback step uses a key different from its input.
func (r *Resolver) Lookup(key Key) colour.Color {
	if c, ok := r.Set.Lookup(key.Palette, key.Shade); ok {
		return c
	}
	if key != FallbackKey {
		r.Logger.Debug("dangling palette reference, using fallback", "key", key.String(), "fallback", FallbackKey.String())
		return r.Lookup(FallbackKey)
	}
	r.Logger.Debug("fallback palette missing, using white", "key", key.String())
	return colour.White
}
