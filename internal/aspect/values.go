package aspect

import "reflect"

// Values holds raw style values such as border widths and padding. Keys may
// carry a variant suffix ("padding-small"), or a value may be a map of
// variants with a "default" entry.
type Values struct{}

// Name returns the aspect name.
func (Values) Name() string { return ValuesName }

// DependsOn returns nil.
func (Values) DependsOn() []string { return nil }

// Default returns nil; values come from theme definitions.
func (Values) Default() any { return map[string]any(nil) }

// Merge deep-merges value maps.
func (Values) Merge(base, over any) any {
	return MergeMaps(valueAs[map[string]any](base), valueAs[map[string]any](over))
}

// Resolve returns the merged values. In partial mode only changed top-level
// keys are returned.
func (Values) Resolve(ctx *Context, partial, full any) (any, bool) {
	values := valueAs[map[string]any](full)
	if !ctx.IsPartial {
		return values, true
	}
	if len(valueAs[map[string]any](partial)) == 0 {
		return nil, false
	}

	prev := valueAs[map[string]any](ctx.Parent[ValuesName])
	diff := make(map[string]any)
	for k, v := range values {
		if p, ok := prev[k]; !ok || !reflect.DeepEqual(p, v) {
			diff[k] = v
		}
	}
	if len(diff) == 0 {
		return nil, false
	}
	return diff, true
}

// Properties returns the values as properties. Variant maps contribute
// their "default" entry.
func (Values) Properties(resolved any) map[string]any {
	values := valueAs[map[string]any](resolved)
	props := make(map[string]any, len(values))
	for k, v := range values {
		if variants, ok := v.(map[string]any); ok {
			if d, ok := variants["default"]; ok {
				props[k] = d
			}
			continue
		}
		props[k] = v
	}
	return props
}

// Value looks up key with an optional variant modifier.
func (Values) Value(resolved any, key, modifier string) (any, bool) {
	values := valueAs[map[string]any](resolved)
	if modifier != "" {
		if v, ok := values[key+"-"+modifier]; ok {
			return v, true
		}
		if variants, ok := values[key].(map[string]any); ok {
			if v, ok := variants[modifier]; ok {
				return v, true
			}
		}
	}

	v, ok := values[key]
	if variants, isMap := v.(map[string]any); isMap {
		v, ok = variants["default"]
	}
	return v, ok
}
