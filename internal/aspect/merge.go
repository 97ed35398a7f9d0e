package aspect

import "maps"

// MergeMaps deep-merges over onto base and returns a new map. Nested
// map[string]any values merge recursively; every other value in over
// replaces the one in base. Neither input is modified.
func MergeMaps(base, over map[string]any) map[string]any {
	if len(over) == 0 {
		return base
	}
	if len(base) == 0 {
		return over
	}

	out := maps.Clone(base)
	for k, v := range over {
		nested, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		if existing, ok := out[k].(map[string]any); ok {
			out[k] = MergeMaps(existing, nested)
			continue
		}
		out[k] = nested
	}
	return out
}

// MergeDefinitions merges two per-aspect definition maps. Registered
// aspects merge with their own Merge; anything else is merged as a plain
// map when both sides are maps, otherwise over replaces base.
func MergeDefinitions(reg *Registry, base, over map[string]any) map[string]any {
	if len(over) == 0 {
		return base
	}

	out := make(map[string]any, len(base)+len(over))
	maps.Copy(out, base)
	for name, v := range over {
		if a, ok := reg.Get(name); ok {
			out[name] = a.Merge(out[name], v)
			continue
		}
		bm, bok := out[name].(map[string]any)
		om, ook := v.(map[string]any)
		if bok && ook {
			out[name] = MergeMaps(bm, om)
			continue
		}
		out[name] = v
	}
	return out
}
