package shop

// lookup walks nested maps along path. It reports false as soon as a key
// is missing or an intermediate value is not a map. A present JSON null
// is returned as (nil, true).
func lookup(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// lookupString is lookup restricted to string leaves.
func lookupString(m map[string]any, path ...string) (string, bool) {
	v, ok := lookup(m, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawSearchResult:
		return m, true
	default:
		return nil, false
	}
}
