// Package merge provides a deep merge for plain nested structures, the kind
// produced by decoding TOML into map[string]any.
package merge

// Maps merges any number of plain nested structures into a fresh accumulator.
// For a key present in more than one input: two slices concatenate in input
// order, two maps merge recursively, anything else is overwritten by the later
// input. The inputs themselves are never mutated; nested maps and slices are
// copied before they end up in the result.
func Maps(inputs ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, in := range inputs {
		for key, value := range in {
			existing, ok := out[key]
			if !ok {
				out[key] = cloneValue(value)
				continue
			}
			out[key] = mergeValue(existing, value)
		}
	}
	return out
}

// mergeValue combines an accumulated value with an incoming one. The
// accumulated value is owned by the accumulator and may be extended in place;
// the incoming value is cloned.
func mergeValue(acc, in any) any {
	if accMap, ok := acc.(map[string]any); ok {
		if inMap, ok := in.(map[string]any); ok {
			return Maps(accMap, inMap)
		}
	}
	if accSlice, ok := acc.([]any); ok {
		if inSlice, ok := in.([]any); ok {
			combined := make([]any, 0, len(accSlice)+len(inSlice))
			combined = append(combined, accSlice...)
			for _, v := range inSlice {
				combined = append(combined, cloneValue(v))
			}
			return combined
		}
	}
	// Later input wins for scalars and mismatched shapes
	return cloneValue(in)
}

// cloneValue deep-copies maps and slices so the result shares no structure
// with the inputs. Scalars are returned as is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
