package collections

// DeepMerge merges b over a without mutating either. Nested string-keyed
// maps are merged recursively, anything else from b replaces a's value.
func DeepMerge(a, b map[string]any) map[string]any {
	merged := make(map[string]any, len(a)+len(b))

	for k, v := range a {
		merged[k] = v
	}

	for k, vb := range b {
		va, exists := merged[k]
		if !exists {
			merged[k] = vb

			continue
		}

		ma, okA := va.(map[string]any)
		mb, okB := vb.(map[string]any)

		if okA && okB {
			merged[k] = DeepMerge(ma, mb)
		} else {
			merged[k] = vb
		}
	}

	return merged
}

// FilterRemoveByValue returns a new map without the entries whose value
// matches pred.
func FilterRemoveByValue[K comparable, V any](m map[K]V, pred func(V) bool) map[K]V {
	newM := make(map[K]V, len(m))

	for k, v := range m {
		if pred(v) {
			continue
		}

		newM[k] = v
	}

	return newM
}
