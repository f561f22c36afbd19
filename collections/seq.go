package collections

// FindIndexWhere returns the index of the first element matching pred.
func FindIndexWhere[T any](items []T, pred func(T) bool) (int, bool) {
	for idx, item := range items {
		if pred(item) {
			return idx, true
		}
	}

	return 0, false
}

// Compose chains fns left to right: Compose(f, g)(v) == g(f(v)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}

		return v
	}
}

func InsertAt[T any](items []T, idx int, item T) []T {
	if idx < 0 {
		idx = 0
	}

	if idx >= len(items) {
		return append(append(make([]T, 0, len(items)+1), items...), item)
	}

	newItems := make([]T, 0, len(items)+1)
	newItems = append(newItems, items[:idx]...)
	newItems = append(newItems, item)
	newItems = append(newItems, items[idx:]...)

	return newItems
}

func RemoveAt[T any](items []T, idx int) []T {
	if idx < 0 || idx >= len(items) {
		return items
	}

	newItems := make([]T, 0, len(items)-1)
	newItems = append(newItems, items[:idx]...)
	newItems = append(newItems, items[idx+1:]...)

	return newItems
}

// PadRight extends items to size with filler, or returns items unchanged if
// already long enough.
func PadRight[T any](items []T, size int, filler T) []T {
	if len(items) >= size {
		return items
	}

	newItems := append(make([]T, 0, size), items...)

	for len(newItems) < size {
		newItems = append(newItems, filler)
	}

	return newItems
}
