package collections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIndexWhere(t *testing.T) {
	items := []string{"a", "bb", "ccc"}

	idx, ok := FindIndexWhere(items, func(s string) bool {
		return len(s) == 2
	})
	assert.True(t, ok)
	assert.EqualValues(t, 1, idx)

	_, ok = FindIndexWhere(items, func(s string) bool {
		return strings.HasPrefix(s, "z")
	})
	assert.False(t, ok)
}

func TestCompose(t *testing.T) {
	fn := Compose(func(n int) int {
		return n + 1
	}, func(n int) int {
		return n * 10
	})

	assert.EqualValues(t, 20, fn(1))
}

func TestInsertRemovePad(t *testing.T) {
	items := []int{1, 2, 4}

	items = InsertAt(items, 2, 3)
	assert.EqualValues(t, []int{1, 2, 3, 4}, items)

	items = InsertAt(items, 100, 5)
	assert.EqualValues(t, []int{1, 2, 3, 4, 5}, items)

	items = RemoveAt(items, 0)
	assert.EqualValues(t, []int{2, 3, 4, 5}, items)

	items = RemoveAt(items, 100)
	assert.EqualValues(t, []int{2, 3, 4, 5}, items)

	items = PadRight(items, 6, 0)
	assert.EqualValues(t, []int{2, 3, 4, 5, 0, 0}, items)
}

func TestDeepMerge(t *testing.T) {
	a := map[string]any{
		"x": 1,
		"nested": map[string]any{
			"a": "keep",
			"b": "old",
		},
	}
	b := map[string]any{
		"y": 2,
		"nested": map[string]any{
			"b": "new",
			"c": "add",
		},
	}

	merged := DeepMerge(a, b)

	assert.EqualValues(t, 1, merged["x"])
	assert.EqualValues(t, 2, merged["y"])

	nested, ok := merged["nested"].(map[string]any)
	assert.True(t, ok)
	assert.EqualValues(t, "keep", nested["a"])
	assert.EqualValues(t, "new", nested["b"])
	assert.EqualValues(t, "add", nested["c"])

	// inputs untouched
	assert.EqualValues(t, "old", a["nested"].(map[string]any)["b"])
}

func TestFilterRemoveByValue(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	newM := FilterRemoveByValue(m, func(v int) bool {
		return v%2 == 1
	})

	assert.EqualValues(t, map[string]int{"b": 2}, newM)
	assert.Len(t, m, 3)
}
