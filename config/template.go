package config

import (
	"errors"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var ErrUnresolvedTemplate = errors.New("unresolved template")

// RenderFn renders one {{fn:arg}} placeholder.
type RenderFn func(arg string) (string, error)

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_][A-Za-z0-9_.:-]*)\}\}`)

// maxResolveIterations bounds the fixed-point loop so cyclic references
// fail with ErrUnresolvedTemplate instead of spinning forever.
const maxResolveIterations = 16

// Resolve substitutes {{name}} placeholders in every string leaf of doc.
// Names resolve against vars, then against the render-fn map for the
// {{fn:arg}} form, then against scalar values in doc itself by dotted path,
// repeating until nothing is left to substitute. The render functions are
// an explicit argument, not package state.
func Resolve(doc map[string]any, vars map[string]string, fns map[string]RenderFn) (map[string]any, error) {
	resolved := cloneValue(doc).(map[string]any)

	for iter := 0; iter < maxResolveIterations; iter++ {
		var pass resolvePass

		pass.vars = vars
		pass.fns = fns
		pass.doc = resolved

		newDoc, err := pass.walkMap(resolved)
		if err != nil {
			return nil, err
		}

		resolved = newDoc

		if !pass.pending {
			return resolved, nil
		}

		if !pass.changed {
			return nil, ErrUnresolvedTemplate
		}
	}

	return nil, ErrUnresolvedTemplate
}

type resolvePass struct {
	vars map[string]string
	fns  map[string]RenderFn
	doc  map[string]any

	changed bool
	pending bool
}

func (pass *resolvePass) walkMap(m map[string]any) (map[string]any, error) {
	newM := make(map[string]any, len(m))

	for k, v := range m {
		newV, err := pass.walkValue(v)
		if err != nil {
			return nil, err
		}

		newM[k] = newV
	}

	return newM, nil
}

func (pass *resolvePass) walkValue(v any) (any, error) {
	switch tv := v.(type) {
	case map[string]any:
		return pass.walkMap(tv)
	case []any:
		newItems := make([]any, 0, len(tv))

		for _, item := range tv {
			newItem, err := pass.walkValue(item)
			if err != nil {
				return nil, err
			}

			newItems = append(newItems, newItem)
		}

		return newItems, nil
	case string:
		return pass.renderString(tv)
	default:
		return v, nil
	}
}

func (pass *resolvePass) renderString(s string) (string, error) {
	var renderErr error

	newS := placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-2]

		value, ok, err := pass.lookup(name)
		if err != nil {
			renderErr = err

			return match
		}

		if !ok {
			pass.pending = true

			return match
		}

		pass.changed = true

		return value
	})

	return newS, renderErr
}

func (pass *resolvePass) lookup(name string) (string, bool, error) {
	if value, ok := pass.vars[name]; ok {
		return value, true, nil
	}

	if fnName, arg, ok := strings.Cut(name, ":"); ok {
		if fn, exists := pass.fns[fnName]; exists {
			value, err := fn(arg)

			return value, err == nil, err
		}
	}

	if value, ok := lookupPath(pass.doc, name); ok {
		return cast.ToString(value), true, nil
	}

	return "", false, nil
}

// lookupPath walks a dotted path to a scalar leaf. A leaf that still holds
// placeholders of its own is not ready yet.
func lookupPath(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")

	var cur any = doc

	for _, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	switch cur.(type) {
	case map[string]any, []any:
		return nil, false
	}

	if s, ok := cur.(string); ok && placeholderRe.MatchString(s) {
		return nil, false
	}

	return cur, true
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		newM := make(map[string]any, len(tv))

		for k, item := range tv {
			newM[k] = cloneValue(item)
		}

		return newM
	case []any:
		newItems := make([]any, 0, len(tv))

		for _, item := range tv {
			newItems = append(newItems, cloneValue(item))
		}

		return newItems
	default:
		return v
	}
}
