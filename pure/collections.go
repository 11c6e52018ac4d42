package pure

import (
	"fmt"
	"maps"
)

// ToSlice copies its arguments into a new slice.
func ToSlice[T any](items ...T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Clone deep-copies JSON-like trees: map[string]any and []any are copied
// recursively, every other value is returned as is.
func Clone[T any](v T) T {
	if c, ok := cloneValue(any(v)).(T); ok {
		return c
	}
	return v
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Assign copies the entries of each source into dst, later sources winning,
// and returns dst. A nil dst is allocated.
func Assign[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		maps.Copy(dst, src)
	}
	return dst
}

// AssignSlice replaces the contents of *dst with src, reusing its storage.
func AssignSlice[T any](dst *[]T, src []T) {
	tmp := make([]T, len(src))
	copy(tmp, src)
	*dst = append((*dst)[:0], tmp...)
}

// Unique drops repeated items, keeping first-seen order. Items are compared
// by their printed form, so 1 and "1" count as the same item.
func Unique[T any](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := fmt.Sprint(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Find returns the first item matching pred.
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
