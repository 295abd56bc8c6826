package store

import "strings"

// AllValues is the filter value meaning "do not filter on this field"
const AllValues = "all"

// Criterion is an equality filter on one field of an entry
type Criterion[T any] struct {
	Field func(T) string
	Value string
}

// Active reports whether the criterion restricts anything
func (c Criterion[T]) Active() bool {
	return c.Value != "" && c.Value != AllValues
}

// Filter keeps the entries matching every active criterion, preserving order
func Filter[T any](entries []T, criteria ...Criterion[T]) []T {
	result := make([]T, 0, len(entries))
	for _, e := range entries {
		if matches(e, criteria) {
			result = append(result, e)
		}
	}
	return result
}

func matches[T any](e T, criteria []Criterion[T]) bool {
	for _, c := range criteria {
		if c.Active() && c.Field(e) != c.Value {
			return false
		}
	}
	return true
}

// Search keeps entries where any of the fields contains query, case-insensitively.
// An empty query matches everything.
func Search[T any](entries []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	result := make([]T, 0, len(entries))
	for _, e := range entries {
		for _, f := range fields(e) {
			if strings.Contains(strings.ToLower(f), q) {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

// Find returns the first entry whose key equals id
func Find[T any](entries []T, id string, key func(T) string) (T, bool) {
	for _, e := range entries {
		if key(e) == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}
