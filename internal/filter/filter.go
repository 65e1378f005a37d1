// Package filter narrows catalog listings by a free-text query and
// category selectors.
package filter

import "strings"

// All disables a selector.
const All = "all"

// Record is anything a list view can filter.
type Record interface {
	// SearchFields are the fields the free-text query is matched against.
	SearchFields() []string
	// Attr returns the value of a selectable attribute, false if the record has none.
	Attr(name string) (string, bool)
}

// Criteria holds the predicates of one list request.
type Criteria struct {
	Query     string
	Selectors map[string]string
}

// Active reports whether any predicate would narrow the result.
func (c Criteria) Active() bool {
	if c.Query != "" {
		return true
	}
	for _, v := range c.Selectors {
		if v != "" && v != All {
			return true
		}
	}
	return false
}

// Match reports whether r satisfies every predicate in c.
func (c Criteria) Match(r Record) bool {
	if q := strings.ToLower(c.Query); q != "" {
		found := false
		for _, f := range r.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for name, want := range c.Selectors {
		if want == "" || want == All {
			continue
		}
		got, ok := r.Attr(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Apply returns the items matching c in their original order.
// The result is never nil.
func Apply[T Record](items []T, c Criteria) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if c.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Count returns how many items have attribute name equal to value.
func Count[T Record](items []T, name, value string) int {
	n := 0
	for _, it := range items {
		if v, ok := it.Attr(name); ok && v == value {
			n++
		}
	}
	return n
}
