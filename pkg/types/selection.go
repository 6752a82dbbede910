// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// FieldSelection is the set of field keys marked for inclusion in an export.
// It stores membership only; rendering order always comes from the field
// catalog, so a selection cannot reorder output.
type FieldSelection map[string]struct{}

// NewFieldSelection builds a selection containing the given keys.
func NewFieldSelection(keys ...string) FieldSelection {
	s := make(FieldSelection, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Selected reports whether key is included.
func (s FieldSelection) Selected(key string) bool {
	_, ok := s[key]
	return ok
}

// Add marks key for inclusion.
func (s FieldSelection) Add(key string) {
	s[key] = struct{}{}
}

// Len returns the number of selected keys.
func (s FieldSelection) Len() int {
	return len(s)
}

// Keys returns the selected keys sorted, for stable serialization.
func (s FieldSelection) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Without returns a copy of the selection with the given keys removed.
func (s FieldSelection) Without(keys ...string) FieldSelection {
	out := make(FieldSelection, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
