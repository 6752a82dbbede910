// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/pdiddy/cardex/pkg/types"
)

// scalarText coerces a field value into display text. Strings pass through,
// lists join on newlines, and other scalars (numbers, bools written by
// loose producers) are stringified. Objects render as empty: there is no
// generic prose form for them.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := scalarText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case []string:
		return strings.Join(t, "\n")
	default:
		if _, isObj := types.AsFields(v); isObj {
			return ""
		}
		return cast.ToString(v)
	}
}

// stringList coerces a field value into a list of non-empty strings.
func stringList(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := strings.TrimSpace(cast.ToString(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// entryList normalizes an entries value into a list of entry objects.
// Character books carry a JSON array; lorebooks carry an object keyed by
// entry ID, iterated in source order.
func entryList(v any) []*types.Fields {
	var out []*types.Fields
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if entry, ok := types.AsFields(item); ok {
				out = append(out, entry)
			}
		}
	default:
		if m, ok := types.AsFields(v); ok {
			for pair := m.Oldest(); pair != nil; pair = pair.Next() {
				if entry, ok := types.AsFields(pair.Value); ok {
					out = append(out, entry)
				}
			}
		}
	}
	return out
}

// entryLabel returns an entry's display label: its name field, falling
// back to comment, which some producers use instead.
func entryLabel(entry *types.Fields) string {
	for _, k := range []string{"name", "comment"} {
		if v, ok := entry.Get(k); ok {
			if s := strings.TrimSpace(cast.ToString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// keysText formats a lorebook entry's trigger keys as "a, b, c".
func keysText(v any) string {
	if keys := stringList(v); len(keys) > 0 {
		return strings.Join(keys, ", ")
	}
	return ""
}

func fieldOrEmpty(entry *types.Fields, key string) any {
	v, _ := entry.Get(key)
	return v
}
