// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cardex/pkg/types"
)

// All returns a selection containing every available field of the document.
func All(doc *types.CardDocument) types.FieldSelection {
	sel := types.NewFieldSelection()
	for _, s := range Available(doc) {
		sel.Add(s.Key)
	}
	return sel
}

// FromKeys builds a selection from explicit field keys (as given on the
// command line). Keys may be catalog keys or display labels; matching is
// case-insensitive. A key that is not available in the document is an
// error: a field cannot be selected before it has been observed.
func FromKeys(doc *types.CardDocument, keys []string) (types.FieldSelection, error) {
	specs := Available(doc)
	byKey := make(map[string]string, len(specs))
	for _, s := range specs {
		byKey[strings.ToLower(s.Key)] = s.Key
		byKey[strings.ToLower(s.Label)] = s.Key
	}

	sel := types.NewFieldSelection()
	for _, raw := range keys {
		k := strings.ToLower(strings.TrimSpace(raw))
		if k == "" {
			continue
		}
		canonical, ok := byKey[k]
		if !ok {
			return nil, fmt.Errorf("field %q not present in %s", strings.TrimSpace(raw), doc.Name)
		}
		sel.Add(canonical)
	}
	return sel, nil
}

// ParseKeyList splits a comma-separated field list from a flag value.
func ParseKeyList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
