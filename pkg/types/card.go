// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the extraction pipeline:
// parsed documents, field selections, import reports, and configuration.
package types

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DocKind identifies the schema family of a parsed document.
type DocKind string

const (
	KindCharacter DocKind = "character"
	KindLorebook  DocKind = "lorebook"
	KindUnknown   DocKind = "unknown"
)

// Fields is an ordered field collection. Iteration order matches the key
// order of the source document.
type Fields = orderedmap.OrderedMap[string, any]

// NewFields returns an empty ordered field collection.
func NewFields() *Fields {
	return orderedmap.New[string, any]()
}

// CardDocument is one parsed input file: a character card, a lorebook, or an
// unrecognized-but-parseable document. The field collection preserves source
// key order and is not modified after load.
type CardDocument struct {
	// Path is the source file the document was loaded from.
	Path string

	// Name is the display name: the card's name field, or the file stem
	// when the document has none.
	Name string

	// Kind is the detected schema family.
	Kind DocKind

	// Fields holds the document's top-level fields in source order.
	// Values are strings, numbers, bools, []any, or nested field
	// collections, depending on the producing tool.
	Fields *Fields
}

// Field resolves a field by key. A dotted key ("extensions.depth_prompt")
// walks that exact path; a bare key is looked up at the top level first and
// then searched depth-first through nested objects, so schema variants that
// bury a field one level down still resolve. A missing field is not an
// error: it returns ok=false and renders as absent content.
func (d *CardDocument) Field(key string) (any, bool) {
	if d == nil || d.Fields == nil || key == "" {
		return nil, false
	}
	if strings.Contains(key, ".") {
		return lookupPath(d.Fields, strings.Split(key, "."))
	}
	return searchFields(d.Fields, key)
}

// FieldNames returns the top-level field keys in source order.
func (d *CardDocument) FieldNames() []string {
	if d == nil || d.Fields == nil {
		return nil
	}
	names := make([]string, 0, d.Fields.Len())
	for pair := d.Fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Has reports whether the key resolves to any value in the document.
func (d *CardDocument) Has(key string) bool {
	_, ok := d.Field(key)
	return ok
}

func lookupPath(f *Fields, path []string) (any, bool) {
	var cur any = f
	for _, seg := range path {
		nested, ok := AsFields(cur)
		if !ok {
			return nil, false
		}
		cur, ok = nested.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func searchFields(f *Fields, key string) (any, bool) {
	if v, ok := f.Get(key); ok {
		return v, true
	}
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		if nested, ok := AsFields(pair.Value); ok {
			if v, ok := searchFields(nested, key); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// AsFields normalizes a nested object value into an ordered field
// collection. Plain maps (from generic JSON decoding) are converted with
// keys sorted, so lookups stay deterministic. Non-object values report
// ok=false.
func AsFields(v any) (*Fields, bool) {
	switch m := v.(type) {
	case *Fields:
		return m, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		f := NewFields()
		for _, k := range keys {
			f.Set(k, m[k])
		}
		return f, true
	default:
		return nil, false
	}
}
