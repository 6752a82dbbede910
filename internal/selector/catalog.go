// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector presents discovered fields for inclusion and records the
// user's choices. It owns the field catalogs: the recognized fields per
// document kind, their display labels, their rendering order, and which of
// them the condensed mode drops.
package selector

import (
	"github.com/pdiddy/cardex/pkg/types"
)

// FieldSpec describes one selectable field.
type FieldSpec struct {
	// Key is the canonical field key looked up in the document.
	Key string

	// Label is the human-readable name used in prompts and listings.
	Label string

	// Verbose marks optional, bulky fields that the condensed rendering
	// mode drops.
	Verbose bool
}

// CharacterCatalog lists the recognized character-card fields in rendering
// order. The order is the section order of the exported document.
var CharacterCatalog = []FieldSpec{
	{Key: "name", Label: "Name"},
	{Key: "description", Label: "Character Definition"},
	{Key: "personality", Label: "Personality"},
	{Key: "prompt", Label: "Character Note"},
	{Key: "scenario", Label: "Scenario"},
	{Key: "first_mes", Label: "First Message"},
	{Key: "mes_example", Label: "Example Messages", Verbose: true},
	{Key: "alternate_greetings", Label: "Alternate Greetings", Verbose: true},
	{Key: "character_book", Label: "Character Book Entries", Verbose: true},
}

// LorebookCatalog lists the recognized per-entry lorebook fields.
var LorebookCatalog = []FieldSpec{
	{Key: "label", Label: "Labels"},
	{Key: "content", Label: "Content"},
	{Key: "key", Label: "Keys", Verbose: true},
}

// Catalog returns the field catalog for a document. Unknown documents get a
// generic catalog built from their own top-level fields, in source order,
// so they remain exportable.
func Catalog(doc *types.CardDocument) []FieldSpec {
	switch doc.Kind {
	case types.KindCharacter:
		return CharacterCatalog
	case types.KindLorebook:
		return LorebookCatalog
	default:
		names := doc.FieldNames()
		specs := make([]FieldSpec, 0, len(names))
		for _, name := range names {
			specs = append(specs, FieldSpec{Key: name, Label: name})
		}
		return specs
	}
}

// Available filters the document's catalog to the fields that actually
// resolve in it. Only observed fields can be offered for selection.
func Available(doc *types.CardDocument) []FieldSpec {
	var specs []FieldSpec
	for _, s := range Catalog(doc) {
		if doc.Kind == types.KindLorebook || doc.Has(s.Key) {
			specs = append(specs, s)
		}
	}
	return specs
}

// VerboseKeys returns the verbose field keys of a catalog, the set the
// condensed mode removes.
func VerboseKeys(specs []FieldSpec) []string {
	var keys []string
	for _, s := range specs {
		if s.Verbose {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// Condense returns the selection with the catalog's verbose fields removed.
// Condensed output is therefore always a rendering of a subset of the full
// selection.
func Condense(sel types.FieldSelection, doc *types.CardDocument) types.FieldSelection {
	return sel.Without(VerboseKeys(Catalog(doc))...)
}

// LabelFor returns the display label for key, or key itself when the
// catalog does not name it.
func LabelFor(specs []FieldSpec, key string) string {
	for _, s := range specs {
		if s.Key == key {
			return s.Label
		}
	}
	return key
}
