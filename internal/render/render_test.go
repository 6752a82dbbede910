// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/cardex/pkg/types"
)

func characterDoc() *types.CardDocument {
	depth := types.NewFields()
	depth.Set("prompt", "Stay in character.")
	depth.Set("depth", int64(4))

	ext := types.NewFields()
	ext.Set("depth_prompt", depth)

	tavern := types.NewFields()
	tavern.Set("name", "The Tavern")
	tavern.Set("content", "The Gilded Fern serves travelers.")

	harbor := types.NewFields()
	harbor.Set("comment", "The Harbor")
	harbor.Set("content", "Ships leave at dawn.")

	empty := types.NewFields()
	empty.Set("name", "No Content")

	book := types.NewFields()
	book.Set("entries", []any{tavern, harbor, empty})

	f := types.NewFields()
	f.Set("name", "Mira")
	f.Set("description", "A wandering cartographer.")
	f.Set("personality", "curious, dry-witted")
	f.Set("first_mes", "You found me, then.")
	f.Set("mes_example", "<START>\n{{user}}: hello")
	f.Set("alternate_greetings", []any{"Well met.", "Back again?"})
	f.Set("character_book", book)
	f.Set("extensions", ext)

	return &types.CardDocument{
		Path:   "cards/mira.json",
		Name:   "Mira",
		Kind:   types.KindCharacter,
		Fields: f,
	}
}

func lorebookDoc() *types.CardDocument {
	first := types.NewFields()
	first.Set("key", []any{"tavern", "inn"})
	first.Set("content", "The Gilded Fern serves travelers.")
	first.Set("comment", "The Tavern")

	second := types.NewFields()
	second.Set("key", []any{"harbor"})
	second.Set("content", "Ships leave at dawn.")
	second.Set("comment", "The Harbor")

	// Entry IDs are written out of numeric order; source order must win.
	entries := types.NewFields()
	entries.Set("10", first)
	entries.Set("2", second)

	f := types.NewFields()
	f.Set("entries", entries)
	return &types.CardDocument{
		Path:   "books/world.json",
		Name:   "world",
		Kind:   types.KindLorebook,
		Fields: f,
	}
}

func allCharacterFields() types.FieldSelection {
	return types.NewFieldSelection(
		"name", "description", "personality", "prompt", "scenario",
		"first_mes", "mes_example", "alternate_greetings", "character_book",
	)
}

func TestDocument_EmptySelection(t *testing.T) {
	out := Document(characterDoc(), types.NewFieldSelection(), Options{})
	if out != "" {
		t.Errorf("empty selection rendered %q, want empty", out)
	}
}

func TestDocument_SectionOrder(t *testing.T) {
	out := Document(characterDoc(), allCharacterFields(), Options{})

	markers := []string{
		"Mira",
		"CHARACTER DEFINITION",
		"PERSONALITY",
		"CHARACTER NOTE",
		"FIRST MESSAGE",
		"EXAMPLE MESSAGES",
		"ALTERNATE GREETINGS",
		"CHARACTER BOOK",
	}
	prev := -1
	for _, m := range markers {
		i := strings.Index(out, m)
		if i < 0 {
			t.Fatalf("output missing %q:\n%s", m, out)
		}
		if i <= prev {
			t.Errorf("%q out of order at %d", m, i)
		}
		prev = i
	}
	// scenario was selected but the document has none; no empty section.
	if strings.Contains(out, "SCENARIO") {
		t.Error("absent field rendered a section")
	}
}

func TestDocument_FieldsAppearOnce(t *testing.T) {
	out := Document(characterDoc(), allCharacterFields(), Options{})

	for _, m := range []string{"CHARACTER DEFINITION", "ALTERNATE GREETINGS", "CHARACTER BOOK"} {
		if n := strings.Count(out, m); n != 1 {
			t.Errorf("%q appears %d times, want 1", m, n)
		}
	}
}

func TestDocument_CharacterNoteFromNestedField(t *testing.T) {
	out := Document(characterDoc(), types.NewFieldSelection("prompt"), Options{})

	if !strings.Contains(out, "CHARACTER NOTE") || !strings.Contains(out, "Stay in character.") {
		t.Errorf("character note not rendered from nested field:\n%s", out)
	}
}

func TestDocument_GreetingNumbering(t *testing.T) {
	out := Document(characterDoc(), types.NewFieldSelection("alternate_greetings"), Options{})

	for _, want := range []string{"► Greeting 1", "Well met.", "► Greeting 2", "Back again?"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDocument_BookEntries(t *testing.T) {
	out := Document(characterDoc(), types.NewFieldSelection("character_book"), Options{})

	if !strings.Contains(out, "► The Tavern") {
		t.Error("named entry missing")
	}
	// comment stands in when an entry has no name.
	if !strings.Contains(out, "► The Harbor") {
		t.Error("comment fallback label missing")
	}
	// Entries without content are dropped.
	if strings.Contains(out, "No Content") {
		t.Error("contentless entry rendered")
	}
}

func TestDocument_Lorebook(t *testing.T) {
	sel := types.NewFieldSelection("label", "content", "key")
	out := Document(lorebookDoc(), sel, Options{})

	iTavern := strings.Index(out, "The Tavern")
	iHarbor := strings.Index(out, "The Harbor")
	if iTavern < 0 || iHarbor < 0 || iTavern > iHarbor {
		t.Errorf("entries not in source order:\n%s", out)
	}
	if !strings.Contains(out, "Keys: tavern, inn") {
		t.Errorf("keys line missing:\n%s", out)
	}
}

func TestDocument_LorebookContentOnly(t *testing.T) {
	out := Document(lorebookDoc(), types.NewFieldSelection("content"), Options{})

	if strings.Contains(out, "The Tavern") || strings.Contains(out, "Keys:") {
		t.Errorf("unselected entry fields rendered:\n%s", out)
	}
	if !strings.Contains(out, "Ships leave at dawn.") {
		t.Errorf("selected content missing:\n%s", out)
	}
}

func TestDocument_Generic(t *testing.T) {
	f := types.NewFields()
	f.Set("title", "field notes")
	f.Set("body", "rough terrain ahead")
	doc := &types.CardDocument{Kind: types.KindUnknown, Fields: f}

	out := Document(doc, types.NewFieldSelection("title", "body"), Options{})
	if !strings.Contains(out, "TITLE") || !strings.Contains(out, "rough terrain ahead") {
		t.Errorf("generic rendering incomplete:\n%s", out)
	}
}

func TestDocument_Deterministic(t *testing.T) {
	doc := characterDoc()
	sel := allCharacterFields()

	first := Document(doc, sel, Options{})
	second := Document(doc, sel, Options{})
	if first != second {
		t.Error("repeated rendering differs")
	}
}

func TestDocument_Condensed(t *testing.T) {
	doc := characterDoc()
	sel := allCharacterFields()

	full := Document(doc, sel, Options{})
	condensed := Document(doc, sel, Options{Condensed: true})

	if len(condensed) >= len(full) {
		t.Errorf("condensed (%d bytes) not shorter than full (%d bytes)", len(condensed), len(full))
	}
	for _, dropped := range []string{"EXAMPLE MESSAGES", "ALTERNATE GREETINGS", "CHARACTER BOOK"} {
		if strings.Contains(condensed, dropped) {
			t.Errorf("condensed output still contains %q", dropped)
		}
	}
	for _, kept := range []string{"Mira", "CHARACTER DEFINITION", "PERSONALITY"} {
		if !strings.Contains(condensed, kept) {
			t.Errorf("condensed output missing %q", kept)
		}
	}
}

func TestDocuments_Merge(t *testing.T) {
	char := characterDoc()
	lore := lorebookDoc()
	sels := []types.FieldSelection{
		allCharacterFields(),
		types.NewFieldSelection("label", "content", "key"),
	}

	a := Document(char, sels[0], Options{})
	b := Document(lore, sels[1], Options{})
	combined := Documents([]*types.CardDocument{char, lore}, sels, Options{})

	if combined != a+DocumentSeparator+b {
		t.Error("merged output is not parts joined by the separator")
	}
	if len(combined) != len(a)+len(b)+len(DocumentSeparator) {
		t.Error("merged length accounting wrong")
	}
}

func TestDocuments_Single(t *testing.T) {
	doc := characterDoc()
	sel := allCharacterFields()

	combined := Documents([]*types.CardDocument{doc}, []types.FieldSelection{sel}, Options{})
	if combined != Document(doc, sel, Options{}) {
		t.Error("single document merge added a separator")
	}
}

func TestPlain(t *testing.T) {
	formatted := Document(characterDoc(), allCharacterFields(), Options{})
	plain := Plain(formatted)

	if strings.Contains(plain, "=") || strings.Contains(plain, "─") {
		t.Error("plain text still contains layout lines")
	}
	if strings.Contains(plain, "►") {
		t.Error("plain text still contains bullet markers")
	}
	if strings.Contains(plain, "\n\n\n") {
		t.Error("plain text has runs of blank lines")
	}
	for _, want := range []string{"Mira", "A wandering cartographer.", "Greeting 1"} {
		if !strings.Contains(plain, want) {
			t.Errorf("plain text missing %q", want)
		}
	}
}

func TestPlain_RemovesMergeSeparator(t *testing.T) {
	char := characterDoc()
	lore := lorebookDoc()
	sels := []types.FieldSelection{
		types.NewFieldSelection("name"),
		types.NewFieldSelection("content"),
	}

	combined := Documents([]*types.CardDocument{char, lore}, sels, Options{})
	plain := Plain(combined)
	if strings.Contains(plain, "=") {
		t.Errorf("separator survived plain conversion:\n%s", plain)
	}
}

func TestPlain_KeepsContentRuns(t *testing.T) {
	f := types.NewFields()
	f.Set("name", "Mira")
	f.Set("mes_example", "====\nboxed art\n====")
	doc := &types.CardDocument{
		Name:   "Mira",
		Kind:   types.KindCharacter,
		Fields: f,
	}

	formatted := Document(doc, types.NewFieldSelection("name", "mes_example"), Options{})
	plain := Plain(formatted)

	// Content that is a run of "=" is not a layout line; only the exact
	// bar, rule, and separator widths are stripped.
	if !strings.Contains(plain, "====") {
		t.Errorf("content run of = stripped from plain output:\n%s", plain)
	}
	if strings.Contains(plain, strings.Repeat("=", 50)) {
		t.Error("header bar survived plain conversion")
	}
}

func TestScalarText(t *testing.T) {
	obj := types.NewFields()
	obj.Set("k", "v")

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"nil", nil, ""},
		{"list", []any{"a", "", "b"}, "a\nb"},
		{"string list", []string{"a", "b"}, "a\nb"},
		{"number", int64(7), "7"},
		{"object", obj, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scalarText(tt.in); got != tt.want {
				t.Errorf("scalarText(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
