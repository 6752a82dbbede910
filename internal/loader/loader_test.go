// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/cardex/pkg/types"
)

const v3Card = `{
  "spec": "chara_card_v3",
  "spec_version": "3.0",
  "data": {
    "name": "Mira",
    "description": "A wandering cartographer.",
    "personality": "curious, dry-witted",
    "first_mes": "You found me, then.",
    "alternate_greetings": ["Well met.", "Back again?"],
    "extensions": {
      "depth_prompt": {"prompt": "Stay in character.", "depth": 4}
    }
  }
}`

const v2Card = `{
  "name": "Rook",
  "description": "A retired duelist.",
  "scenario": "A rain-soaked harbor town.",
  "first_mes": "Hm."
}`

const lorebook = `{
  "entries": {
    "0": {"key": ["tavern", "inn"], "content": "The Gilded Fern serves travelers.", "comment": "The Tavern"},
    "1": {"key": ["harbor"], "content": "Ships leave at dawn.", "comment": "The Harbor"}
  }
}`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_CharacterV3(t *testing.T) {
	doc, err := LoadFile(writeInput(t, "mira.json", v3Card))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Kind != types.KindCharacter {
		t.Errorf("Kind = %q, want character", doc.Kind)
	}
	if doc.Name != "Mira" {
		t.Errorf("Name = %q, want Mira", doc.Name)
	}

	// v3 normalization hoists the data object; its fields come first and
	// the wrapper keys are appended after.
	names := doc.FieldNames()
	if len(names) == 0 || names[0] != "name" {
		t.Fatalf("FieldNames() = %v, want data fields first", names)
	}
	last2 := names[len(names)-2:]
	if !reflect.DeepEqual(last2, []string{"spec", "spec_version"}) {
		t.Errorf("wrapper keys = %v, want [spec spec_version]", last2)
	}

	if v, ok := doc.Field("description"); !ok || v != "A wandering cartographer." {
		t.Errorf("description = %v, %v", v, ok)
	}
	// The character note lives under extensions.depth_prompt.
	if v, ok := doc.Field("prompt"); !ok || v != "Stay in character." {
		t.Errorf("prompt = %v, %v", v, ok)
	}
}

func TestLoadFile_CharacterV2(t *testing.T) {
	doc, err := LoadFile(writeInput(t, "rook.json", v2Card))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Kind != types.KindCharacter {
		t.Errorf("Kind = %q, want character", doc.Kind)
	}
	if doc.Name != "Rook" {
		t.Errorf("Name = %q, want Rook", doc.Name)
	}
	want := []string{"name", "description", "scenario", "first_mes"}
	if got := doc.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestLoadFile_Lorebook(t *testing.T) {
	doc, err := LoadFile(writeInput(t, "world.json", lorebook))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Kind != types.KindLorebook {
		t.Errorf("Kind = %q, want lorebook", doc.Kind)
	}
	// No name field: display name falls back to the file stem.
	if doc.Name != "world" {
		t.Errorf("Name = %q, want world", doc.Name)
	}
}

func TestLoadFile_EntryNameDoesNotNameDocument(t *testing.T) {
	// The entries carry name keys; the document itself has none. The
	// display name must come from the file stem, not from the first entry.
	content := `{
	  "entries": {
	    "0": {"key": ["tavern"], "content": "The Gilded Fern serves travelers.", "name": "The Tavern"}
	  }
	}`
	doc, err := LoadFile(writeInput(t, "world.json", content))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != types.KindLorebook {
		t.Errorf("Kind = %q, want lorebook", doc.Kind)
	}
	if doc.Name != "world" {
		t.Errorf("Name = %q, want world (file stem)", doc.Name)
	}
}

func TestLoadFile_Unknown(t *testing.T) {
	doc, err := LoadFile(writeInput(t, "odd.json", `{"title": "notes", "body": "text"}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != types.KindUnknown {
		t.Errorf("Kind = %q, want unknown", doc.Kind)
	}
}

func TestLoadFile_SpecStringDetection(t *testing.T) {
	// No well-known character keys, but the spec string marks it.
	doc, err := LoadFile(writeInput(t, "spec.json", `{"spec": "chara_card_v2", "data": {"creator": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != types.KindCharacter {
		t.Errorf("Kind = %q, want character", doc.Kind)
	}
}

func TestLoadFile_PreservesKeyOrder(t *testing.T) {
	doc, err := LoadFile(writeInput(t, "order.json", `{"zeta": "1", "alpha": "2", "mid": "3"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if got := doc.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"name": "Mira", "description":`},
		{"not an object", `["a", "b"]`},
		{"trailing garbage", `{"name": "Mira"} extra`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeInput(t, "bad.json", tt.content)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadAll_SkipAndContinue(t *testing.T) {
	good1 := writeInput(t, "mira.json", v3Card)
	bad := writeInput(t, "broken.json", `{"name":`)
	good2 := writeInput(t, "rook.json", v2Card)

	var log bytes.Buffer
	report := LoadAll([]string{good1, bad, good2}, &log)

	if len(report.Loaded) != 2 {
		t.Fatalf("Loaded = %d, want 2", len(report.Loaded))
	}
	// Import order is preserved.
	if report.Loaded[0].Name != "Mira" || report.Loaded[1].Name != "Rook" {
		t.Errorf("load order = %q, %q", report.Loaded[0].Name, report.Loaded[1].Name)
	}

	if len(report.Skipped) != 1 {
		t.Fatalf("Skipped = %d, want 1", len(report.Skipped))
	}
	if report.Skipped[0].Path != bad {
		t.Errorf("skipped path = %q, want %q", report.Skipped[0].Path, bad)
	}
	if report.Skipped[0].Reason == "" {
		t.Error("skipped file has no reason")
	}

	out := log.String()
	if !strings.Contains(out, "skipped: broken.json") {
		t.Errorf("log %q does not name the failing file", out)
	}
	if !strings.Contains(out, "Import summary: 2 loaded, 1 skipped (total: 3)") {
		t.Errorf("log %q missing summary", out)
	}
	if report.Empty() || !report.HasFailures() || report.Total() != 3 {
		t.Error("report accounting wrong")
	}
}

func TestLoadAll_NothingLoadable(t *testing.T) {
	bad := writeInput(t, "broken.json", `not json`)

	var log bytes.Buffer
	report := LoadAll([]string{bad}, &log)

	if !report.Empty() {
		t.Error("expected empty report")
	}
}

func TestSortByName(t *testing.T) {
	docs := []*types.CardDocument{
		{Name: "rook"},
		{Name: "Ash"},
		{Name: "mira"},
	}
	SortByName(docs)

	var got []string
	for _, d := range docs {
		got = append(got, d.Name)
	}
	if !reflect.DeepEqual(got, []string{"Ash", "mira", "rook"}) {
		t.Errorf("order = %v", got)
	}
}
