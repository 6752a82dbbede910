// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/pdiddy/cardex/pkg/types"
)

// characterKeys are the well-known keys whose presence marks a document as
// a character card. Producing tools disagree on naming, so the list covers
// the common variants.
var characterKeys = []string{
	"name", "first_mes", "description", "personality",
	"char_name", "char_persona", "char_greeting", "example_dialogue",
	"avatar", "chat", "persona", "greeting", "mes_example",
}

// detectKind classifies a parsed document. Lorebooks are checked first: an
// entries object whose first entry carries key/content/comment. Character
// cards are recognized by a chara_card spec string, or by any well-known
// character key at the top level or under a v3 data object. Everything else
// is unknown but still loadable.
func detectKind(f *types.Fields) types.DocKind {
	if isLorebook(f) {
		return types.KindLorebook
	}

	if spec, ok := f.Get("spec"); ok {
		if strings.Contains(strings.ToLower(cast.ToString(spec)), "chara_card") {
			return types.KindCharacter
		}
	}

	if hasCharacterKey(f) {
		return types.KindCharacter
	}
	if data, ok := f.Get("data"); ok {
		if df, ok := types.AsFields(data); ok && hasCharacterKey(df) {
			return types.KindCharacter
		}
	}

	return types.KindUnknown
}

func isLorebook(f *types.Fields) bool {
	entries, ok := f.Get("entries")
	if !ok {
		return false
	}
	em, ok := types.AsFields(entries)
	if !ok {
		return false
	}
	first := em.Oldest()
	if first == nil {
		return false
	}
	entry, ok := types.AsFields(first.Value)
	if !ok {
		return false
	}
	for _, k := range []string{"key", "content", "comment"} {
		if _, ok := entry.Get(k); ok {
			return true
		}
	}
	return false
}

func hasCharacterKey(f *types.Fields) bool {
	for _, k := range characterKeys {
		if _, ok := f.Get(k); ok {
			return true
		}
	}
	return false
}

// normalizeCharacter flattens a v3 card (content nested under data) so the
// selector and exporter see one field layout. The data object's fields come
// first in their own order, then the remaining wrapper keys (spec,
// spec_version, ...) are appended, skipping duplicates. v2 cards pass
// through unchanged.
func normalizeCharacter(f *types.Fields) *types.Fields {
	data, ok := f.Get("data")
	if !ok {
		return f
	}
	df, ok := types.AsFields(data)
	if !ok {
		return f
	}

	out := types.NewFields()
	for pair := df.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "data" {
			continue
		}
		if _, dup := out.Get(pair.Key); dup {
			continue
		}
		out.Set(pair.Key, pair.Value)
	}
	return out
}
