// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cardex/internal/selector"
	"github.com/pdiddy/cardex/pkg/types"
)

func condense(doc *types.CardDocument, sel types.FieldSelection) types.FieldSelection {
	return selector.Condense(sel, doc)
}

// characterBlocks renders a character card in catalog order: name header,
// prose sections, then the alternate greetings and character book groups.
// Each field appears at most once.
func characterBlocks(doc *types.CardDocument, sel types.FieldSelection) []Block {
	var blocks []Block

	if sel.Selected("name") {
		blocks = append(blocks, header(doc.Name)...)
	}

	for _, spec := range selector.CharacterCatalog {
		if !sel.Selected(spec.Key) {
			continue
		}
		switch spec.Key {
		case "name":
			// Rendered as the header above.
		case "alternate_greetings":
			blocks = append(blocks, greetingBlocks(doc)...)
		case "character_book":
			blocks = append(blocks, bookBlocks(doc)...)
		default:
			v, ok := doc.Field(spec.Key)
			if !ok {
				continue
			}
			content := scalarText(v)
			if content == "" {
				continue
			}
			blocks = append(blocks, section(strings.ToUpper(spec.Label), content)...)
		}
	}
	return blocks
}

func greetingBlocks(doc *types.CardDocument) []Block {
	v, ok := doc.Field("alternate_greetings")
	if !ok {
		return nil
	}
	greetings := stringList(v)
	if len(greetings) == 0 {
		return nil
	}

	blocks := []Block{
		{StyleBlank, ""},
		{StyleSection, "ALTERNATE GREETINGS"},
		{StyleRule, ruleLine},
	}
	for i, g := range greetings {
		blocks = append(blocks,
			Block{StyleEntry, fmt.Sprintf("► Greeting %d", i+1)},
			Block{StyleContent, strings.TrimSpace(g)},
		)
	}
	return blocks
}

func bookBlocks(doc *types.CardDocument) []Block {
	v, ok := doc.Field("character_book")
	if !ok {
		return nil
	}
	book, ok := types.AsFields(v)
	if !ok {
		return nil
	}
	raw, ok := book.Get("entries")
	if !ok {
		return nil
	}
	entries := entryList(raw)
	if len(entries) == 0 {
		return nil
	}

	blocks := []Block{
		{StyleBlank, ""},
		{StyleSection, "CHARACTER BOOK"},
		{StyleRule, ruleLine},
	}
	for _, entry := range entries {
		title := entryLabel(entry)
		content := scalarText(fieldOrEmpty(entry, "content"))
		if title == "" || content == "" {
			continue
		}
		blocks = append(blocks,
			Block{StyleEntry, "► " + title},
			Block{StyleContent, content},
			Block{StyleBlank, ""},
		)
	}
	return blocks
}

// lorebookBlocks renders lorebook entries in source order. The per-entry
// fields (label, content, keys) follow the selection; entries are separated
// by a blank line.
func lorebookBlocks(doc *types.CardDocument, sel types.FieldSelection) []Block {
	raw, ok := doc.Fields.Get("entries")
	if !ok {
		return nil
	}
	entries := entryList(raw)

	var blocks []Block
	for _, entry := range entries {
		var eb []Block

		if sel.Selected("label") {
			if label := entryLabel(entry); label != "" {
				eb = append(eb,
					Block{StyleSection, label},
					Block{StyleRule, ruleLine},
				)
			}
		}
		if sel.Selected("content") {
			if content := scalarText(fieldOrEmpty(entry, "content")); content != "" {
				eb = append(eb, Block{StyleContent, content})
			}
		}
		if sel.Selected("key") {
			if keys := keysText(fieldOrEmpty(entry, "key")); keys != "" {
				eb = append(eb, Block{StyleEntry, "Keys: " + keys})
			}
		}

		if len(eb) == 0 {
			continue
		}
		if len(blocks) > 0 {
			blocks = append(blocks, Block{StyleBlank, ""})
		}
		blocks = append(blocks, eb...)
	}
	return blocks
}

// genericBlocks renders an unrecognized document field by field in source
// order, so tolerated schema variants are still exportable.
func genericBlocks(doc *types.CardDocument, sel types.FieldSelection) []Block {
	var blocks []Block
	for _, name := range doc.FieldNames() {
		if !sel.Selected(name) {
			continue
		}
		v, _ := doc.Fields.Get(name)
		content := scalarText(v)
		if content == "" {
			continue
		}
		blocks = append(blocks, section(strings.ToUpper(name), content)...)
	}
	return blocks
}
