// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a parsed document plus a field selection into
// formatted output. Rendering is a pure function of its inputs: the same
// document and selection always produce byte-identical text. The block
// model is the single layout authority; the text assembler here and the
// PDF writer both consume it.
package render

import (
	"strings"

	"github.com/pdiddy/cardex/pkg/types"
)

// Style classifies a rendered block for layout purposes.
type Style int

const (
	// StyleTitle is the document name line between the "=" bars.
	StyleTitle Style = iota
	// StyleBar is a "=" header bar line.
	StyleBar
	// StyleRule is a "─" section rule line.
	StyleRule
	// StyleSection is a section title line.
	StyleSection
	// StyleContent is body prose, possibly multi-line.
	StyleContent
	// StyleEntry is a bullet or keys line ("► ...", "Keys: ...").
	StyleEntry
	// StyleBlank is an empty spacer line.
	StyleBlank
)

// Block is one layout unit of a rendered document.
type Block struct {
	Style Style
	Text  string
}

const (
	barWidth  = 50
	ruleWidth = 50
	sepWidth  = 60
)

var (
	barLine  = strings.Repeat("=", barWidth)
	ruleLine = strings.Repeat("─", ruleWidth)
	sepLine  = strings.Repeat("=", sepWidth)

	// DocumentSeparator joins the rendered blocks of merged documents.
	DocumentSeparator = "\n\n" + sepLine + "\n\n"
)

// Options control rendering.
type Options struct {
	// Condensed drops the catalog's verbose fields from the selection
	// before rendering, producing the reduced output variant.
	Condensed bool
}

// Blocks renders one document against a selection. An empty selection
// yields no blocks. Selected fields that do not resolve, or resolve to
// empty content, are absent from the output rather than errors.
func Blocks(doc *types.CardDocument, sel types.FieldSelection, opts Options) []Block {
	if opts.Condensed {
		sel = condense(doc, sel)
	}
	switch doc.Kind {
	case types.KindCharacter:
		return characterBlocks(doc, sel)
	case types.KindLorebook:
		return lorebookBlocks(doc, sel)
	default:
		return genericBlocks(doc, sel)
	}
}

// Text assembles blocks into the formatted text layout. Every block
// renders as its text followed by a newline; blank blocks are bare
// newlines.
func Text(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b.Style == StyleBlank {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(b.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Document renders a single document to formatted text.
func Document(doc *types.CardDocument, sel types.FieldSelection, opts Options) string {
	return Text(Blocks(doc, sel, opts))
}

// Documents renders each document with its own selection and joins the
// results with one separator per additional document, preserving the slice
// order. The combined length is exactly the sum of the individual lengths
// plus the separators.
func Documents(docs []*types.CardDocument, sels []types.FieldSelection, opts Options) string {
	parts := make([]string, len(docs))
	for i, doc := range docs {
		parts[i] = Document(doc, sels[i], opts)
	}
	return strings.Join(parts, DocumentSeparator)
}

func section(title, content string) []Block {
	return []Block{
		{StyleBlank, ""},
		{StyleSection, title},
		{StyleRule, ruleLine},
		{StyleContent, content},
	}
}

func header(name string) []Block {
	return []Block{
		{StyleBar, barLine},
		{StyleTitle, name},
		{StyleBar, barLine},
	}
}
