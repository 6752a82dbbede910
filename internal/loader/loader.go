// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader parses character-card and lorebook JSON files into the
// shared document model. Parsing is tolerant: key order is preserved,
// unknown keys are kept rather than rejected, v2/v3 card layouts are
// normalized, and a file that cannot be parsed is skipped, not fatal.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/pdiddy/cardex/pkg/types"
)

// LoadFile parses a single JSON document at path. The top level must be a
// JSON object; anything else is a parse error. Field values keep whatever
// shape the producing tool wrote.
func LoadFile(path string) (*types.CardDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fields, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	kind := detectKind(fields)
	if kind == types.KindCharacter {
		fields = normalizeCharacter(fields)
	}

	doc := &types.CardDocument{
		Path:   path,
		Kind:   kind,
		Fields: fields,
	}
	doc.Name = displayName(doc)
	return doc, nil
}

// LoadAll imports each path independently, writing one status line per file
// to w. Files that cannot be read or parsed are recorded in the report and
// the import continues with the remaining files. When more than one file is
// given a summary line is appended.
func LoadAll(paths []string, w io.Writer) types.ImportReport {
	var report types.ImportReport
	for _, p := range paths {
		doc, err := LoadFile(p)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", filepath.Base(p), err)
			report.Skipped = append(report.Skipped, types.SkippedFile{
				Path:   p,
				Reason: err.Error(),
			})
			continue
		}
		fmt.Fprintf(w, "loaded:  %s (%s)\n", filepath.Base(p), doc.Kind)
		report.Loaded = append(report.Loaded, doc)
	}

	if len(paths) > 1 {
		fmt.Fprintf(w, "\nImport summary: %d loaded, %d skipped (total: %d)\n",
			len(report.Loaded), len(report.Skipped), report.Total())
	}
	return report
}

// SortByName orders loaded documents by display name, case-insensitive.
// The sort is stable so documents with equal names keep import order.
func SortByName(docs []*types.CardDocument) {
	sort.SliceStable(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Name) < strings.ToLower(docs[j].Name)
	})
}

// displayName returns the card's top-level name field, falling back to the
// file stem. Only the document itself can name the document: a name buried
// in a nested entry (a lorebook or character-book entry) is that entry's
// title, not the file's.
func displayName(doc *types.CardDocument) string {
	if doc.Fields != nil {
		if v, ok := doc.Fields.Get("name"); ok {
			if name := strings.TrimSpace(cast.ToString(v)); name != "" {
				return name
			}
		}
	}
	base := filepath.Base(doc.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
