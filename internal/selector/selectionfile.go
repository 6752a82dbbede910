// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cardex/pkg/types"
)

// SelectionFile is the on-disk representation of a field selection. A
// session's choices can be saved to a file and replayed later without
// re-prompting.
type SelectionFile struct {
	Kind   types.DocKind `yaml:"kind,omitempty"`
	Fields []string      `yaml:"fields"`
}

// WriteSelectionFile saves a selection to a YAML file. Keys are written
// sorted so repeated saves of the same selection are byte-identical.
func WriteSelectionFile(path string, kind types.DocKind, sel types.FieldSelection) error {
	sf := SelectionFile{
		Kind:   kind,
		Fields: sel.Keys(),
	}
	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling selection file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing selection file %s: %w", path, err)
	}
	return nil
}

// ReadSelectionFile loads a previously saved selection from disk.
func ReadSelectionFile(path string) (*SelectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selection file %s: %w", path, err)
	}
	var sf SelectionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing selection file %s: %w", path, err)
	}
	return &sf, nil
}

// Apply resolves the stored field list against a document. Fields the
// document does not have are dropped silently; missing fields are absent
// content, not an error.
func (f *SelectionFile) Apply(doc *types.CardDocument) types.FieldSelection {
	available := make(map[string]struct{})
	for _, s := range Available(doc) {
		available[s.Key] = struct{}{}
	}
	sel := types.NewFieldSelection()
	for _, k := range f.Fields {
		if _, ok := available[k]; ok {
			sel.Add(k)
		}
	}
	return sel
}
