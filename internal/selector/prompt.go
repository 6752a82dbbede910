// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/pdiddy/cardex/pkg/types"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("selection aborted")

// Prompt asks the user to choose fields for one document through a terminal
// multi-select. Every available field starts selected, matching the
// original default of extracting everything. Ctrl-C maps to ErrAborted.
func Prompt(doc *types.CardDocument, pageSize int) (types.FieldSelection, error) {
	specs := Available(doc)
	if len(specs) == 0 {
		return types.NewFieldSelection(), nil
	}

	options := make([]string, len(specs))
	for i, s := range specs {
		options[i] = s.Label
	}

	prompt := &survey.MultiSelect{
		Message: fmt.Sprintf("Fields to extract from %s:", doc.Name),
		Options: options,
		Default: options,
	}
	if pageSize > 0 {
		prompt.PageSize = pageSize
	}

	var picked []string
	if err := survey.AskOne(prompt, &picked); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, ErrAborted
		}
		return nil, err
	}

	chosen := make(map[string]struct{}, len(picked))
	for _, label := range picked {
		chosen[label] = struct{}{}
	}
	sel := types.NewFieldSelection()
	for _, s := range specs {
		if _, ok := chosen[s.Label]; ok {
			sel.Add(s.Key)
		}
	}
	return sel, nil
}
