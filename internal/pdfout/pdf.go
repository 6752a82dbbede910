// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/cardex/internal/render"
)

// JSON page description consumed by pdfcpu's create API.
type pdfFont struct {
	Name  string  `json:"name"`
	Size  float64 `json:"size"`
	Color string  `json:"color,omitempty"`
}

type pdfText struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"position"`
	Font     pdfFont    `json:"font"`
}

type pdfContent struct {
	Text []pdfText `json:"text,omitempty"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfDescription struct {
	Paper  string             `json:"paper"`
	Origin string             `json:"origin"`
	Pages  map[string]pdfPage `json:"pages"`
}

// Write renders one block sequence per document into a paginated PDF at
// path. title is printed at the top of the first page; each further
// document starts on a new page. A write failure reports the specific
// path.
func Write(path, title string, docs [][]render.Block) error {
	pages := paginate(withTitle(title, docs))

	desc := pdfDescription{
		Paper:  "Letter",
		Origin: "upperLeft",
		Pages:  make(map[string]pdfPage, len(pages)),
	}
	for i, p := range pages {
		content := pdfContent{Text: make([]pdfText, 0, len(p))}
		for _, ln := range p {
			content.Text = append(content.Text, pdfText{
				Value:    ln.text,
				Position: [2]float64{ln.x, ln.y},
				Font: pdfFont{
					Name:  ln.m.font,
					Size:  ln.m.size,
					Color: ln.m.color,
				},
			})
		}
		desc.Pages[strconv.Itoa(i+1)] = pdfPage{Content: content}
	}

	data, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("building PDF description: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	defer f.Close()

	if err := api.Create(nil, bytes.NewReader(data), f, nil); err != nil {
		return fmt.Errorf("creating PDF %s: %w", path, err)
	}
	return nil
}

// withTitle prepends the output title to the first document's blocks so it
// shares the first page.
func withTitle(title string, docs [][]render.Block) [][]render.Block {
	if title == "" || len(docs) == 0 {
		return docs
	}
	head := make([]render.Block, 0, len(docs[0])+2)
	head = append(head,
		render.Block{Style: render.StyleTitle, Text: title},
		render.Block{Style: render.StyleBlank},
	)
	head = append(head, docs[0]...)
	out := make([][]render.Block, len(docs))
	out[0] = head
	copy(out[1:], docs[1:])
	return out
}
