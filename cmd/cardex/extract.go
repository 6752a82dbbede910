// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardex/internal/loader"
	"github.com/pdiddy/cardex/internal/pdfout"
	"github.com/pdiddy/cardex/internal/render"
	"github.com/pdiddy/cardex/internal/selector"
	"github.com/pdiddy/cardex/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract selected fields into text or PDF output",
	Long: `Extract imports one or more card or lorebook JSON files, asks which
fields to keep (or takes them from --fields, --all, or a saved --selection
file), and renders the result.

Files that cannot be parsed are skipped and reported; the import continues
with the remaining files. Multiple documents are merged into one output in
import order unless --separate is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := toolConfig(cmd)
	if !cfg.Output.Format.Valid() {
		return fmt.Errorf("unsupported format %q: use formatted, plain, or pdf", cfg.Output.Format)
	}

	report := loader.LoadAll(args, os.Stderr)
	if report.Empty() {
		return fmt.Errorf("no readable input: all %d file(s) failed to import", report.Total())
	}

	if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
		loader.SortByName(report.Loaded)
	}

	selections, err := resolveSelections(cmd, cfg, report.Loaded)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save-selection"); savePath != "" {
		first := report.Loaded[0]
		if err := selector.WriteSelectionFile(savePath, first.Kind, selections[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved selection to", savePath)
	}

	opts := render.Options{Condensed: cfg.Output.Condensed}

	if separate, _ := cmd.Flags().GetBool("separate"); separate {
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			return fmt.Errorf("--out names a single output file and cannot be combined with --separate")
		}
		paths := separatePaths(cfg.Output.Dir, report.Loaded, cfg.Output.Format.Extension())
		for i := range report.Loaded {
			if err := writeExport(paths[i], cfg.Output.Format, report.Loaded[i:i+1], selections[i:i+1], opts); err != nil {
				return err
			}
			fmt.Println("Wrote", paths[i])
		}
		return nil
	}

	out := outputPath(cmd, cfg, report.Loaded)
	if err := writeExport(out, cfg.Output.Format, report.Loaded, selections, opts); err != nil {
		return err
	}
	fmt.Println("Wrote", out)
	return nil
}

// resolveSelections produces one FieldSelection per document. Precedence:
// a saved selection file, then --all, then --fields, then the interactive
// prompt (one per document, so each card gets its own selection).
func resolveSelections(cmd *cobra.Command, cfg types.Config, docs []*types.CardDocument) ([]types.FieldSelection, error) {
	selPath, _ := cmd.Flags().GetString("selection")
	fieldsFlag, _ := cmd.Flags().GetString("fields")
	all, _ := cmd.Flags().GetBool("all")

	sels := make([]types.FieldSelection, len(docs))
	switch {
	case selPath != "":
		sf, err := selector.ReadSelectionFile(selPath)
		if err != nil {
			return nil, err
		}
		for i, doc := range docs {
			sels[i] = sf.Apply(doc)
		}
	case all:
		for i, doc := range docs {
			sels[i] = selector.All(doc)
		}
	case fieldsFlag != "":
		keys := selector.ParseKeyList(fieldsFlag)
		for i, doc := range docs {
			sel, err := selector.FromKeys(doc, keys)
			if err != nil {
				return nil, err
			}
			sels[i] = sel
		}
	default:
		for i, doc := range docs {
			sel, err := selector.Prompt(doc, cfg.Prompt.PageSize)
			if err != nil {
				return nil, err
			}
			sels[i] = sel
		}
	}
	return sels, nil
}

// writeExport renders the documents in the requested format and writes the
// result to path.
func writeExport(path string, format types.OutputFormat, docs []*types.CardDocument, sels []types.FieldSelection, opts render.Options) error {
	if format == types.FormatPDF {
		blocks := make([][]render.Block, len(docs))
		for i, d := range docs {
			blocks[i] = render.Blocks(d, sels[i], opts)
		}
		return pdfout.Write(path, stem(path), blocks)
	}

	text := render.Documents(docs, sels, opts)
	if format == types.FormatPlain {
		text = render.Plain(text)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}

// separatePaths derives one output path per document. Documents sharing a
// display name get a numeric suffix so a later file never overwrites an
// earlier one.
func separatePaths(dir string, docs []*types.CardDocument, ext string) []string {
	paths := make([]string, len(docs))
	seen := make(map[string]int, len(docs))
	for i, doc := range docs {
		name := exportName(doc.Name)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		paths[i] = filepath.Join(dir, name+ext)
	}
	return paths
}

func outputPath(cmd *cobra.Command, cfg types.Config, docs []*types.CardDocument) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	name := exportName(docs[0].Name)
	if len(docs) > 1 {
		name += "-combined"
	}
	return filepath.Join(cfg.Output.Dir, name+cfg.Output.Format.Extension())
}

// exportName maps a document display name to a safe output filename stem.
func exportName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(name))
	if mapped == "" {
		return "extract"
	}
	return mapped
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	extractCmd.Flags().StringP("out", "o", "", "output path (default: derived from the first document name)")
	extractCmd.Flags().String("format", "", "output format: formatted, plain, or pdf")
	extractCmd.Flags().String("fields", "", "comma-separated fields to extract (skips the prompt)")
	extractCmd.Flags().Bool("all", false, "extract every available field (skips the prompt)")
	extractCmd.Flags().Bool("condensed", false, "drop verbose fields for a smaller export")
	extractCmd.Flags().String("selection", "", "load the field selection from a YAML file")
	extractCmd.Flags().String("save-selection", "", "save the resolved field selection to a YAML file")
	extractCmd.Flags().Bool("separate", false, "write one output file per input instead of a merged document")
	extractCmd.Flags().Bool("sort", false, "order merged documents by name instead of import order")

	rootCmd.AddCommand(extractCmd)
}
