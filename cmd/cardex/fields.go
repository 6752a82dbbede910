// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardex/internal/loader"
	"github.com/pdiddy/cardex/internal/selector"
	"github.com/pdiddy/cardex/pkg/types"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [files...]",
	Short: "List the extractable fields of each input file",
	Long: `Fields imports the given files and prints, per file, the detected
document kind and the recognized fields available for extraction. Useful
for building a --fields list or a selection file without going through the
interactive prompt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFields,
}

// fileFields is the JSON listing for one input file.
type fileFields struct {
	Path   string        `json:"path"`
	Name   string        `json:"name,omitempty"`
	Kind   types.DocKind `json:"kind,omitempty"`
	Error  string        `json:"error,omitempty"`
	Fields []fieldInfo   `json:"fields,omitempty"`
}

type fieldInfo struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Verbose bool   `json:"verbose,omitempty"`
}

func runFields(cmd *cobra.Command, args []string) error {
	listings := make([]fileFields, 0, len(args))
	failures := 0

	for _, path := range args {
		doc, err := loader.LoadFile(path)
		if err != nil {
			failures++
			listings = append(listings, fileFields{Path: path, Error: err.Error()})
			continue
		}
		entry := fileFields{Path: path, Name: doc.Name, Kind: doc.Kind}
		for _, s := range selector.Available(doc) {
			entry.Fields = append(entry.Fields, fieldInfo{Key: s.Key, Label: s.Label, Verbose: s.Verbose})
		}
		listings = append(listings, entry)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(listings); err != nil {
			return err
		}
	} else {
		printListings(listings)
	}

	if failures == len(args) {
		return fmt.Errorf("no readable input: all %d file(s) failed to import", len(args))
	}
	return nil
}

func printListings(listings []fileFields) {
	for i, l := range listings {
		if i > 0 {
			fmt.Println()
		}
		if l.Error != "" {
			fmt.Printf("%s: skipped (%s)\n", filepath.Base(l.Path), l.Error)
			continue
		}
		fmt.Printf("%s: %s (%s)\n", filepath.Base(l.Path), l.Name, l.Kind)
		for _, f := range l.Fields {
			note := ""
			if f.Verbose {
				note = "  [dropped by --condensed]"
			}
			fmt.Printf("  %-22s %s%s\n", f.Key, f.Label, note)
		}
	}
}

func init() {
	fieldsCmd.Flags().Bool("json", false, "output the listing as JSON")

	rootCmd.AddCommand(fieldsCmd)
}
