// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SkippedFile records one input file that could not be imported and why.
type SkippedFile struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// ImportReport summarizes a multi-file import: the documents that loaded
// and the files that were skipped. A bad file never aborts the import; it
// is recorded here instead.
type ImportReport struct {
	Loaded  []*CardDocument
	Skipped []SkippedFile
}

// Total returns the number of files processed.
func (r ImportReport) Total() int {
	return len(r.Loaded) + len(r.Skipped)
}

// HasFailures reports whether any files were skipped.
func (r ImportReport) HasFailures() bool {
	return len(r.Skipped) > 0
}

// Empty reports whether nothing loaded at all, the only fatal import
// outcome.
func (r ImportReport) Empty() bool {
	return len(r.Loaded) == 0
}
