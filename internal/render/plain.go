// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// Plain strips the formatted layout down to prose: header bars and section
// rules are dropped, bullets lose their marker, and the surviving lines are
// joined by blank lines. Applying it to merged output also removes the
// document separators.
func Plain(formatted string) string {
	var out []string
	for _, line := range strings.Split(formatted, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isRuleLine(trimmed) {
			continue
		}
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "►"))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n\n")
}

// isRuleLine reports whether the line is one of the layout lines this
// package emits: the header bar, the section rule, or the merge separator.
// Matching the exact widths keeps content that happens to be a run of "="
// (ASCII art in example messages, say) from being stripped.
func isRuleLine(s string) bool {
	return s == barLine || s == ruleLine || s == sepLine
}
