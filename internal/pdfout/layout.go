// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfout writes rendered blocks as a paginated letter-size PDF.
// It lays text out itself (wrapping and pagination are deterministic, so
// they are testable without a PDF reader) and hands the finished page
// descriptions to pdfcpu.
package pdfout

import (
	"strings"

	"github.com/pdiddy/cardex/internal/render"
)

// Letter page geometry, points. Margins match the original 72pt frame.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 72.0

	usableWidth  = pageWidth - 2*margin
	usableHeight = pageHeight - 2*margin

	// blankAdvance is the vertical space of an empty spacer block.
	blankAdvance = 8.0

	// charWidthRatio approximates Helvetica glyph width per point of
	// font size, used for line wrapping.
	charWidthRatio = 0.55
)

// metric holds the type settings for one block style.
type metric struct {
	font    string
	size    float64
	leading float64
	color   string
}

// metrics maps block styles to fonts and colors from the original layout:
// blue headers, teal section titles, violet entry bullets. Bars and rules
// are not drawn in the PDF; spacing and color carry the structure instead.
var metrics = map[render.Style]metric{
	render.StyleTitle:   {font: "Helvetica-Bold", size: 16, leading: 24, color: "#2980B9"},
	render.StyleSection: {font: "Helvetica-Bold", size: 14, leading: 22, color: "#16A085"},
	render.StyleContent: {font: "Helvetica", size: 11, leading: 14, color: "#2C3E50"},
	render.StyleEntry:   {font: "Helvetica-Oblique", size: 11, leading: 15, color: "#8E44AD"},
}

// line is one laid-out line of text with its resolved position.
type line struct {
	text string
	m    metric
	x, y float64 // upper-left origin
}

// page is the set of laid-out lines for one output page.
type page []line

// paginate lays out one block sequence per document, starting each
// document after the first on a fresh page.
func paginate(docs [][]render.Block) []page {
	var pages []page
	var cur page
	y := margin

	flush := func() {
		if len(cur) > 0 {
			pages = append(pages, cur)
			cur = nil
		}
		y = margin
	}

	emit := func(text string, m metric) {
		if y+m.leading > margin+usableHeight {
			flush()
		}
		cur = append(cur, line{text: text, m: m, x: margin, y: y})
		y += m.leading
	}

	for i, blocks := range docs {
		if i > 0 {
			flush()
		}
		for _, b := range blocks {
			switch b.Style {
			case render.StyleBar, render.StyleRule:
				// Not drawn; see metrics.
			case render.StyleBlank:
				y += blankAdvance
			default:
				m, ok := metrics[b.Style]
				if !ok {
					m = metrics[render.StyleContent]
				}
				for _, text := range wrapBlock(b.Text, m) {
					emit(text, m)
				}
			}
		}
	}
	flush()
	return pages
}

// wrapBlock cleans a block's text and wraps each of its lines to the
// usable page width.
func wrapBlock(text string, m metric) []string {
	maxChars := int(usableWidth / (m.size * charWidthRatio))
	if maxChars < 1 {
		maxChars = 1
	}
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		cleaned := cleanText(raw)
		if cleaned == "" {
			continue
		}
		out = append(out, wrapLine(cleaned, maxChars)...)
	}
	return out
}

// wrapLine greedily wraps words to maxChars per line. A single word longer
// than the limit is hard-split rather than overflowing the margin.
func wrapLine(s string, maxChars int) []string {
	words := strings.Fields(s)
	var out []string
	var cur strings.Builder
	for _, w := range words {
		for len(w) > maxChars {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			out = append(out, w[:maxChars])
			w = w[maxChars:]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case cur.Len()+1+len(w) <= maxChars:
			cur.WriteByte(' ')
			cur.WriteString(w)
		default:
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(w)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// cleanText maps the text-layout markers to ASCII and drops characters the
// core PDF fonts cannot encode.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "►", "->")
	s = strings.ReplaceAll(s, "─", "")
	var sb strings.Builder
	for _, r := range s {
		if r < 128 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
