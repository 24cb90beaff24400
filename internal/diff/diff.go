// Package diff computes the change highlights shown when reviewing a
// revision suggestion: a cheap positional paragraph diff for span
// highlighting, plus a line-level diff for side-by-side preview.
package diff

import (
	"regexp"
	"sort"
	"strings"
)

// ChangeHighlight is a half-open byte span [Start, End) into the
// candidate text that differs from the reference text.
type ChangeHighlight struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// splitKeepSeparators splits text on runs of two-or-more line breaks,
// keeping the separators as their own parts so that rejoining the parts
// reproduces the input exactly and offsets stay byte-accurate.
func splitKeepSeparators(text string) []string {
	if text == "" {
		return nil
	}
	var parts []string
	last := 0
	for _, loc := range paragraphBreak.FindAllStringIndex(text, -1) {
		parts = append(parts, text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	parts = append(parts, text[last:])
	return parts
}

// ComputeHighlights compares candidate against reference block by block
// and returns the ordered, non-overlapping spans of the candidate that
// changed. Blocks are paragraphs, compared strictly by position — the
// diff does not align reordered or inserted paragraphs, which keeps it
// cheap but means an insertion shifts every later block into "changed".
func ComputeHighlights(reference, candidate string) []ChangeHighlight {
	if reference == candidate {
		return nil
	}

	refParts := splitKeepSeparators(reference)
	candParts := splitKeepSeparators(candidate)

	var spans []ChangeHighlight
	pos := 0
	for i, part := range candParts {
		var refPart string
		if i < len(refParts) {
			refPart = refParts[i]
		}
		if part != refPart && strings.TrimSpace(part) != "" {
			spans = append(spans, ChangeHighlight{Start: pos, End: pos + len(part)})
		}
		pos += len(part)
	}

	// Candidate grew past the reference: everything after the reference's
	// extent is changed.
	if len(candParts) > len(refParts) && len(reference) < len(candidate) {
		spans = append(spans, ChangeHighlight{Start: len(reference), End: len(candidate)})
	}

	return mergeSpans(spans)
}

// mergeSpans sorts spans and coalesces any that touch or overlap.
func mergeSpans(spans []ChangeHighlight) []ChangeHighlight {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
