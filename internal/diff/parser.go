// Package diff parses unified-diff patch text into hunks and selects the
// changed lines a reviewer agent should look at. Both operations are pure
// functions over their inputs; nothing in this package is persisted.
package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies a single line inside a hunk.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineDeleted
)

// Line is one line of a hunk, with the diff marker stripped. OldLine and
// NewLine are the 1-based positions on the old and new side of the file; a
// position is zero when the line does not exist on that side.
type Line struct {
	Kind    LineKind
	Content string
	OldLine int
	NewLine int
}

// Hunk is one contiguous `@@`-delimited block of a unified diff.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse splits unified-diff text into hunks. It is deliberately lenient:
// lines outside a recognized hunk (file headers, diff metadata, garbage) are
// skipped, a malformed hunk header closes the current hunk, and an empty
// patch yields no hunks. Parse never fails.
//
// Old and new line counters are seeded from each hunk header and advanced
// independently: added lines consume only the new counter, deleted lines only
// the old one, context lines both. Counters never carry across hunks.
func Parse(patch string) []Hunk {
	var hunks []Hunk
	inHunk := false
	oldLine, newLine := 0, 0

	for _, raw := range strings.Split(patch, "\n") {
		if strings.HasPrefix(raw, "@@") {
			m := hunkHeaderRegex.FindStringSubmatch(raw)
			if m == nil {
				inHunk = false
				continue
			}
			h := Hunk{
				OldStart: atoiOr(m[1], 1),
				OldLines: atoiOr(m[2], 1),
				NewStart: atoiOr(m[3], 1),
				NewLines: atoiOr(m[4], 1),
			}
			hunks = append(hunks, h)
			oldLine, newLine = h.OldStart, h.NewStart
			inHunk = true
			continue
		}

		if !inHunk {
			continue
		}
		cur := &hunks[len(hunks)-1]

		switch {
		case strings.HasPrefix(raw, "+++"), strings.HasPrefix(raw, "---"):
			// file headers, not hunk content
		case strings.HasPrefix(raw, "+"):
			cur.Lines = append(cur.Lines, Line{Kind: LineAdded, Content: raw[1:], NewLine: newLine})
			newLine++
		case strings.HasPrefix(raw, "-"):
			cur.Lines = append(cur.Lines, Line{Kind: LineDeleted, Content: raw[1:], OldLine: oldLine})
			oldLine++
		case strings.HasPrefix(raw, " "):
			cur.Lines = append(cur.Lines, Line{Kind: LineContext, Content: raw[1:], OldLine: oldLine, NewLine: newLine})
			oldLine++
			newLine++
		default:
			// "\ No newline at end of file" and similar noise
		}
	}

	return hunks
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
