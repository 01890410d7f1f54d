package diff

import (
	"strings"
)

// DefaultContextWindow is the number of neighboring hunk lines included on
// each side of an added line when building its context.
const DefaultContextWindow = 3

// ChangedLine is one added line plus a bounded window of surrounding line
// contents from the same hunk. It is the unit of work handed to a reviewer
// agent.
type ChangedLine struct {
	NewLineNumber int
	Content       string
	Context       string
}

// SelectChangedLines emits one ChangedLine per added line, in hunk order and
// then in-hunk order. The context is built from up to contextWindow lines
// before and after the added line, clamped at the hunk boundaries, joined in
// original order; it never mixes content from two hunks. A contextWindow
// below zero falls back to DefaultContextWindow.
func SelectChangedLines(hunks []Hunk, contextWindow int) []ChangedLine {
	if contextWindow < 0 {
		contextWindow = DefaultContextWindow
	}

	var changed []ChangedLine
	for _, h := range hunks {
		for i, line := range h.Lines {
			if line.Kind != LineAdded {
				continue
			}

			lo := i - contextWindow
			if lo < 0 {
				lo = 0
			}
			hi := i + contextWindow
			if hi > len(h.Lines)-1 {
				hi = len(h.Lines) - 1
			}

			var b strings.Builder
			for j := lo; j <= hi; j++ {
				if j > lo {
					b.WriteByte('\n')
				}
				b.WriteString(h.Lines[j].Content)
			}

			changed = append(changed, ChangedLine{
				NewLineNumber: line.NewLine,
				Content:       line.Content,
				Context:       b.String(),
			})
		}
	}
	return changed
}
