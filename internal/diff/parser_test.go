package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		patch     string
		wantHunks int
	}{
		{
			name:      "empty patch",
			patch:     "",
			wantHunks: 0,
		},
		{
			name:      "no hunk header",
			patch:     "just some text\nnothing diff-like here",
			wantHunks: 0,
		},
		{
			name:      "single hunk",
			patch:     "@@ -1,3 +1,4 @@\n context\n+added\n context",
			wantHunks: 1,
		},
		{
			name:      "two hunks",
			patch:     "@@ -1,2 +1,3 @@\n a\n+b\n@@ -10,2 +11,3 @@\n c\n+d",
			wantHunks: 2,
		},
		{
			name:      "malformed header closes hunk",
			patch:     "@@ -1,2 +1,3 @@\n a\n+b\n@@ not a header @@\n+dangling",
			wantHunks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunks := Parse(tt.patch)
			assert.Len(t, hunks, tt.wantHunks)
		})
	}
}

func TestParseLineNumbering(t *testing.T) {
	patch := "@@ -10,3 +10,4 @@ func foo() {\n context one\n-removed\n+added one\n+added two\n context two"

	hunks := Parse(patch)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, 10, h.OldStart)
	assert.Equal(t, 3, h.OldLines)
	assert.Equal(t, 10, h.NewStart)
	assert.Equal(t, 4, h.NewLines)
	require.Len(t, h.Lines, 5)

	// context one sits at 10/10 on both sides
	assert.Equal(t, LineContext, h.Lines[0].Kind)
	assert.Equal(t, 10, h.Lines[0].OldLine)
	assert.Equal(t, 10, h.Lines[0].NewLine)

	// removed consumes only the old counter
	assert.Equal(t, LineDeleted, h.Lines[1].Kind)
	assert.Equal(t, 11, h.Lines[1].OldLine)
	assert.Equal(t, 0, h.Lines[1].NewLine)

	// the two additions consume only the new counter
	assert.Equal(t, LineAdded, h.Lines[2].Kind)
	assert.Equal(t, 11, h.Lines[2].NewLine)
	assert.Equal(t, "added one", h.Lines[2].Content)
	assert.Equal(t, LineAdded, h.Lines[3].Kind)
	assert.Equal(t, 12, h.Lines[3].NewLine)

	// trailing context advances both again
	assert.Equal(t, LineContext, h.Lines[4].Kind)
	assert.Equal(t, 12, h.Lines[4].OldLine)
	assert.Equal(t, 13, h.Lines[4].NewLine)
}

func TestParseOmittedCounts(t *testing.T) {
	hunks := Parse("@@ -5 +7 @@\n-old\n+new")
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, 5, h.OldStart)
	assert.Equal(t, 1, h.OldLines)
	assert.Equal(t, 7, h.NewStart)
	assert.Equal(t, 1, h.NewLines)
	require.Len(t, h.Lines, 2)
	assert.Equal(t, 5, h.Lines[0].OldLine)
	assert.Equal(t, 7, h.Lines[1].NewLine)
}

func TestParseCountersResetPerHunk(t *testing.T) {
	patch := "@@ -1,2 +1,3 @@\n a\n+b\n@@ -100,2 +200,3 @@\n c\n+d"

	hunks := Parse(patch)
	require.Len(t, hunks, 2)
	assert.Equal(t, 2, hunks[0].Lines[1].NewLine)
	assert.Equal(t, 100, hunks[1].Lines[0].OldLine)
	assert.Equal(t, 200, hunks[1].Lines[0].NewLine)
	assert.Equal(t, 201, hunks[1].Lines[1].NewLine)
}

func TestParseSkipsMetadata(t *testing.T) {
	patch := "diff --git a/main.go b/main.go\nindex abc..def 100644\n--- a/main.go\n+++ b/main.go\n@@ -1,2 +1,2 @@\n context\n-old\n+new\n\\ No newline at end of file"

	hunks := Parse(patch)
	require.Len(t, hunks, 1)
	require.Len(t, hunks[0].Lines, 3)
	assert.Equal(t, LineContext, hunks[0].Lines[0].Kind)
	assert.Equal(t, LineDeleted, hunks[0].Lines[1].Kind)
	assert.Equal(t, LineAdded, hunks[0].Lines[2].Kind)
	assert.Equal(t, "new", hunks[0].Lines[2].Content)
}
