package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectChangedLines(t *testing.T) {
	patch := "@@ -1,5 +1,6 @@\n one\n two\n+three\n four\n five\n six"
	hunks := Parse(patch)
	require.Len(t, hunks, 1)

	lines := SelectChangedLines(hunks, DefaultContextWindow)
	require.Len(t, lines, 1)

	assert.Equal(t, 3, lines[0].NewLineNumber)
	assert.Equal(t, "three", lines[0].Content)
	// three lines each side of the addition, all inside the hunk
	assert.Equal(t, "one\ntwo\nthree\nfour\nfive\nsix", lines[0].Context)
}

func TestSelectChangedLinesClampsAtHunkBounds(t *testing.T) {
	hunks := Parse("@@ -1,1 +1,2 @@\n+first\n keep")

	lines := SelectChangedLines(hunks, DefaultContextWindow)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].NewLineNumber)
	assert.Equal(t, "first\nkeep", lines[0].Context)
}

func TestSelectChangedLinesNeverCrossesHunks(t *testing.T) {
	patch := "@@ -1,1 +1,2 @@\n a\n+alpha\n@@ -50,1 +51,2 @@\n b\n+beta"
	hunks := Parse(patch)
	require.Len(t, hunks, 2)

	lines := SelectChangedLines(hunks, DefaultContextWindow)
	require.Len(t, lines, 2)

	assert.Equal(t, "a\nalpha", lines[0].Context)
	assert.Equal(t, "b\nbeta", lines[1].Context)
	assert.NotContains(t, lines[0].Context, "beta")
	assert.NotContains(t, lines[1].Context, "alpha")
}

func TestSelectChangedLinesOrdering(t *testing.T) {
	patch := "@@ -1,2 +1,4 @@\n a\n+one\n+two\n b\n@@ -10,1 +12,2 @@\n c\n+three"
	hunks := Parse(patch)

	lines := SelectChangedLines(hunks, 1)
	require.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0].Content)
	assert.Equal(t, "two", lines[1].Content)
	assert.Equal(t, "three", lines[2].Content)
	assert.Equal(t, []int{2, 3, 13}, []int{
		lines[0].NewLineNumber, lines[1].NewLineNumber, lines[2].NewLineNumber,
	})
}

func TestSelectChangedLinesWindowVariants(t *testing.T) {
	hunks := Parse("@@ -1,3 +1,4 @@\n a\n b\n+x\n c")

	t.Run("zero window is just the line", func(t *testing.T) {
		lines := SelectChangedLines(hunks, 0)
		require.Len(t, lines, 1)
		assert.Equal(t, "x", lines[0].Context)
	})

	t.Run("negative window falls back to the default", func(t *testing.T) {
		lines := SelectChangedLines(hunks, -1)
		require.Len(t, lines, 1)
		assert.Equal(t, "a\nb\nx\nc", lines[0].Context)
	})

	t.Run("no additions yields nothing", func(t *testing.T) {
		assert.Empty(t, SelectChangedLines(Parse("@@ -1,2 +1,1 @@\n a\n-b"), 3))
	})
}
