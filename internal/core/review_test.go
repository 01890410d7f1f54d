package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMapRoundTrip(t *testing.T) {
	original := ScoreMap{"accuracy": 8, "clarity": 5}

	value, err := original.Value()
	require.NoError(t, err)

	var restored ScoreMap
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestScoreMapScan(t *testing.T) {
	t.Run("string source", func(t *testing.T) {
		var m ScoreMap
		require.NoError(t, m.Scan(`{"accuracy": 7}`))
		assert.Equal(t, ScoreMap{"accuracy": 7}, m)
	})

	t.Run("nil source resets the map", func(t *testing.T) {
		m := ScoreMap{"stale": 1}
		require.NoError(t, m.Scan(nil))
		assert.Nil(t, m)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		var m ScoreMap
		assert.Error(t, m.Scan(42))
	})
}
