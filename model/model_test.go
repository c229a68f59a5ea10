package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiritori/kana"
)

func TestNewWord(t *testing.T) {
	w, err := NewWord("地球", "チキュウ")
	require.NoError(t, err)

	assert.Equal(t, "地球", w.Surface)
	assert.Equal(t, "チキュウ", w.Reading)
	assert.Equal(t, "チキユウ", w.Normalized)
	assert.Equal(t, 4, w.Size)
	assert.Equal(t, kana.ToBitset("チキユウ"), w.Bits)
	assert.Equal(t, 16, w.First)
	assert.Equal(t, 2, w.Last)
	assert.Equal(t, "地球(チキュウ)", w.String())
	assert.Equal(t, 2, w.SurfaceLen())
}

func TestNewWordReadingDefaultsToSurface(t *testing.T) {
	w, err := NewWord("ツキノイシ", "")
	require.NoError(t, err)
	assert.Equal(t, "ツキノイシ", w.Reading)
	assert.Equal(t, 17, w.First)
	assert.Equal(t, 11, w.Last)
}

func TestNewWordFoldsEnds(t *testing.T) {
	w, err := NewWord("兎", "ウサギ")
	require.NoError(t, err)
	assert.Equal(t, 6, w.Last, "ギ folds to キ")

	w, err = NewWord("ラーメン", "")
	require.NoError(t, err)
	assert.Equal(t, 3, w.Size)
	assert.Equal(t, 44, w.Last)
}

func TestNewWordEmpty(t *testing.T) {
	for _, reading := range []string{"ーー", "abc", "地球"} {
		_, err := NewWord("x", reading)
		assert.ErrorIs(t, err, ErrEmptyNormalizedWord, "reading %q", reading)
	}
}

func TestCostOrdering(t *testing.T) {
	assert.True(t, Cost{2, 10}.Less(Cost{3, 4}))
	assert.True(t, Cost{3, 4}.Less(Cost{3, 5}))
	assert.False(t, Cost{3, 5}.Less(Cost{3, 5}))
	assert.True(t, Cost{1 << 40, 1 << 40}.Less(Infinity))
	assert.False(t, Infinity.Less(Infinity))
	assert.True(t, Infinity.IsInfinite())

	w, err := NewWord("牛", "ウシ")
	require.NoError(t, err)
	assert.Equal(t, Cost{2, 6}, Cost{1, 4}.Add(w))
	assert.Equal(t, "(2, 6)", Cost{2, 6}.String())
}
