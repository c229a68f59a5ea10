package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetIndex(t *testing.T) {
	require.Len(t, Alphabet, N)
	seen := make(map[rune]bool)
	for i, r := range Alphabet {
		assert.False(t, seen[r], "duplicate %c", r)
		seen[r] = true
		got, err := IndexOf(r)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
		ok   bool
	}{
		{'ア', 'ア', true},
		{'ァ', 'ア', true},
		{'ギ', 'キ', true},
		{'パ', 'ハ', true},
		{'ッ', 'ツ', true},
		{'ヂ', 'チ', true},
		{'ュ', 'ユ', true},
		{'ヲ', 'オ', true},
		{'ヴ', 'ハ', true},
		{'ン', 'ン', true},
		{'ー', 0, false},
		{'あ', 0, false},
		{'A', 0, false},
		{'漢', 0, false},
		{'ヵ', 0, false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		assert.Equal(t, tt.ok, ok, "Normalize(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for r := rune(lowest); r <= highest; r++ {
		once, ok := Normalize(r)
		if !ok {
			continue
		}
		twice, ok := Normalize(once)
		require.True(t, ok, "%q normalized to %q which has no canonical form", r, once)
		assert.Equal(t, once, twice, "rune %q", r)
		_, member := index[once]
		assert.True(t, member, "%q normalized outside the alphabet", r)
	}
}

func TestIndexOfInvalid(t *testing.T) {
	for _, r := range []rune{'ー', 'a', 'あ', '地'} {
		_, err := IndexOf(r)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "rune %q", r)
	}
}

func TestNormalizeReading(t *testing.T) {
	assert.Equal(t, "チキユウ", NormalizeReading("チキュウ"))
	assert.Equal(t, "ツキノイシ", NormalizeReading("ツキノイシ"))
	assert.Equal(t, "ラメン", NormalizeReading("ラーメン"))
	assert.Equal(t, "コヒ", NormalizeReading("コーヒー"))
	assert.Equal(t, "", NormalizeReading("ーー"))
	assert.Equal(t, "キツテ", NormalizeReading("キッテ"))
	assert.Equal(t, "ハアイオリン", NormalizeReading("ヴァイオリン"))
}

func TestToBitset(t *testing.T) {
	got := ToBitset("チキュウ")
	want := uint64(1)<<16 | uint64(1)<<6 | uint64(1)<<36 | uint64(1)<<2
	assert.Equal(t, want, got)
	assert.Equal(t, ToBitset("ハハ"), ToBitset("パパ"))
	assert.Zero(t, ToBitset("ー"))
	assert.Zero(t, ToBitset(""))
}

func TestToBitsetCountsDistinctSymbols(t *testing.T) {
	readings := []string{"チキュウ", "ツキノイシ", "ガギグゲゴ", "カガ", "ココココ", "ラーメン", "abc"}
	for _, r := range readings {
		distinct := make(map[rune]bool)
		for _, c := range NormalizeReading(r) {
			distinct[c] = true
		}
		assert.Equal(t, len(distinct), Count(ToBitset(r)), "reading %q", r)
	}
}

func TestBitsToKana(t *testing.T) {
	assert.Equal(t, []string{"イ", "シ", "ツ", "ノ"}, BitsToKana(ToBitset("ツノイシ")))
	assert.Empty(t, BitsToKana(0))
}

func TestToKatakana(t *testing.T) {
	assert.Equal(t, "チキュウ", ToKatakana("ちきゅう"))
	assert.Equal(t, "ラーメン", ToKatakana("らーめん"))
	assert.Equal(t, "地球", ToKatakana("地球"))
	assert.True(t, IsKanaString("ちきゅう"))
	assert.True(t, IsKanaString("ラーメン"))
	assert.False(t, IsKanaString("地球"))
	assert.False(t, IsKanaString(""))
}
