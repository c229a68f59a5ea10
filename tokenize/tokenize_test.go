package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReading(t *testing.T) {
	r, err := New("ipa")
	require.NoError(t, err)

	tests := []struct {
		text string
		want string
	}{
		{"地球", "チキュウ"},
		{"月の石", "ツキノイシ"},
	}
	for _, tt := range tests {
		got, err := r.Reading(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestReadingUnknown(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	_, err = r.Reading("abc")
	assert.ErrorIs(t, err, ErrNoReading)

	_, err = r.Reading("   ")
	assert.ErrorIs(t, err, ErrNoReading)
}

func TestTokenizeDropsWhitespace(t *testing.T) {
	r, err := New("ipa")
	require.NoError(t, err)

	toks := r.Tokenize("月 の 石")
	require.Len(t, toks, 3)
	assert.Equal(t, "月", toks[0].Surface)
	assert.Equal(t, "ツキ", toks[0].Reading)
	assert.Equal(t, "名詞", toks[0].POS)
}

func TestNewUnknownDict(t *testing.T) {
	_, err := New("jumandic")
	assert.ErrorIs(t, err, ErrUnknownDict)
}

func TestCheckDict(t *testing.T) {
	for _, name := range []string{"", "ipa", "uni"} {
		assert.NoError(t, CheckDict(name), name)
	}
	assert.ErrorIs(t, CheckDict("jumandic"), ErrUnknownDict)
}
