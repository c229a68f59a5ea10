package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiritori/model"
	"shiritori/tokenize"
)

type fakeSource map[string]string

func (f fakeSource) Reading(text string) (string, error) {
	if r, ok := f[text]; ok {
		return r, nil
	}
	return "", errors.New("unknown")
}

func TestLookup(t *testing.T) {
	r := New(fakeSource{"地球": "チキュウ"})

	tests := []struct {
		input   string
		surface string
		reading string
	}{
		{"チキュウ", "チキュウ", "チキュウ"},
		{"  ちきゅう ", "ちきゅう", "チキュウ"},
		{"地球,チキュウ", "地球", "チキュウ"},
		{"地球, ちきゅう", "地球", "チキュウ"},
		{",ウシ", "ウシ", "ウシ"},
		{"地球", "地球", "チキュウ"},
	}
	for _, tt := range tests {
		w, err := r.Lookup(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.surface, w.Surface, tt.input)
		assert.Equal(t, tt.reading, w.Reading, tt.input)
	}
}

func TestLookupErrors(t *testing.T) {
	r := New(fakeSource{})

	_, err := r.Lookup("   ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = r.Lookup("地球,")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = r.Lookup("ーー")
	assert.ErrorIs(t, err, model.ErrEmptyNormalizedWord)

	_, err = r.Lookup("月")
	assert.Error(t, err)

	_, err = New(nil).Lookup("月")
	assert.ErrorIs(t, err, tokenize.ErrNoReading)
}

func TestReading(t *testing.T) {
	r := New(nil)
	got, err := r.Reading("つきのいし")
	require.NoError(t, err)
	assert.Equal(t, "ツキノイシ", got)
}

func TestNewWithTokenizer(t *testing.T) {
	r, err := NewWithTokenizer("ipa")
	require.NoError(t, err)
	lazy, ok := r.src.(*lazyTokenizer)
	require.True(t, ok)

	w, err := r.Lookup("チキュウ")
	require.NoError(t, err)
	assert.Equal(t, "チキュウ", w.Reading)
	assert.Nil(t, lazy.r, "kana input must not load the dictionary")

	w, err = r.Lookup("地球")
	require.NoError(t, err)
	assert.Equal(t, "チキュウ", w.Reading)
	assert.NotNil(t, lazy.r)

	_, err = NewWithTokenizer("bogus")
	assert.ErrorIs(t, err, tokenize.ErrUnknownDict)
}
