package model

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"shiritori/kana"
)

// ErrEmptyNormalizedWord is returned when a reading has no canonical symbols.
var ErrEmptyNormalizedWord = errors.New("reading normalizes to an empty word")

// Word is a dictionary entry with its reading precomputed for chaining.
// A Word is never modified after NewWord returns, so it may be shared.
type Word struct {
	Surface    string `json:"surface"`
	Reading    string `json:"reading"`
	Normalized string `json:"normalized"`
	Size       int    `json:"size"`
	Bits       uint64 `json:"bits"`
	First      int    `json:"first"`
	Last       int    `json:"last"`
}

// NewWord builds a Word. An empty reading means the surface is the reading.
func NewWord(surface, reading string) (*Word, error) {
	if reading == "" {
		reading = surface
	}
	normalized := kana.NormalizeReading(reading)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyNormalizedWord, reading)
	}
	first, _ := utf8.DecodeRuneInString(normalized)
	last, _ := utf8.DecodeLastRuneInString(normalized)
	fi, err := kana.IndexOf(first)
	if err != nil {
		return nil, err
	}
	li, err := kana.IndexOf(last)
	if err != nil {
		return nil, err
	}
	return &Word{
		Surface:    surface,
		Reading:    reading,
		Normalized: normalized,
		Size:       utf8.RuneCountInString(normalized),
		Bits:       kana.ToBitset(normalized),
		First:      fi,
		Last:       li,
	}, nil
}

// SurfaceLen is the length of the display form in runes.
func (w *Word) SurfaceLen() int {
	return utf8.RuneCountInString(w.Surface)
}

func (w *Word) String() string {
	return w.Surface + "(" + w.Reading + ")"
}
