// Package lookup turns user input into Words. Input may be
// "surface,reading", kana, or text the tokenizer can read.
package lookup

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"shiritori/kana"
	"shiritori/model"
	"shiritori/tokenize"
)

// ErrEmptyInput is returned for blank input.
var ErrEmptyInput = errors.New("empty input")

// ReadingSource supplies readings for non-kana text.
type ReadingSource interface {
	Reading(text string) (string, error)
}

// Resolver resolves input words. Without a ReadingSource only kana and
// explicit "surface,reading" input can be resolved.
type Resolver struct {
	src ReadingSource
}

// New returns a Resolver that asks src for readings of non-kana input.
func New(src ReadingSource) *Resolver {
	return &Resolver{src: src}
}

// NewWithTokenizer returns a Resolver backed by the named kagome dictionary.
// The dictionary is loaded on the first input that needs it.
func NewWithTokenizer(dict string) (*Resolver, error) {
	if err := tokenize.CheckDict(dict); err != nil {
		return nil, err
	}
	return New(&lazyTokenizer{dict: dict}), nil
}

type lazyTokenizer struct {
	dict string
	once sync.Once
	r    *tokenize.Reader
	err  error
}

func (l *lazyTokenizer) Reading(text string) (string, error) {
	l.once.Do(func() {
		l.r, l.err = tokenize.New(l.dict)
	})
	if l.err != nil {
		return "", l.err
	}
	return l.r.Reading(text)
}

// Lookup resolves input to a Word.
func (r *Resolver) Lookup(input string) (*model.Word, error) {
	surface, reading, err := r.split(input)
	if err != nil {
		return nil, err
	}
	w, err := model.NewWord(surface, reading)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", input, err)
	}
	return w, nil
}

// Reading resolves input to its katakana reading.
func (r *Resolver) Reading(input string) (string, error) {
	_, reading, err := r.split(input)
	return reading, err
}

func (r *Resolver) split(input string) (surface, reading string, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", ErrEmptyInput
	}
	if s, rd, ok := strings.Cut(input, ","); ok {
		surface, reading = strings.TrimSpace(s), strings.TrimSpace(rd)
		if surface == "" {
			surface = reading
		}
		if reading == "" {
			return "", "", fmt.Errorf("%w: no reading in %q", ErrEmptyInput, input)
		}
		return surface, kana.ToKatakana(reading), nil
	}
	if kana.IsKanaString(input) {
		return input, kana.ToKatakana(input), nil
	}
	if r.src == nil {
		return "", "", fmt.Errorf("%w for %q: no tokenizer configured", tokenize.ErrNoReading, input)
	}
	reading, err = r.src.Reading(input)
	if err != nil {
		return "", "", err
	}
	return input, reading, nil
}
