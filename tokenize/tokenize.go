// Package tokenize derives katakana readings for Japanese text with kagome.
package tokenize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"shiritori/kana"
)

var (
	// ErrNoReading is returned when a token has no known reading.
	ErrNoReading = errors.New("no reading")
	// ErrUnknownDict is returned by New for unsupported dictionary names.
	ErrUnknownDict = errors.New("unknown tokenizer dictionary")
)

// Token is a morpheme with its katakana reading.
type Token struct {
	Surface string `json:"surface"`
	Reading string `json:"reading,omitempty"`
	POS     string `json:"pos,omitempty"`
}

// Reader wraps a kagome tokenizer. It is safe for concurrent use.
type Reader struct {
	kg *tokenizer.Tokenizer
}

// CheckDict reports whether name is a dictionary New accepts, without
// loading it.
func CheckDict(name string) error {
	switch name {
	case "", "ipa", "uni":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDict, name)
	}
}

func loadDict(name string) (*dict.Dict, error) {
	switch name {
	case "", "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, name)
	}
}

// New builds a Reader over the "ipa" or "uni" dictionary.
func New(name string) (*Reader, error) {
	d, err := loadDict(name)
	if err != nil {
		return nil, err
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return &Reader{kg: kg}, nil
}

// Tokenize splits text into tokens, dropping whitespace.
func (r *Reader) Tokenize(text string) []Token {
	ktoks := r.kg.Tokenize(text)
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY || strings.TrimSpace(kt.Surface) == "" {
			continue
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		pos := ""
		if p := kt.POS(); len(p) > 0 {
			pos = p[0]
		}
		out = append(out, Token{Surface: kt.Surface, Reading: reading, POS: pos})
	}
	return out
}

// Reading returns the katakana reading of text. Kana tokens the dictionary
// does not know are read as written.
func (r *Reader) Reading(text string) (string, error) {
	var b strings.Builder
	for _, t := range r.Tokenize(text) {
		switch {
		case t.Reading != "":
			b.WriteString(t.Reading)
		case kana.IsKanaString(t.Surface):
			b.WriteString(kana.ToKatakana(t.Surface))
		default:
			return "", fmt.Errorf("%w for %q", ErrNoReading, t.Surface)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w for %q", ErrNoReading, text)
	}
	return b.String(), nil
}
