// Package kana folds katakana into the 45 canonical sounds used for chaining
// and encodes readings as bitsets over them.
package kana

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidCharacter is returned when a rune has no canonical index.
var ErrInvalidCharacter = errors.New("invalid character")

// N is the number of canonical symbols.
const N = 45

// Nasal is the canonical ン. No word may start with it, so words ending in it
// are dead ends.
const Nasal = 'ン'

const (
	lowest  = 'ァ'
	highest = 'ヴ'
)

// Alphabet lists the canonical symbols in index order.
var Alphabet = [N]rune{
	'ア', 'イ', 'ウ', 'エ', 'オ',
	'カ', 'キ', 'ク', 'ケ', 'コ',
	'サ', 'シ', 'ス', 'セ', 'ソ',
	'タ', 'チ', 'ツ', 'テ', 'ト',
	'ナ', 'ニ', 'ヌ', 'ネ', 'ノ',
	'ハ', 'ヒ', 'フ', 'ヘ', 'ホ',
	'マ', 'ミ', 'ム', 'メ', 'モ',
	'ヤ', 'ユ', 'ヨ',
	'ラ', 'リ', 'ル', 'レ', 'ロ',
	'ワ', 'ン',
}

// folded maps small, voiced and archaic forms to their base symbol.
// A zero value means the rune is dropped.
var folded = map[rune]rune{
	'ァ': 'ア', 'ィ': 'イ', 'ゥ': 'ウ', 'ェ': 'エ', 'ォ': 'オ',
	'ガ': 'カ', 'ギ': 'キ', 'グ': 'ク', 'ゲ': 'ケ', 'ゴ': 'コ',
	'ザ': 'サ', 'ジ': 'シ', 'ズ': 'ス', 'ゼ': 'セ', 'ゾ': 'ソ',
	'ダ': 'タ', 'ヂ': 'チ', 'ッ': 'ツ', 'ヅ': 'ツ', 'デ': 'テ', 'ド': 'ト',
	'バ': 'ハ', 'パ': 'ハ', 'ビ': 'ヒ', 'ピ': 'ヒ', 'ブ': 'フ', 'プ': 'フ',
	'ベ': 'ヘ', 'ペ': 'ヘ', 'ボ': 'ホ', 'ポ': 'ホ',
	'ャ': 'ヤ', 'ュ': 'ユ', 'ョ': 'ヨ',
	'ヮ': 'ワ', 'ヰ': 'イ', 'ヱ': 'エ', 'ヲ': 'オ', 'ヴ': 'ハ',
	'ー': 0,
}

var index = func() map[rune]int {
	m := make(map[rune]int, N)
	for i, r := range Alphabet {
		m[r] = i
	}
	return m
}()

// Normalize returns the canonical symbol for r. The second result is false
// when r carries no sound of its own (the long vowel mark) or lies outside
// the katakana range.
func Normalize(r rune) (rune, bool) {
	if r < lowest || r > highest {
		return 0, false
	}
	if f, ok := folded[r]; ok {
		return f, f != 0
	}
	return r, true
}

// IndexOf returns the canonical index of r.
func IndexOf(r rune) (int, error) {
	if r < lowest || r > highest {
		return 0, fmt.Errorf("%w: %q is not katakana", ErrInvalidCharacter, r)
	}
	n, ok := Normalize(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no canonical form", ErrInvalidCharacter, r)
	}
	i, ok := index[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
	}
	return i, nil
}

// NormalizeReading folds every rune of s and drops the ones without a
// canonical form, keeping order.
func NormalizeReading(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if n, ok := Normalize(r); ok {
			b.WriteRune(n)
		}
	}
	return b.String()
}

// ToBitset sets bit i for every canonical symbol i present in s.
func ToBitset(s string) uint64 {
	var set uint64
	for _, r := range s {
		n, ok := Normalize(r)
		if !ok {
			continue
		}
		set |= 1 << index[n]
	}
	return set
}

// BitsToKana lists the symbols of a bitset in alphabet order.
func BitsToKana(set uint64) []string {
	out := make([]string, 0, bits.OnesCount64(set))
	for i := 0; i < N; i++ {
		if set&(1<<i) != 0 {
			out = append(out, string(Alphabet[i]))
		}
	}
	return out
}

// Count returns the number of canonical symbols in a bitset.
func Count(set uint64) int {
	return bits.OnesCount64(set)
}
