package kana

import "strings"

const (
	hiraganaFirst = 0x3041
	hiraganaLast  = 0x3096
	katakanaFirst = 0x30A1
	katakanaLast  = 0x30FA
	prolonged     = 'ー'
	hiraganaShift = katakanaFirst - hiraganaFirst
)

// ToKatakana converts hiragana in s to katakana, leaving everything else as is.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= hiraganaFirst && r <= hiraganaLast {
			return r + hiraganaShift
		}
		return r
	}, s)
}

// IsKana reports whether r is hiragana, katakana or the long vowel mark.
func IsKana(r rune) bool {
	return (r >= hiraganaFirst && r <= hiraganaLast) ||
		(r >= katakanaFirst && r <= katakanaLast) ||
		r == prolonged
}

// IsKanaString reports whether s is non-empty and made only of kana.
func IsKanaString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}
