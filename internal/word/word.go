package word

import (
	"errors"
	"fmt"
	"strings"
)

// #region constants

// Length is the fixed number of letters in every word.
const Length = 5

// Alphabet is the number of distinct letters a word may use (a-z).
const Alphabet = 26

// #endregion

// #region errors

var (
	ErrInvalidLength     = errors.New("invalid word length")
	ErrInvalidCharacters = errors.New("word contains non-alphabetic characters")
)

// #endregion

// #region word

// Word is a lowercase five-letter word. Values produced by Parse are always valid.
type Word string

// Parse normalises s (trim + lowercase) and validates it as a Word.
func Parse(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidLength, s, len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCharacters, s)
		}
	}
	return Word(s), nil
}

// MustParse is Parse for literals in tests and tables; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseAll parses every entry, failing on the first invalid one.
func ParseAll(ss []string) ([]Word, error) {
	out := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Strings converts words back to plain strings.
func Strings(ws []Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}

// #endregion
