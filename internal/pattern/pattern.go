package pattern

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region mark

// Mark is the per-position feedback symbol.
type Mark uint8

const (
	Absent  Mark = iota // letter not in the target (or all copies already accounted for)
	Present             // letter in the target at another position
	Correct             // letter at this exact position
)

func (m Mark) String() string {
	switch m {
	case Correct:
		return "G"
	case Present:
		return "Y"
	default:
		return "_"
	}
}

// #endregion

// #region pattern

// Count is the number of distinct patterns (3^Length).
const Count = 243

// Pattern is the feedback for one guess, one mark per letter position.
type Pattern [word.Length]Mark

// Solved is the all-Correct pattern.
var Solved = Pattern{Correct, Correct, Correct, Correct, Correct}

// Code maps p to a unique integer in [0, Count), position 0 most significant.
func (p Pattern) Code() int {
	code := 0
	for _, m := range p {
		code = code*3 + int(m)
	}
	return code
}

// FromCode is the inverse of Code.
func FromCode(code int) Pattern {
	var p Pattern
	for i := word.Length - 1; i >= 0; i-- {
		p[i] = Mark(code % 3)
		code /= 3
	}
	return p
}

// IsSolved reports whether every position is Correct.
func (p Pattern) IsSolved() bool { return p == Solved }

func (p Pattern) String() string {
	var b strings.Builder
	for _, m := range p {
		b.WriteString(m.String())
	}
	return b.String()
}

// Parse reads a pattern written as G/Y/_ (also '-' or '.' for absent) or 2/1/0.
func Parse(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	var p Pattern
	if len(s) != word.Length {
		return p, fmt.Errorf("parse pattern %q: %w", s, word.ErrInvalidLength)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g', '2':
			p[i] = Correct
		case 'Y', 'y', '1':
			p[i] = Present
		case '_', '-', '.', 'B', 'b', '0':
			p[i] = Absent
		default:
			return p, fmt.Errorf("parse pattern %q: unknown mark %q at position %d", s, s[i], i)
		}
	}
	return p, nil
}

// #endregion

// #region feedback

// Feedback computes the pattern for guess against target after lowercasing both.
// It fails if either word is not Length letters a-z.
func Feedback(guess, target word.Word) (Pattern, error) {
	g, err := word.Parse(string(guess))
	if err != nil {
		return Pattern{}, fmt.Errorf("feedback guess: %w", err)
	}
	t, err := word.Parse(string(target))
	if err != nil {
		return Pattern{}, fmt.Errorf("feedback target: %w", err)
	}
	return Compute(g, t), nil
}

// Compute is Feedback for words already known to be valid. It does not allocate.
//
// Exact matches are marked first and consume the target's letter counts; the remaining
// positions are then marked Present while unconsumed copies of the letter remain.
func Compute(guess, target word.Word) Pattern {
	var p Pattern
	var remaining [word.Alphabet]int
	for i := 0; i < word.Length; i++ {
		remaining[target[i]-'a']++
	}

	for i := 0; i < word.Length; i++ {
		if guess[i] == target[i] {
			p[i] = Correct
			remaining[guess[i]-'a']--
		}
	}

	for i := 0; i < word.Length; i++ {
		if p[i] == Correct {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			p[i] = Present
			remaining[c]--
		}
	}
	return p
}

// #endregion
