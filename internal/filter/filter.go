package filter

import (
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region observation

// Observation is one guess together with the feedback it received.
type Observation struct {
	Guess   word.Word
	Pattern pattern.Pattern
}

// #endregion

// #region reduce

// Reduce keeps the words of pool that would have produced observed for guess.
// The result is a new slice in pool order; pool itself is never modified.
//
// Consistency is decided by recomputing the feedback, so the filter cannot disagree with
// pattern.Compute on repeated letters.
func Reduce(guess word.Word, pool []word.Word, observed pattern.Pattern) []word.Word {
	out := make([]word.Word, 0, len(pool))
	for _, w := range pool {
		if pattern.Compute(guess, w) == observed {
			out = append(out, w)
		}
	}
	return out
}

// ReduceAll applies Reduce for each observation in order.
func ReduceAll(pool []word.Word, observations []Observation) []word.Word {
	out := make([]word.Word, len(pool))
	copy(out, pool)
	for _, o := range observations {
		out = Reduce(o.Guess, out, o.Pattern)
		if len(out) == 0 {
			break
		}
	}
	return out
}

// #endregion
