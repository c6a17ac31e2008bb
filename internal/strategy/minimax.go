package strategy

import (
	"math"

	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// MinimaxStrategy picks the guess whose worst-case pattern group is smallest.
type MinimaxStrategy struct {
	base
}

func (s *MinimaxStrategy) ID() ID { return Minimax }

func (s *MinimaxStrategy) ChooseBestGuess(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, error) {
	if w, done, err := s.shortcut(candidates, attempt, excluding); done {
		return w, err
	}

	var groups [pattern.Count]int
	best := math.MaxInt
	var bestWord word.Word
	for i := 0; i < s.vocab.Len(); i++ {
		g := s.vocab.At(i)
		if excluding.Has(g) {
			continue
		}
		partition(g, candidates, &groups)
		if worst := largestGroup(&groups); worst < best {
			best = worst
			bestWord = g
		}
	}
	if bestWord == "" {
		return "", ErrNoGuess
	}
	return bestWord, nil
}
