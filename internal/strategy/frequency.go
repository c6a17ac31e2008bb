package strategy

import (
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// FrequencyStrategy favours guesses whose letters are common at their positions
// among the remaining candidates.
type FrequencyStrategy struct {
	base
}

func (s *FrequencyStrategy) ID() ID { return Frequency }

func (s *FrequencyStrategy) ChooseBestGuess(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, error) {
	if w, done, err := s.shortcut(candidates, attempt, excluding); done {
		return w, err
	}

	freq := countFrequencies(candidates)
	best := -1.0
	var bestWord word.Word
	for i := 0; i < s.vocab.Len(); i++ {
		g := s.vocab.At(i)
		if excluding.Has(g) {
			continue
		}
		if score := freq.score(g); score > best {
			best = score
			bestWord = g
		}
	}
	if bestWord == "" {
		return "", ErrNoGuess
	}
	return bestWord, nil
}
