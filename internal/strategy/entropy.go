package strategy

import (
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// EntropyStrategy picks the guess with the highest expected information gain.
type EntropyStrategy struct {
	base
}

func (s *EntropyStrategy) ID() ID { return Entropy }

// ChooseBestGuess scans the whole vocabulary and keeps the first word with the
// highest entropy over candidates.
func (s *EntropyStrategy) ChooseBestGuess(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, error) {
	if w, done, err := s.shortcut(candidates, attempt, excluding); done {
		return w, err
	}

	var groups [pattern.Count]int
	best := -1.0
	var bestWord word.Word
	for i := 0; i < s.vocab.Len(); i++ {
		g := s.vocab.At(i)
		if excluding.Has(g) {
			continue
		}
		partition(g, candidates, &groups)
		if e := expectedInformation(&groups, len(candidates)); e > best {
			best = e
			bestWord = g
		}
	}
	if bestWord == "" {
		return "", ErrNoGuess
	}
	return bestWord, nil
}
