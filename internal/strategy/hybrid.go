package strategy

import (
	"math"

	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// HybridStrategy blends normalised frequency and entropy scores. Entropy dominates
// early; frequency takes over as attempts accumulate.
type HybridStrategy struct {
	base
}

func (s *HybridStrategy) ID() ID { return Hybrid }

func (s *HybridStrategy) ChooseBestGuess(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, error) {
	if w, done, err := s.shortcut(candidates, attempt, excluding); done {
		return w, err
	}

	freq := countFrequencies(candidates)
	var groups [pattern.Count]int
	guesses := make([]word.Word, 0, s.vocab.Len())
	freqScores := make([]float64, 0, s.vocab.Len())
	entropyScores := make([]float64, 0, s.vocab.Len())
	for i := 0; i < s.vocab.Len(); i++ {
		g := s.vocab.At(i)
		if excluding.Has(g) {
			continue
		}
		partition(g, candidates, &groups)
		guesses = append(guesses, g)
		freqScores = append(freqScores, freq.score(g))
		entropyScores = append(entropyScores, expectedInformation(&groups, len(candidates)))
	}
	if len(guesses) == 0 {
		return "", ErrNoGuess
	}

	normalize(freqScores)
	normalize(entropyScores)
	freqWeight, entropyWeight := hybridWeights(attempt)

	best := -1.0
	var bestWord word.Word
	for i, g := range guesses {
		if score := freqWeight*freqScores[i] + entropyWeight*entropyScores[i]; score > best {
			best = score
			bestWord = g
		}
	}
	return bestWord, nil
}

// hybridWeights returns (frequency, entropy) weights for attempt, summing to 1.
func hybridWeights(attempt int) (float64, float64) {
	a := float64(attempt)
	entropyWeight := math.Max(0.7-0.1*a, 0.1)
	freqWeight := math.Min(0.3+0.1*a, 0.9)
	total := entropyWeight + freqWeight
	return freqWeight / total, entropyWeight / total
}
