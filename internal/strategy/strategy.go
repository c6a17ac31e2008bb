package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region strategy-id

// ID identifies a guess-scoring strategy.
type ID string

const (
	Entropy   ID = "entropy"
	Minimax   ID = "minimax"
	Frequency ID = "frequency"
	Hybrid    ID = "hybrid"
)

// IDs returns every built-in strategy in a stable order.
func IDs() []ID {
	return []ID{Entropy, Minimax, Frequency, Hybrid}
}

// ParseID maps a name (case-insensitive) to a built-in ID.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := DefaultOpenings[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return id, nil
}

// #endregion

// #region errors

var (
	ErrUnknownStrategy        = errors.New("unknown strategy")
	ErrEmptyVocabulary        = errors.New("empty vocabulary")
	ErrOpeningNotInVocabulary = errors.New("opening word not in vocabulary")
	ErrNoCandidates           = errors.New("no candidates")
	ErrNoGuess                = errors.New("every vocabulary word is excluded")
)

// #endregion

// #region interface

// Strategy picks the next guess for a candidate pool.
//
// Implementations hold only immutable data, so one value may serve many concurrent solves.
// All per-solve state (candidates, previous guesses) is passed in.
type Strategy interface {
	ID() ID
	ChooseBestGuess(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, error)
}

// #endregion

// #region exclusions

// Exclusions is the set of words already guessed in one solve. A nil value is empty.
type Exclusions map[word.Word]struct{}

// Has reports whether w is excluded.
func (e Exclusions) Has(w word.Word) bool {
	_, ok := e[w]
	return ok
}

// Add excludes w.
func (e Exclusions) Add(w word.Word) {
	e[w] = struct{}{}
}

// #endregion

// #region openings

// DefaultOpenings are the precomputed first guesses per strategy.
var DefaultOpenings = map[ID]word.Word{
	Entropy:   "tares",
	Minimax:   "serai",
	Frequency: "cares",
	Hybrid:    "tares",
}

// #endregion

// #region registry

// New builds the strategy id over vocab. An empty opening selects the default one.
func New(id ID, vocab *word.Vocabulary, opening word.Word) (Strategy, error) {
	if opening == "" {
		opening = DefaultOpenings[id]
	}
	b, err := newBase(vocab, opening)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", id, err)
	}
	switch id {
	case Entropy:
		return &EntropyStrategy{base: b}, nil
	case Minimax:
		return &MinimaxStrategy{base: b}, nil
	case Frequency:
		return &FrequencyStrategy{base: b}, nil
	case Hybrid:
		return &HybridStrategy{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
}

// #endregion

// #region base

// base carries what every strategy shares: the guess space and the opening word.
type base struct {
	vocab   *word.Vocabulary
	opening word.Word
}

func newBase(vocab *word.Vocabulary, opening word.Word) (base, error) {
	if vocab == nil || vocab.Len() == 0 {
		return base{}, ErrEmptyVocabulary
	}
	if !vocab.Contains(opening) {
		return base{}, fmt.Errorf("%w: %q", ErrOpeningNotInVocabulary, opening)
	}
	return base{vocab: vocab, opening: opening}, nil
}

// Opening returns the fixed first guess.
func (b base) Opening() word.Word { return b.opening }

// shortcut handles the cases that bypass scoring: the opening move and a single candidate.
// An excluded opening or last candidate falls through to the scan, which skips it.
func (b base) shortcut(candidates []word.Word, attempt int, excluding Exclusions) (word.Word, bool, error) {
	if attempt == 0 && !excluding.Has(b.opening) {
		return b.opening, true, nil
	}
	switch len(candidates) {
	case 0:
		return "", true, ErrNoCandidates
	case 1:
		if !excluding.Has(candidates[0]) {
			return candidates[0], true, nil
		}
	}
	return "", false, nil
}

// #endregion
