package replay

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region types

// ReplayConfig is everything needed to re-run a solve deterministically.
type ReplayConfig struct {
	Strategy    strategy.Strategy
	Vocab       *word.Vocabulary
	Solutions   []word.Word
	MaxAttempts int
}

// ReplayResult is the replayed outcome for one target.
type ReplayResult struct {
	Target  word.Word
	Guesses []word.Word
	State   solver.State
	Err     string
}

// Comparison pairs an expected case with its replayed result.
type Comparison struct {
	Target          word.Word
	ExpectedState   string
	ReplayedState   string
	ExpectedGuesses []string
	ReplayedGuesses []string
	Match           bool
}

// #endregion types

// #region replay

// Replay solves every target in order with config. Stuck and rejected solves are
// reported in the result; other errors stop the replay.
func Replay(ctx context.Context, targets []word.Word, config ReplayConfig) ([]ReplayResult, error) {
	results := make([]ReplayResult, 0, len(targets))
	for _, target := range targets {
		g := game.New(config.Vocab, config.Solutions, game.WithMaxAttempts(config.MaxAttempts))
		if err := g.Reset(target); err != nil {
			return results, fmt.Errorf("target %s: %w", target, err)
		}

		res, err := solver.Solve(ctx, config.Strategy, g, config.Solutions, solver.Config{
			MaxAttempts: config.MaxAttempts,
		})
		r := ReplayResult{Target: target, Guesses: res.Guesses(), State: res.State}
		if err != nil {
			if !errors.Is(err, solver.ErrEmptyCandidatePool) && !errors.Is(err, solver.ErrGuessRejected) {
				return results, fmt.Errorf("target %s: %w", target, err)
			}
			r.Err = err.Error()
		}
		results = append(results, r)
	}
	return results, nil
}

// #endregion replay

// #region compare

// Compare matches cases to results by position. A case without expected guesses
// is compared on final state only.
func Compare(cases []FixtureCase, results []ReplayResult) []Comparison {
	n := min(len(cases), len(results))
	out := make([]Comparison, n)
	for i := 0; i < n; i++ {
		c, r := cases[i], results[i]
		replayed := word.Strings(r.Guesses)
		match := c.ExpectedState == string(r.State)
		if len(c.ExpectedGuesses) > 0 && !slices.Equal(c.ExpectedGuesses, replayed) {
			match = false
		}
		out[i] = Comparison{
			Target:          r.Target,
			ExpectedState:   c.ExpectedState,
			ReplayedState:   string(r.State),
			ExpectedGuesses: c.ExpectedGuesses,
			ReplayedGuesses: replayed,
			Match:           match,
		}
	}
	return out
}

// #endregion compare
