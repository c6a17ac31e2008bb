package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region fixtures

var (
	craWords = []word.Word{"crane", "crate", "crave", "craze"}
	vocab    = word.NewVocabulary([]word.Word{
		"crane", "crate", "crave", "craze", "ntvzx", "xzvtn", "tares",
	})
)

func newStrategy(t *testing.T, id strategy.ID, opening word.Word) strategy.Strategy {
	t.Helper()
	s, err := strategy.New(id, vocab, opening)
	require.NoError(t, err)
	return s
}

func newGame(t *testing.T, target word.Word) *game.Game {
	t.Helper()
	g := game.New(vocab, craWords)
	require.NoError(t, g.Reset(target))
	return g
}

// lyingGame never accepts a guess as correct but always reports all greens.
type lyingGame struct{ calls int }

func (g *lyingGame) MakeGuess(string) (game.Outcome, error) {
	g.calls++
	return game.Outcome{Pattern: pattern.Solved}, nil
}

// errGame fails every guess with err.
type errGame struct {
	err   error
	calls int
}

func (g *errGame) MakeGuess(string) (game.Outcome, error) {
	g.calls++
	return game.Outcome{}, g.err
}

// rejectingGame refuses the listed words and delegates the rest.
type rejectingGame struct {
	*game.Game
	reject map[string]bool
}

func (g rejectingGame) MakeGuess(guess string) (game.Outcome, error) {
	if g.reject[guess] {
		return game.Outcome{}, game.ErrNotInVocabulary
	}
	return g.Game.MakeGuess(guess)
}

// #endregion

// #region solve-tests

func TestSolve_FindsEveryTarget(t *testing.T) {
	for _, id := range strategy.IDs() {
		for _, target := range craWords {
			t.Run(string(id)+"/"+string(target), func(t *testing.T) {
				s := newStrategy(t, id, "ntvzx")
				res, err := Solve(context.Background(), s, newGame(t, target), craWords, Config{})
				require.NoError(t, err)
				assert.Equal(t, StateSolved, res.State)
				assert.True(t, res.Success())
				assert.Equal(t, target, res.Word)
				// ntvzx splits the four candidates, so the second guess always lands.
				assert.LessOrEqual(t, res.Attempts, 2)
				assert.Len(t, res.History, res.Attempts)
				assert.Equal(t, word.Word("ntvzx"), res.History[0].Guess)
			})
		}
	}
}

func TestSolve_HistoryTracksPool(t *testing.T) {
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(context.Background(), s, newGame(t, "crane"), craWords, Config{})
	require.NoError(t, err)

	require.Len(t, res.History, 3)
	assert.Equal(t, []word.Word{"tares", "ntvzx", "crane"}, res.Guesses())
	assert.Equal(t, 4, res.History[0].CandidatesBefore)
	assert.Equal(t, 3, res.History[0].CandidatesAfter)
	assert.Equal(t, 1, res.History[1].CandidatesAfter)
	for i, h := range res.History {
		assert.Equal(t, i+1, h.Attempt)
	}
}

func TestSolve_DoesNotModifyPool(t *testing.T) {
	pool := append([]word.Word(nil), craWords...)
	s := newStrategy(t, strategy.Frequency, "tares")
	_, err := Solve(context.Background(), s, newGame(t, "craze"), pool, Config{})
	require.NoError(t, err)
	assert.Equal(t, craWords, pool)
}

func TestSolve_Exhausted(t *testing.T) {
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(context.Background(), s, newGame(t, "craze"), craWords, Config{MaxAttempts: 1})
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, res.State)
	assert.False(t, res.Success())
	assert.Equal(t, 1, res.Attempts)
	assert.ElementsMatch(t, []word.Word{"crane", "crave", "craze"}, res.Remaining)
}

// #endregion

// #region failure-tests

func TestSolve_StuckWhenLastCandidateAlreadyGuessed(t *testing.T) {
	g := &lyingGame{}
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(context.Background(), s, g, []word.Word{"crane"}, Config{})

	assert.ErrorIs(t, err, ErrEmptyCandidatePool)
	assert.Equal(t, StateStuck, res.State)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, g.calls)
	assert.Empty(t, res.Remaining)
}

func TestSolve_RejectionGuard(t *testing.T) {
	g := &errGame{err: game.ErrNotInVocabulary}
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(context.Background(), s, g, craWords, Config{MaxRejections: 2})

	assert.ErrorIs(t, err, ErrGuessRejected)
	assert.ErrorIs(t, err, game.ErrNotInVocabulary)
	assert.Equal(t, 2, g.calls)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, StateGuessing, res.State)
}

func TestSolve_RejectedGuessIsNotRetried(t *testing.T) {
	g := rejectingGame{Game: newGame(t, "crane"), reject: map[string]bool{"ntvzx": true}}
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(context.Background(), s, g, craWords, Config{})

	require.NoError(t, err)
	assert.Equal(t, StateSolved, res.State)
	assert.Equal(t, []word.Word{"tares", "xzvtn", "crane"}, res.Guesses())
	assert.Equal(t, 3, res.Attempts, "rejection costs no attempt")
}

func TestSolve_FatalGameError(t *testing.T) {
	boom := errors.New("connection lost")
	g := &errGame{err: boom}
	s := newStrategy(t, strategy.Minimax, "crane")
	_, err := Solve(context.Background(), s, g, craWords, Config{})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrGuessRejected)
	assert.Equal(t, 1, g.calls)
}

func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &errGame{}
	s := newStrategy(t, strategy.Entropy, "tares")
	res, err := Solve(ctx, s, g, craWords, Config{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, g.calls)
	assert.Equal(t, 0, res.Attempts)
}

func TestRemaining(t *testing.T) {
	obs := []filter.Observation{{Guess: "tares", Pattern: mustParse(t, "_YYY_")}}
	got, guessed := Remaining(craWords, obs)
	assert.Equal(t, []word.Word{"crane", "crave", "craze"}, got)
	assert.True(t, guessed.Has("tares"))

	obs = []filter.Observation{{Guess: "crane", Pattern: mustParse(t, "GGG_G")}}
	got, _ = Remaining(craWords, obs)
	assert.Equal(t, []word.Word{"crate", "crave", "craze"}, got)
}

func TestNextGuess_PlaysLastCandidate(t *testing.T) {
	s := newStrategy(t, strategy.Entropy, "tares")
	got, err := NextGuess(s, []word.Word{"crane"}, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, word.Word("crane"), got)
}

func TestNextGuess_OpensEvenWithOneCandidate(t *testing.T) {
	s := newStrategy(t, strategy.Entropy, "tares")
	got, err := NextGuess(s, []word.Word{"crane"}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, word.Word("tares"), got)
}

func mustParse(t *testing.T, s string) pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	require.NoError(t, err)
	return p
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultMaxRejections, cfg.MaxRejections)
	assert.NotNil(t, cfg.Logger)
}

// #endregion
