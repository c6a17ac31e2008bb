package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region constants

// DefaultMaxAttempts is the standard number of guesses per game.
const DefaultMaxAttempts = 6

// #endregion

// #region errors

// ErrInvalidInput marks guesses the game refuses without consuming an attempt.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidLength   = fmt.Errorf("%w: invalid word length", ErrInvalidInput)
	ErrNonAlphabetic   = fmt.Errorf("%w: word contains non-alphabetic characters", ErrInvalidInput)
	ErrNotInVocabulary = fmt.Errorf("%w: word not in dictionary", ErrInvalidInput)
	ErrNoAttemptsLeft  = fmt.Errorf("%w: no more attempts allowed", ErrInvalidInput)
)

// ErrUnknownTarget is returned by Reset for a target outside the solutions list.
var ErrUnknownTarget = errors.New("target not in solutions list")

// #endregion

// #region types

// Outcome is the result of an accepted guess.
type Outcome struct {
	Correct bool
	Pattern pattern.Pattern
}

// State is a snapshot of the game for display.
type State struct {
	Attempts    int
	MaxAttempts int
	Guesses     []word.Word
	Feedbacks   []pattern.Pattern
	Over        bool
	Won         bool
}

// #endregion

// #region game

// Game holds one target word and the guesses made against it.
// A Game is not safe for concurrent use; run one per goroutine.
type Game struct {
	vocab       *word.Vocabulary
	solutions   []word.Word
	maxAttempts int
	rng         *rand.Rand

	target    word.Word
	guesses   []word.Word
	feedbacks []pattern.Pattern
}

// Option configures a Game.
type Option func(*Game)

// WithMaxAttempts overrides DefaultMaxAttempts. Values <= 0 keep the default.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithSeed makes random target selection reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// New creates a game that accepts guesses from vocab and draws targets from solutions.
// Call Reset before the first guess.
func New(vocab *word.Vocabulary, solutions []word.Word, opts ...Option) *Game {
	g := &Game{
		vocab:       vocab,
		solutions:   solutions,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Reset starts a fresh game. An empty target picks one of the solutions at random.
func (g *Game) Reset(target word.Word) error {
	if target == "" {
		if len(g.solutions) == 0 {
			return fmt.Errorf("reset: %w", ErrUnknownTarget)
		}
		target = g.solutions[g.rng.IntN(len(g.solutions))]
	} else if !g.isSolution(target) {
		return fmt.Errorf("reset %q: %w", target, ErrUnknownTarget)
	}
	g.target = target
	g.guesses = nil
	g.feedbacks = nil
	return nil
}

// MakeGuess validates and scores a guess. Rejected guesses return an error wrapping
// ErrInvalidInput and do not use up an attempt.
func (g *Game) MakeGuess(guess string) (Outcome, error) {
	guess = strings.ToLower(guess)

	if len(guess) != word.Length {
		return Outcome{}, ErrInvalidLength
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return Outcome{}, ErrNonAlphabetic
		}
	}
	w := word.Word(guess)
	if !g.vocab.Contains(w) {
		return Outcome{}, ErrNotInVocabulary
	}
	if len(g.guesses) >= g.maxAttempts {
		return Outcome{}, ErrNoAttemptsLeft
	}

	p := pattern.Compute(w, g.target)
	g.guesses = append(g.guesses, w)
	g.feedbacks = append(g.feedbacks, p)
	return Outcome{Correct: w == g.target, Pattern: p}, nil
}

// Attempts returns the number of accepted guesses.
func (g *Game) Attempts() int { return len(g.guesses) }

// Target returns the current solution.
func (g *Game) Target() word.Word { return g.target }

// State returns a copy of the current game state.
func (g *Game) State() State {
	s := State{
		Attempts:    len(g.guesses),
		MaxAttempts: g.maxAttempts,
		Guesses:     append([]word.Word(nil), g.guesses...),
		Feedbacks:   append([]pattern.Pattern(nil), g.feedbacks...),
	}
	s.Won = len(g.guesses) > 0 && g.guesses[len(g.guesses)-1] == g.target
	s.Over = s.Won || len(g.guesses) >= g.maxAttempts
	return s
}

func (g *Game) isSolution(w word.Word) bool {
	for _, s := range g.solutions {
		if s == w {
			return true
		}
	}
	return false
}

// #endregion
