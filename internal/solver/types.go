package solver

import (
	"errors"
	"log/slog"

	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region state

// State is the lifecycle position of a solve.
type State string

const (
	StateGuessing  State = "guessing"
	StateSolved    State = "solved"
	StateExhausted State = "exhausted"
	StateStuck     State = "stuck"
)

// #endregion

// #region errors

var (
	// ErrEmptyCandidatePool means the observed feedback is inconsistent with every candidate.
	ErrEmptyCandidatePool = errors.New("no candidates left")
	// ErrGuessRejected means the game refused too many guesses in a row.
	ErrGuessRejected = errors.New("guess rejected by game")
)

// #endregion

// #region game

// Game is the game a solve plays against. Errors wrapping game.ErrInvalidInput
// are treated as rejected guesses that cost no attempt.
type Game interface {
	MakeGuess(guess string) (game.Outcome, error)
}

// #endregion

// #region config

const (
	DefaultMaxAttempts   = game.DefaultMaxAttempts
	DefaultMaxRejections = 3
)

// Config bounds one solve. Zero values select the defaults.
type Config struct {
	MaxAttempts   int
	MaxRejections int
	Logger        *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.MaxRejections <= 0 {
		c.MaxRejections = DefaultMaxRejections
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// #endregion

// #region result

// GuessRecord is one accepted guess and its effect on the candidate pool.
type GuessRecord struct {
	Attempt          int             `json:"attempt"`
	Guess            word.Word       `json:"guess"`
	Pattern          pattern.Pattern `json:"pattern"`
	CandidatesBefore int             `json:"candidates_before"`
	CandidatesAfter  int             `json:"candidates_after"`
}

// Result is the outcome of a solve.
type Result struct {
	State     State         `json:"state"`
	Word      word.Word     `json:"word,omitempty"`
	Attempts  int           `json:"attempts"`
	History   []GuessRecord `json:"history"`
	Remaining []word.Word   `json:"remaining,omitempty"`
}

// Success reports whether the target was found.
func (r Result) Success() bool { return r.State == StateSolved }

// Guesses returns the accepted guesses in order.
func (r Result) Guesses() []word.Word {
	out := make([]word.Word, len(r.History))
	for i, h := range r.History {
		out[i] = h.Guess
	}
	return out
}

// #endregion
