package store

import (
	"time"

	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region game-record

// GameRecord is one finished solve as stored in the games table.
type GameRecord struct {
	GameID     string
	Strategy   strategy.ID
	Target     word.Word
	SolvedWord word.Word
	Attempts   int
	Success    bool
	State      solver.State
	Guesses    []solver.GuessRecord
	CreatedAt  time.Time
}

// #endregion game-record

// #region strategy-score

// StrategyScore is the decay-weighted quality of one strategy.
type StrategyScore struct {
	Strategy strategy.ID
	Score    float64
	Samples  int
}

// #endregion strategy-score
