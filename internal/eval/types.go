package eval

import (
	"time"

	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region eval-config

// EvalConfig holds run limits and the thresholds a report is judged against.
type EvalConfig struct {
	Concurrency        int     // parallel solves; <= 0 means 1
	MaxAttempts        int     // per game; <= 0 means solver.DefaultMaxAttempts
	MaxRejections      int     // per game; <= 0 means solver.DefaultMaxRejections
	MinSuccessRate     float64 // percent
	MaxAverageAttempts float64 // <= 0 means MaxAttempts
}

// DefaultEvalConfig returns the standard game rules and lenient thresholds.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		Concurrency:        4,
		MaxAttempts:        solver.DefaultMaxAttempts,
		MaxRejections:      solver.DefaultMaxRejections,
		MinSuccessRate:     95.0,
		MaxAverageAttempts: 4.5,
	}
}

// #endregion eval-config

// #region eval-metric

// EvalMetric captures a single threshold check.
type EvalMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pass  bool    `json:"pass"`
}

// #endregion eval-metric

// #region game-result

// GameResult is the outcome of one target word.
type GameResult struct {
	Target   word.Word    `json:"target"`
	Word     word.Word    `json:"word,omitempty"`
	Attempts int          `json:"attempts"`
	Success  bool         `json:"success"`
	State    solver.State `json:"state"`
	Guesses  []word.Word  `json:"guesses"`
	Error    string       `json:"error,omitempty"`
}

// #endregion game-result

// #region report

// Report aggregates one strategy over a target list.
type Report struct {
	Strategy        strategy.ID   `json:"strategy"`
	Total           int           `json:"total"`
	Failures        int           `json:"failures"`
	SuccessRate     float64       `json:"success_rate"`
	AverageAttempts float64       `json:"average_attempts"`
	MedianAttempts  float64       `json:"median_attempts"`
	Distribution    map[int]int   `json:"attempt_distribution"` // solved games only
	Hardest         []GameResult  `json:"hardest"`
	Results         []GameResult  `json:"results"`
	Passed          bool          `json:"passed"`
	Metrics         []EvalMetric  `json:"metrics"`
	Reason          string        `json:"reason"`
	Duration        time.Duration `json:"duration_ns"`
}

// #endregion report
