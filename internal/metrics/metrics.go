package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// #region collectors

var (
	// solvesTotal counts finished solves.
	// Labels: strategy, state (solved, exhausted, stuck, error)
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordle",
		Name:      "solves_total",
		Help:      "Finished solves by strategy and final state",
	}, []string{"strategy", "state"})

	// solveAttempts is the number of accepted guesses per finished solve.
	// Labels: strategy
	solveAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordle",
		Name:      "solve_attempts",
		Help:      "Accepted guesses per finished solve",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
	}, []string{"strategy"})

	// guessSelection measures the time a strategy takes to choose one guess.
	// Labels: strategy
	guessSelection = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordle",
		Name:      "guess_selection_seconds",
		Help:      "Time spent choosing a guess",
		Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"strategy"})

	// rejectedGuesses counts guesses the game refused.
	// Labels: strategy
	rejectedGuesses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordle",
		Name:      "rejected_guesses_total",
		Help:      "Guesses rejected by the game as invalid input",
	}, []string{"strategy"})

	// suggestRequests counts Suggest RPCs.
	// Labels: strategy, code (grpc status code name)
	suggestRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordle",
		Subsystem: "rpc",
		Name:      "suggest_requests_total",
		Help:      "Suggest requests by strategy and status code",
	}, []string{"strategy", "code"})
)

// #endregion

// #region recorders

// RecordSolve records a finished solve.
func RecordSolve(strategy, state string, attempts int) {
	solvesTotal.WithLabelValues(strategy, state).Inc()
	solveAttempts.WithLabelValues(strategy).Observe(float64(attempts))
}

// ObserveGuessSelection records how long one guess selection took.
func ObserveGuessSelection(strategy string, d time.Duration) {
	guessSelection.WithLabelValues(strategy).Observe(d.Seconds())
}

// RecordRejectedGuess records a guess the game refused.
func RecordRejectedGuess(strategy string) {
	rejectedGuesses.WithLabelValues(strategy).Inc()
}

// RecordSuggest records a Suggest RPC outcome.
func RecordSuggest(strategy, code string) {
	suggestRequests.WithLabelValues(strategy, code).Inc()
}

// #endregion

// #region handler

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// #endregion
