package eval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

const hardestCount = 10

var tracer = otel.Tracer("wordle.eval")

// #region recorder

// Recorder persists finished games. *store.Store implements it.
type Recorder interface {
	RecordResult(ctx context.Context, id strategy.ID, target word.Word, res solver.Result) error
}

// #endregion recorder

// #region eval-harness

// EvalHarness plays a strategy against many target words.
type EvalHarness struct {
	vocab     *word.Vocabulary
	solutions []word.Word
	config    EvalConfig
	recorder  Recorder
	logger    *slog.Logger
}

// Option configures an EvalHarness.
type Option func(*EvalHarness)

// WithRecorder stores every finished game.
func WithRecorder(r Recorder) Option {
	return func(h *EvalHarness) { h.recorder = r }
}

// WithLogger sets the harness logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *EvalHarness) { h.logger = l }
}

// NewEvalHarness creates a harness whose games accept vocab and draw from solutions.
// solutions is also the initial candidate pool of every solve.
func NewEvalHarness(vocab *word.Vocabulary, solutions []word.Word, config EvalConfig, opts ...Option) *EvalHarness {
	h := &EvalHarness{vocab: vocab, solutions: solutions, config: config, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	if h.config.Concurrency <= 0 {
		h.config.Concurrency = 1
	}
	if h.config.MaxAttempts <= 0 {
		h.config.MaxAttempts = solver.DefaultMaxAttempts
	}
	if h.config.MaxRejections <= 0 {
		h.config.MaxRejections = solver.DefaultMaxRejections
	}
	if h.config.MaxAverageAttempts <= 0 {
		h.config.MaxAverageAttempts = float64(h.config.MaxAttempts)
	}
	return h
}

// Run solves every target with s and aggregates the results. Solves that end stuck
// or rejected count as failures; other errors abort the run.
func (h *EvalHarness) Run(ctx context.Context, s strategy.Strategy, targets []word.Word) (Report, error) {
	ctx, span := tracer.Start(ctx, "eval.Run", trace.WithAttributes(
		attribute.String("eval.strategy", string(s.ID())),
		attribute.Int("eval.targets", len(targets)),
	))
	defer span.End()

	start := time.Now()
	results := make([]GameResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.config.Concurrency)
	for i, target := range targets {
		g.Go(func() error {
			r, err := h.playOne(gctx, s, target)
			if err != nil {
				return fmt.Errorf("target %s: %w", target, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return Report{}, err
	}

	report := h.evaluate(Summarize(s.ID(), results))
	report.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Float64("eval.success_rate", report.SuccessRate),
		attribute.Float64("eval.average_attempts", report.AverageAttempts),
	)
	h.logger.Info("evaluation finished",
		"strategy", s.ID(), "total", report.Total, "failures", report.Failures,
		"success_rate", report.SuccessRate, "average", report.AverageAttempts,
		"duration", report.Duration)
	return report, nil
}

func (h *EvalHarness) playOne(ctx context.Context, s strategy.Strategy, target word.Word) (GameResult, error) {
	gm := game.New(h.vocab, h.solutions, game.WithMaxAttempts(h.config.MaxAttempts))
	if err := gm.Reset(target); err != nil {
		return GameResult{}, err
	}

	res, err := solver.Solve(ctx, s, gm, h.solutions, solver.Config{
		MaxAttempts:   h.config.MaxAttempts,
		MaxRejections: h.config.MaxRejections,
		Logger:        h.logger,
	})
	out := GameResult{
		Target:   target,
		Word:     res.Word,
		Attempts: res.Attempts,
		Success:  res.Success(),
		State:    res.State,
		Guesses:  res.Guesses(),
	}
	if err != nil {
		if !errors.Is(err, solver.ErrEmptyCandidatePool) && !errors.Is(err, solver.ErrGuessRejected) {
			return GameResult{}, err
		}
		out.Error = err.Error()
	}

	if h.recorder != nil {
		if err := h.recorder.RecordResult(ctx, s.ID(), target, res); err != nil {
			return GameResult{}, fmt.Errorf("record: %w", err)
		}
	}
	return out, nil
}

// #endregion eval-harness

// #region summarize

// Summarize computes the aggregate figures for results in target order.
func Summarize(id strategy.ID, results []GameResult) Report {
	r := Report{
		Strategy:     id,
		Total:        len(results),
		Distribution: make(map[int]int),
		Results:      results,
	}
	if len(results) == 0 {
		return r
	}

	attempts := make([]int, len(results))
	sum := 0
	for i, res := range results {
		attempts[i] = res.Attempts
		sum += res.Attempts
		if res.Success {
			r.Distribution[res.Attempts]++
		} else {
			r.Failures++
		}
	}
	r.SuccessRate = float64(r.Total-r.Failures) / float64(r.Total) * 100
	r.AverageAttempts = float64(sum) / float64(r.Total)
	r.MedianAttempts = median(attempts)
	r.Hardest = hardest(results, hardestCount)
	return r
}

// #endregion summarize

// #region evaluate

func (h *EvalHarness) evaluate(r Report) Report {
	var failReasons []string

	ratePass := r.SuccessRate >= h.config.MinSuccessRate
	r.Metrics = append(r.Metrics, EvalMetric{Name: "success_rate", Value: r.SuccessRate, Pass: ratePass})
	if !ratePass {
		failReasons = append(failReasons, fmt.Sprintf("success rate %.2f%% below %.2f%%", r.SuccessRate, h.config.MinSuccessRate))
	}

	avgPass := r.AverageAttempts <= h.config.MaxAverageAttempts
	r.Metrics = append(r.Metrics, EvalMetric{Name: "average_attempts", Value: r.AverageAttempts, Pass: avgPass})
	if !avgPass {
		failReasons = append(failReasons, fmt.Sprintf("average attempts %.2f exceeds %.2f", r.AverageAttempts, h.config.MaxAverageAttempts))
	}

	r.Passed = len(failReasons) == 0
	r.Reason = "all checks passed"
	if !r.Passed {
		r.Reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			r.Reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}
	return r
}

// #endregion evaluate

// #region helpers

func median(xs []int) float64 {
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// hardest returns up to n results with the most attempts, failures first on ties.
func hardest(results []GameResult, n int) []GameResult {
	sorted := append([]GameResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Attempts != sorted[j].Attempts {
			return sorted[i].Attempts > sorted[j].Attempts
		}
		return !sorted[i].Success && sorted[j].Success
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// #endregion helpers
