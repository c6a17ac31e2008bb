package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/metrics"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

var tracer = otel.Tracer("wordle.solver")

// #region solve

// Solve plays g with s until the target is found, attempts run out, or the
// candidate pool empties. pool is not modified.
func Solve(ctx context.Context, s strategy.Strategy, g Game, pool []word.Word, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	id := string(s.ID())
	log := cfg.Logger.With("strategy", id)

	ctx, span := tracer.Start(ctx, "solver.Solve", trace.WithAttributes(
		attribute.String("solver.strategy", id),
		attribute.Int("solver.pool", len(pool)),
	))
	defer span.End()

	res, err := solve(ctx, s, g, pool, cfg, log)

	span.SetAttributes(
		attribute.String("solver.state", string(res.State)),
		attribute.Int("solver.attempts", res.Attempts),
	)
	label := string(res.State)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if res.State == StateGuessing {
			label = "error"
		}
	}
	metrics.RecordSolve(id, label, res.Attempts)
	return res, err
}

func solve(ctx context.Context, s strategy.Strategy, g Game, pool []word.Word, cfg Config, log *slog.Logger) (Result, error) {
	res := Result{State: StateGuessing}
	candidates := append([]word.Word(nil), pool...)
	excluded := strategy.Exclusions{}
	rejections := 0

	for res.Attempts < cfg.MaxAttempts {
		if err := ctx.Err(); err != nil {
			res.Remaining = candidates
			return res, err
		}

		guess, err := NextGuess(s, candidates, res.Attempts, excluded)
		if err != nil {
			res.Remaining = candidates
			return res, fmt.Errorf("attempt %d: choose guess: %w", res.Attempts+1, err)
		}
		excluded.Add(guess)

		out, err := g.MakeGuess(string(guess))
		if err != nil {
			if !errors.Is(err, game.ErrInvalidInput) {
				res.Remaining = candidates
				return res, fmt.Errorf("attempt %d: make guess %q: %w", res.Attempts+1, guess, err)
			}
			rejections++
			metrics.RecordRejectedGuess(string(s.ID()))
			log.Warn("guess rejected", "guess", guess, "err", err, "rejections", rejections)
			if rejections >= cfg.MaxRejections {
				res.Remaining = candidates
				return res, fmt.Errorf("%w: %d consecutive rejections, last %q: %w", ErrGuessRejected, rejections, guess, err)
			}
			continue
		}
		rejections = 0
		res.Attempts++

		before := len(candidates)
		if out.Correct {
			res.History = append(res.History, GuessRecord{
				Attempt: res.Attempts, Guess: guess, Pattern: out.Pattern,
				CandidatesBefore: before, CandidatesAfter: 1,
			})
			res.State = StateSolved
			res.Word = guess
			res.Remaining = []word.Word{guess}
			log.Debug("solved", "word", guess, "attempts", res.Attempts)
			return res, nil
		}

		candidates = dropGuessed(filter.Reduce(guess, candidates, out.Pattern), excluded)
		res.History = append(res.History, GuessRecord{
			Attempt: res.Attempts, Guess: guess, Pattern: out.Pattern,
			CandidatesBefore: before, CandidatesAfter: len(candidates),
		})
		log.Debug("guess", "attempt", res.Attempts, "guess", guess,
			"pattern", out.Pattern.String(), "remaining", len(candidates))

		if len(candidates) == 0 {
			res.State = StateStuck
			log.Error("candidate pool empty", "attempt", res.Attempts, "guess", guess)
			return res, fmt.Errorf("attempt %d: %w", res.Attempts, ErrEmptyCandidatePool)
		}
	}

	res.State = StateExhausted
	res.Remaining = candidates
	return res, nil
}

// #endregion

// #region helpers

// NextGuess plays the last candidate directly once at least one guess has narrowed
// the pool, otherwise asks the strategy.
func NextGuess(s strategy.Strategy, candidates []word.Word, attempt int, excluded strategy.Exclusions) (word.Word, error) {
	if attempt > 0 && len(candidates) == 1 && !excluded.Has(candidates[0]) {
		return candidates[0], nil
	}
	start := time.Now()
	guess, err := s.ChooseBestGuess(candidates, attempt, excluded)
	metrics.ObserveGuessSelection(string(s.ID()), time.Since(start))
	return guess, err
}

// Remaining replays observations over pool and returns the surviving candidates
// together with the set of words already guessed.
func Remaining(pool []word.Word, observations []filter.Observation) ([]word.Word, strategy.Exclusions) {
	guessed := strategy.Exclusions{}
	for _, o := range observations {
		guessed.Add(o.Guess)
	}
	return dropGuessed(filter.ReduceAll(pool, observations), guessed), guessed
}

// dropGuessed removes words already submitted; a wrong guess cannot be the target.
func dropGuessed(candidates []word.Word, excluded strategy.Exclusions) []word.Word {
	out := candidates[:0]
	for _, w := range candidates {
		if !excluded.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// #endregion
