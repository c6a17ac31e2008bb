package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/metrics"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

const defaultMaxCandidates = 20

var tracer = otel.Tracer("wordle.rpc")

// #region server-struct

// Server answers Suggest calls from shared, read-only strategies.
type Server struct {
	strategies map[strategy.ID]strategy.Strategy
	solutions  []word.Word
	defaultID  strategy.ID
	logger     *slog.Logger
}

// NewServer creates a server. defaultID is used when a request names no strategy.
func NewServer(strategies map[strategy.ID]strategy.Strategy, solutions []word.Word, defaultID strategy.ID, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{strategies: strategies, solutions: solutions, defaultID: defaultID, logger: logger}
}

// #endregion server-struct

// #region suggest

// Suggest returns the next guess for a game described by its history.
//
// Request:  {"strategy": "entropy", "history": [{"guess": "tares", "pattern": "_YG__"}], "max_candidates": 20}
// Response: {"guess": "...", "remaining": n, "candidates": [...], "solved": bool}
func (s *Server) Suggest(ctx context.Context, req *structpb.Struct) (resp *structpb.Struct, err error) {
	fields := req.GetFields()
	id := s.defaultID
	if name := fields["strategy"].GetStringValue(); name != "" {
		if id, err = strategy.ParseID(name); err != nil {
			metrics.RecordSuggest(name, codes.InvalidArgument.String())
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	_, span := tracer.Start(ctx, "rpc.Suggest")
	span.SetAttributes(attribute.String("rpc.strategy", string(id)))
	defer func() {
		metrics.RecordSuggest(string(id), status.Code(err).String())
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	strat, ok := s.strategies[id]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "strategy %s not served", id)
	}

	history, err := parseHistory(fields["history"].GetListValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	maxCandidates := defaultMaxCandidates
	if v, ok := fields["max_candidates"]; ok {
		maxCandidates = int(v.GetNumberValue())
	}

	if n := len(history); n > 0 && history[n-1].Pattern.IsSolved() {
		return newResponse(history[n-1].Guess, []word.Word{history[n-1].Guess}, true, maxCandidates)
	}

	candidates, guessed := solver.Remaining(s.solutions, history)
	if len(candidates) == 0 {
		return nil, status.Error(codes.FailedPrecondition, solver.ErrEmptyCandidatePool.Error())
	}

	guess, err := solver.NextGuess(strat, candidates, len(history), guessed)
	if err != nil {
		if errors.Is(err, strategy.ErrNoGuess) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	s.logger.Debug("suggest", "strategy", id, "attempt", len(history), "guess", guess, "remaining", len(candidates))
	return newResponse(guess, candidates, false, maxCandidates)
}

// #endregion suggest

// #region helpers

func parseHistory(list *structpb.ListValue) ([]filter.Observation, error) {
	var out []filter.Observation
	for i, v := range list.GetValues() {
		entry := v.GetStructValue().GetFields()
		g, err := word.Parse(entry["guess"].GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("history[%d].guess: %w", i, err)
		}
		p, err := pattern.Parse(entry["pattern"].GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("history[%d].pattern: %w", i, err)
		}
		out = append(out, filter.Observation{Guess: g, Pattern: p})
	}
	return out, nil
}

func newResponse(guess word.Word, candidates []word.Word, solved bool, maxCandidates int) (*structpb.Struct, error) {
	shown := candidates
	if maxCandidates >= 0 && len(shown) > maxCandidates {
		shown = shown[:maxCandidates]
	}
	list := make([]any, len(shown))
	for i, w := range shown {
		list[i] = string(w)
	}
	resp, err := structpb.NewStruct(map[string]any{
		"guess":      string(guess),
		"remaining":  len(candidates),
		"candidates": list,
		"solved":     solved,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

// #endregion helpers
