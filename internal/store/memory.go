package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
)

// #region constants

const halfLife = 7 * 24 * time.Hour

// #endregion

// #region strategy-scores

// StrategyScores returns the decay-weighted quality of every strategy with at least
// minSamples recorded games, best first. A solved game scores 1/attempts, a failed one 0.
func (s *Store) StrategyScores(ctx context.Context, minSamples int) ([]StrategyScore, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT strategy, attempts, success, created_at FROM games`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	type stratAccum struct {
		weightedSum float64
		totalWeight float64
		count       int
	}

	now := s.now()
	accum := make(map[strategy.ID]*stratAccum)

	for rows.Next() {
		var sid, createdStr string
		var attempts, success int
		if err := rows.Scan(&sid, &attempts, &success, &createdStr); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			continue
		}
		weight := math.Exp(-now.Sub(createdAt).Hours() / halfLife.Hours())

		quality := 0.0
		if success == 1 && attempts > 0 {
			quality = 1 / float64(attempts)
		}

		id := strategy.ID(sid)
		a, ok := accum[id]
		if !ok {
			a = &stratAccum{}
			accum[id] = a
		}
		a.weightedSum += quality * weight
		a.totalWeight += weight
		a.count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []StrategyScore
	for id, a := range accum {
		if a.count < minSamples || a.totalWeight == 0 {
			continue
		}
		out = append(out, StrategyScore{Strategy: id, Score: a.weightedSum / a.totalWeight, Samples: a.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Strategy < out[j].Strategy
	})
	return out, nil
}

// #endregion

// #region best-strategy

// BestStrategy returns the strategy with the highest decay-weighted quality.
// Returns ("", 0, nil) if no strategy has minSamples games.
func (s *Store) BestStrategy(ctx context.Context, minSamples int) (strategy.ID, float64, error) {
	scores, err := s.StrategyScores(ctx, minSamples)
	if err != nil {
		return "", 0, err
	}
	if len(scores) == 0 {
		return "", 0, nil
	}
	return scores[0].Strategy, scores[0].Score, nil
}

// #endregion
