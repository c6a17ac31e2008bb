package logging

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// #region execer

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// #endregion execer

// #region log-guess

// LogGuess writes one accepted guess to the guess_log table.
func LogGuess(ctx context.Context, db Execer, entry GuessEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO guess_log (game_id, attempt, guess, pattern, candidates_before, candidates_after, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.GameID,
		entry.Attempt,
		entry.Guess,
		entry.Pattern,
		entry.CandidatesBefore,
		entry.CandidatesAfter,
		nullIfEmpty(entry.Note),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log guess: %w", err)
	}
	return nil
}

// #endregion log-guess

// #region helpers

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
