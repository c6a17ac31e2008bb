package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/wordle-solver/internal/logging"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// ErrNotFound is returned by GetGame for an unknown game ID.
var ErrNotFound = errors.New("game not found")

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id      TEXT PRIMARY KEY,
	strategy     TEXT NOT NULL,
	target       TEXT NOT NULL,
	solved_word  TEXT,
	attempts     INTEGER NOT NULL,
	success      INTEGER NOT NULL,
	state        TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_strategy ON games(strategy, success);

CREATE TABLE IF NOT EXISTS guess_log (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id           TEXT NOT NULL,
	attempt           INTEGER NOT NULL,
	guess             TEXT NOT NULL,
	pattern           TEXT NOT NULL,
	candidates_before INTEGER NOT NULL,
	candidates_after  INTEGER NOT NULL,
	note              TEXT,
	created_at        TEXT NOT NULL,
	FOREIGN KEY (game_id) REFERENCES games(game_id)
);
`

// #endregion schema

// #region store-struct

// Store persists finished games and their guesses in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite allows one writer; concurrent evaluation goroutines queue here.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region record

// RecordGame stores a game and its guesses in one transaction and returns the game ID.
func (s *Store) RecordGame(ctx context.Context, rec GameRecord) (string, error) {
	if rec.GameID == "" {
		rec.GameID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	success := 0
	if rec.Success {
		success = 1
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO games (game_id, strategy, target, solved_word, attempts, success, state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, string(rec.Strategy), string(rec.Target), nullIfEmpty(string(rec.SolvedWord)),
		rec.Attempts, success, string(rec.State), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert game: %w", err)
	}

	for _, g := range rec.Guesses {
		err := logging.LogGuess(ctx, tx, logging.GuessEntry{
			GameID:           rec.GameID,
			Attempt:          g.Attempt,
			Guess:            string(g.Guess),
			Pattern:          g.Pattern.String(),
			CandidatesBefore: g.CandidatesBefore,
			CandidatesAfter:  g.CandidatesAfter,
			CreatedAt:        rec.CreatedAt,
		})
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return rec.GameID, nil
}

// RecordResult stores a solver result for target.
func (s *Store) RecordResult(ctx context.Context, id strategy.ID, target word.Word, res solver.Result) error {
	_, err := s.RecordGame(ctx, GameRecord{
		Strategy:   id,
		Target:     target,
		SolvedWord: res.Word,
		Attempts:   res.Attempts,
		Success:    res.Success(),
		State:      res.State,
		Guesses:    res.History,
	})
	return err
}

// #endregion record

// #region get

// GetGame returns a game with its guesses.
func (s *Store) GetGame(ctx context.Context, id string) (GameRecord, error) {
	rec, err := scanGame(s.db.QueryRowContext(ctx,
		`SELECT game_id, strategy, target, solved_word, attempts, success, state, created_at
		 FROM games WHERE game_id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, fmt.Errorf("get game %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("get game %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT attempt, guess, pattern, candidates_before, candidates_after
		 FROM guess_log WHERE game_id = ? ORDER BY attempt`, id,
	)
	if err != nil {
		return GameRecord{}, fmt.Errorf("query guesses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g solver.GuessRecord
		var guess, pat string
		if err := rows.Scan(&g.Attempt, &guess, &pat, &g.CandidatesBefore, &g.CandidatesAfter); err != nil {
			return GameRecord{}, fmt.Errorf("scan guess: %w", err)
		}
		p, err := pattern.Parse(pat)
		if err != nil {
			return GameRecord{}, fmt.Errorf("guess %d: %w", g.Attempt, err)
		}
		g.Guess = word.Word(guess)
		g.Pattern = p
		rec.Guesses = append(rec.Guesses, g)
	}
	return rec, rows.Err()
}

// #endregion get

// #region list

// ListGames returns the most recent games without their guesses.
// An empty strategy lists every strategy.
func (s *Store) ListGames(ctx context.Context, id strategy.ID, limit int) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, strategy, target, solved_word, attempts, success, state, created_at
		 FROM games WHERE (? = '' OR strategy = ?)
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		string(id), string(id), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion list

// #region helpers

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (GameRecord, error) {
	var rec GameRecord
	var strat, target, state, createdStr string
	var solved sql.NullString
	var success int
	if err := row.Scan(&rec.GameID, &strat, &target, &solved, &rec.Attempts, &success, &state, &createdStr); err != nil {
		return GameRecord{}, err
	}
	rec.Strategy = strategy.ID(strat)
	rec.Target = word.Word(target)
	rec.SolvedWord = word.Word(solved.String)
	rec.Success = success == 1
	rec.State = solver.State(state)
	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return GameRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = created
	return rec, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
