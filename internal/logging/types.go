package logging

import "time"

// #region guess-entry

// GuessEntry is a single row in the guess_log table.
type GuessEntry struct {
	GameID           string
	Attempt          int
	Guess            string
	Pattern          string // "G", "Y", "_" per position
	CandidatesBefore int
	CandidatesAfter  int
	Note             string
	CreatedAt        time.Time
}

// #endregion guess-entry
