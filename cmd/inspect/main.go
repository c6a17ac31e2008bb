package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to wordle.db")
	last := flag.Int("last", 20, "show N most recent games")
	gameID := flag.String("game", "", "show single game detail")
	strategyName := flag.String("strategy", "", "only list games played by this strategy")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/wordle.db [--last N] [--game id] [--strategy name] [--json]")
		os.Exit(2)
	}

	var id strategy.ID
	if *strategyName != "" {
		var err error
		if id, err = strategy.ParseID(*strategyName); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	if *gameID != "" {
		err = runDetailMode(ctx, st, *gameID, *jsonOut)
	} else {
		err = runListMode(ctx, st, id, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	GameID    string `json:"game_id"`
	Strategy  string `json:"strategy"`
	Target    string `json:"target"`
	State     string `json:"state"`
	Attempts  int    `json:"attempts"`
	CreatedAt string `json:"created_at"`
}

func runListMode(ctx context.Context, st *store.Store, id strategy.ID, last int, jsonOut bool) error {
	games, err := st.ListGames(ctx, id, last)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stderr, "no games found")
		return nil
	}

	// Store returns newest first; print chronologically.
	rows := make([]listRow, len(games))
	for i, g := range games {
		rows[len(games)-1-i] = listRow{
			GameID:    g.GameID,
			Strategy:  string(g.Strategy),
			Target:    string(g.Target),
			State:     string(g.State),
			Attempts:  g.Attempts,
			CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-8s  %-10s  %-6s  %-9s  %8s  %s\n", "Game", "Strategy", "Target", "State", "Attempts", "Time")
	fmt.Printf("%-8s+-%-10s+-%-6s+-%-9s+-%8s+-%s\n",
		"--------", "----------", "------", "---------", "--------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-8s  %-10s  %-6s  %-9s  %8d  %s\n",
			shortID(r.GameID), r.Strategy, r.Target, r.State, r.Attempts, r.CreatedAt)
	}

	scores, err := st.StrategyScores(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Printf("\nStrategy scores (all games):\n")
	for _, s := range scores {
		fmt.Printf("  %-10s %.4f  (%d games)\n", s.Strategy, s.Score, s.Samples)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	GameID     string        `json:"game_id"`
	Strategy   string        `json:"strategy"`
	Target     string        `json:"target"`
	SolvedWord string        `json:"solved_word,omitempty"`
	State      string        `json:"state"`
	Success    bool          `json:"success"`
	Attempts   int           `json:"attempts"`
	CreatedAt  string        `json:"created_at"`
	Guesses    []guessDetail `json:"guesses"`
}

type guessDetail struct {
	Attempt          int    `json:"attempt"`
	Guess            string `json:"guess"`
	Pattern          string `json:"pattern"`
	CandidatesBefore int    `json:"candidates_before"`
	CandidatesAfter  int    `json:"candidates_after"`
}

func runDetailMode(ctx context.Context, st *store.Store, id string, jsonOut bool) error {
	g, err := st.GetGame(ctx, id)
	if err != nil {
		return err
	}

	out := detailOutput{
		GameID:     g.GameID,
		Strategy:   string(g.Strategy),
		Target:     string(g.Target),
		SolvedWord: string(g.SolvedWord),
		State:      string(g.State),
		Success:    g.Success,
		Attempts:   g.Attempts,
		CreatedAt:  g.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, gr := range g.Guesses {
		out.Guesses = append(out.Guesses, guessDetail{
			Attempt:          gr.Attempt,
			Guess:            string(gr.Guess),
			Pattern:          gr.Pattern.String(),
			CandidatesBefore: gr.CandidatesBefore,
			CandidatesAfter:  gr.CandidatesAfter,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Game:     %s\n", out.GameID)
	fmt.Printf("Strategy: %s\n", out.Strategy)
	fmt.Printf("Target:   %s\n", out.Target)
	fmt.Printf("State:    %s\n", out.State)
	fmt.Printf("Attempts: %d\n", out.Attempts)
	fmt.Printf("Created:  %s\n", out.CreatedAt)

	fmt.Printf("\nGuesses:\n")
	for _, gd := range out.Guesses {
		fmt.Printf("  %d  %s  %s  %5d -> %d\n", gd.Attempt, gd.Guess, gd.Pattern, gd.CandidatesBefore, gd.CandidatesAfter)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
