package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielpatrickdp/wordle-solver/internal/replay"
	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to wordle.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	strategyName := flag.String("strategy", "", "strategy whose recorded games are replayed (DB mode)")
	allowed := flag.String("allowed", "data/allowed_words.txt", "allowed guesses list (DB mode)")
	possible := flag.String("possible", "data/possible_words.txt", "possible solutions list (DB mode)")
	opening := flag.String("opening", "", "opening word the games were played with (DB mode)")
	last := flag.Int("last", 50, "number of most recent games to replay (DB mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/wordle.db --strategy name [--allowed f] [--possible f] [--opening w] [--last N]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	ctx := context.Background()
	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(ctx, *fixturePath)
	} else {
		cfg := replay.FixtureConfig{
			Strategy:       *strategyName,
			Opening:        *opening,
			VocabularyPath: *allowed,
			SolutionsPath:  *possible,
		}
		exitCode = runDBMode(ctx, *dbPath, cfg, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

func runDBMode(ctx context.Context, dbPath string, cfg replay.FixtureConfig, last int) int {
	id, err := strategy.ParseID(cfg.Strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "strategy: %v\n", err)
		return 2
	}

	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	games, err := st.ListGames(ctx, id, last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list games: %v\n", err)
		return 2
	}
	if len(games) == 0 {
		fmt.Fprintf(os.Stderr, "no %s games found\n", id)
		return 2
	}

	f := replay.FromGames(fmt.Sprintf("%d recorded %s games", len(games), id), cfg, games)
	return replayFixture(ctx, f, ".")
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(ctx context.Context, path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	return replayFixture(ctx, f, filepath.Dir(path))
}

func replayFixture(ctx context.Context, f *replay.Fixture, baseDir string) int {
	config, err := f.Config.ToReplayConfig(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixture config: %v\n", err)
		return 2
	}
	targets, err := f.Targets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixture cases: %v\n", err)
		return 2
	}

	results, err := replay.Replay(ctx, targets, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	return printComparison(replay.Compare(f.Cases, results))
}

// #endregion fixture-mode

// #region output

// printComparison outputs a comparison table and returns the exit code.
func printComparison(rows []replay.Comparison) int {
	fmt.Printf("%-8s| %-10s| %-10s| %-36s| %s\n", "Target", "Expected", "Replayed", "Replayed guesses", "Match")
	fmt.Printf("%-8s+%-11s+%-11s+%-37s+%s\n",
		"--------", "-----------", "-----------", "-------------------------------------", "------")

	matches := 0
	for _, r := range rows {
		match := "DIFF"
		if r.Match {
			match = "OK"
			matches++
		}
		fmt.Printf("%-8s| %-10s| %-10s| %-36s| %s\n",
			r.Target, r.ExpectedState, r.ReplayedState, strings.Join(r.ReplayedGuesses, " "), match)
		if !r.Match && len(r.ExpectedGuesses) > 0 {
			fmt.Printf("%-8s| %-10s| %-10s| %-36s|\n", "", "", "expected", strings.Join(r.ExpectedGuesses, " "))
		}
	}

	diverge := len(rows) - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(rows), matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion output
