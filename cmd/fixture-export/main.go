package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielpatrickdp/wordle-solver/internal/replay"
	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to wordle.db")
	strategyName := flag.String("strategy", "", "strategy whose games are exported")
	last := flag.Int("last", 20, "number of most recent games to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	allowed := flag.String("allowed", "data/allowed_words.txt", "allowed guesses list the games were played with")
	possible := flag.String("possible", "data/possible_words.txt", "possible solutions list the games were played with")
	opening := flag.String("opening", "", "opening word the games were played with")
	flag.Parse()

	if *dbPath == "" || *outPath == "" || *strategyName == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --strategy name --out path/to/fixture.json [--last N] [--allowed f] [--possible f] [--opening w]")
		os.Exit(2)
	}

	cfg := replay.FixtureConfig{
		Strategy:       *strategyName,
		Opening:        *opening,
		VocabularyPath: *allowed,
		SolutionsPath:  *possible,
	}
	if err := run(context.Background(), *dbPath, cfg, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(ctx context.Context, dbPath string, cfg replay.FixtureConfig, last int, outPath string) error {
	id, err := strategy.ParseID(cfg.Strategy)
	if err != nil {
		return err
	}

	// Fixture paths resolve against the fixture's directory.
	if cfg.VocabularyPath, err = relativeTo(outPath, cfg.VocabularyPath); err != nil {
		return err
	}
	if cfg.SolutionsPath, err = relativeTo(outPath, cfg.SolutionsPath); err != nil {
		return err
	}

	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	games, err := st.ListGames(ctx, id, last)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return fmt.Errorf("no %s games found in %s", id, dbPath)
	}
	fmt.Printf("Found %d %s games\n", len(games), id)

	f := replay.FromGames(fmt.Sprintf("Export of the last %d %s games from %s", len(games), id, filepath.Base(dbPath)), cfg, games)
	if err := replay.SaveFixture(outPath, f); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d cases)\n", outPath, len(f.Cases))
	return nil
}

func relativeTo(fixturePath, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	dir, err := filepath.Abs(filepath.Dir(fixturePath))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", fixturePath, err)
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return abs, nil
	}
	return rel, nil
}

// #endregion export
