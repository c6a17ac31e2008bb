package replay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region helpers

const fixtureJSON = `{
  "description": "entropy over the cra_e family",
  "config": {
    "strategy": "entropy",
    "opening": "tares",
    "vocabulary": ["crane", "crate", "crave", "craze", "ntvzx", "xzvtn", "tares"],
    "solutions": ["crane", "crate", "crave", "craze"]
  },
  "cases": [
    {"target": "crane", "expected_guesses": ["tares", "ntvzx", "crane"], "expected_state": "solved"},
    {"target": "crate", "expected_guesses": ["tares", "crate"], "expected_state": "solved"},
    {"target": "craze", "expected_state": "solved"},
    {"target": "crave", "expected_guesses": ["tares", "crave"], "expected_state": "solved"}
  ]
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func loadAndReplay(t *testing.T, path string) (*Fixture, []ReplayResult) {
	t.Helper()
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	cfg, err := f.Config.ToReplayConfig(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ToReplayConfig: %v", err)
	}
	targets, err := f.Targets()
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}
	results, err := Replay(context.Background(), targets, cfg)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	return f, results
}

// #endregion helpers

// #region replay-tests

func TestReplay_MatchesFixture(t *testing.T) {
	f, results := loadAndReplay(t, writeFixture(t, fixtureJSON))
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	cmp := Compare(f.Cases, results)
	wantMatch := []bool{true, true, true, false}
	for i, c := range cmp {
		if c.Match != wantMatch[i] {
			t.Errorf("case %s: expected match=%v, got %v (replayed %v)", c.Target, wantMatch[i], c.Match, c.ReplayedGuesses)
		}
	}
	if got := cmp[3].ReplayedGuesses; len(got) != 3 || got[1] != "ntvzx" {
		t.Errorf("crave should need the splitter, got %v", got)
	}
}

func TestReplay_IsDeterministic(t *testing.T) {
	path := writeFixture(t, fixtureJSON)
	_, first := loadAndReplay(t, path)
	_, second := loadAndReplay(t, path)
	for i := range first {
		if first[i].State != second[i].State || len(first[i].Guesses) != len(second[i].Guesses) {
			t.Fatalf("replay %d diverged: %+v vs %+v", i, first[i], second[i])
		}
		for j := range first[i].Guesses {
			if first[i].Guesses[j] != second[i].Guesses[j] {
				t.Fatalf("replay %d guess %d diverged", i, j)
			}
		}
	}
}

func TestReplay_WordListPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "allowed.txt"), []byte("crane\ncrate\ntares\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	body := `{"config": {"strategy": "minimax", "opening": "tares", "vocabulary_path": "allowed.txt"},
	          "cases": [{"target": "crate", "expected_state": "solved"}]}`
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	f, results := loadAndReplay(t, path)
	if cmp := Compare(f.Cases, results); !cmp[0].Match {
		t.Errorf("expected match, got %+v", cmp[0])
	}
}

func TestReplay_UnknownTarget(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config.ToReplayConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Replay(context.Background(), []word.Word{"ntvzx"}, cfg); err == nil {
		t.Fatal("expected error for target outside solutions")
	}
}

// #endregion replay-tests

// #region fixture-tests

func TestLoadFixture_Errors(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFixture(writeFixture(t, "{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestToReplayConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  FixtureConfig
	}{
		{"unknown strategy", FixtureConfig{Strategy: "greedy", Vocabulary: []string{"crane"}}},
		{"bad word", FixtureConfig{Strategy: "entropy", Vocabulary: []string{"cr4ne"}}},
		{"opening outside vocabulary", FixtureConfig{Strategy: "entropy", Opening: "slate", Vocabulary: []string{"crane"}}},
		{"missing list file", FixtureConfig{Strategy: "entropy", VocabularyPath: "nope.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.ToReplayConfig(t.TempDir()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFromGamesRoundTrip(t *testing.T) {
	games := []store.GameRecord{
		{Target: "crate", State: solver.StateSolved, Guesses: []solver.GuessRecord{{Guess: "tares"}, {Guess: "crate"}}},
		{Target: "crane", State: solver.StateSolved, Guesses: []solver.GuessRecord{{Guess: "tares"}, {Guess: "ntvzx"}, {Guess: "crane"}}},
	}
	cfg := FixtureConfig{
		Strategy:   string(strategy.Entropy),
		Opening:    "tares",
		Vocabulary: []string{"crane", "crate", "crave", "craze", "ntvzx", "xzvtn", "tares"},
		Solutions:  []string{"crane", "crate", "crave", "craze"},
	}
	f := FromGames("export", cfg, games)
	if f.Cases[0].Target != "crane" || f.Cases[1].Target != "crate" {
		t.Fatalf("expected oldest first, got %+v", f.Cases)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := SaveFixture(path, f); err != nil {
		t.Fatalf("SaveFixture: %v", err)
	}
	loaded, results := loadAndReplay(t, path)
	for _, c := range Compare(loaded.Cases, results) {
		if !c.Match {
			t.Errorf("%s: expected %v, replayed %v", c.Target, c.ExpectedGuesses, c.ReplayedGuesses)
		}
	}
}

// #endregion fixture-tests
