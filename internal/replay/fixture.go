package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureConfig describes the word lists and strategy a fixture was recorded with.
// Inline lists take precedence over paths; relative paths resolve against the fixture file.
type FixtureConfig struct {
	Strategy       string   `json:"strategy"`
	Opening        string   `json:"opening,omitempty"`
	MaxAttempts    int      `json:"max_attempts,omitempty"`
	Vocabulary     []string `json:"vocabulary,omitempty"`
	Solutions      []string `json:"solutions,omitempty"`
	VocabularyPath string   `json:"vocabulary_path,omitempty"`
	SolutionsPath  string   `json:"solutions_path,omitempty"`
}

// FixtureCase is one target with its expected guess sequence and final state.
type FixtureCase struct {
	Target          string   `json:"target"`
	ExpectedGuesses []string `json:"expected_guesses,omitempty"`
	ExpectedState   string   `json:"expected_state"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes f as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io

// #region fixture-convert

// ToReplayConfig loads the word lists and builds the strategy. baseDir anchors relative paths.
func (fc *FixtureConfig) ToReplayConfig(baseDir string) (ReplayConfig, error) {
	allowed, err := loadWords(fc.Vocabulary, fc.VocabularyPath, baseDir)
	if err != nil {
		return ReplayConfig{}, fmt.Errorf("vocabulary: %w", err)
	}
	solutions, err := loadWords(fc.Solutions, fc.SolutionsPath, baseDir)
	if err != nil {
		return ReplayConfig{}, fmt.Errorf("solutions: %w", err)
	}
	vocab := word.NewVocabulary(append(allowed, solutions...))
	if len(solutions) == 0 {
		solutions = vocab.Words()
	}

	id, err := strategy.ParseID(fc.Strategy)
	if err != nil {
		return ReplayConfig{}, err
	}
	var opening word.Word
	if fc.Opening != "" {
		if opening, err = word.Parse(fc.Opening); err != nil {
			return ReplayConfig{}, fmt.Errorf("opening: %w", err)
		}
	}
	s, err := strategy.New(id, vocab, opening)
	if err != nil {
		return ReplayConfig{}, err
	}

	maxAttempts := fc.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = game.DefaultMaxAttempts
	}
	return ReplayConfig{
		Strategy:    s,
		Vocab:       vocab,
		Solutions:   solutions,
		MaxAttempts: maxAttempts,
	}, nil
}

// Targets returns the case targets in order.
func (f *Fixture) Targets() ([]word.Word, error) {
	out := make([]word.Word, len(f.Cases))
	for i, c := range f.Cases {
		w, err := word.Parse(c.Target)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// FromGames builds a fixture whose cases are the recorded games, oldest first.
func FromGames(description string, cfg FixtureConfig, games []store.GameRecord) *Fixture {
	f := &Fixture{Description: description, Config: cfg}
	for i := len(games) - 1; i >= 0; i-- {
		g := games[i]
		c := FixtureCase{Target: string(g.Target), ExpectedState: string(g.State)}
		for _, gr := range g.Guesses {
			c.ExpectedGuesses = append(c.ExpectedGuesses, string(gr.Guess))
		}
		f.Cases = append(f.Cases, c)
	}
	return f
}

// #endregion fixture-convert

// #region helpers

func loadWords(inline []string, path, baseDir string) ([]word.Word, error) {
	if len(inline) > 0 {
		return word.ParseAll(inline)
	}
	if path == "" {
		return nil, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return word.LoadFile(path)
}

// #endregion helpers
