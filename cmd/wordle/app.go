package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danielpatrickdp/wordle-solver/internal/config"
	"github.com/danielpatrickdp/wordle-solver/internal/logging"
	"github.com/danielpatrickdp/wordle-solver/internal/store"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region app

// app is the loaded configuration and word lists shared by the subcommands.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	vocab     *word.Vocabulary
	solutions []word.Word
}

func loadApp(configPath, logLevel string, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	if err != nil {
		return nil, err
	}

	allowed, err := word.LoadFile(cfg.AllowedWords)
	if err != nil {
		return nil, fmt.Errorf("allowed words: %w", err)
	}
	solutions, err := word.LoadFile(cfg.PossibleWords)
	if err != nil {
		return nil, fmt.Errorf("possible words: %w", err)
	}
	if len(solutions) == 0 {
		return nil, fmt.Errorf("possible words: %s is empty", cfg.PossibleWords)
	}

	// Every solution is a legal guess even if the allowed list omits it.
	vocab := word.NewVocabulary(append(allowed, solutions...))
	logger.Debug("word lists loaded", "allowed", vocab.Len(), "solutions", len(solutions))

	return &app{cfg: cfg, logger: logger, vocab: vocab, solutions: solutions}, nil
}

// strategy builds the named strategy, or the configured default when name is empty.
func (a *app) strategy(name string) (strategy.Strategy, error) {
	id := a.cfg.StrategyID()
	if name != "" {
		var err error
		if id, err = strategy.ParseID(name); err != nil {
			return nil, err
		}
	}
	return strategy.New(id, a.vocab, a.cfg.Opening(id))
}

// strategies builds every built-in strategy.
func (a *app) strategies() (map[strategy.ID]strategy.Strategy, error) {
	out := make(map[strategy.ID]strategy.Strategy, len(strategy.IDs()))
	for _, id := range strategy.IDs() {
		s, err := strategy.New(id, a.vocab, a.cfg.Opening(id))
		if err != nil {
			return nil, err
		}
		out[id] = s
	}
	return out, nil
}

func (a *app) openStore() (*store.Store, error) {
	s, err := store.NewStore(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", a.cfg.DBPath, err)
	}
	return s, nil
}

// #endregion app
