package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/wordle-solver/internal/game"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region solve

func newSolveCmd(opts *rootOptions) *cobra.Command {
	var (
		strategyName string
		record       bool
	)
	cmd := &cobra.Command{
		Use:   "solve [target]",
		Short: "Let a strategy play one game (random target when none is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			s, err := a.strategy(strategyName)
			if err != nil {
				return err
			}

			var target word.Word
			if len(args) == 1 {
				if target, err = word.Parse(args[0]); err != nil {
					return err
				}
			}

			gameOpts := []game.Option{game.WithMaxAttempts(a.cfg.MaxAttempts)}
			if a.cfg.Seed != 0 {
				gameOpts = append(gameOpts, game.WithSeed(a.cfg.Seed))
			}
			g := game.New(a.vocab, a.solutions, gameOpts...)
			if err := g.Reset(target); err != nil {
				return err
			}

			res, solveErr := solver.Solve(cmd.Context(), s, g, a.solutions, solver.Config{
				MaxAttempts:   a.cfg.MaxAttempts,
				MaxRejections: a.cfg.MaxRejections,
				Logger:        a.logger,
			})
			printSolve(cmd.OutOrStdout(), string(s.ID()), g.Target(), res)

			if record {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.RecordResult(cmd.Context(), s.ID(), g.Target(), res); err != nil {
					return err
				}
			}
			if solveErr != nil && !errors.Is(solveErr, solver.ErrEmptyCandidatePool) {
				return solveErr
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "strategy to use (default from config)")
	cmd.Flags().BoolVar(&record, "record", false, "store the game in the results database")
	return cmd
}

func printSolve(w io.Writer, strategyName string, target word.Word, res solver.Result) {
	fmt.Fprintf(w, "target: %s (%s)\n", target, strategyName)
	for _, h := range res.History {
		if h.Pattern.IsSolved() {
			fmt.Fprintf(w, "%d  %s  %s\n", h.Attempt, h.Guess, h.Pattern)
			continue
		}
		fmt.Fprintf(w, "%d  %s  %s  %d left\n", h.Attempt, h.Guess, h.Pattern, h.CandidatesAfter)
	}
	switch res.State {
	case solver.StateSolved:
		fmt.Fprintf(w, "solved in %d attempts\n", res.Attempts)
	case solver.StateExhausted:
		fmt.Fprintf(w, "failed after %d attempts; %d candidates left\n", res.Attempts, len(res.Remaining))
	default:
		fmt.Fprintf(w, "stopped: %s after %d attempts\n", res.State, res.Attempts)
	}
}

// #endregion solve
