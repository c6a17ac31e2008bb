package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/rpc"
	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region suggest

// suggester returns the next guess for a history of observations.
type suggester func(ctx context.Context, history []filter.Observation) (rpc.Suggestion, error)

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var (
		strategyName string
		remote       string
		show         int
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Interactive helper: enter each guess and its feedback, get the next guess",
		Long: `Reads lines of the form "<guess> <pattern>" from stdin, where the pattern uses
G (correct), Y (present) and _ (absent), for example "tares _YG__".
With --remote the suggestions come from a running "wordle serve".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			var next suggester
			if remote != "" {
				c, err := rpc.NewClient(remote)
				if err != nil {
					return err
				}
				defer c.Close()
				id := strategy.ID(strategyName)
				next = func(ctx context.Context, h []filter.Observation) (rpc.Suggestion, error) {
					return c.Suggest(ctx, id, h, show)
				}
			} else {
				s, err := a.strategy(strategyName)
				if err != nil {
					return err
				}
				next = localSuggester(s, a.solutions, show)
			}
			return runSuggest(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), next)
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "strategy to use (default from config or server)")
	cmd.Flags().StringVar(&remote, "remote", "", "address of a wordle gRPC server")
	cmd.Flags().IntVar(&show, "show", 10, "number of remaining candidates to print (negative prints all)")
	return cmd
}

func localSuggester(s strategy.Strategy, solutions []word.Word, show int) suggester {
	return func(_ context.Context, history []filter.Observation) (rpc.Suggestion, error) {
		candidates, guessed := solver.Remaining(solutions, history)
		if len(candidates) == 0 {
			return rpc.Suggestion{}, solver.ErrEmptyCandidatePool
		}
		guess, err := solver.NextGuess(s, candidates, len(history), guessed)
		if err != nil {
			return rpc.Suggestion{}, err
		}
		shown := candidates
		if show >= 0 && len(shown) > show {
			shown = shown[:show]
		}
		return rpc.Suggestion{Guess: guess, Remaining: len(candidates), Candidates: shown}, nil
	}
}

func runSuggest(ctx context.Context, in io.Reader, out io.Writer, next suggester) error {
	var history []filter.Observation

	s, err := next(ctx, history)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "try: %s\n", s.Guess)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		o, err := parseObservation(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if o.Pattern.IsSolved() {
			fmt.Fprintf(out, "solved in %d guesses\n", len(history)+1)
			return nil
		}
		history = append(history, o)

		s, err := next(ctx, history)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			history = history[:len(history)-1]
			continue
		}
		fmt.Fprintf(out, "%d candidates: %s\n", s.Remaining, strings.Join(word.Strings(s.Candidates), " "))
		fmt.Fprintf(out, "try: %s\n", s.Guess)
	}
}

func parseObservation(line string) (filter.Observation, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return filter.Observation{}, fmt.Errorf("expected \"<guess> <pattern>\", got %q", line)
	}
	g, err := word.Parse(fields[0])
	if err != nil {
		return filter.Observation{}, err
	}
	p, err := pattern.Parse(fields[1])
	if err != nil {
		return filter.Observation{}, err
	}
	return filter.Observation{Guess: g, Pattern: p}, nil
}

// #endregion suggest
