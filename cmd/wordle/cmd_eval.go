package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/wordle-solver/internal/eval"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
)

// #region eval

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var (
		strategyNames []string
		all           bool
		limit         int
		outputDir     string
		record        bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate strategies over the possible-words list and write reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Eval.Limit
			}
			if outputDir == "" {
				outputDir = a.cfg.Eval.OutputDir
			}

			names := strategyNames
			if all {
				names = nil
				for _, id := range strategy.IDs() {
					names = append(names, string(id))
				}
			}
			if len(names) == 0 {
				names = []string{a.cfg.Strategy}
			}

			targets := a.solutions
			if limit > 0 && limit < len(targets) {
				targets = targets[:limit]
			}

			harnessOpts := []eval.Option{eval.WithLogger(a.logger)}
			if record {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				harnessOpts = append(harnessOpts, eval.WithRecorder(st))
			}
			h := eval.NewEvalHarness(a.vocab, a.solutions, eval.EvalConfig{
				Concurrency:        a.cfg.Eval.Concurrency,
				MaxAttempts:        a.cfg.MaxAttempts,
				MaxRejections:      a.cfg.MaxRejections,
				MinSuccessRate:     a.cfg.Eval.MinSuccessRate,
				MaxAverageAttempts: a.cfg.Eval.MaxAverageAttempts,
			}, harnessOpts...)

			out := cmd.OutOrStdout()
			var reports []eval.Report
			for _, name := range names {
				s, err := a.strategy(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "evaluating %s against %d words...\n", s.ID(), len(targets))
				report, err := h.Run(cmd.Context(), s, targets)
				if err != nil {
					return err
				}
				path, err := eval.WriteFiles(outputDir, report)
				if err != nil {
					return err
				}
				printReport(out, report)
				fmt.Fprintf(out, "report: %s\n\n", path)
				reports = append(reports, report)
			}

			if len(reports) > 1 {
				path, err := eval.WriteComparisonFiles(outputDir, reports, a.cfg.MaxAttempts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "comparative report: %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&strategyNames, "strategy", "s", nil, "strategies to evaluate (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "evaluate every strategy and write a comparative report")
	cmd.Flags().IntVar(&limit, "limit", 0, "evaluate only the first N possible words (0 = all)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&record, "record", false, "store every game in the results database")
	return cmd
}

func printReport(w io.Writer, r eval.Report) {
	fmt.Fprintf(w, "%s: %.2f%% solved, average %.2f, median %g, %d failures (%s)\n",
		r.Strategy, r.SuccessRate, r.AverageAttempts, r.MedianAttempts, r.Failures, r.Duration.Round(time.Millisecond))
	for _, m := range r.Metrics {
		status := "ok"
		if !m.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-18s %8.2f  %s\n", m.Name, m.Value, status)
	}
}

// #endregion eval
