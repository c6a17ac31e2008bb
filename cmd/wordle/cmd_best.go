package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// #region best

func newBestCmd(opts *rootOptions) *cobra.Command {
	var minSamples int
	cmd := &cobra.Command{
		Use:   "best",
		Short: "Rank strategies by recency-weighted results in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			scores, err := st.StrategyScores(cmd.Context(), minSamples)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(scores) == 0 {
				fmt.Fprintf(out, "no strategy has %d recorded games yet\n", minSamples)
				return nil
			}
			fmt.Fprintf(out, "%-10s  %7s  %s\n", "Strategy", "Score", "Games")
			for _, s := range scores {
				fmt.Fprintf(out, "%-10s  %7.4f  %d\n", s.Strategy, s.Score, s.Samples)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minSamples, "min-samples", 3, "minimum recorded games per strategy")
	return cmd
}

// #endregion best
