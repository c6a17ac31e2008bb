package main

import (
	"github.com/spf13/cobra"
)

// #region root

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	app        *app
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wordle",
		Short: "Solve Wordle puzzles with information-theoretic strategies",
		Long: `wordle plays, evaluates and serves Wordle solving strategies
(entropy, minimax, frequency, hybrid) over configurable word lists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts.configPath, opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newSuggestCmd(opts))
	root.AddCommand(newEvalCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newBestCmd(opts))
	return root
}

// #endregion root
