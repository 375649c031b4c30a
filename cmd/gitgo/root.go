package main

import (
	"os"

	"github.com/colinmarc/gitcore/internal/env"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	fs  afero.Fs
	env *env.Env

	// path is the directory to run as if gitgo had been started in,
	// equivalent to git's "-C" flag. Defaults to the current directory.
	path string
}

func newRootCmd(e *env.Env) *cobra.Command {
	cfg := &rootFlags{
		fs:  afero.NewOsFs(),
		env: e,
	}

	cmd := &cobra.Command{
		Use:           "gitgo",
		Short:         "a minimal, on-disk Git-compatible object store",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVarP(&cfg.path, "C", "C", "", "run as if gitgo was started in the given path instead of the current directory")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.path == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg.path = wd
		}
		return nil
	}

	cmd.AddCommand(newInitCmd(cfg))
	cmd.AddCommand(newCatFileCmd(cfg))
	cmd.AddCommand(newHashObjectCmd(cfg))
	cmd.AddCommand(newLogCmd(cfg))
	cmd.AddCommand(newLsTreeCmd(cfg))
	cmd.AddCommand(newCheckoutCmd(cfg))
	cmd.AddCommand(newCommitCmd(cfg))
	cmd.AddCommand(newTagCmd(cfg))
	cmd.AddCommand(newRevParseCmd(cfg))

	return cmd
}
