package main

import (
	"fmt"
	"io"

	gitcore "github.com/colinmarc/gitcore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInitCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "create an empty repository",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir := cfg.path
		if len(args) > 0 {
			dir = args[0]
		}
		return initCmd(cmd.OutOrStdout(), cfg, dir)
	}
	return cmd
}

func initCmd(out io.Writer, cfg *rootFlags, dir string) error {
	r, err := gitcore.Init(cfg.fs, dir)
	if err != nil {
		return errors.Wrapf(err, "could not initialize repository at %s", dir)
	}

	path, err := r.InternalPath(nil, false)
	if err != nil {
		return errors.Wrap(err, "could not resolve .git path")
	}
	fmt.Fprintf(out, "Initialized empty repository in %s\n", path)
	return nil
}
