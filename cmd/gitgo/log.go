package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [COMMIT]",
		Short: "show the commit history reachable from COMMIT (HEAD by default)",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		start := "HEAD"
		if len(args) > 0 {
			start = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, start)
	}
	return cmd
}

func logCmd(out io.Writer, cfg *rootFlags, start string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	id, err := r.Resolve(start)
	if err != nil {
		return errors.Wrapf(err, "not a valid object name %s", start)
	}

	commits, err := r.Log(id)
	if err != nil {
		return errors.Wrap(err, "could not walk commit history")
	}

	for _, c := range commits {
		fmt.Fprintf(out, "commit %s\n", c.ID())
		fmt.Fprintf(out, "Author: %s\n", c.Author())
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "    %s\n\n", c.Message())
	}
	return nil
}
