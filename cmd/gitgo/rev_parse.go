package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRevParseCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rev-parse NAME",
		Short: "resolve a ref, HEAD, or (partial) object id to a full object id",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return revParseCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func revParseCmd(out io.Writer, cfg *rootFlags, name string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	id, err := r.Resolve(name)
	if err != nil {
		return errors.Wrapf(err, "not a valid object name %s", name)
	}

	fmt.Fprintln(out, id.String())
	return nil
}
