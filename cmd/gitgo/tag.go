package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTagCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag NAME [TARGET]",
		Short: "create a tag pointing at TARGET (HEAD by default)",
		Args:  cobra.RangeArgs(1, 2),
	}

	message := cmd.Flags().StringP("message", "m", "", "the tag's annotation message; an annotated tag object is always created")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := "HEAD"
		if len(args) > 1 {
			target = args[1]
		}
		return tagCmd(cmd.OutOrStdout(), cfg, args[0], target, *message)
	}
	return cmd
}

func tagCmd(out io.Writer, cfg *rootFlags, name, target, message string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	author, err := authorFromEnv(cfg)
	if err != nil {
		return err
	}

	id, err := r.Tag(name, target, message, author)
	if err != nil {
		return errors.Wrapf(err, "could not create tag %s", name)
	}

	fmt.Fprintln(out, id.String())
	return nil
}
