package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCommitCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "record the working tree as a new commit",
	}

	message := cmd.Flags().StringP("message", "m", "", "the commit message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if *message == "" {
			return errors.New("a commit message is required (-m)")
		}
		return commitCmd(cmd.OutOrStdout(), cfg, *message)
	}
	return cmd
}

func commitCmd(out io.Writer, cfg *rootFlags, message string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	author, err := authorFromEnv(cfg)
	if err != nil {
		return err
	}

	id, err := r.Commit(message, author)
	if err != nil {
		return errors.Wrap(err, "could not create commit")
	}

	fmt.Fprintln(out, id.String())
	return nil
}
