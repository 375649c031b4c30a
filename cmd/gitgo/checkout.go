package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout COMMITTISH",
		Short: "materialize a commit or tree into the working tree",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func checkoutCmd(out io.Writer, cfg *rootFlags, name string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	if r.IsBare() {
		return errors.New("cannot checkout into a bare repository")
	}

	oid, err := r.Resolve(name)
	if err != nil {
		return errors.Wrapf(err, "not a valid object name %s", name)
	}

	dest := afero.NewBasePathFs(cfg.fs, r.WorkTreePath())
	if err := r.Checkout(oid, dest); err != nil {
		return errors.Wrapf(err, "could not check out %s", oid)
	}
	return nil
}
