package main

import (
	"fmt"
	"io"
	"os"

	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "compute an object id, and optionally write the object to the store",
		Args:  cobra.ExactArgs(1),
	}

	typ := cmd.Flags().StringP("type", "t", "blob", "the object type")
	write := cmd.Flags().BoolP("w", "w", false, "also write the object to the store")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), cfg, args[0], *typ, *write)
	}
	return cmd
}

func hashObjectCmd(out io.Writer, cfg *rootFlags, filePath, typ string, write bool) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", filePath)
	}

	oType, err := object.NewTypeFromString(typ)
	if err != nil {
		return errors.Wrapf(err, "unsupported object type %s", typ)
	}
	o := object.New(oType, content)

	if write {
		r, err := loadRepository(cfg)
		if err != nil {
			return err
		}
		if _, err := r.WriteObject(o); err != nil {
			return errors.Wrap(err, "could not write object")
		}
	}

	fmt.Fprintln(out, o.ID().String())
	return nil
}
