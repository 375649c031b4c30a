package main

import (
	"fmt"
	"io"

	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-tree TREE-ISH",
		Short: "list the contents of a tree object",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsTreeCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func lsTreeCmd(out io.Writer, cfg *rootFlags, name string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	oid, err := r.Resolve(name)
	if err != nil {
		return errors.Wrapf(err, "not a valid object name %s", name)
	}

	o, err := r.Object(oid)
	if err != nil {
		return errors.Wrapf(err, "could not load object %s", oid)
	}

	switch o.Type() {
	case object.TypeTree:
		// already a tree, nothing to unwrap.
	case object.TypeCommit:
		c, err := object.NewCommitFromObject(o)
		if err != nil {
			return errors.Wrapf(err, "could not parse commit %s", oid)
		}
		o, err = r.Object(c.TreeID())
		if err != nil {
			return errors.Wrapf(err, "could not load tree %s", c.TreeID())
		}
	default:
		return errors.Errorf("%s is a %s, not a tree", oid, o.Type())
	}

	tree, err := object.NewTreeFromObject(o)
	if err != nil {
		return errors.Wrapf(err, "could not parse tree %s", oid)
	}

	for _, e := range tree.Entries() {
		fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType(), e.ID, e.Path)
	}
	return nil
}
