package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCatFileCmd(cfg *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file OBJECT",
		Short: "print content or type/size information about a repository object",
		Args:  cobra.ExactArgs(1),
	}

	typeOnly := cmd.Flags().BoolP("t", "t", false, "show the object's type instead of its content")
	sizeOnly := cmd.Flags().BoolP("s", "s", false, "show the object's size instead of its content")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return catFileCmd(cmd.OutOrStdout(), cfg, args[0], *typeOnly, *sizeOnly)
	}
	return cmd
}

func catFileCmd(out io.Writer, cfg *rootFlags, name string, typeOnly, sizeOnly bool) error {
	if typeOnly && sizeOnly {
		return errors.New("-t and -s are mutually exclusive")
	}

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

	switch {
	case typeOnly:
		fmt.Fprintln(out, o.Type().String())
	case sizeOnly:
		fmt.Fprintln(out, strconv.Itoa(o.Size()))
	default:
		printObjectContent(out, o)
	}
	return nil
}

func printObjectContent(out io.Writer, o *object.Object) {
	switch o.Type() {
	case object.TypeCommit:
		c, err := object.NewCommitFromObject(o)
		if err != nil {
			fmt.Fprintln(out, string(o.Bytes()))
			return
		}
		fmt.Fprintf(out, "tree %s\n", c.TreeID())
		for _, id := range c.ParentIDs() {
			fmt.Fprintf(out, "parent %s\n", id)
		}
		fmt.Fprintf(out, "author %s\n", c.Author())
		fmt.Fprintf(out, "committer %s\n", c.Committer())
		fmt.Fprintln(out, "")
		fmt.Fprint(out, c.Message())
	case object.TypeTag:
		tag, err := object.NewTagFromObject(o)
		if err != nil {
			fmt.Fprintln(out, string(o.Bytes()))
			return
		}
		fmt.Fprintf(out, "object %s\n", tag.Target())
		fmt.Fprintf(out, "type %s\n", tag.Type())
		fmt.Fprintf(out, "tag %s\n", tag.Name())
		fmt.Fprintf(out, "tagger %s\n", tag.Tagger())
		fmt.Fprintln(out, "")
		fmt.Fprint(out, tag.Message())
	case object.TypeTree:
		tree, err := object.NewTreeFromObject(o)
		if err != nil {
			fmt.Fprintln(out, string(o.Bytes()))
			return
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType(), e.ID, e.Path)
		}
	default:
		fmt.Fprint(out, string(o.Bytes()))
	}
}
