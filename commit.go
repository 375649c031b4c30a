package gitcore

import (
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/object"
	"golang.org/x/xerrors"
)

// Commit builds a tree from the working tree root, constructs a commit
// pointing at it with the given message and author (reused as
// committer), and updates HEAD to point at the new commit. A freshly
// initialized repository, whose HEAD is a symbolic reference to a
// branch that doesn't exist yet, yields a commit with no parent.
func (r *Repository) Commit(message string, author object.Signature) (ginternals.Oid, error) {
	root := r.WorkTreePath()
	if root == "" {
		root = "/"
	}

	treeID, err := r.BuildTree(r.fs, root)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not build tree: %w", err)
	}

	opts := &object.CommitOptions{Message: message}
	if parentID, ok := r.headParent(); ok {
		opts.ParentIDs = []ginternals.Oid{parentID}
	}

	c := object.NewCommit(treeID, author, opts)
	id, err := r.be.WriteObject(c.ToObject())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write commit: %w", err)
	}

	if err := r.be.WriteReference(ginternals.NewReference(ginternals.Head, id)); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not update HEAD: %w", err)
	}
	return id, nil
}

// headParent resolves HEAD to the commit id it currently points at, if
// any. A HEAD that can't be resolved (a fresh repo's symbolic HEAD
// pointing at a branch with no commits yet) reports ok=false rather
// than an error: that's simply "no parent", not a failure.
func (r *Repository) headParent() (ginternals.Oid, bool) {
	ref, err := r.be.Reference(ginternals.Head)
	if err != nil {
		return ginternals.NullOid, false
	}
	return ref.Target(), true
}

// Tag resolves target to an object id, builds an annotated tag pointing
// at it, writes the tag object, and records it under refs/tags/<name>.
func (r *Repository) Tag(name, target, message string, author object.Signature) (ginternals.Oid, error) {
	targetID, err := r.Resolve(target)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not resolve target %q: %w", target, err)
	}

	targetObj, err := r.be.Object(targetID)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not load target object %s: %w", targetID, err)
	}

	t := object.NewTag(&object.TagParams{
		Target:  targetObj,
		Name:    name,
		Tagger:  author,
		Message: message,
	})

	id, err := r.be.WriteObject(t.ToObject())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write tag: %w", err)
	}

	ref := ginternals.NewReference(ginternals.LocalTagFullName(name), id)
	if err := r.be.WriteReference(ref); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write tag reference: %w", err)
	}
	return id, nil
}

// Log walks the commit graph back from start, depth-first along parent
// links, skipping ids it's already visited. Once merge commits with
// multiple parents exist this is a DAG traversal, not a simple list
// walk.
func (r *Repository) Log(start ginternals.Oid) ([]*object.Commit, error) {
	out := []*object.Commit{}
	visited := map[ginternals.Oid]bool{}

	var walk func(id ginternals.Oid) error
	walk = func(id ginternals.Oid) error {
		if visited[id] {
			return nil
		}
		visited[id] = true

		o, err := r.be.Object(id)
		if err != nil {
			return xerrors.Errorf("could not load commit %s: %w", id, err)
		}
		c, err := object.NewCommitFromObject(o)
		if err != nil {
			return err
		}
		out = append(out, c)

		for _, p := range c.ParentIDs() {
			if err := walk(p); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(start); err != nil {
		return nil, err
	}
	return out, nil
}
