package gitcore

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/colinmarc/gitcore/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Checkout materializes the tree pointed at by id (or, if id is a
// commit, its tree) into dest. Everything in dest except ".git" is
// removed first. Only directory entries are told apart; every other
// entry, whatever its mode, is loaded and written as a regular file, and
// mode bits aren't honored.
func (r *Repository) Checkout(id ginternals.Oid, dest afero.Fs) error {
	treeID, err := r.treeIDOf(id)
	if err != nil {
		return err
	}

	if err := clearWorkingTree(dest); err != nil {
		return xerrors.Errorf("could not clear destination: %w", err)
	}
	return r.checkoutTree(treeID, "/", dest)
}

// treeIDOf returns the tree id of id directly, or of a commit's tree if
// id points at a commit.
func (r *Repository) treeIDOf(id ginternals.Oid) (ginternals.Oid, error) {
	o, err := r.be.Object(id)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not load object %s: %w", id, err)
	}

	switch o.Type() {
	case object.TypeTree:
		return o.ID(), nil
	case object.TypeCommit:
		c, err := object.NewCommitFromObject(o)
		if err != nil {
			return ginternals.NullOid, err
		}
		return c.TreeID(), nil
	default:
		return ginternals.NullOid, xerrors.Errorf("object %s is a %s, not a commit or tree", id, o.Type())
	}
}

func clearWorkingTree(dest afero.Fs) error {
	entries, err := afero.ReadDir(dest, "/")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.Name() == gitpath.DotGitPath {
			continue
		}
		if err := dest.RemoveAll(filepath.Join("/", e.Name())); err != nil {
			return xerrors.Errorf("could not remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (r *Repository) checkoutTree(treeID ginternals.Oid, dir string, dest afero.Fs) error {
	o, err := r.be.Object(treeID)
	if err != nil {
		return xerrors.Errorf("could not load tree %s: %w", treeID, err)
	}
	t, err := object.NewTreeFromObject(o)
	if err != nil {
		return err
	}

	for _, e := range t.Entries() {
		target := filepath.Join(dir, e.Path)
		if e.Mode == object.ModeDirectory {
			if err := dest.MkdirAll(target, 0o750); err != nil {
				return xerrors.Errorf("could not create directory %s: %w", target, err)
			}
			if err := r.checkoutTree(e.ID, target, dest); err != nil {
				return err
			}
			continue
		}

		blobO, err := r.be.Object(e.ID)
		if err != nil {
			return xerrors.Errorf("could not load blob %s: %w", e.ID, err)
		}
		if err := afero.WriteFile(dest, target, blobO.Bytes(), 0o644); err != nil {
			return xerrors.Errorf("could not write %s: %w", target, err)
		}
	}
	return nil
}

// BuildTree walks dir one level at a time (never recursing through
// afero.Walk's full-tree traversal, so the entry ordering below stays
// exact) and returns the id of a tree object representing it. Entries
// named ".git" are skipped. Within one directory, entries are emitted
// files-first, each group sorted by name, rather than git's own
// as-if-suffixed-with-"/" ordering: an open choice this module pins to
// a concrete, testable order.
func (r *Repository) BuildTree(dir afero.Fs, root string) (ginternals.Oid, error) {
	entries, err := afero.ReadDir(dir, root)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not list %s: %w", root, err)
	}

	var files, dirs []os.FileInfo
	for _, e := range entries {
		if e.Name() == gitpath.DotGitPath {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })

	treeEntries := make([]object.TreeEntry, 0, len(files)+len(dirs))
	for _, f := range files {
		data, err := afero.ReadFile(dir, filepath.Join(root, f.Name()))
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("could not read %s: %w", f.Name(), err)
		}
		blobID, err := r.be.WriteObject(object.New(object.TypeBlob, data))
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("could not write blob for %s: %w", f.Name(), err)
		}
		treeEntries = append(treeEntries, object.TreeEntry{Mode: object.ModeFile, Path: f.Name(), ID: blobID})
	}
	for _, d := range dirs {
		subID, err := r.BuildTree(dir, filepath.Join(root, d.Name()))
		if err != nil {
			return ginternals.NullOid, err
		}
		treeEntries = append(treeEntries, object.TreeEntry{Mode: object.ModeDirectory, Path: d.Name(), ID: subID})
	}

	t := object.NewTree(treeEntries)
	return r.be.WriteObject(t.ToObject())
}
