package fsbackend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// refPath returns the on-disk path of a reference given its name.
// References beyond HEAD and refs/tags/<name> aren't written by this
// store, but resolution still accepts any name git-go considers valid.
func (b *Backend) refPath(name string) string {
	return filepath.Join(b.gitDirPath, filepath.FromSlash(name))
}

// Reference returns a stored reference from its name.
// ErrRefNotFound is returned if the reference doesn't exist on disk.
func (b *Backend) Reference(name string) (*ginternals.Reference, error) {
	read := func(name string) ([]byte, error) {
		data, err := afero.ReadFile(b.fs, b.refPath(name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, xerrors.Errorf("ref %q: %w", name, ginternals.ErrRefNotFound)
			}
			return nil, xerrors.Errorf("could not read reference %q: %w", name, err)
		}
		return data, nil
	}
	return ginternals.ResolveReference(name, read)
}

// WriteReference persists ref on disk, overwriting it if it already
// exists.
func (b *Backend) WriteReference(ref *ginternals.Reference) error {
	if !ginternals.IsRefNameValid(ref.Name()) {
		return ginternals.ErrRefNameInvalid
	}

	var content string
	switch ref.Type() {
	case ginternals.SymbolicReference:
		content = fmt.Sprintf("ref: %s\n", ref.SymbolicTarget())
	case ginternals.OidReference:
		content = fmt.Sprintf("%s\n", ref.Target().String())
	default:
		return xerrors.Errorf("reference type %d is not supported", ref.Type())
	}

	p := b.refPath(ref.Name())
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return xerrors.Errorf("could not create directory for reference %q: %w", ref.Name(), err)
	}
	if err := afero.WriteFile(b.fs, p, []byte(content), 0o644); err != nil {
		return xerrors.Errorf("could not persist reference %q: %w", ref.Name(), err)
	}
	return nil
}

// WriteReferenceSafe persists ref on disk.
// ErrRefExists is returned if the reference already exists.
func (b *Backend) WriteReferenceSafe(ref *ginternals.Reference) error {
	if !ginternals.IsRefNameValid(ref.Name()) {
		return ginternals.ErrRefNameInvalid
	}

	_, err := b.fs.Stat(b.refPath(ref.Name()))
	if err == nil {
		return ginternals.ErrRefExists
	}
	if !os.IsNotExist(err) {
		return xerrors.Errorf("could not check if reference %q exists: %w", ref.Name(), err)
	}
	return b.WriteReference(ref)
}
