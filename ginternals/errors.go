package ginternals

import "golang.org/x/xerrors"

// Sentinel errors returned by the plumbing layer. Callers should use
// errors.Is/xerrors.Is to match against these rather than comparing
// error strings.
var (
	// ErrObjectNotFound is returned when an object's id doesn't exist
	// in the object database.
	ErrObjectNotFound = xerrors.New("object not found")

	// ErrNotARepository is returned when neither a path nor any of its
	// parents contains a .git directory.
	ErrNotARepository = xerrors.New("not a git repository")

	// ErrUnsupportedFormat is returned when a repository's
	// core.repositoryformatversion isn't one this package understands.
	ErrUnsupportedFormat = xerrors.New("unsupported repository format version")

	// ErrNotEmpty is returned when Init is called against a directory
	// that already contains files.
	ErrNotEmpty = xerrors.New("directory is not empty")

	// ErrNotADirectory is returned when a path that's expected to be a
	// directory turns out to be a regular file.
	ErrNotADirectory = xerrors.New("not a directory")

	// ErrInvalidName is returned when a name given to ResolveName isn't
	// a 4 to 40 character hex object name. Invalid reference names are
	// reported with ErrRefNameInvalid instead.
	ErrInvalidName = xerrors.New("invalid name")

	// ErrNotFound is returned when a name fails to resolve to any
	// object or reference.
	ErrNotFound = xerrors.New("not found")

	// ErrAmbiguous is returned when a partial object id matches more
	// than one object.
	ErrAmbiguous = xerrors.New("ambiguous id")
)
