package ginternals

import (
	"bytes"
	"strings"

	"golang.org/x/xerrors"
)

// Head is the name of the reference to the current branch, or to a
// commit directly if the repository is in a detached-HEAD state.
const Head = "HEAD"

// Master is the name used for the first branch of a repository.
const Master = "master"

var (
	// ErrRefNotFound is returned when acting on a reference that
	// doesn't exist.
	ErrRefNotFound = xerrors.New("reference not found")

	// ErrRefExists is returned when acting on a reference that's
	// expected not to exist yet.
	ErrRefExists = xerrors.New("reference already exists")

	// ErrRefNameInvalid is returned when a reference's name doesn't
	// follow git's naming rules.
	ErrRefNameInvalid = xerrors.New("reference name is not valid")

	// ErrRefInvalid is returned when a reference's content can't be
	// parsed as either a symbolic reference or an object id.
	ErrRefInvalid = xerrors.New("reference is not valid")
)

// ReferenceType distinguishes a reference that points directly at an
// object from one that points at another reference.
type ReferenceType int8

const (
	// OidReference targets an object id directly.
	OidReference ReferenceType = 1
	// SymbolicReference targets another reference by name.
	SymbolicReference ReferenceType = 2
)

// Reference is a named pointer, either directly at an object id or at
// another reference. This store only ever persists HEAD (which may be
// either kind) and refs/tags/<name> (always an OidReference); branches
// are resolvable in principle but nothing in this core creates one.
type Reference struct {
	name   string
	target string
	id     Oid
	typ    ReferenceType
}

// RefContent reads the raw bytes stored for a reference name. It lets
// ResolveReference walk symbolic references without depending on a
// concrete storage backend.
type RefContent func(name string) ([]byte, error)

// ResolveReference follows name, and any symbolic reference it points
// to, until it reaches a reference that holds an object id directly.
func ResolveReference(name string, read RefContent) (*Reference, error) {
	return resolveRefs(name, read, map[string]struct{}{})
}

func resolveRefs(name string, read RefContent, visited map[string]struct{}) (*Reference, error) {
	if _, ok := visited[name]; ok {
		return nil, xerrors.Errorf("circular symbolic reference: %w", ErrRefInvalid)
	}
	visited[name] = struct{}{}

	if !IsRefNameValid(name) {
		return nil, xerrors.Errorf("ref %q: %w", name, ErrRefNameInvalid)
	}

	data, err := read(name)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	if bytes.HasPrefix(data, []byte("ref: ")) {
		symbolicTarget := string(data[5:])
		target, err := resolveRefs(symbolicTarget, read, visited)
		if err != nil {
			return nil, err
		}
		return &Reference{
			typ:    SymbolicReference,
			name:   name,
			id:     target.id,
			target: symbolicTarget,
		}, nil
	}

	oid, err := NewOidFromChars(data)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err.Error(), ErrRefInvalid)
	}
	return &Reference{typ: OidReference, name: name, id: oid}, nil
}

// NewReference returns a Reference that points directly at target.
func NewReference(name string, target Oid) *Reference {
	return &Reference{typ: OidReference, name: name, id: target}
}

// NewSymbolicReference returns a Reference that points at another
// reference by name.
func NewSymbolicReference(name, target string) *Reference {
	return &Reference{typ: SymbolicReference, name: name, target: target}
}

// Name returns the reference's own name, e.g. "HEAD" or "refs/tags/v1".
func (ref *Reference) Name() string {
	return ref.name
}

// Target returns the object id the reference ultimately resolves to.
func (ref *Reference) Target() Oid {
	return ref.id
}

// Type returns whether the reference is symbolic or points at an id
// directly.
func (ref *Reference) Type() ReferenceType {
	return ref.typ
}

// SymbolicTarget returns the name this reference points to, if it's a
// SymbolicReference.
func (ref *Reference) SymbolicTarget() string {
	return ref.target
}

// IsRefNameValid reports whether name follows git's reference naming
// rules: https://git-scm.com/docs/git-check-ref-format
func IsRefNameValid(name string) bool {
	if name == "" || name == "/" || name[len(name)-1] == '/' || name[len(name)-1] == '.' {
		return false
	}

	for i, c := range name {
		if c < 32 || c == 127 {
			return false
		}
		if c == '*' || c == '?' || c == '!' || c == '^' {
			return false
		}
		if c == ' ' || c == '[' || c == '\\' || c == ':' {
			return false
		}
		if i < len(name)-1 {
			switch name[i : i+2] {
			case "@{", "..":
				return false
			}
		}
	}

	for _, s := range strings.Split(name, "/") {
		if s == "" || s[0] == '.' || s[len(s)-1] == '.' || strings.HasSuffix(s, ".lock") {
			return false
		}
	}

	return true
}
