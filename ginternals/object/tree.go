package object

import (
	"bytes"
	"strconv"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/internal/readutil"
	"golang.org/x/xerrors"
)

// TreeObjectMode is the mode of an entry inside a tree. Non-standard
// modes are not supported.
type TreeObjectMode int32

// The five modes Git allows inside a tree entry.
const (
	ModeFile       TreeObjectMode = 0o100644
	ModeExecutable TreeObjectMode = 0o100755
	ModeDirectory  TreeObjectMode = 0o040000
	ModeSymLink    TreeObjectMode = 0o120000
	ModeGitLink    TreeObjectMode = 0o160000
)

// IsValid returns whether m is one of the five supported modes.
func (m TreeObjectMode) IsValid() bool {
	switch m {
	case ModeFile, ModeExecutable, ModeDirectory, ModeSymLink, ModeGitLink:
		return true
	default:
		return false
	}
}

// ObjectType returns the kind of object a mode points at.
func (m TreeObjectMode) ObjectType() Type {
	switch m {
	case ModeDirectory:
		return TypeTree
	case ModeGitLink:
		return TypeCommit
	default:
		return TypeBlob
	}
}

// TreeEntry is a single mode/path/id triplet inside a Tree.
type TreeEntry struct {
	Path string
	ID   ginternals.Oid
	Mode TreeObjectMode
}

// Tree represents a git tree object: a flat, single-level listing of
// the entries of one directory.
type Tree struct {
	rawObject *Object
	entries   []TreeEntry
}

// NewTree builds a Tree from its entries. Entries are stored and
// encoded in the order given; the caller is responsible for sorting
// them (files before directories, each group sorted by name, see
// BuildTree).
func NewTree(entries []TreeEntry) *Tree {
	t := &Tree{entries: entries}
	t.rawObject = t.ToObject()
	return t
}

// NewTreeFromObject parses o as a Tree.
//
// A tree's content is a back-to-back sequence of entries, each shaped:
//
//	{octal mode} {path}\0{20-byte raw id}
func NewTreeFromObject(o *Object) (*Tree, error) {
	if o.Type() != TypeTree {
		return nil, xerrors.Errorf("type %s is not a tree: %w", o.typ, ErrCorruptedObject)
	}

	entries := []TreeEntry{}

	data := o.Bytes()
	if len(data) > 0 {
		offset := 0
		for i := 1; ; i++ {
			entry := TreeEntry{}

			modeBytes := readutil.ReadTo(data[offset:], ' ')
			if len(modeBytes) == 0 {
				return nil, xerrors.Errorf("could not retrieve the mode of entry %d: %w", i, ErrMalformedTree)
			}
			offset += len(modeBytes) + 1
			mode, err := strconv.ParseInt(string(modeBytes), 8, 32)
			if err != nil {
				return nil, xerrors.Errorf("could not parse mode of entry %d: %s: %w", i, err.Error(), ErrMalformedTree)
			}
			entry.Mode = TreeObjectMode(mode)

			pathBytes := readutil.ReadTo(data[offset:], 0)
			if len(pathBytes) == 0 {
				return nil, xerrors.Errorf("could not retrieve the path of entry %d: %w", i, ErrMalformedTree)
			}
			offset += len(pathBytes) + 1
			entry.Path = string(pathBytes)

			if offset+ginternals.OidSize > len(data) {
				return nil, xerrors.Errorf("not enough space to retrieve the id of entry %d: %w", i, ErrMalformedTree)
			}
			entry.ID, err = ginternals.NewOidFromHex(data[offset : offset+ginternals.OidSize])
			if err != nil {
				return nil, xerrors.Errorf("invalid id for entry %d: %s: %w", i, err.Error(), ErrMalformedTree)
			}
			offset += ginternals.OidSize

			entries = append(entries, entry)
			if offset == len(data) {
				break
			}
		}
	}

	return &Tree{rawObject: o, entries: entries}, nil
}

// Entries returns a copy of the tree's entries.
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ID returns the tree's object id.
func (t *Tree) ID() ginternals.Oid {
	return t.rawObject.ID()
}

// ToObject encodes the tree's entries into a new Object.
func (t *Tree) ToObject() *Object {
	buf := new(bytes.Buffer)
	for _, e := range t.entries {
		buf.WriteString(strconv.FormatInt(int64(e.Mode), 8))
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		buf.Write(e.ID.Bytes())
	}
	return New(TypeTree, buf.Bytes())
}
