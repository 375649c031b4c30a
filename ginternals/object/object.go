// Package object contains the types and codecs for the four kinds of
// git object: blob, tree, commit, and tag.
package object

import (
	"bytes"
	"compress/zlib"
	"strconv"
	"sync"

	"github.com/colinmarc/gitcore/ginternals"
	"golang.org/x/xerrors"
)

var (
	// ErrUnknownKind is returned when an object's type header doesn't
	// match one of the four known kinds.
	ErrUnknownKind = xerrors.New("unknown object type")

	// ErrCorruptedObject is returned when an object's frame doesn't
	// follow the "<type> <size>\0<content>" grammar or its size header
	// doesn't match its content.
	ErrCorruptedObject = xerrors.New("invalid object")

	// ErrMalformedTree is returned when a tree's content doesn't follow
	// the mode/path/oid entry grammar.
	ErrMalformedTree = xerrors.New("invalid tree")

	// ErrCommitInvalid is returned when a commit is missing a required
	// header field or the field can't be parsed.
	ErrCommitInvalid = xerrors.New("invalid commit")

	// ErrTagInvalid is returned when a tag is missing a required header
	// field or the field can't be parsed.
	ErrTagInvalid = xerrors.New("invalid tag")
)

// Type represents the kind of a git object.
type Type int8

// The four object kinds this store understands.
const (
	TypeCommit Type = 1
	TypeTree   Type = 2
	TypeBlob   Type = 3
	TypeTag    Type = 4
)

func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	case TypeTag:
		return "tag"
	default:
		return "unknown"
	}
}

// IsValid returns whether t is one of the four known object kinds.
func (t Type) IsValid() bool {
	switch t {
	case TypeCommit, TypeTree, TypeBlob, TypeTag:
		return true
	default:
		return false
	}
}

// NewTypeFromString parses a type's textual header representation.
func NewTypeFromString(s string) (Type, error) {
	switch s {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	case "tag":
		return TypeTag, nil
	default:
		return 0, xerrors.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// Object is a generic git object: a type tag and a content payload.
// Blob, Tree, Commit and Tag all wrap an Object rather than duplicate
// the id/framing logic.
type Object struct {
	id      ginternals.Oid
	typ     Type
	content []byte

	idOnce sync.Once
}

// New creates a new Object of the given type around content.
func New(typ Type, content []byte) *Object {
	o := &Object{typ: typ, content: content}
	o.id, _ = o.frame()
	return o
}

// ID returns the object's id, computed lazily from its framed content.
func (o *Object) ID() ginternals.Oid {
	o.idOnce.Do(func() {
		o.id, _ = o.frame()
	})
	return o.id
}

// Size returns the length of the object's content, excluding the frame
// header.
func (o *Object) Size() int {
	return len(o.content)
}

// Type returns the object's kind.
func (o *Object) Type() Type {
	return o.typ
}

// Bytes returns the object's content, excluding the frame header.
func (o *Object) Bytes() []byte {
	return o.content
}

// frame returns the object's id and its on-disk uncompressed frame:
// "<type> <size>\0<content>".
func (o *Object) frame() (id ginternals.Oid, data []byte) {
	w := new(bytes.Buffer)
	w.WriteString(o.Type().String())
	w.WriteByte(' ')
	w.WriteString(strconv.Itoa(o.Size()))
	w.WriteByte(0)
	w.Write(o.Bytes())

	data = w.Bytes()
	id = ginternals.NewOidFromContent(data)
	return id, data
}

// Compress returns the object's frame, zlib-compressed, ready to be
// written to the object store.
func (o *Object) Compress() (data []byte, err error) {
	_, frame := o.frame()

	compressed := new(bytes.Buffer)
	zw := zlib.NewWriter(compressed)

	if _, err = zw.Write(frame); err != nil {
		zw.Close() //nolint:errcheck // the write error is the one reported
		return nil, xerrors.Errorf("could not compress object: %w", err)
	}
	// Close flushes the remaining compressed data and the checksum, so
	// it has to run before the buffer is read.
	if err = zw.Close(); err != nil {
		return nil, xerrors.Errorf("could not compress object: %w", err)
	}
	return compressed.Bytes(), nil
}

// Decode parses an already-decompressed frame ("<type> <size>\0<content>")
// into its concrete type: *Blob, *Tree, *Commit, or *Tag.
func Decode(frame []byte) (typ Type, value interface{}, err error) {
	sp := bytes.IndexByte(frame, ' ')
	if sp == -1 {
		return 0, nil, xerrors.Errorf("missing type in object frame: %w", ErrCorruptedObject)
	}
	typ, err = NewTypeFromString(string(frame[:sp]))
	if err != nil {
		return 0, nil, err
	}

	nul := bytes.IndexByte(frame[sp:], 0)
	if nul == -1 {
		return 0, nil, xerrors.Errorf("missing size terminator in object frame: %w", ErrCorruptedObject)
	}
	nul += sp

	size, err := strconv.Atoi(string(frame[sp+1 : nul]))
	if err != nil {
		return 0, nil, xerrors.Errorf("invalid size in object frame: %w", ErrCorruptedObject)
	}
	content := frame[nul+1:]
	if len(content) != size {
		return 0, nil, xerrors.Errorf("size mismatch: header says %d, got %d: %w", size, len(content), ErrCorruptedObject)
	}

	o := New(typ, content)
	switch typ {
	case TypeBlob:
		value = NewBlob(o)
	case TypeTree:
		value, err = NewTreeFromObject(o)
	case TypeCommit:
		value, err = NewCommitFromObject(o)
	case TypeTag:
		value, err = NewTagFromObject(o)
	default:
		return 0, nil, xerrors.Errorf("%s: %w", typ, ErrUnknownKind)
	}
	if err != nil {
		return 0, nil, err
	}
	return typ, value, nil
}
