package object

import "github.com/colinmarc/gitcore/ginternals"

// Blob represents a blob object: an opaque byte payload with no
// internal structure.
type Blob struct {
	rawObject *Object
}

// NewBlob wraps o as a Blob. o must be of TypeBlob.
func NewBlob(o *Object) *Blob {
	return &Blob{rawObject: o}
}

// NewBlobFromBytes creates a new, unpersisted Blob from raw content.
func NewBlobFromBytes(content []byte) *Blob {
	return &Blob{rawObject: New(TypeBlob, content)}
}

// ID returns the blob's object id.
func (b *Blob) ID() ginternals.Oid {
	return b.rawObject.ID()
}

// Bytes returns the blob's content.
func (b *Blob) Bytes() []byte {
	return b.rawObject.content
}

// Size returns the size of the blob's content.
func (b *Blob) Size() int {
	return len(b.rawObject.content)
}

// ToObject returns the underlying Object.
func (b *Blob) ToObject() *Object {
	return b.rawObject
}
