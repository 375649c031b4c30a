// Package backend contains the interface used to store and retrieve
// objects and references from the object database, along with a
// filesystem-backed implementation in backend/fsbackend.
package backend

import (
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/object"
)

// Backend represents a storage engine able to read and write objects
// and references for a repository.
type Backend interface {
	// Init creates the directory layout and default config of a fresh
	// repository.
	Init() error

	// Reference returns a stored reference from its name.
	// ErrRefNotFound is returned if the reference doesn't exist.
	Reference(name string) (*ginternals.Reference, error)
	// WriteReference writes the given reference. If the reference
	// already exists it is overwritten.
	WriteReference(ref *ginternals.Reference) error
	// WriteReferenceSafe writes the given reference.
	// ErrRefExists is returned if the reference already exists.
	WriteReferenceSafe(ref *ginternals.Reference) error

	// Object returns the object with the given id.
	Object(oid ginternals.Oid) (*object.Object, error)
	// HasObject returns whether an object exists in the database.
	HasObject(oid ginternals.Oid) (bool, error)
	// WriteObject adds an object to the database and returns its id.
	WriteObject(o *object.Object) (ginternals.Oid, error)
	// ObjectIDsWithPrefix returns every object id whose hex
	// representation starts with prefix. It's the primitive partial-hash
	// resolution is built on.
	ObjectIDsWithPrefix(prefix string) ([]ginternals.Oid, error)
}
