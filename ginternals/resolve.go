package ginternals

import "strings"

// ObjectIDLister is the subset of a backend's capabilities ResolveName
// needs: listing every object id whose hex representation starts with
// prefix. backend.Backend satisfies this interface; it's declared here,
// rather than imported from backend, to avoid a package cycle (backend
// depends on ginternals for Oid and Reference).
type ObjectIDLister interface {
	ObjectIDsWithPrefix(prefix string) ([]Oid, error)
}

// ResolveName resolves a (possibly partial) hex object name to a full
// Oid. name is lowercased before comparison, but the on-disk fan-out
// listing itself is never touched, matching find_object's behavior in
// the tutorial this resolver is modeled on.
//
// A 40-character name is returned as-is, with no existence check at
// this layer. A shorter name is resolved by listing every object whose
// id starts with it: zero matches is ErrNotFound, exactly one is
// returned, and more than one is ErrAmbiguous — collecting every match
// instead of returning the first is a deliberate improvement over
// picking the first listing-order hit.
//
// A literal "HEAD" is not special-cased here: it doesn't match the hex
// grammar and resolves to ErrInvalidName. Callers that need to resolve
// HEAD or other symbolic reference names must do so before calling
// ResolveName.
func ResolveName(lister ObjectIDLister, name string) (Oid, error) {
	name = strings.ToLower(name)
	if !IsPartialNameValid(name) {
		return NullOid, ErrInvalidName
	}

	if len(name) == HexSize {
		oid, err := NewOidFromStr(name)
		if err != nil {
			return NullOid, ErrInvalidName
		}
		return oid, nil
	}

	matches, err := lister.ObjectIDsWithPrefix(name)
	if err != nil {
		return NullOid, err
	}

	switch len(matches) {
	case 0:
		return NullOid, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return NullOid, ErrAmbiguous
	}
}
