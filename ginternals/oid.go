// Package ginternals contains the core, low-level types shared by every
// other package: object ids, on-disk paths, and references. Nothing in
// this package talks to a filesystem; it only knows how to turn bytes
// into ids and ids into bytes.
package ginternals

import (
	"crypto/sha1" //nolint:gosec // this is Git's object hash, not used for security
	"encoding/hex"
	"regexp"

	"golang.org/x/xerrors"
)

// OidSize is the length, in bytes, of a binary Oid.
const OidSize = 20

// HexSize is the length, in hex characters, of a fully-qualified Oid.
const HexSize = OidSize * 2

// ErrInvalidOid is returned when a value cannot be parsed as an Oid.
var ErrInvalidOid = xerrors.New("invalid object id")

// NullOid is the zero-value Oid. It's returned by methods that fail to
// produce a real id, and should never match a real, persisted object.
var NullOid = Oid{}

// Oid is the 20-byte SHA-1 digest that uniquely identifies a git object.
// Its canonical textual representation is 40 lowercase hex characters.
type Oid [OidSize]byte

// NewOidFromContent returns the Oid of the given frame, which should
// already contain "<kind> <size>\0<payload>".
func NewOidFromContent(frame []byte) Oid {
	return Oid(sha1.Sum(frame)) //nolint:gosec // see the crypto/sha1 import comment
}

// NewOidFromHex returns an Oid from its 20 raw bytes.
func NewOidFromHex(b []byte) (Oid, error) {
	if len(b) != OidSize {
		return NullOid, xerrors.Errorf("expected %d bytes, got %d: %w", OidSize, len(b), ErrInvalidOid)
	}
	var oid Oid
	copy(oid[:], b)
	return oid, nil
}

// NewOidFromChars returns an Oid from its 40-character hex representation,
// provided as a byte slice (as found inline in a KVLM header value).
func NewOidFromChars(b []byte) (Oid, error) {
	return NewOidFromStr(string(b))
}

// NewOidFromStr returns an Oid from its 40-character hex representation.
func NewOidFromStr(s string) (Oid, error) {
	if len(s) != HexSize {
		return NullOid, xerrors.Errorf("expected %d hex chars, got %d: %w", HexSize, len(s), ErrInvalidOid)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return NullOid, xerrors.Errorf("%s: %w", err.Error(), ErrInvalidOid)
	}
	return NewOidFromHex(raw)
}

// Bytes returns the raw 20-byte id.
func (o Oid) Bytes() []byte {
	return o[:]
}

// String returns the 40-character lowercase hex representation of the id.
func (o Oid) String() string {
	return hex.EncodeToString(o[:])
}

// IsZero returns whether the id is the NullOid.
func (o Oid) IsZero() bool {
	return o == NullOid
}

// hexNameRE matches a full or partial object name: 4 to 40 lowercase or
// uppercase hex characters.
var hexNameRE = regexp.MustCompile(`^[0-9A-Fa-f]{4,40}$`)

// IsPartialNameValid returns whether s looks like a (possibly partial)
// hex object name: 4 to 40 hex characters.
func IsPartialNameValid(s string) bool {
	return hexNameRE.MatchString(s)
}
