package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colinmarc/gitcore/internal/readutil"
	"golang.org/x/xerrors"
)

// ErrSignatureInvalid is returned when an author/committer/tagger
// signature can't be parsed.
var ErrSignatureInvalid = xerrors.New("signature is invalid")

// Signature identifies the author, committer, or tagger of an object:
// a name, an email, and the time the action was taken.
type Signature struct {
	Time  time.Time
	Name  string
	Email string
}

// String returns the signature in its on-disk form:
// "Name <email> unix-seconds timezone".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.Time.Unix(), s.Time.Format("-0700"))
}

// IsZero returns whether the signature is the zero value.
func (s Signature) IsZero() bool {
	return s.Time.IsZero() && s.Name == "" && s.Email == ""
}

// NewSignature builds a signature for name/email, stamped with the
// current time.
func NewSignature(name, email string) Signature {
	return Signature{Name: name, Email: email, Time: time.Now()}
}

// NewSignatureFromBytes parses a signature from its on-disk form:
//
//	User Name <user.email@domain.tld> 1566115917 -0700
func NewSignatureFromBytes(b []byte) (Signature, error) {
	sig := Signature{}

	data := readutil.ReadTo(b, '<')
	if len(data) == 0 {
		return sig, xerrors.Errorf("could not retrieve the name: %w", ErrSignatureInvalid)
	}
	sig.Name = strings.TrimSpace(string(data))
	offset := len(data) + 1
	if offset >= len(b) {
		return sig, xerrors.Errorf("signature stopped after the name: %w", ErrSignatureInvalid)
	}

	data = readutil.ReadTo(b[offset:], '>')
	if len(data) == 0 {
		return sig, xerrors.Errorf("could not retrieve the email: %w", ErrSignatureInvalid)
	}
	sig.Email = string(data)
	offset += len(data) + 2 // skip "> "
	if offset >= len(b) {
		return sig, xerrors.Errorf("signature stopped after the email: %w", ErrSignatureInvalid)
	}

	timestamp := readutil.ReadTo(b[offset:], ' ')
	if len(timestamp) == 0 {
		return sig, xerrors.Errorf("could not retrieve the timestamp: %w", ErrSignatureInvalid)
	}
	offset += len(timestamp) + 1
	if offset >= len(b) {
		return sig, xerrors.Errorf("signature stopped after the timestamp: %w", ErrSignatureInvalid)
	}

	t, err := strconv.ParseInt(string(timestamp), 10, 64)
	if err != nil {
		return sig, xerrors.Errorf("invalid timestamp %s: %w", timestamp, err)
	}
	sig.Time = time.Unix(t, 0)

	timezone := b[offset:]
	tz, err := time.Parse("-0700", string(timezone))
	if err != nil {
		return sig, xerrors.Errorf("invalid timezone format %s: %w", timezone, err)
	}
	sig.Time = sig.Time.In(tz.Location())
	return sig, nil
}
