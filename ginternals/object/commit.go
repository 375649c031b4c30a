package object

import (
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/kvlm"
	"golang.org/x/xerrors"
)

// CommitOptions holds the optional data used to build a new commit.
type CommitOptions struct {
	Message string
	GPGSig  string
	// Committer is the person recording the commit. If unset, the
	// author is reused as committer.
	Committer Signature
	ParentIDs []ginternals.Oid
}

// Commit represents a commit object: a pointer to a tree, zero or more
// parent commits, an author, a committer, and a message. The header is
// backed by a kvlm.Message so that unrecognized fields (e.g. a
// transplanted "mergetag") round-trip untouched.
type Commit struct {
	rawObject *Object
	msg       *kvlm.Message

	author    Signature
	committer Signature
	treeID    ginternals.Oid
	parentIDs []ginternals.Oid
}

// NewCommit creates a new Commit. Referenced ids are not validated
// against the object store.
func NewCommit(treeID ginternals.Oid, author Signature, opts *CommitOptions) *Commit {
	c := &Commit{
		treeID:    treeID,
		author:    author,
		committer: opts.Committer,
		parentIDs: opts.ParentIDs,
		msg:       kvlm.New(),
	}
	if c.committer.IsZero() {
		c.committer = author
	}

	c.msg.Add("tree", []byte(treeID.String()))
	for _, p := range c.parentIDs {
		c.msg.Add("parent", []byte(p.String()))
	}
	c.msg.Add("author", []byte(c.author.String()))
	c.msg.Add("committer", []byte(c.committer.String()))
	if opts.GPGSig != "" {
		c.msg.Add("gpgsig", []byte(opts.GPGSig))
	}
	c.msg.Trailer = []byte(opts.Message)

	c.rawObject = New(TypeCommit, c.msg.Encode())
	return c
}

// NewCommitFromObject parses o as a Commit.
func NewCommitFromObject(o *Object) (*Commit, error) {
	if o.Type() != TypeCommit {
		return nil, xerrors.Errorf("type %s is not a commit: %w", o.typ, ErrCorruptedObject)
	}

	msg, err := kvlm.Decode(o.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err.Error(), ErrCommitInvalid)
	}

	c := &Commit{rawObject: o, msg: msg}

	treeRaw, ok := msg.Get("tree")
	if !ok {
		return nil, xerrors.Errorf("commit has no tree: %w", ErrCommitInvalid)
	}
	c.treeID, err = ginternals.NewOidFromChars(treeRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse tree id %q: %w", treeRaw, err)
	}

	for _, p := range msg.Values("parent") {
		id, err := ginternals.NewOidFromChars(p)
		if err != nil {
			return nil, xerrors.Errorf("could not parse parent id %q: %w", p, err)
		}
		c.parentIDs = append(c.parentIDs, id)
	}

	authorRaw, ok := msg.Get("author")
	if !ok {
		return nil, xerrors.Errorf("commit has no author: %w", ErrCommitInvalid)
	}
	c.author, err = NewSignatureFromBytes(authorRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse author signature: %w", err)
	}

	if committerRaw, ok := msg.Get("committer"); ok {
		c.committer, err = NewSignatureFromBytes(committerRaw)
		if err != nil {
			return nil, xerrors.Errorf("could not parse committer signature: %w", err)
		}
	} else {
		c.committer = c.author
	}

	return c, nil
}

// ID returns the commit's object id.
func (c *Commit) ID() ginternals.Oid {
	return c.rawObject.ID()
}

// Author returns the signature of the person that wrote the change.
func (c *Commit) Author() Signature {
	return c.author
}

// Committer returns the signature of the person that recorded the commit.
func (c *Commit) Committer() Signature {
	return c.committer
}

// Message returns the commit's message.
func (c *Commit) Message() string {
	return string(c.msg.Trailer)
}

// ParentIDs returns the commit's parent ids.
//   - an orphan commit has 0 parents
//   - a regular commit or a fast-forward merge has 1 parent
//   - a true merge has 2 or more parents
func (c *Commit) ParentIDs() []ginternals.Oid {
	out := make([]ginternals.Oid, len(c.parentIDs))
	copy(out, c.parentIDs)
	return out
}

// TreeID returns the id of the commit's tree.
func (c *Commit) TreeID() ginternals.Oid {
	return c.treeID
}

// GPGSig returns the commit's GPG signature, if any.
func (c *Commit) GPGSig() string {
	sig, _ := c.msg.Get("gpgsig")
	return string(sig)
}

// ToObject returns the underlying Object.
func (c *Commit) ToObject() *Object {
	return c.rawObject
}
