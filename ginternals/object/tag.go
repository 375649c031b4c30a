package object

import (
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/kvlm"
	"golang.org/x/xerrors"
)

// TagParams holds the data needed to create an annotated Tag.
type TagParams struct {
	Target    *Object
	Name      string
	Tagger    Signature
	Message   string
	OptGPGSig string
}

// Tag represents an annotated tag object: a name, the object it points
// at, a tagger, and a message. Like Commit, its header is backed by a
// kvlm.Message.
type Tag struct {
	rawObject *Object
	msg       *kvlm.Message

	tagger Signature
	name   string
	target ginternals.Oid
	typ    Type
}

// NewTag creates a new annotated Tag pointing at p.Target.
func NewTag(p *TagParams) *Tag {
	t := &Tag{
		target: p.Target.ID(),
		typ:    p.Target.Type(),
		name:   p.Name,
		tagger: p.Tagger,
		msg:    kvlm.New(),
	}

	t.msg.Add("object", []byte(t.target.String()))
	t.msg.Add("type", []byte(t.typ.String()))
	t.msg.Add("tag", []byte(t.name))
	t.msg.Add("tagger", []byte(t.tagger.String()))
	if p.OptGPGSig != "" {
		t.msg.Add("gpgsig", []byte(p.OptGPGSig))
	}
	t.msg.Trailer = []byte(p.Message)

	t.rawObject = New(TypeTag, t.msg.Encode())
	return t
}

// NewTagFromObject parses o as an annotated Tag.
func NewTagFromObject(o *Object) (*Tag, error) {
	if o.Type() != TypeTag {
		return nil, xerrors.Errorf("type %s is not a tag: %w", o.typ, ErrCorruptedObject)
	}

	msg, err := kvlm.Decode(o.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err.Error(), ErrTagInvalid)
	}

	t := &Tag{rawObject: o, msg: msg}

	targetRaw, ok := msg.Get("object")
	if !ok {
		return nil, xerrors.Errorf("tag has no target: %w", ErrTagInvalid)
	}
	t.target, err = ginternals.NewOidFromChars(targetRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse target id %q: %w", targetRaw, err)
	}

	typRaw, ok := msg.Get("type")
	if !ok {
		return nil, xerrors.Errorf("tag has no type: %w", ErrTagInvalid)
	}
	t.typ, err = NewTypeFromString(string(typRaw))
	if err != nil {
		return nil, xerrors.Errorf("invalid target type %q: %w", typRaw, err)
	}

	nameRaw, ok := msg.Get("tag")
	if !ok {
		return nil, xerrors.Errorf("tag has no name: %w", ErrTagInvalid)
	}
	t.name = string(nameRaw)

	taggerRaw, ok := msg.Get("tagger")
	if !ok {
		return nil, xerrors.Errorf("tag has no tagger: %w", ErrTagInvalid)
	}
	t.tagger, err = NewSignatureFromBytes(taggerRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse tagger signature: %w", err)
	}

	return t, nil
}

// ID returns the tag's object id.
func (t *Tag) ID() ginternals.Oid {
	return t.rawObject.ID()
}

// Target returns the id of the object the tag points at.
func (t *Tag) Target() ginternals.Oid {
	return t.target
}

// Type returns the type of the targeted object.
func (t *Tag) Type() Type {
	return t.typ
}

// Name returns the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// Tagger returns the signature of the person that created the tag.
func (t *Tag) Tagger() Signature {
	return t.tagger
}

// Message returns the tag's message.
func (t *Tag) Message() string {
	return string(t.msg.Trailer)
}

// GPGSig returns the tag's GPG signature, if any.
func (t *Tag) GPGSig() string {
	sig, _ := t.msg.Get("gpgsig")
	return string(sig)
}

// ToObject returns the underlying Object.
func (t *Tag) ToObject() *Object {
	return t.rawObject
}
