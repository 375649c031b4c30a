package object_test

import (
	"testing"

	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()

	target := object.New(object.TypeCommit, []byte("fake commit content"))
	tagger := object.NewSignature("Ada Lovelace", "ada@example.com")

	tag := object.NewTag(&object.TagParams{
		Target:  target,
		Name:    "v1.0.0",
		Tagger:  tagger,
		Message: "first release\n",
	})

	assert.Equal(t, target.ID(), tag.Target())
	assert.Equal(t, object.TypeCommit, tag.Type())
	assert.Equal(t, "v1.0.0", tag.Name())
	assert.Equal(t, "first release\n", tag.Message())

	parsed, err := object.NewTagFromObject(tag.ToObject())
	require.NoError(t, err)
	assert.Equal(t, tag.ID(), parsed.ID())
	assert.Equal(t, tag.Target(), parsed.Target())
	assert.Equal(t, tag.Type(), parsed.Type())
	assert.Equal(t, tag.Name(), parsed.Name())
	assert.Equal(t, tag.Message(), parsed.Message())
}

func TestTagFromObjectRejectsWrongType(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hi"))
	_, err := object.NewTagFromObject(o)
	assert.ErrorIs(t, err, object.ErrCorruptedObject)
}

func TestTagFromObjectRequiresTagger(t *testing.T) {
	t.Parallel()

	raw := "object 1234567890123456789012345678901234567890\ntype commit\ntag v1\n\nmsg"
	o := object.New(object.TypeTag, []byte(raw))
	_, err := object.NewTagFromObject(o)
	assert.ErrorIs(t, err, object.ErrTagInvalid)
}
