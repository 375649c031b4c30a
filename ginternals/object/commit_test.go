package object_test

import (
	"testing"
	"time"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitRoundTrip(t *testing.T) {
	t.Parallel()

	treeID, err := ginternals.NewOidFromStr("1234567890123456789012345678901234567890")
	require.NoError(t, err)
	parentID, err := ginternals.NewOidFromStr("abcdefabcdefabcdefabcdefabcdefabcdefabcd")
	require.NoError(t, err)

	author := object.Signature{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Time:  time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("", -7*60*60)),
	}

	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message:   "initial commit\n",
		ParentIDs: []ginternals.Oid{parentID},
	})

	assert.Equal(t, treeID, c.TreeID())
	assert.Equal(t, []ginternals.Oid{parentID}, c.ParentIDs())
	assert.Equal(t, author, c.Author())
	assert.Equal(t, author, c.Committer())
	assert.Equal(t, "initial commit\n", c.Message())

	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	assert.Equal(t, c.ID(), parsed.ID())
	assert.Equal(t, c.TreeID(), parsed.TreeID())
	assert.Equal(t, c.ParentIDs(), parsed.ParentIDs())
	assert.Equal(t, c.Message(), parsed.Message())
	assert.Equal(t, c.Author().Name, parsed.Author().Name)
	assert.Equal(t, c.Author().Email, parsed.Author().Email)
	assert.True(t, c.Author().Time.Equal(parsed.Author().Time))
}

func TestCommitWithoutCommitterReusesAuthor(t *testing.T) {
	t.Parallel()

	treeID, err := ginternals.NewOidFromStr("1234567890123456789012345678901234567890")
	require.NoError(t, err)
	author := object.NewSignature("Grace Hopper", "grace@example.com")

	c := object.NewCommit(treeID, author, &object.CommitOptions{Message: "msg"})
	assert.Equal(t, author.Name, c.Committer().Name)
}

func TestCommitFromObjectRejectsWrongType(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hi"))
	_, err := object.NewCommitFromObject(o)
	assert.ErrorIs(t, err, object.ErrCorruptedObject)
}

func TestCommitFromObjectRequiresTree(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeCommit, []byte("author a <a@b.c> 1 +0000\n\nmsg"))
	_, err := object.NewCommitFromObject(o)
	assert.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestCommitPreservesGPGSig(t *testing.T) {
	t.Parallel()

	treeID, err := ginternals.NewOidFromStr("1234567890123456789012345678901234567890")
	require.NoError(t, err)
	author := object.NewSignature("Ada Lovelace", "ada@example.com")

	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message: "signed commit",
		GPGSig:  "-----BEGIN PGP SIGNATURE-----\nabc\n-----END PGP SIGNATURE-----",
	})

	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	assert.Equal(t, c.GPGSig(), parsed.GPGSig())
}
