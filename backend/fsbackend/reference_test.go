package fsbackend

import (
	"testing"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestReference(t *testing.T) {
	t.Parallel()

	t.Run("should fail if reference doesn't exist", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		ref, err := b.Reference("refs/heads/doesnt-exist")
		require.Error(t, err)
		assert.True(t, xerrors.Is(err, ginternals.ErrRefNotFound), "unexpected error returned")
		assert.Nil(t, ref)
	})

	t.Run("should follow a symbolic reference", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("bbb720a96e4c29b9950a4c577c98470a4d5dd089")
		require.NoError(t, err)

		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/tags/v1", oid)))
		require.NoError(t, b.WriteReference(ginternals.NewSymbolicReference(ginternals.Head, "refs/tags/v1")))

		ref, err := b.Reference(ginternals.Head)
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, ginternals.Head, ref.Name())
		assert.Equal(t, "refs/tags/v1", ref.SymbolicTarget())
		assert.Equal(t, oid, ref.Target())
	})

	t.Run("should resolve an oid reference directly", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("bbb720a96e4c29b9950a4c577c98470a4d5dd089")
		require.NoError(t, err)

		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/tags/v1", oid)))

		ref, err := b.Reference("refs/tags/v1")
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Empty(t, ref.SymbolicTarget())
		assert.Equal(t, oid, ref.Target())
	})
}

func TestWriteReferenceSafe(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	oid, err := ginternals.NewOidFromStr("bbb720a96e4c29b9950a4c577c98470a4d5dd089")
	require.NoError(t, err)

	require.NoError(t, b.WriteReferenceSafe(ginternals.NewReference("refs/tags/v1", oid)))

	err = b.WriteReferenceSafe(ginternals.NewReference("refs/tags/v1", oid))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, ginternals.ErrRefExists))
}
