package fsbackend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/config"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	fs := afero.NewMemMapFs()
	loaded, err := config.LoadConfigSkipEnv(config.LoadConfigOptions{
		FS:               fs,
		WorkingDirectory: "/repo",
		GitDirPath:       "/repo/.git",
		SkipGitDirLookUp: true,
	})
	require.NoError(t, err)

	b, err := New(loaded)
	require.NoError(t, err)
	require.NoError(t, b.Init())
	return b
}

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("existing loose object should be returned", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		o := object.New(object.TypeBlob, []byte("hello, world"))
		oid, err := b.WriteObject(o)
		require.NoError(t, err)

		got, err := b.Object(oid)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, oid, got.ID())
		assert.Equal(t, object.TypeBlob, got.Type())
		assert.Equal(t, "hello, world", string(got.Bytes()))
	})

	t.Run("unknown object should fail", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("2dcdadc2a420225783794fbffd51e2e137a69646")
		require.NoError(t, err)

		obj, err := b.Object(oid)
		require.Error(t, err)
		require.Nil(t, obj)
		assert.True(t, xerrors.Is(err, ginternals.ErrObjectNotFound), "unexpected error received")
	})

	t.Run("loose object that isn't valid zlib should surface as corrupted", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("2dcdadc2a420225783794fbffd51e2e137a69646")
		require.NoError(t, err)

		p := b.looseObjectPath(oid.String())
		require.NoError(t, b.fs.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, afero.WriteFile(b.fs, p, []byte("not zlib data"), 0o444))

		obj, err := b.Object(oid)
		require.Error(t, err)
		require.Nil(t, obj)
		assert.True(t, xerrors.Is(err, object.ErrCorruptedObject), "unexpected error received")
	})
}

func TestHasObject(t *testing.T) {
	t.Parallel()

	t.Run("existing object should exist", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		o := object.New(object.TypeBlob, []byte("data"))
		oid, err := b.WriteObject(o)
		require.NoError(t, err)

		exists, err := b.HasObject(oid)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("non-existing object should not exist", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		fakeOid, err := ginternals.NewOidFromStr("2dcdadc2a420225783794fbffd51e2e137a69646")
		require.NoError(t, err)

		exists, err := b.HasObject(fakeOid)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("cache should be updated after a read", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		o := object.New(object.TypeBlob, []byte("data"))
		oid, err := b.WriteObject(o)
		require.NoError(t, err)

		b.cache.Clear()
		_, found := b.cache.Get(oid)
		require.False(t, found, "the oid should not be in the cache")

		_, err = b.Object(oid)
		require.NoError(t, err)

		_, found = b.cache.Get(oid)
		require.True(t, found, "the oid should have been added to the cache")
	})
}

func TestWriteObject(t *testing.T) {
	t.Parallel()

	t.Run("add a new blob", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		o := object.New(object.TypeBlob, []byte("data"))
		oid, err := b.WriteObject(o)
		require.NoError(t, err)
		assert.NotEqual(t, ginternals.NullOid, oid)

		storedO, err := b.Object(oid)
		require.NoError(t, err)
		assert.Equal(t, o.Type(), storedO.Type())
		assert.Equal(t, o.Bytes(), storedO.Bytes())

		p := b.looseObjectPath(oid.String())
		info, err := b.fs.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o444), info.Mode().Perm(), "objects should be read only")
	})

	t.Run("writing the same object twice is a no-op", func(t *testing.T) {
		t.Parallel()

		b := newTestBackend(t)
		o := object.New(object.TypeBlob, []byte("data"))
		oid1, err := b.WriteObject(o)
		require.NoError(t, err)

		oid2, err := b.WriteObject(o)
		require.NoError(t, err)
		assert.Equal(t, oid1, oid2)
	})
}

func TestObjectIDsWithPrefix(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	o1 := object.New(object.TypeBlob, []byte("one"))
	o2 := object.New(object.TypeBlob, []byte("two"))
	oid1, err := b.WriteObject(o1)
	require.NoError(t, err)
	oid2, err := b.WriteObject(o2)
	require.NoError(t, err)

	t.Run("full id matches exactly one object", func(t *testing.T) {
		t.Parallel()

		matches, err := b.ObjectIDsWithPrefix(oid1.String())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, oid1, matches[0])
	})

	t.Run("prefix that matches nothing returns no error", func(t *testing.T) {
		t.Parallel()

		matches, err := b.ObjectIDsWithPrefix("ffffffff")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("single fan-out character scans every matching directory", func(t *testing.T) {
		t.Parallel()

		prefix := oid1.String()[:1]
		matches, err := b.ObjectIDsWithPrefix(prefix)
		require.NoError(t, err)
		ids := map[ginternals.Oid]bool{}
		for _, m := range matches {
			ids[m] = true
		}
		if oid1.String()[0] == oid2.String()[0] {
			assert.True(t, ids[oid1])
			assert.True(t, ids[oid2])
		} else {
			assert.True(t, ids[oid1])
		}
	})
}
