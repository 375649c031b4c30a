package kvlm_test

import (
	"testing"

	"github.com/colinmarc/gitcore/ginternals/kvlm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSimple(t *testing.T) {
	t.Parallel()

	raw := []byte("tree abcd\nparent 1234\nparent 5678\nauthor a b c\n\nhello\nworld\n")
	m, err := kvlm.Decode(raw)
	require.NoError(t, err)

	tree, ok := m.Get("tree")
	require.True(t, ok)
	assert.Equal(t, []byte("abcd"), tree)

	parents := m.Values("parent")
	require.Len(t, parents, 2)
	assert.Equal(t, []byte("1234"), parents[0])
	assert.Equal(t, []byte("5678"), parents[1])

	assert.Equal(t, []byte("hello\nworld\n"), m.Trailer)
}

func TestDecodeFoldedContinuation(t *testing.T) {
	t.Parallel()

	raw := []byte("gpgsig -----BEGIN-----\n line one\n line two\n -----END-----\n\nmsg\n")
	m, err := kvlm.Decode(raw)
	require.NoError(t, err)

	sig, ok := m.Get("gpgsig")
	require.True(t, ok)
	assert.Equal(t, "-----BEGIN-----\nline one\nline two\n-----END-----", string(sig))
}

func TestDecodeMissingBlankLine(t *testing.T) {
	t.Parallel()

	_, err := kvlm.Decode([]byte("tree abcd\n"))
	assert.ErrorIs(t, err, kvlm.ErrMalformedMessage)
}

func TestDecodeLineWithNoSeparatorEndsHeader(t *testing.T) {
	t.Parallel()

	// A header line with no SP before its LF isn't an error: it's taken
	// as the blank line that ends the header. One byte (taken to be that
	// blank line's LF) is consumed, so the line's first character is
	// dropped and the rest of it, and everything after, is the trailer.
	m, err := kvlm.Decode([]byte("treeabcd\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte("reeabcd\n\n"), m.Trailer)
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	raw := []byte("tree abcd\nparent 1234\ngpgsig -----BEGIN-----\n line one\n -----END-----\n\nmy message\n")
	m, err := kvlm.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, raw, m.Encode())
}

func TestEncodeEmptyTrailer(t *testing.T) {
	t.Parallel()

	m := kvlm.New()
	m.Add("tree", []byte("abcd"))
	assert.Equal(t, []byte("tree abcd\n\n"), m.Encode())
}
