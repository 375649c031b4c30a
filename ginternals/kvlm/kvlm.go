// Package kvlm implements the key-value-list-with-message format used
// by commit and tag objects: an ordered list of header fields followed
// by a blank line and a free-form trailer.
//
// A field value may span multiple lines; continuation lines are stored
// in the object with a single leading space, which is folded away on
// decode and re-applied on encode. A key may appear more than once
// (commit "parent" being the common case), so values are kept in
// insertion order rather than collapsed into a map.
package kvlm

import (
	"bytes"

	"golang.org/x/xerrors"
)

// ErrMalformedMessage is returned when a message cannot be parsed because it
// doesn't follow the key-value-list-with-message grammar.
var ErrMalformedMessage = xerrors.New("malformed kvlm message")

// field is a single decoded key/value pair, in the order it was found.
type field struct {
	key   string
	value []byte
}

// Message is an ordered multimap of header fields plus a trailing
// free-form message.
type Message struct {
	fields  []field
	Trailer []byte
}

// New returns an empty Message.
func New() *Message {
	return &Message{}
}

// Add appends a value for key, preserving any previous values already
// set for the same key.
func (m *Message) Add(key string, value []byte) {
	m.fields = append(m.fields, field{key: key, value: value})
}

// Get returns the first value set for key, and whether it was found.
func (m *Message) Get(key string) ([]byte, bool) {
	for _, f := range m.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Values returns every value set for key, in insertion order.
func (m *Message) Values(key string) [][]byte {
	var out [][]byte
	for _, f := range m.fields {
		if f.key == key {
			out = append(out, f.value)
		}
	}
	return out
}

// Decode parses a kvlm-encoded message.
//
// The grammar is a sequence of lines:
//
//	key SP value LF
//	key SP value LF
//	 continuation-of-previous-value LF
//	LF
//	free-form trailer, up to EOF
//
// A continuation line starts with a single space; that space is
// stripped and the line is appended to the previous value, separated
// by a newline. The blank line that follows the last field ends the
// header section; everything after it, including any further blank
// lines, is the trailer, kept byte-for-byte.
func Decode(data []byte) (*Message, error) {
	m := New()

	offset := 0
	for {
		nl := bytes.IndexByte(data[offset:], '\n')
		if nl == -1 {
			return nil, xerrors.Errorf("unterminated header line: %w", ErrMalformedMessage)
		}

		spc := bytes.IndexByte(data[offset:offset+nl], ' ')

		// A blank line (no characters before the LF) or a line with no SP
		// before its LF both mark the end of the header section: the
		// cursor is taken to point at the blank line, one byte (its LF) is
		// consumed, and everything after it to EOF is the trailer. For a
		// line with no SP, the consumed byte is the line's first one.
		if nl == 0 || spc == -1 {
			offset++
			m.Trailer = data[offset:]
			return m, nil
		}

		key := string(data[offset : offset+spc])
		valueStart := offset + spc + 1
		lineEnd := offset + nl

		value := append([]byte{}, data[valueStart:lineEnd]...)

		// Fold in any continuation lines: lines starting with a space
		// belong to the value we just started reading.
		next := lineEnd + 1
		for next < len(data) && data[next] == ' ' {
			contNL := bytes.IndexByte(data[next:], '\n')
			if contNL == -1 {
				return nil, xerrors.Errorf("unterminated continuation line: %w", ErrMalformedMessage)
			}
			value = append(value, '\n')
			value = append(value, data[next+1:next+contNL]...)
			next += contNL + 1
		}

		m.Add(key, value)
		offset = next
	}
}

// Encode serializes the message back to its on-disk form.
func (m *Message) Encode() []byte {
	buf := new(bytes.Buffer)
	for _, f := range m.fields {
		buf.WriteString(f.key)
		buf.WriteByte(' ')
		// Re-fold embedded newlines into continuation lines.
		buf.Write(bytes.ReplaceAll(f.value, []byte{'\n'}, []byte{'\n', ' '}))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(m.Trailer)
	return buf.Bytes()
}
