package psbt

import (
	"github.com/goodnatureofminers/psbt-decoder/pkg/safe"
)

// Cursor is a forward-only reader over an immutable byte buffer.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Read returns the next n bytes. The returned slice aliases the buffer.
func (c *Cursor) Read(n uint64) ([]byte, error) {
	size, err := c.fit(n)
	if err != nil {
		return nil, err
	}
	out := c.buf[c.pos : c.pos+size : c.pos+size]
	c.pos += size
	return out, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n uint64) error {
	size, err := c.fit(n)
	if err != nil {
		return err
	}
	c.pos += size
	return nil
}

func (c *Cursor) fit(n uint64) (int, error) {
	remaining, err := safe.Uint64(c.Remaining())
	if err != nil {
		return 0, err
	}
	if n > remaining {
		return 0, &TruncatedError{Offset: c.pos, Want: n, Have: c.Remaining()}
	}
	return safe.Int(n)
}
