package sources

import (
	"bufio"
	"io"
)

//go:generate counterfeiter . Cursor

// Cursor reads a source from its first byte and can be rewound to read it
// again. Next reports false once the end of the source is reached.
type Cursor interface {
	Next() (byte, bool, error)
	Rewind() error
}

type fileCursor struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
}

// NewFileCursor keeps no more than a read buffer of the source in memory.
// Rewinding seeks rs back to its start.
func NewFileCursor(rs io.ReadSeeker) Cursor {
	return &fileCursor{
		rs:     rs,
		reader: bufio.NewReader(rs),
	}
}

func (c *fileCursor) Next() (byte, bool, error) {
	b, err := c.reader.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return b, true, nil
}

func (c *fileCursor) Rewind() error {
	if _, err := c.rs.Seek(0, io.SeekStart); err != nil {
		return err
	}

	c.reader.Reset(c.rs)

	return nil
}

type bytesCursor struct {
	content []byte
	pos     int
}

func NewBytesCursor(content []byte) Cursor {
	return &bytesCursor{
		content: content,
	}
}

func (c *bytesCursor) Next() (byte, bool, error) {
	if c.pos >= len(c.content) {
		return 0, false, nil
	}

	b := c.content[c.pos]
	c.pos++

	return b, true, nil
}

func (c *bytesCursor) Rewind() error {
	c.pos = 0
	return nil
}
