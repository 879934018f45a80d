package arch

// Cursor provides sequential, forward-only read access to instruction bytes.
// The position advances monotonically on every successful read and never
// rewinds. A single cursor instance must not be shared between goroutines
// without external synchronization.
type Cursor interface {
	// ReadByte reads the next byte and advances the position by one.
	// It returns ErrExhaustedInput when no byte remains.
	ReadByte() (byte, error)
	// Offset returns the number of bytes read so far.
	Offset() int
}

// Compile-time check to ensure SliceCursor implements Cursor.
var _ Cursor = (*SliceCursor)(nil)

// SliceCursor implements Cursor on top of a byte slice.
// A read past the end of the slice returns ErrExhaustedInput and leaves the
// position unchanged. The cursor keeps a reference to the passed slice, it
// does not copy the data.
type SliceCursor struct {
	data []byte
	pos  int
}

// NewSliceCursor returns a cursor reading from the start of the given slice.
func NewSliceCursor(data []byte) *SliceCursor {
	return &SliceCursor{
		data: data,
	}
}

// ReadByte reads the next byte and advances the position by one.
func (c *SliceCursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, ErrExhaustedInput
	}

	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Offset returns the number of bytes read so far.
func (c *SliceCursor) Offset() int {
	return c.pos
}
