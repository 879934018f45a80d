package arch

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSliceCursorReadByte(t *testing.T) {
	cursor := NewSliceCursor([]byte{0x12, 0x34})

	b, err := cursor.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), b)
	assert.Equal(t, 1, cursor.Offset())

	b, err = cursor.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x34), b)
	assert.Equal(t, 2, cursor.Offset())
}

func TestSliceCursorExhausted(t *testing.T) {
	cursor := NewSliceCursor(nil)

	_, err := cursor.ReadByte()
	assert.True(t, errors.Is(err, ErrExhaustedInput))
	assert.Equal(t, 0, cursor.Offset())
}

func TestSliceCursorExhaustedKeepsPosition(t *testing.T) {
	cursor := NewSliceCursor([]byte{0x12})

	_, err := cursor.ReadByte()
	assert.NoError(t, err)

	// a failed read does not advance the position
	_, err = cursor.ReadByte()
	assert.True(t, errors.Is(err, ErrExhaustedInput))
	assert.Equal(t, 1, cursor.Offset())

	_, err = cursor.ReadByte()
	assert.True(t, errors.Is(err, ErrExhaustedInput))
	assert.Equal(t, 1, cursor.Offset())
}
