package avnera

import (
	"testing"

	"github.com/retroenv/avneradisasm/arch"
	"github.com/retroenv/retrogolib/assert"
)

func TestArchDecode(t *testing.T) {
	ar := New()

	ins, err := ar.Decode(arch.NewSliceCursor([]byte{0xb9}))
	assert.NoError(t, err)
	assert.Equal(t, Ret, ins.Opcode())
	assert.Equal(t, 1, ins.Len())
}

func TestArchBranchTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		address  uint16
		expected uint16
		branches bool
	}{
		{"jmp absolute", []byte{0xbc, 0x8a, 0xd9}, 0x1000, 0xd98a, true},
		{"call absolute", []byte{0xbf, 0x34, 0x12}, 0x1000, 0x1234, true},
		{"forward branch", []byte{0x90, 0x50}, 0x1000, 0x1052, true},
		{"backward branch", []byte{0x98, 0xfe}, 0x1000, 0x1000, true},
		{"unknown condition branch", []byte{0x9a, 0x05}, 0x1000, 0x1007, true},
		{"ret does not branch", []byte{0xb9}, 0x1000, 0, false},
		{"alu does not branch", []byte{0x29}, 0x1000, 0, false},
	}

	ar := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := DecodeSlice(tt.input)
			assert.NoError(t, err)

			target, ok := ar.BranchTarget(tt.address, ins)
			assert.Equal(t, tt.branches, ok)
			assert.Equal(t, tt.expected, target)
		})
	}
}
