package avnera

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/avneradisasm/arch"
	"github.com/retroenv/retrogolib/assert"
)

// Display regressions, one test case per confirmed opcode row. The cases of
// the upstream reverse engineering notes are included unchanged.
func TestDecoderDisplay(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
	}{
		{[]byte{0x02}, "inc r2"},
		{[]byte{0x0a}, "adc r0, r2"},
		{[]byte{0x11}, "r0 <- r1"},
		{[]byte{0x19}, "r0 |= r1"},
		{[]byte{0x21}, "r0 &= r1"},
		{[]byte{0x29}, "r0 ^= r1"},
		{[]byte{0x31}, "rcl r1"},
		{[]byte{0x39}, "rcr r1"},
		{[]byte{0x41}, "dec r1"},
		{[]byte{0x49}, "sbc r0, r1"},
		{[]byte{0x51}, "r0 += r1"},
		{[]byte{0x59}, "scf"},
		{[]byte{0x5a}, "op5xhi 0x02"},
		{[]byte{0x62}, "bit r0, 0x02"},
		{[]byte{0x69}, "ccf"},
		{[]byte{0x6b}, "op6xhi 0x03"},
		{[]byte{0x71}, "r1 <- r0"},
		{[]byte{0x79}, "cmp r0, r1"},
		{[]byte{0x84}, "push r4"},
		{[]byte{0x89}, "pop r1"},
		{[]byte{0x90, 0x50}, "jnz $+0x50"},
		{[]byte{0x91, 0x10}, "jnc $+0x10"},
		{[]byte{0x93, 0x10}, "jcc.lo.3 $+0x10"},
		{[]byte{0x98, 0xfe}, "jz $-0x2"},
		{[]byte{0x99, 0x05}, "jc $+0x5"},
		{[]byte{0x9a, 0x05}, "jcc.hi.2 $+0x5"},
		{[]byte{0xb9}, "ret"},
		{[]byte{0xba}, "iret"},
		{[]byte{0xbc, 0x8a, 0xd9}, "jmp 0xd98a"},
		{[]byte{0xbf, 0x34, 0x12}, "call 0x1234"},
		{[]byte{0xc4}, "incw r4:r5"},
		{[]byte{0xc8, 0x0b, 0x11}, "[0x110b] <- r0"},
		{[]byte{0xc9, 0xf2, 0xed}, "[0xedf2] <- r1"},
		{[]byte{0xd1}, "[r1:r2] <- r0"},
		{[]byte{0xd9, 0x40}, "[r1:r2 + 0x40] <- r0"},
		{[]byte{0xe4, 0x0e}, "r4 <- 0x0e"},
		{[]byte{0xe9, 0x0b, 0x11}, "r1 <- [0x110b]"},
		{[]byte{0xf2}, "r0 <- [r2:r3]"},
		{[]byte{0xfa, 0x04}, "r0 <- [r2:r3 + 0x4]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ins, err := DecodeSlice(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins.String())
			assert.Equal(t, len(tt.input), ins.Len())
		})
	}
}

func TestDecoderOperands(t *testing.T) {
	ins, err := DecodeSlice([]byte{0x28})
	assert.NoError(t, err)

	assert.Equal(t, Xor, ins.Opcode())
	assert.Equal(t, "xor", ins.Name())
	assert.Equal(t, 1, ins.Len())
	assert.Equal(t, 1, ins.OperandCount())

	operand, ok := ins.Operand(0)
	assert.True(t, ok)
	assert.Equal(t, Operand{Kind: OperandRegister, Register: 0}, operand)

	_, ok = ins.Operand(1)
	assert.False(t, ok)
	_, ok = ins.Operand(-1)
	assert.False(t, ok)
}

func TestDecoderEmptyInput(t *testing.T) {
	_, err := DecodeSlice(nil)
	assert.True(t, errors.Is(err, arch.ErrExhaustedInput))
}

// invalidOpcodes contains every byte value that is not assigned in the known
// opcode table.
func invalidOpcodes() map[byte]bool {
	invalid := map[byte]bool{}
	for b := 0xa0; b <= 0xb8; b++ {
		invalid[byte(b)] = true
	}
	invalid[0xbb] = true
	invalid[0xbd] = true
	invalid[0xbe] = true
	return invalid
}

// Every byte value outside of the known opcode table returns an invalid
// opcode error, every known one decodes or reports a truncated instruction.
func TestDecoderOpcodeSpace(t *testing.T) {
	invalid := invalidOpcodes()

	for value := range 256 {
		b := byte(value)

		t.Run(fmt.Sprintf("%02x", b), func(t *testing.T) {
			_, err := DecodeSlice([]byte{b})

			switch {
			case invalid[b]:
				assert.True(t, errors.Is(err, arch.ErrInvalidOpcode))
			case err != nil:
				assert.True(t, errors.Is(err, arch.ErrExhaustedInput))
			}
		})
	}
}

// Every opcode that requires trailing operand bytes reports a truncated
// instruction if the input ends early, it never decodes garbage operands.
func TestDecoderTruncated(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"branch without displacement", []byte{0x90}},
		{"jcc without displacement", []byte{0x9d}},
		{"jmp without address", []byte{0xbc}},
		{"jmp with half address", []byte{0xbc, 0x8a}},
		{"call without address", []byte{0xbf}},
		{"store without address", []byte{0xc8, 0x0b}},
		{"store pair without offset", []byte{0xd8}},
		{"load immediate without value", []byte{0xe4}},
		{"load without address", []byte{0xe9, 0x0b}},
		{"load pair without offset", []byte{0xf8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSlice(tt.input)
			assert.True(t, errors.Is(err, arch.ErrExhaustedInput))
		})
	}
}

// Decoding a buffer instruction by instruction with a shared cursor is
// compositional, every instruction starts where the previous one ended.
func TestDecoderSequential(t *testing.T) {
	data := []byte{
		0xe4, 0x0e, // r4 <- 0x0e
		0x29,             // r0 ^= r1
		0xbf, 0x34, 0x12, // call 0x1234
		0xb9, // ret
	}
	expected := []string{
		"r4 <- 0x0e",
		"r0 ^= r1",
		"call 0x1234",
		"ret",
	}

	cursor := arch.NewSliceCursor(data)
	decoder := Decoder{}
	consumed := 0

	for _, code := range expected {
		ins, err := decoder.Decode(cursor)
		assert.NoError(t, err)
		assert.Equal(t, code, ins.String())

		consumed += ins.Len()
		assert.Equal(t, consumed, cursor.Offset())
	}

	_, err := decoder.Decode(cursor)
	assert.True(t, errors.Is(err, arch.ErrExhaustedInput))
}

func TestDecoderDeterminism(t *testing.T) {
	data := []byte{0xd9, 0x40}

	first, err := DecodeSlice(data)
	assert.NoError(t, err)
	second, err := DecodeSlice(data)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
