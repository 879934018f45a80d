package avnera

import (
	"github.com/retroenv/avneradisasm/arch"
)

const (
	// MaxOperands is the maximum number of explicit operands of an instruction.
	MaxOperands = 2
	// MaxInstructionLength is the longest instruction encoding in bytes.
	MaxInstructionLength = 3
)

// Compile-time check to ensure Instruction implements arch.Instruction.
var _ arch.Instruction[Operand] = Instruction{}

// Instruction represents a single decoded Avnera instruction.
// Instructions are constructed by the decoder and are immutable afterwards,
// they keep no reference to the cursor or the input buffer.
type Instruction struct {
	opcode   Opcode
	operands [MaxOperands]Operand
	count    uint8
	length   uint8
}

// Opcode returns the operation of the instruction.
func (i Instruction) Opcode() Opcode {
	return i.opcode
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	return i.opcode.String()
}

// Len returns the encoded length of the instruction in bytes.
func (i Instruction) Len() int {
	return int(i.length)
}

// OperandCount returns the number of operands of the instruction.
func (i Instruction) OperandCount() int {
	return int(i.count)
}

// Operand returns the operand at the given index and whether the index is
// within the operand count.
func (i Instruction) Operand(index int) (Operand, bool) {
	if index < 0 || index >= int(i.count) {
		return Operand{}, false
	}
	return i.operands[index], true
}

func newInstruction0(opcode Opcode) Instruction {
	return Instruction{
		opcode: opcode,
	}
}

func newInstruction1(opcode Opcode, operand Operand) Instruction {
	return Instruction{
		opcode:   opcode,
		operands: [MaxOperands]Operand{operand},
		count:    1,
	}
}

func newInstruction2(opcode Opcode, operand1, operand2 Operand) Instruction {
	return Instruction{
		opcode:   opcode,
		operands: [MaxOperands]Operand{operand1, operand2},
		count:    2,
	}
}
