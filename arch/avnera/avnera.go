package avnera

import (
	"github.com/retroenv/avneradisasm/arch"
)

// Compile-time check to ensure Arch implements arch.Architecture.
var _ arch.Architecture[Instruction, Operand] = Arch{}

// New returns the Avnera architecture bindings for disassembler tooling.
func New() Arch {
	return Arch{}
}

// Arch implements the arch.Architecture interface for Avnera processors.
// It combines the instruction decoder with the control flow information that
// a disassembler needs to follow branches.
type Arch struct {
	decoder Decoder
}

// Decode reads one instruction from the cursor.
func (a Arch) Decode(cursor arch.Cursor) (Instruction, error) {
	return a.decoder.Decode(cursor)
}

// BranchTarget returns the destination address of a control flow changing
// instruction decoded at the given address. Conditional branches are relative
// to the end of the instruction, jmp and call use absolute addresses.
func (a Arch) BranchTarget(address uint16, ins Instruction) (uint16, bool) {
	if !BranchingInstructions.Contains(ins.Opcode()) {
		return 0, false
	}

	for index := 0; index < ins.OperandCount(); index++ {
		operand, _ := ins.Operand(index)

		switch operand.Kind {
		case OperandImm16:
			return operand.Value, true

		case OperandBranchRel:
			return address + uint16(ins.Len()) + uint16(int16(operand.Relative)), true
		}
	}
	return 0, false
}
