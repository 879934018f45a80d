package avnera

import "fmt"

// OperandKind identifies the addressing form of an operand.
type OperandKind uint8

// Addressing forms of Avnera operands.
const (
	// OperandNone marks an unused operand slot.
	OperandNone OperandKind = iota
	// OperandRegister references a single register r0..r7.
	OperandRegister
	// OperandRegisterPair references the register pair rN:rN+1.
	OperandRegisterPair
	// OperandMemAbs references memory at an absolute 16-bit address.
	OperandMemAbs
	// OperandMemIndirect references memory through a register pair.
	OperandMemIndirect
	// OperandMemIndirectOffset references memory through a register pair
	// with an 8-bit offset.
	OperandMemIndirectOffset
	// OperandBranchRel is a branch displacement relative to the end of the
	// instruction.
	OperandBranchRel
	// OperandImm8 is an 8-bit immediate.
	OperandImm8
	// OperandImm16 is a 16-bit immediate, usually an absolute code address.
	OperandImm16
)

// Operand represents a single operand of a decoded Avnera instruction.
// It is a plain value type, only the fields matching the kind are set.
type Operand struct {
	Kind OperandKind

	Register uint8  // register or register pair number
	Offset   uint8  // memory offset for register pair indirect addressing
	Relative int8   // branch displacement
	Value    uint16 // immediate value or absolute address
}

// String returns the operand in Avnera assembly syntax.
// Rendering is total, every operand kind has a textual form.
func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return fmt.Sprintf("r%d", o.Register)

	case OperandRegisterPair:
		return fmt.Sprintf("r%d:r%d", o.Register, o.Register+1)

	case OperandMemAbs:
		return fmt.Sprintf("[0x%04x]", o.Value)

	case OperandMemIndirect:
		return fmt.Sprintf("[r%d:r%d]", o.Register, o.Register+1)

	case OperandMemIndirectOffset:
		return fmt.Sprintf("[r%d:r%d + 0x%x]", o.Register, o.Register+1, o.Offset)

	case OperandBranchRel:
		if o.Relative < 0 {
			return fmt.Sprintf("$-0x%x", -int16(o.Relative))
		}
		return fmt.Sprintf("$+0x%x", o.Relative)

	case OperandImm8:
		return fmt.Sprintf("0x%02x", o.Value)

	case OperandImm16:
		return fmt.Sprintf("0x%04x", o.Value)

	default:
		return ""
	}
}

func registerOperand(n uint8) Operand {
	return Operand{Kind: OperandRegister, Register: n}
}

func registerPairOperand(n uint8) Operand {
	return Operand{Kind: OperandRegisterPair, Register: n}
}

func memAbsOperand(address uint16) Operand {
	return Operand{Kind: OperandMemAbs, Value: address}
}

func memIndirectOperand(n uint8) Operand {
	return Operand{Kind: OperandMemIndirect, Register: n}
}

func memIndirectOffsetOperand(n, offset uint8) Operand {
	return Operand{Kind: OperandMemIndirectOffset, Register: n, Offset: offset}
}

func branchRelOperand(displacement int8) Operand {
	return Operand{Kind: OperandBranchRel, Relative: displacement}
}

func imm8Operand(value uint8) Operand {
	return Operand{Kind: OperandImm8, Value: uint16(value)}
}

func imm16Operand(value uint16) Operand {
	return Operand{Kind: OperandImm16, Value: value}
}
