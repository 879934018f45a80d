package avnera

import (
	"github.com/retroenv/avneradisasm/arch"
)

// Opcode space layout: the upper 5 bits of the first instruction byte select
// an instruction row, the lower 3 bits select a register, register pair or a
// small immediate within the row.
const (
	rowMask     = 0xf8
	lowBitsMask = 0x07
)

// Compile-time check to ensure Decoder implements arch.Decoder.
var _ arch.Decoder[Instruction, Operand] = Decoder{}

// Decoder decodes single instructions of the Avnera instruction set.
// The zero value is ready to use. Decoders are stateless, every Decode call
// reads exactly one instruction from the passed cursor.
type Decoder struct{}

// DecodeSlice decodes the first instruction of the given byte slice.
func DecodeSlice(data []byte) (Instruction, error) {
	return Decoder{}.Decode(arch.NewSliceCursor(data))
}

// Decode reads one instruction from the cursor. On success the cursor has
// advanced exactly past the consumed instruction and the length of the
// returned instruction equals the number of consumed bytes. On failure no
// partial instruction is returned, the error is arch.ErrInvalidOpcode for a
// byte outside of the known opcode space and arch.ErrExhaustedInput for a
// truncated instruction or empty input.
func (d Decoder) Decode(cursor arch.Cursor) (Instruction, error) {
	reader := instructionReader{cursor: cursor}

	opcodeByte, err := reader.readByte()
	if err != nil {
		return Instruction{}, err
	}

	ins, err := decodeOpcode(&reader, opcodeByte)
	if err != nil {
		return Instruction{}, err
	}

	ins.length = reader.length
	return ins, nil
}

// decodeOpcode identifies the operation of the first instruction byte and
// reads the operand bytes that the operation requires. The known rows are the
// result of reverse engineering, unassigned rows return arch.ErrInvalidOpcode.
func decodeOpcode(reader *instructionReader, opcodeByte byte) (Instruction, error) {
	lowBits := opcodeByte & lowBitsMask

	switch opcodeByte & rowMask {
	case 0x00:
		return newInstruction1(Inc, registerOperand(lowBits)), nil

	case 0x08:
		return newInstruction1(Adc, registerOperand(lowBits)), nil

	case 0x10:
		return newInstruction1(MovRnR0, registerOperand(lowBits)), nil

	case 0x18:
		return newInstruction1(Or, registerOperand(lowBits)), nil

	case 0x20:
		return newInstruction1(And, registerOperand(lowBits)), nil

	case 0x28:
		return newInstruction1(Xor, registerOperand(lowBits)), nil

	case 0x30:
		return newInstruction1(Rcl, registerOperand(lowBits)), nil

	case 0x38:
		return newInstruction1(Rcr, registerOperand(lowBits)), nil

	case 0x40:
		return newInstruction1(Dec, registerOperand(lowBits)), nil

	case 0x48:
		return newInstruction1(Sbc, registerOperand(lowBits)), nil

	case 0x50:
		return newInstruction1(Add, registerOperand(lowBits)), nil

	case 0x58:
		if opcodeByte == 0x59 {
			return newInstruction0(Scf), nil
		}
		return newInstruction1(Op5xHi, imm8Operand(lowBits)), nil

	case 0x60:
		return newInstruction1(Bit, imm8Operand(lowBits)), nil

	case 0x68:
		if opcodeByte == 0x69 {
			return newInstruction0(Ccf), nil
		}
		return newInstruction1(Op6xHi, imm8Operand(lowBits)), nil

	case 0x70:
		return newInstruction1(MovR0Rn, registerOperand(lowBits)), nil

	case 0x78:
		return newInstruction1(Cmp, registerOperand(lowBits)), nil

	case 0x80:
		return newInstruction1(Push, registerOperand(lowBits)), nil

	case 0x88:
		return newInstruction1(Pop, registerOperand(lowBits)), nil

	case 0x90, 0x98:
		return decodeConditionalBranch(reader, opcodeByte)

	case 0xb8:
		return decodeControlTransfer(reader, opcodeByte)

	case 0xc0:
		return newInstruction1(IncW, registerPairOperand(lowBits)), nil

	case 0xc8:
		address, err := reader.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction2(StoreAbs16, registerOperand(lowBits), memAbsOperand(address)), nil

	case 0xd0:
		return newInstruction1(StoreRegPair, memIndirectOperand(lowBits)), nil

	case 0xd8:
		offset, err := reader.readByte()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction1(StoreRegPairC, memIndirectOffsetOperand(lowBits, offset)), nil

	case 0xe0:
		value, err := reader.readByte()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction2(LoadImm8, registerOperand(lowBits), imm8Operand(value)), nil

	case 0xe8:
		address, err := reader.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction2(LoadAbs16, registerOperand(lowBits), memAbsOperand(address)), nil

	case 0xf0:
		return newInstruction1(LoadRegPair, memIndirectOperand(lowBits)), nil

	case 0xf8:
		offset, err := reader.readByte()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction1(LoadRegPairC, memIndirectOffsetOperand(lowBits, offset)), nil

	default:
		return Instruction{}, arch.ErrInvalidOpcode
	}
}

// decodeConditionalBranch decodes the rows 0x90 and 0x98 which contain the
// conditional branches. Conditions 0 and 1 are the known z and c flag checks,
// the remaining bit patterns select conditions that have not been identified
// yet and are kept as an explicit immediate operand.
func decodeConditionalBranch(reader *instructionReader, opcodeByte byte) (Instruction, error) {
	displacement, err := reader.readByte()
	if err != nil {
		return Instruction{}, err
	}
	target := branchRelOperand(int8(displacement))

	lowBits := opcodeByte & lowBitsMask
	if opcodeByte&rowMask == 0x90 {
		switch lowBits {
		case 0:
			return newInstruction1(Jnz, target), nil
		case 1:
			return newInstruction1(Jnc, target), nil
		default:
			return newInstruction2(JccLo, imm8Operand(lowBits), target), nil
		}
	}

	switch lowBits {
	case 0:
		return newInstruction1(Jz, target), nil
	case 1:
		return newInstruction1(Jc, target), nil
	default:
		return newInstruction2(JccHi, imm8Operand(lowBits), target), nil
	}
}

// decodeControlTransfer decodes the row 0xb8. Only four values of the row
// have been identified, the remaining ones are treated as invalid opcodes.
func decodeControlTransfer(reader *instructionReader, opcodeByte byte) (Instruction, error) {
	switch opcodeByte {
	case 0xb9:
		return newInstruction0(Ret), nil

	case 0xba:
		return newInstruction0(Iret), nil

	case 0xbc:
		address, err := reader.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction1(Jmp, imm16Operand(address)), nil

	case 0xbf:
		address, err := reader.readWord()
		if err != nil {
			return Instruction{}, err
		}
		return newInstruction1(Call, imm16Operand(address)), nil

	default:
		return Instruction{}, arch.ErrInvalidOpcode
	}
}

// instructionReader tracks the number of bytes consumed while decoding a
// single instruction.
type instructionReader struct {
	cursor arch.Cursor
	length uint8
}

func (r *instructionReader) readByte() (byte, error) {
	b, err := r.cursor.ReadByte()
	if err != nil {
		return 0, err
	}
	r.length++
	return b, nil
}

// readWord reads a 16-bit value in little endian byte order.
func (r *instructionReader) readWord() (uint16, error) {
	low, err := r.readByte()
	if err != nil {
		return 0, err
	}
	high, err := r.readByte()
	if err != nil {
		return 0, err
	}
	return uint16(low) | uint16(high)<<8, nil
}
