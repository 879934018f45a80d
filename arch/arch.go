// Package arch contains types and functions used for multi architecture support.
// It acts as a bridge between disassembler tooling and the architecture
// specific instruction decoders.
package arch

import "errors"

// Decode errors shared by all architecture decoders. Callers distinguish the
// error kinds using errors.Is, decoders wrap them with context if needed.
var (
	// ErrExhaustedInput is returned when the input ends before the current
	// decode step could read all bytes it requires. For callers scanning a
	// buffer this marks the end of decodable content.
	ErrExhaustedInput = errors.New("exhausted input")

	// ErrInvalidOpcode is returned when a byte does not match any known
	// opcode pattern. For partially reverse engineered instruction sets this
	// is a routine outcome, not an exceptional one.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrInvalidOperand is returned when a recognized opcode is followed by
	// an operand field that violates a known constraint.
	ErrInvalidOperand = errors.New("invalid operand")
)

// Operand represents a single operand of a decoded instruction.
type Operand interface {
	// String returns the operand in the assembly syntax of the architecture.
	String() string
}

// Instruction represents a single decoded CPU instruction.
type Instruction[O Operand] interface {
	// Name returns the instruction mnemonic.
	Name() string
	// Len returns the encoded length of the instruction in bytes.
	Len() int
	// OperandCount returns the number of operands of the instruction.
	OperandCount() int
	// Operand returns the operand at the given index and whether the index
	// is within the operand count.
	Operand(index int) (O, bool)
	// String returns the instruction in the assembly syntax of the architecture.
	String() string
}

// Decoder decodes single instructions of an architecture from a byte stream.
// Decoders are stateless, a decode call either consumes one full instruction
// from the cursor or fails without returning a partial instruction.
type Decoder[I Instruction[O], O Operand] interface {
	// Decode reads one instruction from the cursor.
	Decode(cursor Cursor) (I, error)
}

// Architecture contains the architecture specific information that
// disassembler tooling needs on top of instruction decoding.
type Architecture[I Instruction[O], O Operand] interface {
	Decoder[I, O]

	// BranchTarget returns the destination address of a control flow changing
	// instruction decoded at the given address, or false for instructions
	// that do not branch.
	BranchTarget(address uint16, ins I) (uint16, bool)
}
