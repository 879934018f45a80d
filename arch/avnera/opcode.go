package avnera

import (
	"github.com/retroenv/retrogolib/set"
)

// Opcode identifies an operation of the Avnera instruction set.
// The operations and their mnemonics are best guesses resulting from reverse
// engineering firmware dumps, the instruction set is not publicly documented.
type Opcode uint8

// Operations of the Avnera instruction set.
const (
	// Inc increments register N.
	Inc Opcode = iota
	// Adc adds with carry from register N into r0.
	Adc
	// MovRnR0 moves from register N to r0.
	MovRnR0
	// Or ors register N into r0.
	Or
	// And ands register N into r0.
	And
	// Xor xors register N into r0.
	Xor
	// Rcl rotates register N left once through carry.
	Rcl
	// Rcr rotates register N right once through carry.
	Rcr
	// Dec decrements register N.
	Dec
	// Sbc subtracts with carry from register N into r0.
	Sbc
	// Add adds from register N into r0.
	Add
	// Op5xHi is one of the still unknown opcodes in the range 0x58-0x5f.
	Op5xHi
	// Scf sets the carry flag.
	Scf
	// Bit toggles bit N in r0.
	Bit
	// Op6xHi is one of the still unknown opcodes in the range 0x68-0x6f.
	Op6xHi
	// Ccf clears the carry flag.
	Ccf
	// MovR0Rn moves from r0 to register N.
	MovR0Rn
	// Cmp compares registers N and r0 and sets the flags with the result.
	Cmp
	// Push pushes register N.
	Push
	// Pop pops register N.
	Pop
	// Jnz branches if the z flag is clear.
	Jnz
	// Jnc branches if the c flag is clear.
	Jnc
	// JccLo branches on a yet unknown condition, opcodes 0x92-0x97.
	JccLo
	// Jz branches if the z flag is set.
	Jz
	// Jc branches if the c flag is set.
	Jc
	// JccHi branches on a yet unknown condition, opcodes 0x9a-0x9f.
	JccHi
	// Ret returns from a call.
	Ret
	// Iret returns from an interrupt handler.
	Iret
	// Jmp jumps to an absolute 16-bit address.
	Jmp
	// Call calls an absolute 16-bit address.
	Call
	// IncW increments the register pair rN:rN+1.
	IncW
	// LoadImm8 loads an 8-bit immediate into register N.
	LoadImm8
	// LoadAbs16 loads from an absolute 16-bit address into register N.
	LoadAbs16
	// StoreAbs16 stores register N to an absolute 16-bit address.
	StoreAbs16
	// LoadRegPair loads from [rM:rM+1] into r0.
	LoadRegPair
	// StoreRegPair stores r0 to [rM:rM+1].
	StoreRegPair
	// LoadRegPairC loads from [rM:rM+1 + C] into r0.
	LoadRegPairC
	// StoreRegPairC stores r0 to [rM:rM+1 + C].
	StoreRegPairC
)

var opcodeNames = [...]string{
	Inc:           "inc",
	Adc:           "adc",
	MovRnR0:       "movrnr0",
	Or:            "or",
	And:           "and",
	Xor:           "xor",
	Rcl:           "rcl",
	Rcr:           "rcr",
	Dec:           "dec",
	Sbc:           "sbc",
	Add:           "add",
	Op5xHi:        "op5xhi",
	Scf:           "scf",
	Bit:           "bit",
	Op6xHi:        "op6xhi",
	Ccf:           "ccf",
	MovR0Rn:       "movr0rn",
	Cmp:           "cmp",
	Push:          "push",
	Pop:           "pop",
	Jnz:           "jnz",
	Jnc:           "jnc",
	JccLo:         "jcclo",
	Jz:            "jz",
	Jc:            "jc",
	JccHi:         "jcchi",
	Ret:           "ret",
	Iret:          "iret",
	Jmp:           "jmp",
	Call:          "call",
	IncW:          "incw",
	LoadImm8:      "loadimm8",
	LoadAbs16:     "loadabs16",
	StoreAbs16:    "storeabs16",
	LoadRegPair:   "loadregpair",
	StoreRegPair:  "storeregpair",
	LoadRegPairC:  "loadregpairc",
	StoreRegPairC: "storeregpairc",
}

// String returns the mnemonic of the operation.
func (o Opcode) String() string {
	if int(o) >= len(opcodeNames) {
		return ""
	}
	return opcodeNames[o]
}

// BranchingInstructions contains all operations that change the control flow.
var BranchingInstructions = newOpcodeSet(
	Jnz, Jnc, JccLo, Jz, Jc, JccHi, Jmp, Call,
)

// MemoryReadInstructions contains all operations that read from memory.
var MemoryReadInstructions = newOpcodeSet(
	LoadAbs16, LoadRegPair, LoadRegPairC,
)

// MemoryWriteInstructions contains all operations that write to memory.
var MemoryWriteInstructions = newOpcodeSet(
	StoreAbs16, StoreRegPair, StoreRegPairC,
)

func newOpcodeSet(opcodes ...Opcode) set.Set[Opcode] {
	s := set.New[Opcode]()
	for _, op := range opcodes {
		s.Add(op)
	}
	return s
}
