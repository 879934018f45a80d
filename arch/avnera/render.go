package avnera

import "fmt"

// String returns the instruction in the pseudo assembly syntax used for
// Avnera listings. Data movement is written as "destination <- source" since
// the canonical mnemonic syntax of the instruction set is unknown.
func (i Instruction) String() string {
	switch i.opcode {
	case Ret, Iret, Scf, Ccf:
		return i.opcode.String()

	case Inc, Dec, IncW, Rcl, Rcr, Op5xHi, Op6xHi, Push, Pop,
		Jnz, Jnc, Jz, Jc, Jmp, Call:
		return fmt.Sprintf("%s %s", i.opcode, i.operands[0])

	case Adc, Sbc, Cmp, Bit:
		return fmt.Sprintf("%s r0, %s", i.opcode, i.operands[0])

	case JccLo:
		return fmt.Sprintf("jcc.lo.%x %s", i.operands[0].Value, i.operands[1])

	case JccHi:
		return fmt.Sprintf("jcc.hi.%x %s", i.operands[0].Value, i.operands[1])

	case Or:
		return fmt.Sprintf("r0 |= %s", i.operands[0])

	case And:
		return fmt.Sprintf("r0 &= %s", i.operands[0])

	case Xor:
		return fmt.Sprintf("r0 ^= %s", i.operands[0])

	case Add:
		return fmt.Sprintf("r0 += %s", i.operands[0])

	case MovRnR0, LoadRegPair, LoadRegPairC:
		return fmt.Sprintf("r0 <- %s", i.operands[0])

	case MovR0Rn, StoreRegPair, StoreRegPairC:
		return fmt.Sprintf("%s <- r0", i.operands[0])

	case LoadImm8, LoadAbs16:
		return fmt.Sprintf("%s <- %s", i.operands[0], i.operands[1])

	case StoreAbs16:
		return fmt.Sprintf("%s <- %s", i.operands[1], i.operands[0])

	default:
		return i.opcode.String()
	}
}
