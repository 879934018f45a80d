// Package avnera provides Avnera architecture support for the disassembler.
//
// # Avnera Architecture Overview
//
// "Avnera" is not a documented name for this instruction set. It is the name
// of the fabless semiconductor company whose ASICs for wireless audio
// purposes contain these processors, parts usually report themselves as
// "AV6201", "AV6301", "AV7201" or similar. The instruction set itself is
// entirely undocumented, everything in this package is the result of reverse
// engineering firmware dumps.
//
// # Instruction Set
//
// The encodings identified so far share a common shape:
//   - Instructions are 1 to 3 bytes long
//   - The upper 5 bits of the first byte select the operation, the lower
//     3 bits select a register, register pair or small immediate
//   - 8 general-purpose 8-bit registers (r0-r7), r0 acts as implicit
//     accumulator for arithmetic and logic operations
//   - Register pairs rN:rN+1 form 16-bit values for indirect memory access
//   - 16-bit values are encoded in little endian byte order
//
// Large parts of the opcode space are still unknown. Decoding an unassigned
// byte returns arch.ErrInvalidOpcode, which callers scanning firmware images
// should treat as routine control flow rather than a failure.
//
// # Usage Example
//
//	ins, err := avnera.DecodeSlice([]byte{0x28})
//	if err != nil {
//		return fmt.Errorf("decoding instruction: %w", err)
//	}
//	fmt.Println(ins)        // r0 ^= r0
//	fmt.Println(ins.Len())  // 1
//
// # Limitations
//
// The instruction behavior descriptions are best guesses:
//   - The location of the stack and the stack pointer are unknown
//   - The conditions of the jcc.lo and jcc.hi branches are unidentified
//   - Two opcode rows (0x58-0x5f, 0x68-0x6f) decode but their effect is unknown
//   - It is unclear if the instruction set varies between parts
package avnera
