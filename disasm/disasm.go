// Package disasm implements a streaming disassembler driver on top of the
// architecture specific instruction decoders.
package disasm

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/avneradisasm/arch"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const (
	dataNaming  = ".byte $%02x"
	labelNaming = "_label_%04x"
)

// Options control the disassembly and the generated listing.
type Options struct {
	CodeBaseAddress uint16 // address that the first byte of the input maps to
	OffsetComments  bool   // output addresses and opcode bytes as comments
	StopAtUnknown   bool   // stop the scan at the first unknown opcode instead of resyncing
}

// Line describes one entry of a disassembly listing, either a decoded
// instruction or a data byte.
type Line struct {
	Address uint16 // address of the first byte of the line
	Data    []byte // raw bytes the line represents
	Code    string // code or data directive of the line
	Label   string // label of the line, if it is a branch destination
	IsData  bool   // true if the line represents a data byte
}

// Disasm implements a linear sweep disassembler for a single architecture.
// It decodes a buffer one instruction at a time and applies the
// resynchronization policy for unknown opcodes: the offending byte is
// emitted as a data byte and the scan resumes one byte later.
type Disasm[I arch.Instruction[O], O arch.Operand] struct {
	arch    arch.Architecture[I, O]
	logger  *log.Logger
	options Options

	branchDestinations set.Set[uint16] // set of all addresses that are branched to
}

// New creates a new disassembler that uses the passed architecture to decode
// instructions.
func New[I arch.Instruction[O], O arch.Operand](logger *log.Logger,
	ar arch.Architecture[I, O], options Options) *Disasm[I, O] {

	return &Disasm[I, O]{
		arch:               ar,
		logger:             logger,
		options:            options,
		branchDestinations: set.New[uint16](),
	}
}

// branchRef records a decoded branching instruction so that its target
// operand can be replaced by a label after the scan.
type branchRef struct {
	lineIndex int
	target    uint16
}

// Process decodes all instructions of the input and returns the listing
// lines. Unknown opcodes and trailing truncated instructions are emitted as
// data bytes, branch destinations inside the listing are labeled and the
// branch operands rewritten to reference the labels.
func (dis *Disasm[I, O]) Process(data []byte) ([]Line, error) {
	lines := make([]Line, 0, len(data))
	var branches []branchRef

	index := 0

scan:
	for index < len(data) {
		address := dis.options.CodeBaseAddress + uint16(index)
		ins, err := dis.arch.Decode(arch.NewSliceCursor(data[index:]))

		switch {
		case err == nil:
			if target, ok := dis.arch.BranchTarget(address, ins); ok {
				branches = append(branches, branchRef{lineIndex: len(lines), target: target})
				dis.branchDestinations.Add(target)
			}

			length := ins.Len()
			lines = append(lines, Line{
				Address: address,
				Data:    data[index : index+length],
				Code:    ins.String(),
			})
			index += length

		case errors.Is(err, arch.ErrExhaustedInput):
			// truncated instruction at the end of the input,
			// keep the remaining bytes as data and end the scan
			dis.logger.Debug("truncated instruction at end of input",
				log.Hex("address", address))

			for ; index < len(data); index++ {
				lines = append(lines, dataLine(dis.options.CodeBaseAddress+uint16(index), data[index]))
			}

		case errors.Is(err, arch.ErrInvalidOpcode), errors.Is(err, arch.ErrInvalidOperand):
			if dis.options.StopAtUnknown {
				dis.logger.Warn("stopping at unknown opcode",
					log.Hex("address", address),
					log.Uint8("byte", data[index]))
				break scan
			}

			dis.logger.Debug("unknown opcode, resyncing",
				log.Hex("address", address),
				log.Uint8("byte", data[index]))

			lines = append(lines, dataLine(address, data[index]))
			index++

		default:
			return nil, fmt.Errorf("decoding at address %04x: %w", address, err)
		}
	}

	dis.processBranchDestinations(lines, branches)
	return lines, nil
}

// BranchDestinations returns the addresses of all branch destinations that
// the last Process call discovered, in ascending order.
func (dis *Disasm[I, O]) BranchDestinations() []uint16 {
	destinations := make([]uint16, 0, len(dis.branchDestinations))
	for destination := range dis.branchDestinations {
		destinations = append(destinations, destination)
	}
	slices.Sort(destinations)
	return destinations
}

// processBranchDestinations labels all lines that are branched to and
// rewrites the target operand of the referencing branch instructions.
// Branches leaving the listing keep their numeric target.
func (dis *Disasm[I, O]) processBranchDestinations(lines []Line, branches []branchRef) {
	lineIndexByAddress := make(map[uint16]int, len(lines))
	for i, line := range lines {
		lineIndexByAddress[line.Address] = i
	}

	for _, branch := range branches {
		destination, ok := lineIndexByAddress[branch.target]
		if !ok {
			continue
		}

		label := fmt.Sprintf(labelNaming, branch.target)
		if lines[destination].Label == "" {
			lines[destination].Label = label
		}

		// the branch target is the last operand in the rendered code
		code := lines[branch.lineIndex].Code
		if idx := strings.LastIndexByte(code, ' '); idx >= 0 {
			lines[branch.lineIndex].Code = code[:idx+1] + label
		}
	}
}

func dataLine(address uint16, value byte) Line {
	return Line{
		Address: address,
		Data:    []byte{value},
		Code:    fmt.Sprintf(dataNaming, value),
		IsData:  true,
	}
}
