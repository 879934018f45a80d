package disasm

import (
	"fmt"
	"io"
	"strings"
)

// codeColumnWidth is the width of the code column before the offset comment.
const codeColumnWidth = 33

// Write writes the listing lines as assembly style output to the writer.
// Code lines are indented, data directives and labels start at the first
// column. With Options.OffsetComments enabled every line is annotated with
// its address and raw opcode bytes.
func Write(writer io.Writer, lines []Line, options Options) error {
	for i, line := range lines {
		if line.Label != "" {
			if i > 0 {
				if _, err := fmt.Fprintln(writer); err != nil {
					return fmt.Errorf("writing line: %w", err)
				}
			}
			if _, err := fmt.Fprintf(writer, "%s:\n", line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		code := line.Code
		if !line.IsData {
			code = "  " + code
		}

		if options.OffsetComments {
			code = fmt.Sprintf("%-*s; $%04X %s", codeColumnWidth, code, line.Address, hexBytes(line.Data))
		}

		if _, err := fmt.Fprintf(writer, "%s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// hexBytes formats the raw bytes of a line as space separated hex values.
func hexBytes(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
