// Package writer renders extracted lookup tables as an array literal.
package writer

import (
	"strconv"
	"strings"

	"github.com/retroenv/biostables/internal/extractor"
)

const (
	// VariableName is the name of the constant the consumer decoder expects.
	VariableName = "bios_table_lookup"

	separator = ", "
)

// Render returns the tables as a single line array literal including the
// trailing newline:
//
//	const bios_table_lookup = [[b0, ..., b255], ..., [b0, ..., b255]];
func Render(tables *extractor.TableSet) string {
	buf := &strings.Builder{}
	// every value takes at most 3 digits plus a separator
	buf.Grow(len(VariableName) + extractor.TableCount*(extractor.TableSize*5+4) + 16)

	buf.WriteString("const ")
	buf.WriteString(VariableName)
	buf.WriteString(" = [")
	for i := range tables {
		if i > 0 {
			buf.WriteString(separator)
		}
		writeRow(buf, &tables[i])
	}
	buf.WriteString("];\n")
	return buf.String()
}

func writeRow(buf *strings.Builder, row *extractor.Row) {
	var digits [3]byte

	buf.WriteByte('[')
	for j, b := range row {
		if j > 0 {
			buf.WriteString(separator)
		}
		buf.Write(strconv.AppendUint(digits[:0], uint64(b), 10))
	}
	buf.WriteByte(']')
}
