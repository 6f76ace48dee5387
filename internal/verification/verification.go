// Package verification verifies that the generated literal recreates the
// tables found in the memory image.
package verification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/biostables/internal/extractor"
	"github.com/retroenv/biostables/internal/memory"
	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/biostables/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

const maxReportedMismatches = 10

// VerifyOutput parses the literal back and compares every row with the
// memory the offset table points to.
func VerifyOutput(logger *log.Logger, literal string, mem *memory.Memory,
	layout options.Layout, offsets [extractor.TableCount]uint16) error {

	tables, err := ParseLiteral(literal)
	if err != nil {
		return fmt.Errorf("parsing generated literal: %w", err)
	}

	for i, offset := range offsets {
		source, err := mem.Slice(layout.Segment, int(offset), extractor.TableSize)
		if err != nil {
			return fmt.Errorf("reading table %d for comparison: %w", i, err)
		}
		if err := checkBufferEqual(logger, source, tables[i][:]); err != nil {
			return fmt.Errorf("table %d (%s) mismatch: %w", i, extractor.TableName(i), err)
		}
	}
	return nil
}

// ParseLiteral parses an array literal as generated by the writer package.
func ParseLiteral(literal string) (*extractor.TableSet, error) {
	prefix := "const " + writer.VariableName + " = [["
	const suffix = "]];\n"

	if !strings.HasPrefix(literal, prefix) {
		return nil, fmt.Errorf("missing literal prefix '%s'", prefix)
	}
	if !strings.HasSuffix(literal, suffix) {
		return nil, fmt.Errorf("missing literal suffix '%s'", strings.TrimSpace(suffix))
	}
	body := literal[len(prefix) : len(literal)-len(suffix)]

	rows := strings.Split(body, "], [")
	if len(rows) != extractor.TableCount {
		return nil, fmt.Errorf("mismatched row count, %d != %d", len(rows), extractor.TableCount)
	}

	var tables extractor.TableSet
	for i, row := range rows {
		values := strings.Split(row, ", ")
		if len(values) != extractor.TableSize {
			return nil, fmt.Errorf("mismatched value count in row %d, %d != %d", i, len(values), extractor.TableSize)
		}

		for j, value := range values {
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("parsing value %d of row %d: %w", j, i, err)
			}
			if len(value) > 1 && value[0] == '0' {
				return nil, fmt.Errorf("value %d of row %d has leading zeros: %s", j, i, value)
			}
			tables[i][j] = byte(n)
		}
	}
	return &tables, nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
