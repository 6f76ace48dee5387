// Package extractor reads the opcode decoding tables out of a loaded BIOS image.
package extractor

import (
	"fmt"

	"github.com/retroenv/biostables/internal/memory"
	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const (
	// TableCount is the number of lookup tables referenced by the offset table.
	TableCount = 20
	// TableSize is the row width of a lookup table, one entry per byte value.
	TableSize = 256
)

// Row is a single lookup table.
type Row [TableSize]byte

// TableSet contains all extracted lookup tables.
type TableSet [TableCount]Row

// Result contains the extracted tables and the offsets they were read from.
type Result struct {
	Offsets [TableCount]uint16
	Tables  TableSet
}

// Extractor resolves the offset table of a loaded image and copies the
// referenced lookup tables.
type Extractor struct {
	logger *log.Logger
	layout options.Layout
}

// New creates a new table extractor.
func New(logger *log.Logger, layout options.Layout) *Extractor {
	return &Extractor{
		logger: logger,
		layout: layout,
	}
}

// Extract reads all offsets and tables from mem. Every address is
// validated, an out of range offset table entry aborts the extraction.
func (e *Extractor) Extract(mem *memory.Memory) (*Result, error) {
	res := &Result{}

	for i := 0; i < TableCount; i++ {
		offset, err := mem.Word(e.layout.Segment, e.layout.OffsetTableIndex+i)
		if err != nil {
			return nil, fmt.Errorf("reading offset of table %d: %w", i, err)
		}
		res.Offsets[i] = offset

		row, err := mem.Slice(e.layout.Segment, int(offset), TableSize)
		if err != nil {
			return nil, fmt.Errorf("reading table %d (%s): %w", i, TableName(i), err)
		}
		copy(res.Tables[i][:], row)

		e.logger.Debug("Extracted table",
			log.Int("index", i),
			log.String("name", TableName(i)),
			log.Stringer("location", memory.Pointer{Segment: e.layout.Segment, Offset: offset}),
		)
	}

	return res, nil
}
