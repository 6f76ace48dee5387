// Package options contains the program options.
package options

import (
	"github.com/retroenv/biostables/internal/memory"
)

// DefaultInput is the image file name expected in the working directory.
const DefaultInput = "bios"

// Parameters contains file path options.
type Parameters struct {
	Input  string
	Output string // printed on console if empty
}

// Flags contains behavior options.
type Flags struct {
	Verify bool // parse the generated literal back and compare it to memory
	Debug  bool
	Quiet  bool
}

// Program options of the extractor.
type Program struct {
	Parameters
	Flags
}

// Layout describes where the image is placed in memory and where the
// offset table is read from.
type Layout struct {
	Segment          uint16 // segment the image is loaded into and tables are read from
	LoadOrigin       uint16 // offset of the first image byte inside the segment
	MaxImageSize     int    // ceiling of image bytes copied into memory
	OffsetTableIndex int    // word index of the offset table inside the segment
	MemorySize       int    // size of the flat memory image
}

// NewProgram returns program options with defaults applied.
func NewProgram() Program {
	return Program{
		Parameters: Parameters{
			Input: DefaultInput,
		},
	}
}

// NewLayout returns the layout used by the 8086tiny BIOS: the image is
// mapped at F000:0100 like a ROM entry point and the table pointers follow
// the initial jump at F000:0102.
func NewLayout() Layout {
	return Layout{
		Segment:          0xF000,
		LoadOrigin:       0x0100,
		MaxImageSize:     memory.SegmentSize - 0x0100,
		OffsetTableIndex: 0x81,
		MemorySize:       memory.RAMSize,
	}
}
