// Package memory models the flat real-mode memory image and its
// segment:offset addressing.
package memory

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// ParagraphSize is the segment register granularity, a segment value
	// is shifted left by 4 bits to form its linear base.
	ParagraphSize = 16
	// SegmentSize is the span addressable by a 16 bit offset.
	SegmentSize = 0x10000
	// RAMSize covers every linear address reachable in real mode,
	// FFFF:FFFF is 0x10FFEF. Anything above would wrap past 1MB on an 8086
	// or land in the high memory area on later CPUs.
	RAMSize = 0x10FFF0
	// WordSize is the read unit of word indexed tables.
	WordSize = 2
)

// ErrOutOfBounds is returned for every access that falls outside the image.
var ErrOutOfBounds = errors.New("address out of bounds")

// Memory is a zero initialized flat byte image addressed by segment:offset pairs.
type Memory struct {
	data []byte
}

// New returns a memory image of the given size in bytes.
func New(size int) *Memory {
	return &Memory{
		data: make([]byte, size),
	}
}

// NewDefault returns a memory image spanning the full real-mode address space.
func NewDefault() *Memory {
	return New(RAMSize)
}

// Linear converts a segment:offset pair to a linear address. The offset is
// not truncated to 16 bits, an offset past the end of the segment continues
// into the following memory like unchecked pointer arithmetic would.
func Linear(segment uint16, offset int) int {
	return int(segment)*ParagraphSize + offset
}

// Size returns the size of the image in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Address returns the linear address of segment:offset after checking that
// it lies inside the image.
func (m *Memory) Address(segment uint16, offset int) (int, error) {
	addr := Linear(segment, offset)
	if addr < 0 || addr >= len(m.data) {
		return 0, m.outOfBounds(segment, offset, addr)
	}
	return addr, nil
}

// Slice returns n bytes starting at segment:offset. The returned slice
// shares the backing memory.
func (m *Memory) Slice(segment uint16, offset, n int) ([]byte, error) {
	start, err := m.Address(segment, offset)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(m.data)-start {
		return nil, m.outOfBounds(segment, offset+n-1, start+n-1)
	}
	return m.data[start : start+n], nil
}

// Byte returns the byte at segment:offset.
func (m *Memory) Byte(segment uint16, offset int) (byte, error) {
	addr, err := m.Address(segment, offset)
	if err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

// Word returns the little-endian word at the given word index of the segment,
// the segment is treated as an array of 16 bit words so the byte offset is
// index*2.
func (m *Memory) Word(segment uint16, index int) (uint16, error) {
	buf, err := m.Slice(segment, index*WordSize, WordSize)
	if err != nil {
		return 0, errors.Wrapf(err, "reading word %d of segment %04X", index, segment)
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (m *Memory) outOfBounds(segment uint16, offset, addr int) error {
	return errors.Wrapf(ErrOutOfBounds, "%04X:%04X resolves to %06X, memory size is %06X",
		segment, offset, addr, len(m.data))
}
