package memory

import "fmt"

// Pointer is a real-mode far pointer.
type Pointer struct {
	Segment uint16
	Offset  uint16
}

// Linear returns the linear address the pointer resolves to.
func (p Pointer) Linear() int {
	return Linear(p.Segment, int(p.Offset))
}

// Add returns the pointer advanced by n bytes within its segment.
// The offset wraps at the segment boundary.
func (p Pointer) Add(n int) Pointer {
	return Pointer{
		Segment: p.Segment,
		Offset:  uint16(int(p.Offset) + n),
	}
}

func (p Pointer) String() string {
	return fmt.Sprintf("%04X:%04X", p.Segment, p.Offset)
}
