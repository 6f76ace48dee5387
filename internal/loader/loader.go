// Package loader handles BIOS image loading operations.
package loader

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/retroenv/biostables/internal/memory"
	"github.com/retroenv/biostables/internal/options"
)

// OpenError is returned when the image file can not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open '%s', did you compile it?: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Image describes an image that was copied into memory.
type Image struct {
	Start    memory.Pointer // location of the first image byte
	FileSize int64          // size of the image file
	Size     int            // number of bytes copied into memory
	Checksum uint32         // CRC32 of the copied bytes
}

// End returns the pointer following the last loaded byte.
func (img Image) End() memory.Pointer {
	return img.Start.Add(img.Size)
}

// Loader copies BIOS images into a memory image.
type Loader struct {
	layout options.Layout
}

// New creates a new image loader.
func New(layout options.Layout) *Loader {
	return &Loader{
		layout: layout,
	}
}

// Load opens the file at path and copies it into mem.
func (l *Loader) Load(path string, mem *memory.Memory) (Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return Image{}, &OpenError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	img, err := l.LoadReader(file, mem)
	if err != nil {
		return Image{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return img, nil
}

// LoadReader copies up to the maximum image size bytes from reader into mem,
// starting at the load origin of the layout segment. Bytes beyond the
// maximum are ignored.
func (l *Loader) LoadReader(reader io.ReadSeeker, mem *memory.Memory) (Image, error) {
	fileSize, err := reader.Seek(0, io.SeekEnd)
	if err != nil {
		return Image{}, fmt.Errorf("determining image size: %w", err)
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return Image{}, fmt.Errorf("rewinding image: %w", err)
	}

	size := int(min(fileSize, int64(l.layout.MaxImageSize)))
	buf, err := mem.Slice(l.layout.Segment, int(l.layout.LoadOrigin), size)
	if err != nil {
		return Image{}, fmt.Errorf("reserving image memory: %w", err)
	}
	if _, err := io.ReadFull(reader, buf); err != nil {
		return Image{}, fmt.Errorf("copying image into memory: %w", err)
	}

	return Image{
		Start: memory.Pointer{
			Segment: l.layout.Segment,
			Offset:  l.layout.LoadOrigin,
		},
		FileSize: fileSize,
		Size:     size,
		Checksum: crc32.ChecksumIEEE(buf),
	}, nil
}
