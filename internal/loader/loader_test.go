package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/biostables/internal/memory"
	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestLoadReader(t *testing.T) {
	layout := options.NewLayout()
	start := memory.Linear(layout.Segment, int(layout.LoadOrigin))

	t.Run("short image", func(t *testing.T) {
		mem := memory.NewDefault()
		data := []byte{0xEA, 0x5B, 0xE0, 0x00, 0xF0}

		img, err := New(layout).LoadReader(bytes.NewReader(data), mem)
		assert.NoError(t, err)
		assert.Equal(t, len(data), img.Size)
		assert.Equal(t, int64(len(data)), img.FileSize)
		assert.Equal(t, "F000:0100", img.Start.String())
		assert.Equal(t, "F000:0105", img.End().String())

		loaded, err := mem.Slice(0, start, layout.MaxImageSize)
		assert.NoError(t, err)
		assert.Equal(t, data, loaded[:len(data)])
		for i := len(data); i < len(loaded); i++ {
			if loaded[i] != 0 {
				t.Fatalf("expected zero at %06X but got %02X", start+i, loaded[i])
			}
		}
	})

	t.Run("oversized image is capped", func(t *testing.T) {
		mem := memory.NewDefault()
		data := bytes.Repeat([]byte{0x11}, layout.MaxImageSize+0x200)

		img, err := New(layout).LoadReader(bytes.NewReader(data), mem)
		assert.NoError(t, err)
		assert.Equal(t, 0xFF00, img.Size)
		assert.Equal(t, int64(len(data)), img.FileSize)
		assert.Equal(t, "F000:0000", img.End().String())

		last, err := mem.Byte(layout.Segment, 0xFFFF)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x11), last)
		after, err := mem.Byte(layout.Segment, 0x10000)
		assert.NoError(t, err)
		assert.Equal(t, byte(0), after)
		before, err := mem.Byte(layout.Segment, 0x00FF)
		assert.NoError(t, err)
		assert.Equal(t, byte(0), before)
	})

	t.Run("empty image", func(t *testing.T) {
		mem := memory.NewDefault()

		img, err := New(layout).LoadReader(bytes.NewReader(nil), mem)
		assert.NoError(t, err)
		assert.Equal(t, 0, img.Size)
		assert.Equal(t, make([]byte, mem.Size()), mustSlice(t, mem, 0, mem.Size()))
	})

	t.Run("image does not fit memory", func(t *testing.T) {
		mem := memory.New(start + 4)

		_, err := New(layout).LoadReader(bytes.NewReader(make([]byte, 8)), mem)
		assert.True(t, errors.Is(err, memory.ErrOutOfBounds))
	})
}

func TestLoad(t *testing.T) {
	layout := options.NewLayout()

	t.Run("load file", func(t *testing.T) {
		path := createTempFile(t, []byte{0x01, 0x02, 0x03, 0x04})
		mem := memory.NewDefault()

		img, err := New(layout).Load(path, mem)
		assert.NoError(t, err)
		assert.Equal(t, 4, img.Size)

		b, err := mem.Byte(0xF000, 0x0103)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x04), b)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		mem := memory.NewDefault()

		_, err := New(layout).Load("/nonexistent/bios", mem)
		assert.Error(t, err)

		var openErr *OpenError
		assert.True(t, errors.As(err, &openErr))
		assert.Equal(t, "/nonexistent/bios", openErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.ErrorContains(t, err, "did you compile it?")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "bios")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func mustSlice(t *testing.T, mem *memory.Memory, offset, n int) []byte {
	t.Helper()
	buf, err := mem.Slice(0, offset, n)
	if err != nil {
		t.Fatalf("Failed to read memory: %v", err)
	}
	return buf
}
