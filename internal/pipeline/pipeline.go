// Package pipeline orchestrates the extraction workflow stages.
package pipeline

import (
	"fmt"

	"github.com/retroenv/biostables/internal/extractor"
	"github.com/retroenv/biostables/internal/loader"
	"github.com/retroenv/biostables/internal/memory"
	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/biostables/internal/verification"
	"github.com/retroenv/biostables/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete extraction workflow.
type Pipeline struct {
	logger    *log.Logger
	layout    options.Layout
	loader    *loader.Loader
	extractor *extractor.Extractor
}

// New creates a new extraction pipeline.
func New(logger *log.Logger, layout options.Layout) *Pipeline {
	return &Pipeline{
		logger:    logger,
		layout:    layout,
		loader:    loader.New(layout),
		extractor: extractor.New(logger, layout),
	}
}

// Run loads the image at path, extracts the tables and returns the rendered
// literal. Nothing is written, callers output the literal only after the
// whole run succeeded.
func (p *Pipeline) Run(path string, verify bool) (string, error) {
	mem, err := p.load(path)
	if err != nil {
		return "", err
	}

	res, err := p.ExecuteWithMemory(mem)
	if err != nil {
		return "", err
	}

	literal := writer.Render(&res.Tables)

	if verify {
		if err := verification.VerifyOutput(p.logger, literal, mem, p.layout, res.Offsets); err != nil {
			return "", fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return literal, nil
}

// Execute loads the image at path and returns the extracted tables.
func (p *Pipeline) Execute(path string) (*extractor.Result, error) {
	mem, err := p.load(path)
	if err != nil {
		return nil, err
	}
	return p.ExecuteWithMemory(mem)
}

// ExecuteWithMemory runs the extraction on an already populated memory image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithMemory(mem *memory.Memory) (*extractor.Result, error) {
	res, err := p.extractor.Extract(mem)
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}
	return res, nil
}

func (p *Pipeline) load(path string) (*memory.Memory, error) {
	mem := memory.New(p.layout.MemorySize)

	img, err := p.loader.Load(path, mem)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	p.printInfo(path, img)
	return mem, nil
}

func (p *Pipeline) printInfo(path string, img loader.Image) {
	p.logger.Info("Loaded BIOS image",
		log.String("file", path),
		log.Stringer("start", img.Start),
		log.Stringer("end", img.End()),
		log.Hex("size", img.Size),
	)
	if img.FileSize > int64(img.Size) {
		p.logger.Warn("Image exceeds the load window, trailing bytes ignored",
			log.Int("ignored", int(img.FileSize-int64(img.Size))),
		)
	}
	p.logger.Debug("Image checksum", log.Hex("crc32", img.Checksum))
}
