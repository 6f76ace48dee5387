// Package fileprocessor handles file loading and output operations
package fileprocessor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/biostables/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile extracts the tables of the input image and writes the literal
// to the configured output. The output is only opened after the extraction
// succeeded.
func ProcessFile(logger *log.Logger, opts options.Program, layout options.Layout, stdout io.Writer) error {
	pipe := pipeline.New(logger, layout)

	literal, err := pipe.Run(opts.Input, opts.Verify)
	if err != nil {
		return err
	}

	output, closeOutput, err := createWriter(opts, stdout)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	if _, err := io.WriteString(output, literal); err != nil {
		_ = closeOutput()
		return fmt.Errorf("writing table literal: %w", err)
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("closing output file %s: %w", opts.Output, err)
	}
	return nil
}

func createWriter(opts options.Program, stdout io.Writer) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, file.Close, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("biostables", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
