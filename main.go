// Package main implements the extractor for the opcode decoding tables of a BIOS image
package main

import (
	"errors"
	"os"

	"github.com/retroenv/biostables/internal/cli"
	"github.com/retroenv/biostables/internal/config"
	"github.com/retroenv/biostables/internal/fileprocessor"
	"github.com/retroenv/biostables/internal/options"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags(os.Args)
	if err != nil {
		logger := config.CreateLogger(os.Stderr, opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
			if msg := usageErr.Error(); msg != "" {
				logger.Error(msg)
			}
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(os.Stderr, opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(logger, opts, options.NewLayout(), os.Stdout); err != nil {
		logger.Error("Extracting tables failed", log.Err(err))
		os.Exit(1)
	}
}
