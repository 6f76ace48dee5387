// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"

	"github.com/retroenv/biostables/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
// Without any arguments the image named bios in the working directory is
// read and the literal is printed on the console.
func ParseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.Usage = func() {} // printed by UsageError.ShowUsage
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	positional := flags.Args()
	switch len(positional) {
	case 0:
	case 1:
		opts.Input = positional[0]
	default:
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("only one image file can be processed, got %d", len(positional)),
		}
	}

	if opts.Input == "" {
		return opts, &UsageError{flags: flags, msg: "no input image given"}
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and flag defaults to the flag set output.
func (e *UsageError) ShowUsage() {
	out := e.flags.Output()
	_, _ = fmt.Fprintf(out, "usage: biostables [options] [BIOS image, default %s]\n\n", options.DefaultInput)
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(out)
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", opts.Input, "name of the input BIOS image file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated literal by parsing it back and comparing it with the image tables")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
