package cmd

import (
	"github.com/spf13/pflag"
)

// Options holds the parsed command line of one phase invocation.
type Options struct {
	Verbose bool
	Debug   bool
	Help    bool
	Version bool
	// Args are the positional lifecycle arguments.
	Args []string
}

// NewFlagSet defines the flags shared by the detect and build phases.
func NewFlagSet(phase string, opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(phase, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&opts.Debug, "debug", "x", false, "Debug output")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show help")
	fs.BoolVarP(&opts.Version, "version", "V", false, "Show version")
	return fs
}
