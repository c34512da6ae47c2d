package cmd

import (
	"DotenvBuildpack/internal/version"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Phases
const (
	PhaseDetect = "detect"
	PhaseBuild  = "build"
)

// positionalArgs is the number of lifecycle arguments each phase accepts.
var positionalArgs = map[string]int{
	PhaseDetect: 2, // <platform> <plan>
	PhaseBuild:  3, // <layers> <platform> <plan>
}

// ParseError wraps argument parsing errors with the offending command line.
type ParseError struct {
	Phase   string
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred, or -1
	Message string
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", e.Phase)}
	for i, a := range e.Args {
		if i == e.Index {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", a))
		} else {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", a))
		}
	}
	out := fmt.Sprintf("Error in command line:\n\n%s'%s'\n", indent, strings.Join(cmdLineParts, " "))

	if e.Index >= 0 && e.Index < len(e.Args) {
		caretOffset := len(indent) + 1 + len(e.Phase) + 1
		for i := 0; i < e.Index; i++ {
			caretOffset += len(e.Args[i]) + 1
		}
		out += strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}\n"
	}

	out += fmt.Sprintf("\n%s%s\n", indent, e.Message)
	out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, e.Phase)
	return out
}

// ResolvePhase picks the lifecycle phase from the executable name. When the
// binary is not installed as bin/detect or bin/build, the first argument names it.
func ResolvePhase(commandName string, args []string) (string, []string) {
	if _, ok := positionalArgs[commandName]; ok {
		return commandName, args
	}
	if len(args) > 0 {
		if _, ok := positionalArgs[args[0]]; ok {
			return args[0], args[1:]
		}
	}
	return commandName, args
}

// Parse parses the arguments of a phase.
func Parse(phase string, args []string) (Options, error) {
	limit, ok := positionalArgs[phase]
	if !ok {
		return Options{}, &ParseError{
			Phase:   version.CommandName,
			Args:    args,
			Index:   -1,
			Message: fmt.Sprintf("Unknown phase '{{_UserCommand_}}%s{{|-|}}', expected '%s' or '%s'.", phase, PhaseDetect, PhaseBuild),
		}
	}

	var opts Options
	fs := NewFlagSet(phase, &opts)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return Options{}, &ParseError{Phase: phase, Args: args, Index: failingIndex(args, fs), Message: err.Error()}
	}

	opts.Args = fs.Args()
	if len(opts.Args) > limit {
		return Options{}, &ParseError{
			Phase:   phase,
			Args:    args,
			Index:   indexOf(args, opts.Args[limit]),
			Message: fmt.Sprintf("Too many arguments, %s takes at most %d.", phase, limit),
		}
	}
	return opts, nil
}

// failingIndex finds the first flag-looking argument the flag set does not define.
func failingIndex(args []string, fs *pflag.FlagSet) int {
	for i, a := range args {
		if a == "--" {
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if strings.HasPrefix(a, "--") {
			if fs.Lookup(name) == nil {
				return i
			}
			continue
		}
		for _, c := range name {
			if fs.ShorthandLookup(string(c)) == nil {
				return i
			}
		}
	}
	return -1
}

func indexOf(args []string, s string) int {
	for i := len(args) - 1; i >= 0; i-- {
		if args[i] == s {
			return i
		}
	}
	return -1
}
