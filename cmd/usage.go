package cmd

import (
	"DotenvBuildpack/internal/console"
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information for a phase.
func PrintHelp(phase string) {
	fmt.Println(console.Parse(GetUsage(phase)))
}

// GetUsage returns usage information for a phase as a tagged string.
func GetUsage(phase string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	switch phase {
	case PhaseDetect:
		printStr("Usage: {{_UserCommand_}}detect{{|-|}} [{{_UserCommand_}}<Flags>{{|-|}}] <platform> <plan>")
	case PhaseBuild:
		printStr("Usage: {{_UserCommand_}}build{{|-|}} [{{_UserCommand_}}<Flags>{{|-|}}] <layers> <platform> <plan>")
	default:
		printStr("Usage: {{_UserCommand_}}detect{{|-|}}|{{_UserCommand_}}build{{|-|}} [{{_UserCommand_}}<Flags>{{|-|}}] <args>...")
	}
	printStr("")
	printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	printStr(fmt.Sprintf("Loads '{{_File_}}%s{{|-|}}' (or '{{_File_}}%s<suffix>{{|-|}}') from the application directory", constants.EnvFileName, constants.EnvFileSuffixPrefix))
	printStr("into the build environment.")
	printStr("")
	printStr("Arguments missing from the command line are read from the CNB_* variables.")
	printStr(fmt.Sprintf("Set '{{_Var_}}%s{{|-|}}' to override the configured suffix.", constants.SuffixOverrideVar))
	printStr("")
	printStr("Flags:")
	printStr("")

	var opts Options
	fs := NewFlagSet(phase, &opts)
	printStr(strings.TrimRight(fs.FlagUsages(), "\n"))
	printStr("")
	printStr(fmt.Sprintf("'{{_Var_}}%s{{|-|}}' (trace, debug, info, notice, warn, error) also sets the log level.", constants.LogLevelVar))
	return sb.String()
}
