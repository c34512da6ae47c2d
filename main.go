package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"DotenvBuildpack/cmd"
	"DotenvBuildpack/internal/console"
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/logger"
	"DotenvBuildpack/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	defer func() {
		if exitCode == constants.ExitError {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()
	// Turns logger.FatalError panics into exit code 1
	defer logger.Recover(&exitCode)

	phase, args := cmd.ResolvePhase(version.CommandName, os.Args[1:])
	opts, err := cmd.Parse(phase, args)
	if err != nil {
		logger.Error(ctx, err.Error())
		return constants.ExitError
	}

	return cmd.Execute(ctx, phase, opts)
}
