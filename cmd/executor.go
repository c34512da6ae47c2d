package cmd

import (
	"DotenvBuildpack/internal/buildpack"
	"DotenvBuildpack/internal/cnb"
	"DotenvBuildpack/internal/config"
	"DotenvBuildpack/internal/console"
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/dotenv"
	"DotenvBuildpack/internal/logger"
	"DotenvBuildpack/internal/version"
	"context"
	"fmt"
	"os"
)

// ApplyLogLevel sets the log level from BP_LOG_LEVEL, then the -v and -x switches.
func ApplyLogLevel(ctx context.Context, opts Options) {
	if name := os.Getenv(constants.LogLevelVar); name != "" {
		level, ok := logger.ParseLevel(name)
		if !ok {
			logger.Warn(ctx, "Ignoring unknown {{_Var_}}%s{{|-|}} value {{_Value_}}%s{{|-|}}.", constants.LogLevelVar, name)
		}
		logger.SetLevel(level)
	}
	if opts.Verbose {
		logger.SetLevel(logger.LevelInfo)
	}
	if opts.Debug {
		logger.SetLevel(logger.LevelDebug)
	}
}

// Execute runs one lifecycle phase and returns its exit code.
// Failures end in logger.Fatal or logger.FatalNoTrace, which the caller recovers.
func Execute(ctx context.Context, phase string, opts Options) int {
	ApplyLogLevel(ctx, opts)

	if opts.Help {
		PrintHelp(phase)
		return constants.ExitPass
	}
	if opts.Version {
		fmt.Println(console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}] commit %s built %s", version.ApplicationName, version.Version, version.Commit, version.BuildDate)))
		return constants.ExitPass
	}

	bp := buildpack.New()
	var (
		code int
		err  error
	)
	switch phase {
	case PhaseDetect:
		code, err = cnb.RunDetect(ctx, bp, opts.Args)
	case PhaseBuild:
		code, err = cnb.RunBuild(ctx, bp, opts.Args)
	default:
		logger.FatalNoTrace(ctx, "Unknown phase {{_Phase_}}%s{{|-|}}.", phase)
	}

	if err != nil {
		// Known failure modes need no stack trace.
		if config.IsInvalidConfiguration(err) || dotenv.IsUnreadable(err) {
			logger.FatalNoTrace(ctx, "{{_Phase_}}%s{{|-|}} failed: %v", phase, err)
		}
		logger.Fatal(ctx, "{{_Phase_}}%s{{|-|}} failed: %v", phase, err)
	}
	return code
}
