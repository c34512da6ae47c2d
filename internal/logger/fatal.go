package logger

import (
	"DotenvBuildpack/internal/version"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, fmt.Sprintf("PHASE:            %s", version.CommandName))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:             %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:               %s", runtime.GOOS))
	if wd, err := os.Getwd(); err == nil {
		info = append(info, fmt.Sprintf("WORKDIR:          %s", wd))
	}

	return info
}

// Fatal logs a message at FatalLevel with system information and a stack trace, then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc) // Skip runtime.Callers and Fatal
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			infoLines = append(infoLines, "  "+i)
		} else {
			infoLines = append(infoLines, "")
		}
	}

	wd, _ := os.Getwd()
	var traceLines []string
	for i := 0; ; i++ {
		frame, more := frames.Next()
		file := frame.File
		if wd != "" {
			if rel, err := filepath.Rel(wd, file); err == nil && !strings.HasPrefix(rel, "..") {
				file = "./" + filepath.ToSlash(rel)
			}
		}
		traceLines = append(traceLines, fmt.Sprintf("  %2d: {{_File_}}%s{{|-|}}:%d (%s)", i, file, frame.Line, filepath.Base(frame.Function)))
		if !more {
			break
		}
	}

	output := []any{
		"{{_Fatal_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		infoLines,
		"",
		traceLines,
		"{{_Fatal_}}### END SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		"",
		resolveMsg(msg),
	}

	logAt(ctx, now, LevelFatal, output, args...)
	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and panics with FatalError.
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, resolveMsg(msg), args...)
	panic(FatalError{})
}

// Recover converts a FatalError panic into exit code 1 and re-panics anything else.
// Usage: defer logger.Recover(&exitCode)
func Recover(exitCode *int) {
	if r := recover(); r != nil {
		if _, ok := r.(FatalError); ok {
			*exitCode = 1
			return
		}
		panic(r)
	}
}
