package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the buildpack.
var ApplicationName = "DotEnv Buildpack"

// CommandName is the lifecycle phase this binary was invoked as ("detect" or "build").
// It is initialized dynamically from the executable filename, since
// bin/detect and bin/build are links to the same executable.
var CommandName = "build"

// Version is the current version of the buildpack.
// This is intended to be overwritten at build time using:
// -ldflags "-X DotenvBuildpack/internal/version.Version=v0.2.0"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	CommandName = CommandNameFromPath(os.Args[0])
}

// CommandNameFromPath strips the directory and extension (e.g. .exe on Windows)
// from an executable path.
func CommandNameFromPath(exePath string) string {
	baseName := filepath.Base(exePath)
	ext := filepath.Ext(baseName)
	return strings.TrimSuffix(baseName, ext)
}
