package config

import (
	"DotenvBuildpack/internal/constants"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Override sources, highest precedence first.
const (
	SourceEnvironment = "environment"
	SourcePlatform    = "platform"
	SourceCompiled    = "compiled"
)

// Override is a suffix override and where it came from.
// An empty Value means no override is in effect.
type Override struct {
	Value  string
	Source string
}

// LookupOverride returns the first non-empty suffix override from the process
// environment, the platform env directory, or the value baked in at build time.
func LookupOverride(platformDir string) (Override, error) {
	if v := os.Getenv(constants.SuffixOverrideVar); v != "" {
		return Override{Value: v, Source: SourceEnvironment}, nil
	}
	v, err := ReadPlatformEnv(platformDir, constants.SuffixOverrideVar)
	if err != nil {
		return Override{}, err
	}
	if v != "" {
		return Override{Value: v, Source: SourcePlatform}, nil
	}
	if constants.DotenvSuffixOverride != "" {
		return Override{Value: constants.DotenvSuffixOverride, Source: SourceCompiled}, nil
	}
	return Override{}, nil
}

// ReadPlatformEnv reads <platformDir>/env/<name>. A missing file or an empty
// platformDir yields "".
func ReadPlatformEnv(platformDir, name string) (string, error) {
	if platformDir == "" {
		return "", nil
	}
	path := filepath.Join(platformDir, constants.PlatformEnvDirName, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read platform variable %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
