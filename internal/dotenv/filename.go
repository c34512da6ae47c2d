package dotenv

import (
	"DotenvBuildpack/internal/constants"
	"os"
	"path/filepath"
	"strings"
)

// Filename returns ".env.<suffix>" with trailing dots stripped,
// so an empty suffix yields exactly ".env".
func Filename(suffix string) string {
	return strings.TrimRight(constants.EnvFileSuffixPrefix+suffix, ".")
}

// ResolveSuffix returns the first non-empty override, or declared when there is none.
func ResolveSuffix(declared string, overrides ...string) string {
	for _, o := range overrides {
		if o != "" {
			return o
		}
	}
	return declared
}

// Exists reports whether dir/name is a regular file. Directories and
// missing paths report false; symlinks are followed.
func Exists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
