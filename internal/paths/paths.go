package paths

import (
	"DotenvBuildpack/internal/constants"
	"os"
	"path/filepath"
)

var (
	// BuildpackDirOverride allows overriding the buildpack directory for tests.
	BuildpackDirOverride string
	// AppDirOverride allows overriding the application directory for tests.
	AppDirOverride string
)

// GetBuildpackDir returns the buildpack root: CNB_BUILDPACK_DIR when set,
// otherwise the parent of the directory holding the running executable (bin/..).
func GetBuildpackDir() (string, error) {
	if BuildpackDirOverride != "" {
		return BuildpackDirOverride, nil
	}
	if dir := os.Getenv(constants.BuildpackDirVar); dir != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// GetAppDir returns the application directory, which the lifecycle sets as the working directory.
func GetAppDir() (string, error) {
	if AppDirOverride != "" {
		return AppDirOverride, nil
	}
	return os.Getwd()
}

// GetPlatformDir prefers the positional argument, then CNB_PLATFORM_DIR, then /platform.
func GetPlatformDir(arg string) string {
	return firstNonEmpty(arg, os.Getenv(constants.PlatformDirVar), constants.DefaultPlatformDir)
}

// GetBuildPlanPath returns the detect-phase plan output path.
func GetBuildPlanPath(arg string) string {
	return firstNonEmpty(arg, os.Getenv(constants.BuildPlanPathVar))
}

// GetLayersDir returns the build-phase layers directory.
func GetLayersDir(arg string) string {
	return firstNonEmpty(arg, os.Getenv(constants.LayersDirVar))
}

// GetBuildpackPlanPath returns the build-phase buildpack plan path.
func GetBuildpackPlanPath(arg string) string {
	return firstNonEmpty(arg, os.Getenv(constants.BPPlanPathVar))
}

// GetLayerDir returns <layers>/<name>.
func GetLayerDir(layersDir, name string) string {
	return filepath.Join(layersDir, name)
}

// GetLayerMetadataPath returns <layers>/<name>.toml.
func GetLayerMetadataPath(layersDir, name string) string {
	return filepath.Join(layersDir, name+constants.LayerMetadataSuffix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
