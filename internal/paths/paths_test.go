package paths

import (
	"DotenvBuildpack/internal/constants"
	"path/filepath"
	"testing"
)

func TestGetPlatformDir(t *testing.T) {
	t.Setenv(constants.PlatformDirVar, "")
	if got := GetPlatformDir(""); got != constants.DefaultPlatformDir {
		t.Errorf("default: got %q", got)
	}
	t.Setenv(constants.PlatformDirVar, "/env/platform")
	if got := GetPlatformDir(""); got != "/env/platform" {
		t.Errorf("env: got %q", got)
	}
	if got := GetPlatformDir("/arg/platform"); got != "/arg/platform" {
		t.Errorf("arg: got %q", got)
	}
}

func TestGetLayerPaths(t *testing.T) {
	t.Setenv(constants.LayersDirVar, "/layers")
	layers := GetLayersDir("")
	if layers != "/layers" {
		t.Fatalf("GetLayersDir() = %q", layers)
	}
	if got := GetLayerDir(layers, "dotenv"); got != filepath.Join("/layers", "dotenv") {
		t.Errorf("GetLayerDir() = %q", got)
	}
	if got := GetLayerMetadataPath(layers, "dotenv"); got != filepath.Join("/layers", "dotenv.toml") {
		t.Errorf("GetLayerMetadataPath() = %q", got)
	}
}

func TestGetBuildpackDir(t *testing.T) {
	t.Setenv(constants.BuildpackDirVar, "/cnb/buildpacks/dotenv/0.1.0")
	if got, err := GetBuildpackDir(); err != nil || got != "/cnb/buildpacks/dotenv/0.1.0" {
		t.Errorf("GetBuildpackDir() = %q, %v", got, err)
	}
	BuildpackDirOverride = "/override"
	defer func() { BuildpackDirOverride = "" }()
	if got, _ := GetBuildpackDir(); got != "/override" {
		t.Errorf("override: got %q", got)
	}
}
