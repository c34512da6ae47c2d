// Package cnb implements the buildpack side of the Cloud Native Buildpacks
// lifecycle contract: reading the detect and build arguments, writing the
// build plan, and contributing layers.
package cnb

import (
	"DotenvBuildpack/internal/buildplan"
	"DotenvBuildpack/internal/config"
	"DotenvBuildpack/internal/paths"
	"fmt"
)

// DetectContext is everything the detect phase receives.
type DetectContext struct {
	AppDir       string
	PlatformDir  string
	PlanPath     string
	BuildpackDir string
	Descriptor   config.Descriptor
}

// BuildContext is everything the build phase receives.
type BuildContext struct {
	AppDir       string
	LayersDir    string
	PlatformDir  string
	PlanPath     string
	BuildpackDir string
	Descriptor   config.Descriptor
	Entries      []buildplan.Entry
}

// NewDetectContext reads `detect <platform> <plan>` and the CNB_* variables.
func NewDetectContext(args []string) (DetectContext, error) {
	appDir, bpDir, desc, err := common()
	if err != nil {
		return DetectContext{}, err
	}
	dc := DetectContext{
		AppDir:       appDir,
		PlatformDir:  paths.GetPlatformDir(arg(args, 0)),
		PlanPath:     paths.GetBuildPlanPath(arg(args, 1)),
		BuildpackDir: bpDir,
		Descriptor:   desc,
	}
	if dc.PlanPath == "" {
		return DetectContext{}, fmt.Errorf("usage: detect <platform> <plan>: no build plan path")
	}
	return dc, nil
}

// NewBuildContext reads `build <layers> <platform> <plan>` and the CNB_* variables.
func NewBuildContext(args []string) (BuildContext, error) {
	appDir, bpDir, desc, err := common()
	if err != nil {
		return BuildContext{}, err
	}
	bc := BuildContext{
		AppDir:       appDir,
		LayersDir:    paths.GetLayersDir(arg(args, 0)),
		PlatformDir:  paths.GetPlatformDir(arg(args, 1)),
		PlanPath:     paths.GetBuildpackPlanPath(arg(args, 2)),
		BuildpackDir: bpDir,
		Descriptor:   desc,
	}
	if bc.LayersDir == "" {
		return BuildContext{}, fmt.Errorf("usage: build <layers> <platform> <plan>: no layers directory")
	}
	bc.Entries, err = buildplan.ReadEntries(bc.PlanPath)
	if err != nil {
		return BuildContext{}, err
	}
	return bc, nil
}

func common() (appDir, bpDir string, desc config.Descriptor, err error) {
	if appDir, err = paths.GetAppDir(); err != nil {
		return "", "", desc, fmt.Errorf("cannot determine application directory: %w", err)
	}
	if bpDir, err = paths.GetBuildpackDir(); err != nil {
		return "", "", desc, fmt.Errorf("cannot determine buildpack directory: %w", err)
	}
	desc, err = config.LoadDescriptor(bpDir)
	return appDir, bpDir, desc, err
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
