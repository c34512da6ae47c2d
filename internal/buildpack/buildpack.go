// Package buildpack is the dotenv buildpack: it detects a .env file in the
// application and contributes its variables to a layer's environment.
package buildpack

import (
	"DotenvBuildpack/internal/buildplan"
	"DotenvBuildpack/internal/cnb"
	"DotenvBuildpack/internal/config"
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/dotenv"
	"DotenvBuildpack/internal/layerenv"
	"DotenvBuildpack/internal/logger"
	"context"
	"path/filepath"
)

// Dotenv implements cnb.Buildpack.
type Dotenv struct{}

// New returns the dotenv buildpack.
func New() *Dotenv {
	return &Dotenv{}
}

// Detect passes when the resolved env file is a regular file in the application directory.
func (d *Dotenv) Detect(ctx context.Context, dc cnb.DetectContext) (cnb.DetectResult, error) {
	name, err := resolveFilename(ctx, dc.Descriptor.Metadata, dc.PlatformDir)
	if err != nil {
		return cnb.Fail(), err
	}

	if !dotenv.Exists(dc.AppDir, name) {
		logger.Info(ctx, "No {{_File_}}%s{{|-|}} file in {{_Folder_}}%s{{|-|}}.", name, dc.AppDir)
		return cnb.Fail(), nil
	}

	logger.Info(ctx, "Found {{_File_}}%s{{|-|}}.", name)
	plan := buildplan.NewPlan().
		Provides(constants.Capability).
		Requires(constants.Capability).
		Build()
	return cnb.Pass(plan), nil
}

// Build parses the env file and writes its variables into the dotenv layer.
func (d *Dotenv) Build(ctx context.Context, bc cnb.BuildContext) (cnb.BuildResult, error) {
	md := bc.Descriptor.Metadata
	name, err := resolveFilename(ctx, md, bc.PlatformDir)
	if err != nil {
		return cnb.BuildResult{}, err
	}
	if len(bc.Entries) > 0 && !buildplan.Contains(bc.Entries, constants.Capability) {
		logger.Warn(ctx, "Buildpack plan has no {{_Capability_}}%s{{|-|}} entry.", constants.Capability)
	}

	path := filepath.Join(bc.AppDir, name)
	result, err := dotenv.ParseFile(path)
	if err != nil {
		return cnb.BuildResult{}, err
	}
	for _, s := range result.Skipped {
		logger.Warn(ctx, "Skipping line {{_Skipped_}}%d{{|-|}} of {{_File_}}%s{{|-|}}: %v", s.Number, name, s.Err)
	}

	patch := NewPatch(result, md)
	for _, c := range patch.Changes() {
		logger.Debug(ctx, "Setting {{_Var_}}%s{{|-|}} ({{_Scope_}}%s{{|-|}}, %s)", c.Name, c.Scope, c.Modification)
	}

	types := cnb.LayerTypes{Build: true, Launch: md.Launch}
	metadata := map[string]any{
		"file":      name,
		"variables": patch.Len(),
	}
	layerDir, err := bc.HandleLayer(constants.LayerName, types, metadata, patch)
	if err != nil {
		return cnb.BuildResult{}, err
	}

	logger.Notice(ctx, "Loaded {{_Value_}}%d{{|-|}} variables from {{_File_}}%s{{|-|}} into layer {{_Layer_}}%s{{|-|}}.", patch.Len(), name, constants.LayerName)
	return cnb.BuildResult{Layers: []string{layerDir}}, nil
}

// NewPatch turns parsed entries into one change per entry using the configured
// scope, modification and delimiter.
func NewPatch(result dotenv.Result, md config.Metadata) *layerenv.Patch {
	var patch layerenv.Patch
	for _, e := range result.Entries {
		patch.InsertDelimited(md.Scope, md.Modification, e.Name, e.Value, md.Delimiter)
	}
	return &patch
}

// ResolveFilename returns the env file name after applying any suffix override.
func ResolveFilename(md config.Metadata, platformDir string) (string, config.Override, error) {
	ov, err := config.LookupOverride(platformDir)
	if err != nil {
		return "", ov, err
	}
	return dotenv.Filename(dotenv.ResolveSuffix(md.DotenvSuffix, ov.Value)), ov, nil
}

func resolveFilename(ctx context.Context, md config.Metadata, platformDir string) (string, error) {
	name, ov, err := ResolveFilename(md, platformDir)
	if err != nil {
		return "", err
	}
	if ov.Value != "" {
		logger.Debug(ctx, "Suffix override {{_Value_}}%s{{|-|}} from %s replaces {{_Value_}}%q{{|-|}}.", ov.Value, ov.Source, md.DotenvSuffix)
	}
	logger.Debug(ctx, "Resolved env file name {{_File_}}%s{{|-|}}.", name)
	return name, nil
}
