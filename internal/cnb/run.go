package cnb

import (
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/logger"
	"context"
)

// RunDetect runs the detect phase and returns the lifecycle exit code.
// A passing plan is written to the plan path before returning ExitPass.
func RunDetect(ctx context.Context, bp Buildpack, args []string) (int, error) {
	dc, err := NewDetectContext(args)
	if err != nil {
		return constants.ExitError, err
	}
	logger.Debug(ctx, "Detecting in {{_Folder_}}%s{{|-|}}", dc.AppDir)

	result, err := bp.Detect(ctx, dc)
	if err != nil {
		return constants.ExitError, err
	}
	if !result.Passed() {
		return constants.ExitDetectFail, nil
	}
	if err := result.Plan.Write(dc.PlanPath); err != nil {
		return constants.ExitError, err
	}
	return constants.ExitPass, nil
}

// RunBuild runs the build phase and returns the lifecycle exit code.
func RunBuild(ctx context.Context, bp Buildpack, args []string) (int, error) {
	bc, err := NewBuildContext(args)
	if err != nil {
		return constants.ExitError, err
	}
	logger.Debug(ctx, "Building {{_Folder_}}%s{{|-|}} into {{_Folder_}}%s{{|-|}}", bc.AppDir, bc.LayersDir)

	result, err := bp.Build(ctx, bc)
	if err != nil {
		return constants.ExitError, err
	}
	for _, layer := range result.Layers {
		logger.Debug(ctx, "Contributed layer {{_Layer_}}%s{{|-|}}", layer)
	}
	return constants.ExitPass, nil
}
