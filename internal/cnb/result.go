package cnb

import (
	"DotenvBuildpack/internal/buildplan"
	"context"
)

// DetectResult is either a pass carrying a plan, or a fail.
type DetectResult struct {
	passed bool
	Plan   buildplan.Plan
}

// Pass returns a passing result with plan.
func Pass(plan buildplan.Plan) DetectResult {
	return DetectResult{passed: true, Plan: plan}
}

// Fail returns a result meaning the buildpack does not apply.
func Fail() DetectResult {
	return DetectResult{}
}

// Passed reports whether detection passed.
func (r DetectResult) Passed() bool {
	return r.passed
}

// BuildResult lists the layers a build contributed.
type BuildResult struct {
	Layers []string
}

// Buildpack is implemented by a buildpack run through RunDetect and RunBuild.
type Buildpack interface {
	Detect(ctx context.Context, dc DetectContext) (DetectResult, error)
	Build(ctx context.Context, bc BuildContext) (BuildResult, error)
}
