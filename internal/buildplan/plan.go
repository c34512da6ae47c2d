// Package buildplan declares the capabilities a buildpack provides and requires
// during detection, and reads the plan entries handed back to the build phase.
//
// Capabilities are plain strings matched by exact equality.
package buildplan

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/buildpacks/libcnb/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// Provide is a capability the buildpack contributes.
type Provide = libcnb.BuildPlanProvide

// Require is a capability the buildpack needs from some provider.
type Require = libcnb.BuildPlanRequire

// Plan is the detect-phase build plan.
type Plan libcnb.BuildPlan

// Builder assembles a Plan.
type Builder struct {
	plan Plan
}

// NewPlan starts an empty plan.
func NewPlan() *Builder {
	return &Builder{}
}

// Provides adds a provided capability.
func (b *Builder) Provides(name string) *Builder {
	b.plan.Provides = append(b.plan.Provides, Provide{Name: name})
	return b
}

// Requires adds a required capability.
func (b *Builder) Requires(name string) *Builder {
	b.plan.Requires = append(b.plan.Requires, Require{Name: name})
	return b
}

// RequiresWithMetadata adds a required capability carrying metadata for the provider.
func (b *Builder) RequiresWithMetadata(name string, metadata map[string]any) *Builder {
	b.plan.Requires = append(b.plan.Requires, Require{Name: name, Metadata: metadata})
	return b
}

// Build returns the assembled plan.
func (b *Builder) Build() Plan {
	return b.plan
}

// ProvidedNames lists the provided capability names.
func (p Plan) ProvidedNames() []string {
	names := make([]string, 0, len(p.Provides))
	for _, pr := range p.Provides {
		names = append(names, pr.Name)
	}
	return names
}

// Satisfied reports whether every requirement is provided by the plan itself,
// which makes the buildpack independent of other buildpacks.
func (p Plan) Satisfied() bool {
	return len(p.Unsatisfied(nil)) == 0
}

// Unsatisfied returns the required names provided neither by the plan nor by others.
func (p Plan) Unsatisfied(others []string) []string {
	provided := append(p.ProvidedNames(), others...)
	var missing []string
	for _, r := range p.Requires {
		if !slices.Contains(provided, r.Name) {
			missing = append(missing, r.Name)
		}
	}
	return missing
}

// Marshal encodes the plan as the lifecycle's plan TOML.
func (p Plan) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the plan to path.
func (p Plan) Write(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode build plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write build plan %s: %w", path, err)
	}
	return nil
}

// ReadPlan decodes a plan file written by Write.
func ReadPlan(path string) (Plan, error) {
	var p Plan
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to decode build plan %s: %w", path, err)
	}
	return p, nil
}
