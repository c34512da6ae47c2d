// Package layerenv builds the environment contribution of a buildpack layer.
//
// A Patch is an ordered list of changes. Write lays it out the way the
// lifecycle expects it inside a layer directory:
//
//	<layer>/env/NAME.default          build and launch
//	<layer>/env.build/NAME.override   build only
//	<layer>/env.launch/NAME.append    launch only
//	<layer>/env.launch/web/NAME.append  launch, process "web" only
//	<layer>/env/NAME.delim            delimiter for append/prepend
package layerenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/buildpacks/libcnb/v2"
)

// Change is one environment modification.
type Change struct {
	Scope        Scope        `yaml:"scope" toml:"scope"`
	Modification Modification `yaml:"modification" toml:"modification"`
	Name         string       `yaml:"name" toml:"name"`
	Value        string       `yaml:"value" toml:"value"`
	Delimiter    string       `yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`
}

// Patch is an ordered collection of changes. The zero value is empty and ready to use.
type Patch struct {
	changes []Change
}

// Insert appends a change without a delimiter.
func (p *Patch) Insert(scope Scope, mod Modification, name, value string) {
	p.InsertDelimited(scope, mod, name, value, "")
}

// InsertDelimited appends a change. The delimiter is only written for Append and Prepend.
func (p *Patch) InsertDelimited(scope Scope, mod Modification, name, value, delim string) {
	if mod != Append && mod != Prepend {
		delim = ""
	}
	p.changes = append(p.changes, Change{
		Scope:        scope,
		Modification: mod,
		Name:         name,
		Value:        value,
		Delimiter:    delim,
	})
}

// Changes returns a copy of the changes in insertion order.
func (p *Patch) Changes() []Change {
	out := make([]Change, len(p.changes))
	copy(out, p.changes)
	return out
}

// Len returns the number of changes.
func (p *Patch) Len() int {
	return len(p.changes)
}

// Write materialises the patch under layerDir. A later change for the same
// scope, name and modification overwrites the earlier file.
func (p *Patch) Write(layerDir string) error {
	envs := make(map[string]libcnb.Environment)
	for _, c := range p.changes {
		if err := validateName(c.Name); err != nil {
			return err
		}
		dir := c.Scope.Dir()
		if c.Scope.Process() != "" {
			dir = ScopeLaunch.Dir()
		}
		env, ok := envs[dir]
		if !ok {
			env = libcnb.Environment{}
			envs[dir] = env
		}
		c.apply(env)
	}

	for dir, env := range envs {
		for key, value := range env {
			file := filepath.Join(layerDir, dir, key)
			if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Dir(file), err)
			}
			if err := os.WriteFile(file, []byte(value), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}
		}
	}
	return nil
}

// apply records the change in env. Process scopes are keyed <process>/NAME.<suffix>
// inside the env.launch environment.
func (c Change) apply(env libcnb.Environment) {
	if proc := c.Scope.Process(); proc != "" {
		switch c.Modification {
		case Default:
			env.ProcessDefault(proc, c.Name, c.Value)
		case Append:
			env.ProcessAppend(proc, c.Name, c.Delimiter, c.Value)
		case Prepend:
			env.ProcessPrepend(proc, c.Name, c.Delimiter, c.Value)
		default:
			env.ProcessOverride(proc, c.Name, c.Value)
		}
		return
	}
	switch c.Modification {
	case Default:
		env.Default(c.Name, c.Value)
	case Append:
		env.Append(c.Name, c.Delimiter, c.Value)
	case Prepend:
		env.Prepend(c.Name, c.Delimiter, c.Value)
	default:
		env.Override(c.Name, c.Value)
	}
}

// validateName rejects names that cannot be stored as a single file.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("invalid environment variable name %q", name)
	}
	return nil
}
