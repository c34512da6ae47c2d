package layerenv

import "maps"

// Phase is the lifecycle phase an environment is evaluated for.
type Phase int

const (
	PhaseBuild Phase = iota
	PhaseLaunch
)

func (ph Phase) String() string {
	if ph == PhaseLaunch {
		return "launch"
	}
	return "build"
}

// Apply evaluates the patch on top of base and returns the resulting
// environment; base is not modified. Changes visible in the phase are applied
// shared scope first, then the phase scope, then the process scope, the same
// order the lifecycle reads a layer in. Within a scope, a later change for the
// same name and modification replaces the earlier one.
func (p *Patch) Apply(base map[string]string, phase Phase, process string) map[string]string {
	env := maps.Clone(base)
	if env == nil {
		env = make(map[string]string)
	}

	for _, tier := range []func(Scope) bool{
		func(s Scope) bool { return s == ScopeAll },
		func(s Scope) bool { return s == ScopeBuild || s == ScopeLaunch },
		func(s Scope) bool { return s.kind == scopeProcess },
	} {
		for _, c := range p.effective(tier) {
			if !visible(c.Scope, phase, process) {
				continue
			}
			applyChange(env, c)
		}
	}
	return env
}

func visible(s Scope, phase Phase, process string) bool {
	if phase == PhaseBuild {
		return s.Build()
	}
	return s.Launch(process)
}

type fileKey struct {
	scope Scope
	name  string
	mod   Modification
}

// effective collapses the changes selected by keep the way Write does: one
// change per scope, name and modification, keeping first-seen order and last value.
func (p *Patch) effective(keep func(Scope) bool) []Change {
	var order []fileKey
	latest := make(map[fileKey]Change)
	for _, c := range p.changes {
		if !keep(c.Scope) {
			continue
		}
		k := fileKey{c.Scope, c.Name, c.Modification}
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = c
	}
	out := make([]Change, 0, len(order))
	for _, k := range order {
		out = append(out, latest[k])
	}
	return out
}

func applyChange(env map[string]string, c Change) {
	existing, set := env[c.Name]
	switch c.Modification {
	case Override:
		env[c.Name] = c.Value
	case Default:
		if !set {
			env[c.Name] = c.Value
		}
	case Append:
		if set && existing != "" {
			env[c.Name] = existing + c.Delimiter + c.Value
		} else {
			env[c.Name] = c.Value
		}
	case Prepend:
		if set && existing != "" {
			env[c.Name] = c.Value + c.Delimiter + existing
		} else {
			env[c.Name] = c.Value
		}
	}
}
