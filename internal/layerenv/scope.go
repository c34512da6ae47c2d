package layerenv

import (
	"fmt"
	"path/filepath"
	"strings"
)

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeBuild
	scopeLaunch
	scopeProcess
)

// Scope selects the phases an environment change applies to.
type Scope struct {
	kind    scopeKind
	process string
}

var (
	// ScopeAll applies at build time and at launch time.
	ScopeAll = Scope{kind: scopeAll}
	// ScopeBuild applies to subsequent buildpacks during the build only.
	ScopeBuild = Scope{kind: scopeBuild}
	// ScopeLaunch applies to the running image only.
	ScopeLaunch = Scope{kind: scopeLaunch}
)

// ScopeProcess applies at launch time to one process type only.
func ScopeProcess(name string) Scope {
	return Scope{kind: scopeProcess, process: name}
}

// Dir is the scope's directory inside a layer.
func (s Scope) Dir() string {
	switch s.kind {
	case scopeBuild:
		return "env.build"
	case scopeLaunch:
		return "env.launch"
	case scopeProcess:
		return filepath.Join("env.launch", s.process)
	}
	return "env"
}

// Build reports whether the scope is visible during the build phase.
func (s Scope) Build() bool {
	return s.kind == scopeAll || s.kind == scopeBuild
}

// Launch reports whether the scope is visible at launch for the given process.
// An empty process matches only the scopes shared by every process.
func (s Scope) Launch(process string) bool {
	switch s.kind {
	case scopeAll, scopeLaunch:
		return true
	case scopeProcess:
		return process != "" && s.process == process
	}
	return false
}

// Process returns the process type of a process scope.
func (s Scope) Process() string {
	return s.process
}

func (s Scope) String() string {
	switch s.kind {
	case scopeBuild:
		return "build"
	case scopeLaunch:
		return "launch"
	case scopeProcess:
		return "launch:" + s.process
	}
	return "all"
}

// MarshalText renders the scope as String.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts what ParseScope accepts.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScope accepts "all" (alias "both"), "build", "launch" and "launch:<process>".
// Keywords are case-insensitive; the process name keeps its case.
func ParseScope(name string) (Scope, error) {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "all", "both", "":
		return ScopeAll, nil
	case "build":
		return ScopeBuild, nil
	case "launch":
		return ScopeLaunch, nil
	}
	const prefix = "launch:"
	if len(trimmed) >= len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
		process := strings.TrimSpace(trimmed[len(prefix):])
		if process != "" && process != "." && process != ".." && !strings.ContainsAny(process, `/\`) {
			return ScopeProcess(process), nil
		}
	}
	return Scope{}, fmt.Errorf("unknown scope %q (want all, build, launch or launch:<process>)", name)
}
