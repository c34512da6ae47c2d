package layerenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFrom loads the patch stored under layerDir by Write. Scopes are read in
// the order env, env.build, env.launch, then process directories; files within a
// directory in name order. Missing directories are skipped.
func ReadFrom(layerDir string) (Patch, error) {
	var p Patch

	for _, scope := range []Scope{ScopeAll, ScopeBuild, ScopeLaunch} {
		if err := p.readDir(filepath.Join(layerDir, scope.Dir()), scope); err != nil {
			return Patch{}, err
		}
	}

	launchDir := filepath.Join(layerDir, ScopeLaunch.Dir())
	entries, err := os.ReadDir(launchDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Patch{}, fmt.Errorf("failed to read %s: %w", launchDir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			scope := ScopeProcess(e.Name())
			if err := p.readDir(filepath.Join(layerDir, scope.Dir()), scope); err != nil {
				return Patch{}, err
			}
		}
	}
	return p, nil
}

func (p *Patch) readDir(dir string, scope Scope) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	delims := make(map[string]string)
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".delim"); ok && !e.IsDir() {
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return err
			}
			delims[name] = string(data)
		}
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == "" || ext == ".delim" {
			continue
		}
		mod, err := ParseModification(ext[1:])
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(e.Name(), ext)
		p.InsertDelimited(scope, mod, name, string(data), delims[name])
	}
	return nil
}
