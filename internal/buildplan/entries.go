package buildplan

import (
	"errors"
	"fmt"
	"os"

	"github.com/buildpacks/libcnb/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// Entry is a requirement resolved to this buildpack for the build phase.
type Entry = libcnb.BuildpackPlanEntry

// ReadEntries reads the buildpack plan passed to the build phase.
// A missing or empty path yields no entries.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read buildpack plan %s: %w", path, err)
	}
	var bp libcnb.BuildpackPlan
	if err := toml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("failed to decode buildpack plan %s: %w", path, err)
	}
	return bp.Entries, nil
}

// Contains reports whether an entry with the given name is present.
func Contains(entries []Entry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
