package buildplan

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/buildpacks/libcnb/v2"
)

func TestSelfSatisfiedPlan(t *testing.T) {
	plan := NewPlan().Provides("dotenv").Requires("dotenv").Build()
	if !plan.Satisfied() {
		t.Errorf("plan providing its own requirement should be satisfied")
	}
}

func TestUnsatisfied(t *testing.T) {
	plan := NewPlan().Provides("dotenv").Requires("dotenv").Requires("node").Build()
	if plan.Satisfied() {
		t.Errorf("plan requiring node should not be self-satisfied")
	}
	if got := plan.Unsatisfied(nil); !reflect.DeepEqual(got, []string{"node"}) {
		t.Errorf("Unsatisfied(nil) = %v, want [node]", got)
	}
	if got := plan.Unsatisfied([]string{"node"}); len(got) != 0 {
		t.Errorf("Unsatisfied([node]) = %v, want none", got)
	}
	// Matching is exact.
	if got := plan.Unsatisfied([]string{"Node"}); len(got) != 1 {
		t.Errorf("Unsatisfied([Node]) = %v, want [node]", got)
	}
}

func TestPlanMetadataForProvider(t *testing.T) {
	plan := NewPlan().Provides("dotenv").RequiresWithMetadata("dotenv", map[string]any{"file": ".env"}).Build()
	bp := libcnb.BuildPlan(plan)
	if len(bp.Requires) != 1 || bp.Requires[0].Metadata["file"] != ".env" {
		t.Errorf("BuildPlan = %+v", bp)
	}

	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := plan.Write(path); err != nil {
		t.Fatal(err)
	}
	back, err := ReadPlan(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Requires[0].Metadata["file"] != ".env" {
		t.Errorf("ReadPlan() metadata = %+v", back.Requires[0].Metadata)
	}
}

func TestWriteAndReadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	plan := NewPlan().Provides("dotenv").Requires("dotenv").Build()

	if err := plan.Write(path); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"[[provides]]", "[[requires]]", "name = 'dotenv'"} {
		if !strings.Contains(text, want) {
			t.Errorf("plan file missing %q:\n%s", want, text)
		}
	}

	back, err := ReadPlan(path)
	if err != nil {
		t.Fatalf("ReadPlan() error: %v", err)
	}
	if !reflect.DeepEqual(back.ProvidedNames(), []string{"dotenv"}) || len(back.Requires) != 1 || back.Requires[0].Name != "dotenv" {
		t.Errorf("ReadPlan() = %+v", back)
	}
}

func TestReadEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	content := `[[entries]]
name = "dotenv"

[[entries]]
name = "other"
[entries.metadata]
version = "1.2"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries() error: %v", err)
	}
	if len(entries) != 2 || !Contains(entries, "dotenv") || Contains(entries, "missing") {
		t.Errorf("ReadEntries() = %+v", entries)
	}
	if entries[1].Metadata["version"] != "1.2" {
		t.Errorf("metadata not decoded: %+v", entries[1])
	}

	if entries, err := ReadEntries(filepath.Join(dir, "absent.toml")); err != nil || entries != nil {
		t.Errorf("missing plan should yield no entries, got %v, %v", entries, err)
	}
	if entries, err := ReadEntries(""); err != nil || entries != nil {
		t.Errorf("empty path should yield no entries, got %v, %v", entries, err)
	}
}

func TestReadEntriesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte("[[entries]\nname="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadEntries(path); err == nil {
		t.Errorf("expected decode error")
	}
}
