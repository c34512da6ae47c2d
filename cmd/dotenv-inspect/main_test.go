package main

import (
	"DotenvBuildpack/internal/constants"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeApp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInspectYAML(t *testing.T) {
	t.Setenv(constants.SuffixOverrideVar, "")
	app := writeApp(t, ".env", "FOO=bar\nBAZ=\"qux quux\"\nBROKEN\n")

	var out bytes.Buffer
	if code := run([]string{"--app-dir", app}, &out); code != 0 {
		t.Fatalf("run() = %d", code)
	}

	var rep report
	if err := yaml.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if rep.File != ".env" || !rep.Detected || len(rep.Changes) != 2 || len(rep.Skipped) != 1 {
		t.Errorf("unexpected report: %+v", rep)
	}
	if rep.BuildEnv["BAZ"] != "qux quux" || rep.LaunchEnv["FOO"] != "bar" {
		t.Errorf("unexpected environments: build %v launch %v", rep.BuildEnv, rep.LaunchEnv)
	}
	if rep.Skipped[0].Line != 3 {
		t.Errorf("skipped line = %d, want 3", rep.Skipped[0].Line)
	}
}

func TestInspectSuffixAndEnvFormat(t *testing.T) {
	t.Setenv(constants.SuffixOverrideVar, "")
	app := writeApp(t, ".env.production", "B=2\nA=1\n")

	var out bytes.Buffer
	if code := run([]string{"--app-dir", app, "--suffix", "production", "--format", "env"}, &out); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[0] != "A=1" || lines[1] != "B=2" {
		t.Errorf("env output = %q", out.String())
	}
}

func TestInspectBuildpackTOML(t *testing.T) {
	t.Setenv(constants.SuffixOverrideVar, "")
	app := writeApp(t, ".env.staging", "PATH=/app/bin\n")
	bpToml := filepath.Join(t.TempDir(), "buildpack.toml")
	descriptor := "api = \"0.8\"\n[metadata]\ndotenv_suffix = \"staging\"\nscope = \"build\"\nmodification = \"prepend\"\ndelimiter = \":\"\n"
	if err := os.WriteFile(bpToml, []byte(descriptor), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"--app-dir", app, "--buildpack-toml", bpToml, "--format", "toml"}, &out); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	text := out.String()
	for _, want := range []string{"file = '.env.staging'", "scope = 'build'", "modification = 'prepend'"} {
		if !strings.Contains(text, want) {
			t.Errorf("TOML output missing %q:\n%s", want, text)
		}
	}
}

func TestInspectNotDetected(t *testing.T) {
	t.Setenv(constants.SuffixOverrideVar, "")
	var out bytes.Buffer
	if code := run([]string{"--app-dir", t.TempDir()}, &out); code != 100 {
		t.Errorf("run() = %d, want 100", code)
	}
}

func TestInspectUnknownFormat(t *testing.T) {
	t.Setenv(constants.SuffixOverrideVar, "")
	app := writeApp(t, ".env", "A=1\n")
	var out bytes.Buffer
	if code := run([]string{"--app-dir", app, "--format", "json"}, &out); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
