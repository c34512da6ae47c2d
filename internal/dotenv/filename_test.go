package dotenv

import (
	"DotenvBuildpack/internal/testutils"
	"os"
	"path/filepath"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		suffix   string
		expected string
	}{
		{"", ".env"},
		{"production", ".env.production"},
		{"local", ".env.local"},
		{"staging.eu", ".env.staging.eu"},
		{"trailing.", ".env.trailing"},
		{".", ".env"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := Filename(tt.suffix)
		cases = append(cases, testutils.TestCase{
			Input:    "'" + tt.suffix + "'",
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestResolveSuffix(t *testing.T) {
	tests := []struct {
		name      string
		declared  string
		overrides []string
		expected  string
	}{
		{"no override", "production", nil, "production"},
		{"empty declared", "", nil, ""},
		{"override wins", "production", []string{"staging"}, "staging"},
		{"override wins over empty declared", "", []string{"test"}, "test"},
		{"empty override ignored", "production", []string{""}, "production"},
		{"first non-empty override", "production", []string{"", "ci", "baked"}, "ci"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSuffix(tt.declared, tt.overrides...); got != tt.expected {
				t.Errorf("ResolveSuffix(%q, %q) = %q; want %q", tt.declared, tt.overrides, got, tt.expected)
			}
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOO=bar\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, ".env.production"), 0755); err != nil {
		t.Fatal(err)
	}

	if !Exists(dir, ".env") {
		t.Errorf("Exists(.env) = false, want true")
	}
	if Exists(dir, ".env.production") {
		t.Errorf("Exists on a directory = true, want false")
	}
	if Exists(dir, ".env.missing") {
		t.Errorf("Exists on a missing file = true, want false")
	}
}
