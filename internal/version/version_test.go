package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestCurrent(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	// имитация -ldflags
	Version = " 1.2.3 "
	GitCommit = "abc123def456\n"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123def456" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("unexpected info: %+v", info)
	}

	Version = "   "
	if got := Current().Version; got != "dev" {
		t.Fatalf("empty version should read as dev, got %q", got)
	}
}

func TestColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []string{
		"0.1.0",
		"0.1.0-dev",
		"1.2.3-rc.1+build.123",
		"not-a-version",
		"",
	}
	for _, v := range tests {
		if got := Colored(v); got != v {
			t.Errorf("Colored(%q) = %q with colors disabled", v, got)
		}
	}
}

func TestColoredKeepsSuffixPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	got := Colored("1.2.3-dev")
	if len(got) <= len("1.2.3-dev") {
		t.Fatalf("expected escape sequences, got %q", got)
	}
	if got[len(got)-4:] != "-dev" {
		t.Fatalf("suffix must stay plain, got %q", got)
	}
}

func BenchmarkCurrent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Current()
	}
}
