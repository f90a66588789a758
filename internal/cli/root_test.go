package cli

import (
	"context"
	"io"
	"slices"
	"testing"

	"github.com/matzehuels/aoc/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	old := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = old[0], old[1], old[2] })

	SetVersion("1.0.0", "abc123", "2024-01-01")
	if buildinfo.Version != "1.0.0" || buildinfo.Commit != "abc123" || buildinfo.Date != "2024-01-01" {
		t.Errorf("build info = %q, %q, %q", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	}

	SetVersion("", "", "")
	if buildinfo.Version != "1.0.0" {
		t.Errorf("empty SetVersion should keep version, got %q", buildinfo.Version)
	}
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"run", "test", "list", "fetch", "graph", "browse", "cache", "session", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
}

func TestExecuteRejectsBadArguments(t *testing.T) {
	tests := [][]string{
		{"run", "2021", "16"},
		{"run", "2021", "26", "1"},
		{"run", "2014", "1", "1"},
		{"graph", "2021", "1"},
	}
	for _, args := range tests {
		if err := Execute(context.Background(), args...); err == nil {
			t.Errorf("Execute(%v) should fail", args)
		}
	}
}
