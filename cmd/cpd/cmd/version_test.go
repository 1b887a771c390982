package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	// Save original version variables
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "1.0.0"
	GitCommit = "abc123"
	BuildDate = "2026-08-27T12:00:00Z"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	output := buf.String()

	expectedStrings := []string{
		"CPD Events CLI",
		"Version:    1.0.0",
		"Git commit: abc123",
		"Build date: 2026-08-27T12:00:00Z",
		"Go version:",
		"Platform:",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestVersionCommandHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version", "--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command --help failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Print the version number") {
		t.Errorf("expected help text to contain version description, got:\n%s", buf.String())
	}
}
