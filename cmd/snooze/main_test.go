package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"snooze/internal/paths"
)

// ///////////////////////////////////////////////
// Version Resolution
// ///////////////////////////////////////////////

func TestResolveVersion_LdflagsWins(t *testing.T) {
	old := version
	defer func() { version = old }()

	version = "1.2.3"
	if got := resolveVersion(); got != "1.2.3" {
		t.Errorf("resolveVersion = %q, want ldflags value", got)
	}
}

func TestResolveVersion_DevNeverEmpty(t *testing.T) {
	old := version
	defer func() { version = old }()

	version = "dev"
	if got := resolveVersion(); got == "" {
		t.Error("resolveVersion should never be empty")
	}
}

// ///////////////////////////////////////////////
// Config Directory
// ///////////////////////////////////////////////

func TestDefaultConfigDir_NonEmpty(t *testing.T) {
	if defaultConfigDir() == "" {
		t.Error("defaultConfigDir should always return a path")
	}
}

func TestSeedDefaultConfig_FirstRun(t *testing.T) {
	dir := paths.ConfigDir{Root: t.TempDir() + "/sub"}

	seedDefaultConfig(dir)

	data, err := os.ReadFile(dir.Config())
	if err != nil {
		t.Fatalf("config file not seeded: %v", err)
	}
	if !strings.Contains(string(data), "[display]") {
		t.Errorf("seeded config missing [display] section: %q", string(data))
	}
}

func TestSeedDefaultConfig_DoesNotClobber(t *testing.T) {
	dir := paths.ConfigDir{Root: t.TempDir()}
	if err := os.WriteFile(dir.Config(), []byte("# mine\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	seedDefaultConfig(dir)

	data, _ := os.ReadFile(dir.Config())
	if string(data) != "# mine\n" {
		t.Errorf("existing config was overwritten: %q", string(data))
	}
}

// ///////////////////////////////////////////////
// Usage
// ///////////////////////////////////////////////

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	out := buf.String()
	if !strings.Contains(out, "Usage: snooze <seconds>") {
		t.Errorf("usage text missing synopsis: %q", out)
	}
	for _, flag := range []string{"--multiline", "--quiet", "--bar", "--color", "--version"} {
		if !strings.Contains(out, flag) {
			t.Errorf("usage text missing %s: %q", flag, out)
		}
	}
}
