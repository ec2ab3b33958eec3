package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagConfig, flagFPS, flagSeed, flagVerbose = "", 0, 0, false
		flagWindow, flagLogFile = false, ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wampus.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  hazard_step_ms: 750\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path, "--fps", "30")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	for _, want := range []string{"hazard_step_ms: 750", "tick_rate: 30", "dwell_pit_ms: 2000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandReportsBadFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected a read error, got %v", err)
	}
}
