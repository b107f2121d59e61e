package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/univar/internal/config"
)

// newSolveCmd rebinds the flag globals to their defaults and returns a
// command carrying the solve flag set, mirroring what main registers.
func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addSolveFlags(cmd)
	preset = ""
	configFile = ""
	return cmd
}

func TestApplyConfig_Preset(t *testing.T) {
	cmd := newSolveCmd()
	preset = "cheb"

	method, err := applyConfig(cmd, "wavy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "cheb" {
		t.Errorf("method = %q, want cheb", method)
	}
	if tolerance != 1e-12 {
		t.Errorf("tolerance = %v, want 1e-12", tolerance)
	}
	if maxIter != 200 {
		t.Errorf("max iterations = %d, want 200", maxIter)
	}
	if degree != 48 {
		t.Errorf("degree = %d, want 48 from the preset", degree)
	}
}

func TestApplyConfig_PresetSamples(t *testing.T) {
	cmd := newSolveCmd()
	preset = "brent"

	if _, err := applyConfig(cmd, "expquad"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if samples != 128 {
		t.Errorf("samples = %d, want 128 from the preset", samples)
	}
}

func TestApplyConfig_UnknownPreset(t *testing.T) {
	cmd := newSolveCmd()
	preset = "nonexistent"

	if _, err := applyConfig(cmd, "kepler"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Method = "itp"
	cfg.Tolerance = 1e-9
	cfg.Degree = 24
	cfg.Samples = 32
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	cmd := newSolveCmd()
	configFile = path

	method, err := applyConfig(cmd, "kepler")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != "itp" {
		t.Errorf("method = %q, want itp", method)
	}
	if tolerance != 1e-9 {
		t.Errorf("tolerance = %v, want 1e-9", tolerance)
	}
	if degree != 24 {
		t.Errorf("degree = %d, want 24 from the config file", degree)
	}
	if samples != 32 {
		t.Errorf("samples = %d, want 32 from the config file", samples)
	}
}

func TestApplyConfig_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Tolerance = 1e-9
	cfg.Samples = 32
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	cmd := newSolveCmd()
	configFile = path
	if err := cmd.Flags().Set("tol", "1e-6"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("samples", "16"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	if _, err := applyConfig(cmd, "kepler"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tolerance != 1e-6 {
		t.Errorf("tolerance = %v, command-line flag should win", tolerance)
	}
	if samples != 16 {
		t.Errorf("samples = %d, command-line flag should win", samples)
	}
}
