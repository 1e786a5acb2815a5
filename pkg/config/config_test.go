package config

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.SampleLines < 20 {
		t.Errorf("default sample lines (%d) should be at least 20", cfg.SampleLines)
	}
	if cfg.MinRatio != 0.8 {
		t.Errorf("default min ratio = %f, want 0.8", cfg.MinRatio)
	}
	if cfg.MinPoints != 3 {
		t.Errorf("default min points = %d, want 3", cfg.MinPoints)
	}
	if !cfg.ShowChart || !cfg.NerdFonts {
		t.Error("chart pane and nerd fonts should default on")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := NewParser().Parse([]string{
		"-dir", "/tmp",
		"-sample-lines", "100",
		"-min-ratio", "0.5",
		"-no-chart",
		"-emoji",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.StartDir != "/tmp" {
		t.Errorf("StartDir = %q", cfg.StartDir)
	}
	if cfg.SampleLines != 100 || cfg.MinRatio != 0.5 {
		t.Errorf("thresholds not applied: %+v", cfg)
	}
	if cfg.ShowChart {
		t.Error("-no-chart should hide the chart pane")
	}
	if cfg.NerdFonts {
		t.Error("-emoji should disable nerd fonts")
	}
}

func TestParseRejectsInvalidThresholds(t *testing.T) {
	cases := [][]string{
		{"-sample-lines", "0"},
		{"-min-ratio", "0"},
		{"-min-ratio", "1.5"},
		{"-min-points", "0"},
	}
	for _, args := range cases {
		if _, err := NewParser().Parse(args); err == nil {
			t.Errorf("expected validation error for %v", args)
		} else if !strings.Contains(err.Error(), "validation") {
			t.Errorf("unexpected error for %v: %v", args, err)
		}
	}
}
