package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fitadapt/fitadapt/internal/adaptive"
)

const overridesYAML = `
fatigue_threshold: 6.5
heart_rate_ceiling_bpm: 170
history_window: 5
progression_interval: 120h
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadTuningDefaults verifies that an empty path yields the default tuning.
func TestLoadTuningDefaults(t *testing.T) {
	tuning, err := LoadTuning("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tuning != adaptive.DefaultTuning() {
		t.Errorf("tuning = %+v, want defaults", tuning)
	}
}

// TestLoadTuningFile verifies that YAML values override defaults while
// unspecified fields keep their default values.
func TestLoadTuningFile(t *testing.T) {
	tuning, err := LoadTuning(writeTemp(t, overridesYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tuning.FatigueThreshold != 6.5 {
		t.Errorf("fatigue_threshold = %v, want 6.5", tuning.FatigueThreshold)
	}
	if tuning.HeartRateCeilingBPM != 170 {
		t.Errorf("heart_rate_ceiling_bpm = %v, want 170", tuning.HeartRateCeilingBPM)
	}
	if tuning.HistoryWindow != 5 {
		t.Errorf("history_window = %d, want 5", tuning.HistoryWindow)
	}
	if want := 120 * time.Hour; tuning.ProgressionInterval != want {
		t.Errorf("progression_interval = %v, want %v", tuning.ProgressionInterval, want)
	}
	// Untouched fields keep their defaults.
	if want := adaptive.DefaultTuning().DeloadFactor; tuning.DeloadFactor != want {
		t.Errorf("deload_factor = %v, want default %v", tuning.DeloadFactor, want)
	}
}

// TestEnvOverride verifies that FITADAPT_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FITADAPT_FATIGUE_THRESHOLD", "8.5")
	t.Setenv("FITADAPT_HISTORY_WINDOW", "7")
	t.Setenv("FITADAPT_PROGRESSION_INTERVAL", "96h")

	tuning, err := LoadTuning(writeTemp(t, overridesYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tuning.FatigueThreshold != 8.5 {
		t.Errorf("fatigue_threshold = %v, want 8.5", tuning.FatigueThreshold)
	}
	if tuning.HistoryWindow != 7 {
		t.Errorf("history_window = %d, want 7", tuning.HistoryWindow)
	}
	if want := 96 * time.Hour; tuning.ProgressionInterval != want {
		t.Errorf("progression_interval = %v, want %v", tuning.ProgressionInterval, want)
	}
	// YAML value survives where no env var is set.
	if tuning.HeartRateCeilingBPM != 170 {
		t.Errorf("heart_rate_ceiling_bpm = %v, want 170", tuning.HeartRateCeilingBPM)
	}
}

// TestLoadTuningMissingFile verifies that a nonexistent path is an error.
func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadTuningInvalid verifies that out-of-range values are rejected.
func TestLoadTuningInvalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "deload factor above one", yaml: "deload_factor: 1.5"},
		{name: "zero history window", yaml: "history_window: 0"},
		{name: "inverted rest bounds", yaml: "min_rest_seconds: 400"},
		{name: "negative progression interval", yaml: "progression_interval: -24h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadTuning(writeTemp(t, tc.yaml)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
