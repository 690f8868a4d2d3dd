// Package config loads the engine tuning from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fitadapt/fitadapt/internal/adaptive"
)

// LoadTuning reads tuning overrides from a YAML file on top of the defaults,
// then applies environment variable overrides. An empty path returns the
// defaults untouched.
//
// Env vars use the prefix FITADAPT_ and the upper-cased field name:
//
//	FITADAPT_FATIGUE_THRESHOLD, FITADAPT_HEART_RATE_CEILING_BPM,
//	FITADAPT_HISTORY_WINDOW, FITADAPT_PROGRESSION_INTERVAL
func LoadTuning(path string) (adaptive.Tuning, error) {
	tuning := adaptive.DefaultTuning()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return adaptive.Tuning{}, fmt.Errorf("reading tuning file: %w", err)
		}
		if err := yaml.Unmarshal(data, &tuning); err != nil {
			return adaptive.Tuning{}, fmt.Errorf("parsing tuning file: %w", err)
		}
	}

	applyEnvOverrides(&tuning)

	if err := validate(tuning); err != nil {
		return adaptive.Tuning{}, fmt.Errorf("tuning validation: %w", err)
	}

	return tuning, nil
}

func applyEnvOverrides(tuning *adaptive.Tuning) {
	if v := os.Getenv("FITADAPT_FATIGUE_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			tuning.FatigueThreshold = threshold
		}
	}
	if v := os.Getenv("FITADAPT_HEART_RATE_CEILING_BPM"); v != "" {
		if ceiling, err := strconv.ParseFloat(v, 64); err == nil {
			tuning.HeartRateCeilingBPM = ceiling
		}
	}
	if v := os.Getenv("FITADAPT_HISTORY_WINDOW"); v != "" {
		if window, err := strconv.Atoi(v); err == nil {
			tuning.HistoryWindow = window
		}
	}
	if v := os.Getenv("FITADAPT_PROGRESSION_INTERVAL"); v != "" {
		if interval, err := time.ParseDuration(v); err == nil {
			tuning.ProgressionInterval = interval
		}
	}
}

func validate(tuning adaptive.Tuning) error {
	if tuning.CoastingCompletion <= 0 || tuning.CoastingCompletion > 1 {
		return fmt.Errorf("coasting_completion %v outside (0, 1]", tuning.CoastingCompletion)
	}
	if tuning.OverreachCompletion <= 0 || tuning.OverreachCompletion > 1 {
		return fmt.Errorf("overreach_completion %v outside (0, 1]", tuning.OverreachCompletion)
	}
	if tuning.LowCompletionThreshold <= 0 || tuning.LowCompletionThreshold > 1 {
		return fmt.Errorf("low_completion_threshold %v outside (0, 1]", tuning.LowCompletionThreshold)
	}
	if tuning.DeloadFactor <= 0 || tuning.DeloadFactor >= 1 {
		return fmt.Errorf("deload_factor %v outside (0, 1)", tuning.DeloadFactor)
	}
	if tuning.DeloadReduction <= 0 || tuning.DeloadReduction >= 1 {
		return fmt.Errorf("deload_reduction %v outside (0, 1)", tuning.DeloadReduction)
	}
	if tuning.IncompleteSetPenalty <= 0 || tuning.IncompleteSetPenalty > 1 {
		return fmt.Errorf("incomplete_set_penalty %v outside (0, 1]", tuning.IncompleteSetPenalty)
	}
	if tuning.MinRestSeconds <= 0 || tuning.MinRestSeconds >= tuning.MaxRestSeconds {
		return fmt.Errorf("rest bounds [%v, %v] invalid", tuning.MinRestSeconds, tuning.MaxRestSeconds)
	}
	if tuning.ProgressionInterval <= 0 {
		return fmt.Errorf("progression_interval %v must be positive", tuning.ProgressionInterval)
	}
	if tuning.HistoryWindow <= 0 {
		return fmt.Errorf("history_window %d must be positive", tuning.HistoryWindow)
	}
	return nil
}
