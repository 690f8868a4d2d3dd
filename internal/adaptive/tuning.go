package adaptive

import "time"

// Tuning collects the numeric heuristics behind the engine's scoring rules.
// None of the default values are domain-validated; deployments may override
// them via the config file.
type Tuning struct {
	// Difficulty trend modifier.
	CoastingCompletion  float64 `yaml:"coasting_completion"`
	CoastingRPE         float64 `yaml:"coasting_rpe"`
	OverreachCompletion float64 `yaml:"overreach_completion"`
	OverreachRPE        float64 `yaml:"overreach_rpe"`
	DifficultyBoost     float64 `yaml:"difficulty_boost"`
	DifficultyBackoff   float64 `yaml:"difficulty_backoff"`

	// Live adaptation rules.
	FatigueThreshold       float64 `yaml:"fatigue_threshold"`
	HeartRateCeilingBPM    float64 `yaml:"heart_rate_ceiling_bpm"`
	LowCompletionThreshold float64 `yaml:"low_completion_threshold"`
	IntensityReduction     float64 `yaml:"intensity_reduction"`
	RestIncreaseSeconds    float64 `yaml:"rest_increase_seconds"`
	DifficultyReduction    float64 `yaml:"difficulty_reduction"`

	// Progression scheduling.
	DeloadFactor        float64       `yaml:"deload_factor"`
	DeloadReduction     float64       `yaml:"deload_reduction"`
	ReadyCompletion     float64       `yaml:"ready_completion"`
	ReadyRPE            float64       `yaml:"ready_rpe"`
	ProgressionInterval time.Duration `yaml:"progression_interval"`

	// Rest timing.
	SlowRecoveryBPM      float64 `yaml:"slow_recovery_bpm"`
	FastRecoveryBPM      float64 `yaml:"fast_recovery_bpm"`
	HighMuscleFatigue    float64 `yaml:"high_muscle_fatigue"`
	MinRestSeconds       float64 `yaml:"min_rest_seconds"`
	MaxRestSeconds       float64 `yaml:"max_rest_seconds"`
	IncompleteSetPenalty float64 `yaml:"incomplete_set_penalty"`

	// History retention for trend analysis.
	HistoryWindow int `yaml:"history_window"`
}

// DefaultTuning returns the built-in heuristics.
func DefaultTuning() Tuning {
	return Tuning{
		CoastingCompletion:  0.9,
		CoastingRPE:         7.0,
		OverreachCompletion: 0.7,
		OverreachRPE:        8.5,
		DifficultyBoost:     0.1,
		DifficultyBackoff:   0.15,

		FatigueThreshold:       7.0,
		HeartRateCeilingBPM:    180,
		LowCompletionThreshold: 0.6,
		IntensityReduction:     0.15,
		RestIncreaseSeconds:    30,
		DifficultyReduction:    0.3,

		DeloadFactor:        0.85,
		DeloadReduction:     0.3,
		ReadyCompletion:     0.85,
		ReadyRPE:            8.0,
		ProgressionInterval: 7 * 24 * time.Hour,

		SlowRecoveryBPM:      20,
		FastRecoveryBPM:      40,
		HighMuscleFatigue:    0.7,
		MinRestSeconds:       30,
		MaxRestSeconds:       300,
		IncompleteSetPenalty: 0.7,

		HistoryWindow: 10,
	}
}
