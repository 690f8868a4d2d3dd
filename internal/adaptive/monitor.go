package adaptive

import (
	"time"

	"github.com/google/uuid"
)

// evaluateAdaptations checks the live metrics update against the adaptation
// rules and returns the adaptations that fired. Rules are independent, so any
// subset may fire in one call. The monitor records intent only; it never
// touches the difficulty level or progression plan, which are owned by their
// respective components.
func evaluateAdaptations(metrics PerformanceMetrics, now time.Time, tuning Tuning) []WorkoutAdaptation {
	var adaptations []WorkoutAdaptation

	if metrics.Fatigue.Overall > tuning.FatigueThreshold {
		adaptations = append(adaptations, WorkoutAdaptation{
			ID:         uuid.NewString(),
			Trigger:    TriggerFatigue,
			Action:     ActionReduceIntensity,
			Severity:   SeverityModerate,
			Params:     map[string]any{"intensity_reduction": tuning.IntensityReduction},
			Confidence: 0.85,
			Timestamp:  now,
		})
	}

	if metrics.AvgHeartRate != nil && *metrics.AvgHeartRate > tuning.HeartRateCeilingBPM {
		adaptations = append(adaptations, WorkoutAdaptation{
			ID:         uuid.NewString(),
			Trigger:    TriggerHeartRateHigh,
			Action:     ActionIncreaseRest,
			Severity:   SeverityMinor,
			Params:     map[string]any{"rest_increase_seconds": tuning.RestIncreaseSeconds},
			Confidence: 0.9,
			Timestamp:  now,
		})
	}

	if metrics.CompletionRate < tuning.LowCompletionThreshold {
		adaptations = append(adaptations, WorkoutAdaptation{
			ID:       uuid.NewString(),
			Trigger:  TriggerPerformanceDrop,
			Action:   ActionSubstituteExercise,
			Severity: SeverityMajor,
			Params: map[string]any{
				"target_muscle_group":  "maintain",
				"difficulty_reduction": tuning.DifficultyReduction,
			},
			Confidence: 0.75,
			Timestamp:  now,
		})
	}

	return adaptations
}
