package adaptive

import "math"

// exerciseClass buckets an exercise for rest-time lookup.
type exerciseClass string

const (
	classCompound  exerciseClass = "compound"
	classIsolation exerciseClass = "isolation"
	classCardio    exerciseClass = "cardio"
)

// repIntensity buckets the intended rep range of a set.
type repIntensity string

const (
	repIntensityHigh   repIntensity = "high"   // < 6 reps, heavy work
	repIntensityMedium repIntensity = "medium" // 6-11 reps
	repIntensityLow    repIntensity = "low"    // >= 12 reps
)

// compoundMuscleGroups is the minimum muscle-group count beyond which a
// non-cardio exercise counts as a compound movement.
const compoundMuscleGroups = 2

// classifyExercise buckets an exercise as compound, isolation, or cardio.
func classifyExercise(ex Exercise) exerciseClass {
	if ex.Category == CategoryCardio {
		return classCardio
	}
	if len(ex.MuscleGroups) > compoundMuscleGroups {
		return classCompound
	}
	return classIsolation
}

// classifyReps buckets the intended rep count of the completed set.
func classifyReps(reps int) repIntensity {
	switch {
	case reps < 6:
		return repIntensityHigh
	case reps < 12:
		return repIntensityMedium
	default:
		return repIntensityLow
	}
}

// baseRestSeconds is the fixed base rest lookup by exercise class and rep intensity.
func baseRestSeconds(class exerciseClass, intensity repIntensity) float64 {
	table := map[exerciseClass]map[repIntensity]float64{
		classCompound:  {repIntensityHigh: 180, repIntensityMedium: 150, repIntensityLow: 120},
		classIsolation: {repIntensityHigh: 120, repIntensityMedium: 90, repIntensityLow: 60},
		classCardio:    {repIntensityHigh: 90, repIntensityMedium: 45, repIntensityLow: 30},
	}
	return table[class][intensity]
}

// calculateRest computes a rest recommendation for the gap after a completed
// set. Pure given its inputs so it is independently testable; optional factors
// left nil are simply skipped.
func calculateRest(ex Exercise, set SetPerformance, factors RestingFactors, tuning Tuning) SmartRestTimer {
	class := classifyExercise(ex)
	base := baseRestSeconds(class, classifyReps(set.Reps))

	// Set intensity derives from perceived exertion, discounted when the set
	// was abandoned before the target reps.
	intensity := clampRPE(set.RPE) / 10
	if !set.Completed {
		intensity *= tuning.IncompleteSetPenalty
	}

	adjusted := base

	if factors.HeartRateRecoveryBPM != nil {
		switch {
		case *factors.HeartRateRecoveryBPM < tuning.SlowRecoveryBPM:
			adjusted *= 1.3
		case *factors.HeartRateRecoveryBPM > tuning.FastRecoveryBPM:
			adjusted *= 0.8
		}
	}

	// Harder previous sets earn longer rests: 0.7x at minimal effort up to
	// 1.3x at maximal effort.
	adjusted *= 0.7 + intensity*0.6

	if factors.MuscleFatigue != nil {
		fatigue := clamp(*factors.MuscleFatigue, 0, 1)
		adjusted *= 0.8 + fatigue*0.4
	}

	if factors.SleepQuality != nil {
		quality := clamp(*factors.SleepQuality, 0, 1)
		adjusted *= 1.3 - quality*0.3
	}

	adjusted = clamp(adjusted, tuning.MinRestSeconds, tuning.MaxRestSeconds)

	return SmartRestTimer{
		BaseSeconds:     int(base),
		Factors:         factors,
		SetIntensity:    intensity,
		AdjustedSeconds: int(math.Round(adjusted)),
		Recommendations: restRecommendations(factors, tuning),
	}
}

// restRecommendations emits advice for conditions the plain timer adjustment
// cannot express.
func restRecommendations(factors RestingFactors, tuning Tuning) []RestRecommendation {
	var recs []RestRecommendation

	if factors.HeartRateRecoveryBPM != nil && *factors.HeartRateRecoveryBPM < tuning.SlowRecoveryBPM {
		recs = append(recs, RestRecommendation{
			Type:     RecommendationExtendRest,
			Priority: PriorityHigh,
			Message:  "Heart rate is recovering slowly. Take the full rest before the next set.",
		})
	}

	if factors.MuscleFatigue != nil && *factors.MuscleFatigue > tuning.HighMuscleFatigue {
		recs = append(recs, RestRecommendation{
			Type:     RecommendationActiveRecovery,
			Priority: PriorityMedium,
			Message:  "Trained muscles are heavily fatigued. Light movement between sets can help.",
		})
	}

	return recs
}
