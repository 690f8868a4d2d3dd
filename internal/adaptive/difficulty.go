package adaptive

// Difficulty factor ranges.
const (
	minIntensity  = 0.1
	maxIntensity  = 1.0
	minVolume     = 0.5
	maxVolume     = 2.0
	minComplexity = 0.1
	maxComplexity = 1.0
)

// baseDifficulty returns the fixed difficulty triplet for a fitness level.
// Unknown levels fall back to the beginner profile.
func baseDifficulty(level FitnessLevel) DifficultyLevel {
	switch level {
	case LevelIntermediate:
		return DifficultyLevel{Level: level, Intensity: 0.6, Volume: 1.0, Complexity: 0.6, AutoAdjust: true}
	case LevelAdvanced:
		return DifficultyLevel{Level: level, Intensity: 0.8, Volume: 1.3, Complexity: 0.8, AutoAdjust: true}
	case LevelBeginner:
		return DifficultyLevel{Level: level, Intensity: 0.4, Volume: 0.8, Complexity: 0.3, AutoAdjust: true}
	default:
		return DifficultyLevel{Level: LevelBeginner, Intensity: 0.4, Volume: 0.8, Complexity: 0.3, AutoAdjust: true}
	}
}

// deriveDifficulty derives a difficulty level from the user's fitness level and
// recent performance history (most recent first). Pure: no side effects.
func deriveDifficulty(level FitnessLevel, history []PerformanceMetrics, tuning Tuning) DifficultyLevel {
	difficulty := baseDifficulty(level)

	modifier := performanceModifier(history, tuning)
	difficulty.Intensity = clamp(difficulty.Intensity+modifier, minIntensity, maxIntensity)
	difficulty.Volume = clamp(difficulty.Volume+modifier, minVolume, maxVolume)
	difficulty.Complexity = clamp(difficulty.Complexity+modifier, minComplexity, maxComplexity)

	return difficulty
}

// performanceModifier inspects the supplied performance window and returns the
// difficulty delta: positive when the user is coasting, negative when
// overreaching, zero otherwise or without history.
func performanceModifier(history []PerformanceMetrics, tuning Tuning) float64 {
	if len(history) == 0 {
		return 0
	}

	avgCompletion := averageCompletion(history)
	avgRPE := averageRPE(history)

	if avgCompletion > tuning.CoastingCompletion && avgRPE < tuning.CoastingRPE {
		return tuning.DifficultyBoost
	}
	if avgCompletion < tuning.OverreachCompletion || avgRPE > tuning.OverreachRPE {
		return -tuning.DifficultyBackoff
	}
	return 0
}

// averageCompletion averages the completion ratios over the window.
func averageCompletion(history []PerformanceMetrics) float64 {
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, m := range history {
		sum += clamp(m.CompletionRate, 0, 1)
	}
	return sum / float64(len(history))
}

// averageRPE averages the perceived exertion over the window.
func averageRPE(history []PerformanceMetrics) float64 {
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, m := range history {
		sum += clampRPE(m.RPE)
	}
	return sum / float64(len(history))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampRPE bounds a perceived exertion value to the 1-10 RPE scale.
func clampRPE(rpe float64) float64 {
	return clamp(rpe, 1, 10)
}
