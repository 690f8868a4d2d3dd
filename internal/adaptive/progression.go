package adaptive

import "time"

// Minimum history needed by the two progression checks. The deload check
// compares two session pairs; the readiness check averages three sessions.
const (
	deloadWindow    = 4
	readinessWindow = 3
)

// progressionDecision is the outcome of one scheduling pass.
type progressionDecision string

const (
	decisionHold     progressionDecision = "hold"
	decisionProgress progressionDecision = "progress"
	decisionDeload   progressionDecision = "deload"
)

// scheduleProgression rolls the progression plan forward after a finalized
// session. history is most recent first and already includes the just-closed
// session. It returns a new plan snapshot; the input plan is never mutated.
//
// Decision order: the deload check runs first, the readiness check only when
// no deload triggered, and anything else holds the plan unchanged. The cycle
// has no terminal state; it repeats every session.
func scheduleProgression(plan ProgressionPlan, history []PerformanceMetrics, now time.Time, tuning Tuning) (ProgressionPlan, progressionDecision) {
	next := plan

	if deloadNeeded(history, tuning) {
		next.WeightIncrementKg *= 1 - tuning.DeloadReduction
		next.RepIncrement *= 1 - tuning.DeloadReduction
		deloadedAt := now
		next.LastDeload = &deloadedAt
		next.State = StateDeloaded
		return next, decisionDeload
	}

	if progressionReady(history, tuning) {
		next.NextProgression = plan.NextProgression.Add(tuning.ProgressionInterval)
		next.State = StateProgressing
		return next, decisionProgress
	}

	next.State = StateHold
	return next, decisionHold
}

// deloadNeeded compares the average completion of the two most recent sessions
// against the two before that. A recent average below DeloadFactor of the
// earlier average signals accumulating fatigue.
func deloadNeeded(history []PerformanceMetrics, tuning Tuning) bool {
	if len(history) < deloadWindow {
		return false
	}

	recent := averageCompletion(history[:2])
	earlier := averageCompletion(history[2:4])
	if earlier == 0 {
		return false
	}

	return recent < tuning.DeloadFactor*earlier
}

// progressionReady reports whether the last three sessions show headroom for
// more load: high completion at comfortable exertion.
func progressionReady(history []PerformanceMetrics, tuning Tuning) bool {
	if len(history) < readinessWindow {
		return false
	}

	window := history[:readinessWindow]
	return averageCompletion(window) > tuning.ReadyCompletion && averageRPE(window) < tuning.ReadyRPE
}

// seedProgressionPlan builds the initial plan for a freshly created config.
// Strategy and increments scale with training experience.
func seedProgressionPlan(level FitnessLevel, now time.Time, tuning Tuning) ProgressionPlan {
	plan := ProgressionPlan{
		Strategy:            StrategyLinear,
		WeightIncrementKg:   2.5,
		RepIncrement:        1,
		FrequencyAdjustment: 0,
		DeloadThreshold:     tuning.DeloadFactor,
		State:               StateHold,
		NextProgression:     now.Add(tuning.ProgressionInterval),
		LastDeload:          nil,
	}

	switch level {
	case LevelIntermediate:
		plan.Strategy = StrategyDoubleProgression
		plan.WeightIncrementKg = 2.5
	case LevelAdvanced:
		plan.Strategy = StrategyAutoregulation
		plan.WeightIncrementKg = 2.0
	case LevelBeginner:
		// Linear progression with the default increment suits new lifters.
	}

	return plan
}
