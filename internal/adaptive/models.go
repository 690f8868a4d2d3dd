// Package adaptive implements the adaptive workout engine: per-user difficulty
// profiles, live in-session adaptations, progressive-overload scheduling, rest
// interval recommendations, and exercise substitution ranking.
package adaptive

import (
	"time"
)

// FitnessLevel classifies a user's training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Category represents the type of exercise.
type Category string

const (
	CategoryStrength Category = "strength"
	CategoryCardio   Category = "cardio"
	CategoryMobility Category = "mobility"
)

// UserProfile is the read-only view of a user supplied by the external
// user-management collaborator.
type UserProfile struct {
	ID           string       `json:"id"`
	FitnessLevel FitnessLevel `json:"fitness_level"`
	// Limitations are free-text physical limitation tags, e.g. "knee" or "lower back".
	Limitations []string `json:"limitations"`
	// Equipment holds the equipment tags the user has available.
	Equipment []string `json:"equipment"`
}

// Exercise is immutable reference data from the external exercise catalog.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	MuscleGroups []string     `json:"muscle_groups"`
	Equipment    []string     `json:"equipment"`
	Difficulty   FitnessLevel `json:"difficulty"`
	Sets         int          `json:"sets"`
	MinReps      int          `json:"min_reps"`
	MaxReps      int          `json:"max_reps"`
	RestSeconds  int          `json:"rest_seconds"`
}

// Workout is an ordered base workout definition supplied by the planner.
type Workout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// DifficultyLevel holds the three continuous difficulty factors derived for a
// user. Intensity and complexity live in [0.1, 1.0], volume in [0.5, 2.0].
type DifficultyLevel struct {
	Level      FitnessLevel `json:"level"`
	Intensity  float64      `json:"intensity"`
	Volume     float64      `json:"volume"`
	Complexity float64      `json:"complexity"`
	AutoAdjust bool         `json:"auto_adjust"`
}

// ModificationType identifies an exercise-level change.
type ModificationType string

const (
	ModificationSubstitute   ModificationType = "substitute"
	ModificationReduceWeight ModificationType = "reduce_weight"
	ModificationReduceReps   ModificationType = "reduce_reps"
	ModificationAddRest      ModificationType = "add_rest"
	ModificationRemove       ModificationType = "remove"
)

// ModificationReason explains why a modification was proposed.
type ModificationReason string

const (
	ReasonInjuryHistory        ModificationReason = "injury_history"
	ReasonEquipmentUnavailable ModificationReason = "equipment_unavailable"
	ReasonUserPreference       ModificationReason = "user_preference"
	ReasonFatigueLevel         ModificationReason = "fatigue_level"
)

// PersonalizedModification is a pending or applied exercise-level change.
// Applied flips to true once the presentation layer enacts it.
type PersonalizedModification struct {
	ExerciseID string             `json:"exercise_id"`
	Type       ModificationType   `json:"type"`
	Reason     ModificationReason `json:"reason"`
	Params     map[string]any     `json:"params,omitempty"`
	Applied    bool               `json:"applied"`
}

// ProgressionStrategy selects how training load advances over time.
type ProgressionStrategy string

const (
	StrategyLinear            ProgressionStrategy = "linear"
	StrategyDoubleProgression ProgressionStrategy = "double_progression"
	StrategyPercentageBased   ProgressionStrategy = "percentage_based"
	StrategyAutoregulation    ProgressionStrategy = "autoregulation"
)

// ProgressionState is the scheduler's current position in the
// hold/progressing/deloaded cycle.
type ProgressionState string

const (
	StateHold        ProgressionState = "hold"
	StateProgressing ProgressionState = "progressing"
	StateDeloaded    ProgressionState = "deloaded"
)

// ProgressionPlan holds the progressive-overload parameters for a workout.
// It is mutated exclusively by the progression scheduler.
type ProgressionPlan struct {
	Strategy            ProgressionStrategy `json:"strategy"`
	WeightIncrementKg   float64             `json:"weight_increment_kg"`
	RepIncrement        float64             `json:"rep_increment"`
	FrequencyAdjustment float64             `json:"frequency_adjustment"`
	DeloadThreshold     float64             `json:"deload_threshold"`
	State               ProgressionState    `json:"state"`
	NextProgression     time.Time           `json:"next_progression"`
	LastDeload          *time.Time          `json:"last_deload,omitempty"`
}

// AdaptationTrigger identifies the live signal that fired an adaptation rule.
type AdaptationTrigger string

const (
	TriggerFatigue         AdaptationTrigger = "fatigue"
	TriggerPerformanceDrop AdaptationTrigger = "performance_drop"
	TriggerHeartRateHigh   AdaptationTrigger = "heart_rate_high"
	TriggerUserFeedback    AdaptationTrigger = "user_feedback"
	TriggerInjuryRisk      AdaptationTrigger = "injury_risk"
)

// AdaptationAction is the chosen in-session modification.
type AdaptationAction string

const (
	ActionReduceIntensity    AdaptationAction = "reduce_intensity"
	ActionIncreaseRest       AdaptationAction = "increase_rest"
	ActionSubstituteExercise AdaptationAction = "substitute_exercise"
)

// Severity grades how disruptive an adaptation is.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// WorkoutAdaptation is an immutable event appended to a config's adaptation log.
type WorkoutAdaptation struct {
	ID         string            `json:"id"`
	Trigger    AdaptationTrigger `json:"trigger"`
	Action     AdaptationAction  `json:"action"`
	Severity   Severity          `json:"severity"`
	Params     map[string]any    `json:"params,omitempty"`
	Confidence float64           `json:"confidence"`
	Timestamp  time.Time         `json:"timestamp"`
}

// FatigueLevel holds five self- or sensor-reported sub-scores on a 1-10 scale.
type FatigueLevel struct {
	Overall  float64 `json:"overall"`
	Muscular float64 `json:"muscular"`
	Cardio   float64 `json:"cardio"`
	Mental   float64 `json:"mental"`
	Recovery float64 `json:"recovery"`
}

// SetPerformance records a single completed (or attempted) set.
type SetPerformance struct {
	Reps            int      `json:"reps"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	Completed       bool     `json:"completed"`
	RPE             float64  `json:"rpe"`
}

// ExercisePerformance groups the ordered set performances for one exercise.
type ExercisePerformance struct {
	ExerciseID string           `json:"exercise_id"`
	Sets       []SetPerformance `json:"sets"`
}

// PerformanceMetrics describes one in-progress or completed session.
// Fitness telemetry is noisy, so consumers clamp rather than reject
// out-of-range values.
type PerformanceMetrics struct {
	Duration       time.Duration         `json:"duration"`
	AvgHeartRate   *float64              `json:"avg_heart_rate,omitempty"`
	MaxHeartRate   *float64              `json:"max_heart_rate,omitempty"`
	Fatigue        FatigueLevel          `json:"fatigue"`
	CompletionRate float64               `json:"completion_rate"`
	RPE            float64               `json:"rpe"`
	Exercises      []ExercisePerformance `json:"exercises,omitempty"`
	RecordedAt     time.Time             `json:"recorded_at"`
}

// RestingFactors are optional recovery signals supplied by an external
// wearable/calendar collaborator. Nil fields mean "unknown".
type RestingFactors struct {
	// HeartRateRecoveryBPM is the heart rate drop in the first minute after the set.
	HeartRateRecoveryBPM *float64 `json:"heart_rate_recovery_bpm,omitempty"`
	// SleepQuality is last night's sleep quality in [0, 1].
	SleepQuality *float64 `json:"sleep_quality,omitempty"`
	// MuscleFatigue is the estimated fatigue of the trained muscles in [0, 1].
	MuscleFatigue *float64 `json:"muscle_fatigue,omitempty"`
}

// RestRecommendationType identifies a rest-period recommendation.
type RestRecommendationType string

const (
	RecommendationExtendRest     RestRecommendationType = "extend_rest"
	RecommendationActiveRecovery RestRecommendationType = "active_recovery"
)

// Priority grades a rest recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RestRecommendation is advice emitted alongside a rest timer.
type RestRecommendation struct {
	Type     RestRecommendationType `json:"type"`
	Priority Priority               `json:"priority"`
	Message  string                 `json:"message"`
}

// SmartRestTimer is the transient result of a rest-time calculation.
// It is recomputed after every set and never persisted.
type SmartRestTimer struct {
	BaseSeconds     int                  `json:"base_seconds"`
	Factors         RestingFactors       `json:"factors"`
	SetIntensity    float64              `json:"set_intensity"`
	AdjustedSeconds int                  `json:"adjusted_seconds"`
	Recommendations []RestRecommendation `json:"recommendations,omitempty"`
}

// SubstitutionReason explains why an exercise needs replacing.
type SubstitutionReason string

const (
	SubstitutionEquipmentUnavailable SubstitutionReason = "equipment_unavailable"
	SubstitutionInjuryAvoidance      SubstitutionReason = "injury_avoidance"
	SubstitutionDifficultyAdjustment SubstitutionReason = "difficulty_adjustment"
	SubstitutionVariety              SubstitutionReason = "variety"
)

// AdaptiveWorkoutConfig is the per-(user, workout) difficulty profile. It is
// created on the first adaptive-workout build and mutated by every live
// adaptation and progression update through load-compute-persist cycles.
type AdaptiveWorkoutConfig struct {
	ID            string                     `json:"id"`
	UserID        string                     `json:"user_id"`
	WorkoutID     string                     `json:"workout_id"`
	Workout       Workout                    `json:"workout"`
	Difficulty    DifficultyLevel            `json:"difficulty"`
	Modifications []PersonalizedModification `json:"modifications,omitempty"`
	Plan          ProgressionPlan            `json:"plan"`
	Adaptations   []WorkoutAdaptation        `json:"adaptations,omitempty"`
	LastMetrics   *PerformanceMetrics        `json:"last_metrics,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`

	// Version is the optimistic concurrency token maintained by the store.
	// It is not part of the persisted document.
	Version int64 `json:"-"`
}
