package adaptive

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitadapt/fitadapt/internal/sqlite"
)

// Service builds personalized workout configurations and adapts them across
// sessions based on recorded performance.
type Service struct {
	repo   *repository
	logger *slog.Logger
	tuning Tuning

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates the adaptive workout service. A zero Tuning selects the
// defaults.
func NewService(db *sqlite.Database, logger *slog.Logger, tuning Tuning) *Service {
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}
	return &Service{
		repo:   newRepository(db, logger),
		logger: logger,
		tuning: tuning,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockWorkout serializes mutations of a single workout's configuration.
// Returns the matching unlock function.
func (s *Service) lockWorkout(workoutID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[workoutID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[workoutID] = lock
	}
	s.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}

// Build derives a full adaptive configuration for a workout: difficulty from
// the user's level and history, personalization against their limitations and
// equipment, and an initial progression plan. The configuration is persisted
// keyed by the workout ID; rebuilding replaces any previous configuration.
//
// Returns ErrEmptyWorkout if the workout has no exercises.
func (s *Service) Build(ctx context.Context, userID string, workout Workout, profile UserProfile, history []PerformanceMetrics) (AdaptiveWorkoutConfig, error) {
	if len(workout.Exercises) == 0 {
		return AdaptiveWorkoutConfig{}, fmt.Errorf("workout %s: %w", workout.ID, ErrEmptyWorkout)
	}

	now := time.Now()
	config := AdaptiveWorkoutConfig{
		ID:            uuid.NewString(),
		UserID:        userID,
		WorkoutID:     workout.ID,
		Workout:       workout,
		Difficulty:    deriveDifficulty(profile.FitnessLevel, history, s.tuning),
		Modifications: personalizeWorkout(workout, profile),
		Plan:          seedProgressionPlan(profile.FitnessLevel, now, s.tuning),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.configs.upsert(ctx, config, now); err != nil {
		return AdaptiveWorkoutConfig{}, fmt.Errorf("persist config: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "built adaptive configuration",
		slog.String("workout_id", workout.ID),
		slog.String("user_id", userID),
		slog.Int("modifications", len(config.Modifications)),
		slog.Float64("intensity", config.Difficulty.Intensity))
	return config, nil
}

// Config returns the stored configuration for a workout.
func (s *Service) Config(ctx context.Context, workoutID string) (AdaptiveWorkoutConfig, error) {
	return s.repo.configs.get(ctx, workoutID)
}

// History returns up to limit recorded sessions for a workout, most recent
// first.
func (s *Service) History(ctx context.Context, workoutID string, limit int) ([]PerformanceMetrics, error) {
	return s.repo.history.list(ctx, workoutID, limit)
}

// ApplyLiveUpdate evaluates mid-session metrics against the adaptation rules,
// records any triggered adaptations on the configuration and returns them.
// A nil slice means the session can continue unchanged.
func (s *Service) ApplyLiveUpdate(ctx context.Context, workoutID string, metrics PerformanceMetrics) ([]WorkoutAdaptation, error) {
	unlock := s.lockWorkout(workoutID)
	defer unlock()

	config, err := s.repo.configs.get(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	adaptations := evaluateAdaptations(metrics, now, s.tuning)
	config.Adaptations = append(config.Adaptations, adaptations...)
	config.LastMetrics = &metrics
	config.UpdatedAt = now
	if err := s.repo.configs.update(ctx, config, now); err != nil {
		return nil, fmt.Errorf("persist live update: %w", err)
	}

	for _, adaptation := range adaptations {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "workout adaptation triggered",
			slog.String("workout_id", workoutID),
			slog.String("trigger", string(adaptation.Trigger)),
			slog.String("action", string(adaptation.Action)),
			slog.Float64("confidence", adaptation.Confidence))
	}
	return adaptations, nil
}

// CloseSession records the final metrics of a completed session, reschedules
// the progression plan over the updated history and returns the new plan.
func (s *Service) CloseSession(ctx context.Context, workoutID string, final PerformanceMetrics) (ProgressionPlan, error) {
	unlock := s.lockWorkout(workoutID)
	defer unlock()

	config, err := s.repo.configs.get(ctx, workoutID)
	if err != nil {
		return ProgressionPlan{}, err
	}

	if final.RecordedAt.IsZero() {
		final.RecordedAt = time.Now()
	}
	if err := s.repo.history.append(ctx, workoutID, final); err != nil {
		return ProgressionPlan{}, fmt.Errorf("record session: %w", err)
	}
	history, err := s.repo.history.list(ctx, workoutID, s.tuning.HistoryWindow)
	if err != nil {
		return ProgressionPlan{}, fmt.Errorf("load history: %w", err)
	}

	now := time.Now()
	plan, decision := scheduleProgression(config.Plan, history, now, s.tuning)
	config.Plan = plan
	config.LastMetrics = &final
	config.UpdatedAt = now
	if err := s.repo.configs.update(ctx, config, now); err != nil {
		return ProgressionPlan{}, fmt.Errorf("persist progression: %w", err)
	}
	if err := s.repo.history.prune(ctx, workoutID, s.tuning.HistoryWindow); err != nil {
		return ProgressionPlan{}, fmt.Errorf("prune history: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "session closed",
		slog.String("workout_id", workoutID),
		slog.String("decision", string(decision)),
		slog.String("state", string(plan.State)),
		slog.Float64("completion_rate", final.CompletionRate))
	return plan, nil
}

// SuggestSubstitutions ranks replacement candidates for an exercise from the
// given catalog. Purely computational; nothing is persisted.
func (s *Service) SuggestSubstitutions(original Exercise, reason SubstitutionReason, profile UserProfile, catalog []Exercise) []Exercise {
	return rankSubstitutions(original, reason, profile, catalog)
}

// RecommendRest computes an adjusted rest period after a set, taking the
// user's current recovery signals into account.
func (s *Service) RecommendRest(exercise Exercise, set SetPerformance, factors RestingFactors) SmartRestTimer {
	return calculateRest(exercise, set, factors, s.tuning)
}
