// Command simulate drives the adaptive engine with synthetic users to exercise
// the full build, live-update, and close-session cycle against a real database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fitadapt/fitadapt/internal/adaptive"
	"github.com/fitadapt/fitadapt/internal/config"
	"github.com/fitadapt/fitadapt/internal/envstruct"
	"github.com/fitadapt/fitadapt/internal/logging"
	"github.com/fitadapt/fitadapt/internal/ptr"
	"github.com/fitadapt/fitadapt/internal/sqlite"
)

type simulatorConfig struct {
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITADAPT_SQLITE_URL" envDefault:":memory:"`
	// TuningPath optionally points to a YAML tuning file.
	TuningPath string `env:"FITADAPT_TUNING_PATH" envDefault:""`
	// Users is the number of concurrent simulated users.
	Users int `env:"FITADAPT_SIM_USERS" envDefault:"4"`
	// Sessions is the number of workout sessions each user completes.
	Sessions int `env:"FITADAPT_SIM_SESSIONS" envDefault:"6"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg simulatorConfig
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return fmt.Errorf("populate config: %w", err)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.SqliteURL, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", slog.Any("error", closeErr))
		}
	}()

	svc := adaptive.NewService(db, logger, tuning)

	g, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Users {
		g.Go(func() error {
			return simulateUser(ctx, svc, logger, i, cfg.Sessions)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "simulation finished",
		slog.Int("users", cfg.Users),
		slog.Int("sessions_per_user", cfg.Sessions))
	return nil
}

// simulateUser runs one user through a full training block: build the
// configuration, then complete sessions with drifting performance so that
// adaptations, progressions, and deloads all get a chance to fire.
func simulateUser(ctx context.Context, svc *adaptive.Service, logger *slog.Logger, seq, sessions int) error {
	userID := fmt.Sprintf("sim-user-%d", seq)
	ctx = logging.WithAttrs(ctx, slog.String("user_id", userID))

	levels := []adaptive.FitnessLevel{adaptive.LevelBeginner, adaptive.LevelIntermediate, adaptive.LevelAdvanced}
	profile := adaptive.UserProfile{
		ID:           userID,
		FitnessLevel: levels[seq%len(levels)],
		Equipment:    []string{"barbell", "dumbbell", "bench"},
	}
	workout := simulatedWorkout(fmt.Sprintf("sim-workout-%d", seq))

	built, err := svc.Build(ctx, userID, workout, profile, nil)
	if err != nil {
		return fmt.Errorf("build for %s: %w", userID, err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "configuration built",
		slog.String("workout_id", built.WorkoutID),
		slog.String("strategy", string(built.Plan.Strategy)))

	for session := range sessions {
		metrics := simulatedMetrics(session, sessions)

		adaptations, err := svc.ApplyLiveUpdate(ctx, workout.ID, metrics)
		if err != nil {
			return fmt.Errorf("live update for %s: %w", userID, err)
		}
		for _, adaptation := range adaptations {
			logger.LogAttrs(ctx, slog.LevelInfo, "live adaptation",
				slog.Int("session", session),
				slog.String("action", string(adaptation.Action)))
		}

		timer := svc.RecommendRest(workout.Exercises[0], adaptive.SetPerformance{
			Reps:      5,
			Completed: metrics.CompletionRate > 0.7,
			RPE:       metrics.RPE,
		}, adaptive.RestingFactors{
			HeartRateRecoveryBPM: ptr.Ref(20 + rand.Float64()*25),
			SleepQuality:         ptr.Ref(rand.Float64()),
		})
		logger.LogAttrs(ctx, slog.LevelDebug, "rest recommended",
			slog.Int("session", session),
			slog.Int("seconds", timer.AdjustedSeconds))

		plan, err := svc.CloseSession(ctx, workout.ID, metrics)
		if err != nil {
			return fmt.Errorf("close session for %s: %w", userID, err)
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "session closed",
			slog.Int("session", session),
			slog.String("state", string(plan.State)))
	}

	return nil
}

// simulatedMetrics drifts performance downward over the block so that early
// sessions progress and late sessions push toward a deload.
func simulatedMetrics(session, sessions int) adaptive.PerformanceMetrics {
	progress := float64(session) / float64(max(sessions-1, 1))
	completion := 0.97 - 0.45*progress + rand.Float64()*0.05
	rpe := 6 + 3*progress

	return adaptive.PerformanceMetrics{
		Duration:       45 * time.Minute,
		AvgHeartRate:   ptr.Ref(140 + 50*progress),
		Fatigue:        adaptive.FatigueLevel{Overall: 3 + 6*progress},
		CompletionRate: completion,
		RPE:            rpe,
		RecordedAt:     time.Now(),
	}
}

func simulatedWorkout(id string) adaptive.Workout {
	return adaptive.Workout{
		ID:   id,
		Name: "Simulated Full Body",
		Exercises: []adaptive.Exercise{
			{
				ID:           "squat",
				Name:         "Barbell Squat",
				Category:     adaptive.CategoryStrength,
				MuscleGroups: []string{"quads", "glutes", "hamstrings"},
				Equipment:    []string{"barbell"},
				Difficulty:   adaptive.LevelIntermediate,
				Sets:         3,
				MinReps:      5,
				MaxReps:      8,
			},
			{
				ID:           "bench-press",
				Name:         "Bench Press",
				Category:     adaptive.CategoryStrength,
				MuscleGroups: []string{"chest", "triceps", "front delts"},
				Equipment:    []string{"barbell", "bench"},
				Difficulty:   adaptive.LevelIntermediate,
				Sets:         3,
				MinReps:      8,
				MaxReps:      12,
			},
			{
				ID:           "row-machine",
				Name:         "Rowing Machine",
				Category:     adaptive.CategoryCardio,
				MuscleGroups: []string{"back", "legs"},
				Difficulty:   adaptive.LevelBeginner,
				Sets:         1,
				MinReps:      1,
				MaxReps:      1,
			},
		},
	}
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
}
