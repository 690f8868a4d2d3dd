package adaptive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitadapt/fitadapt/internal/sqlite"
)

// configRepository persists adaptive workout configurations as JSON blobs
// keyed by workout ID. A version column guards concurrent writers.
type configRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// get loads the configuration for a workout. Returns ErrNotFound if the
// workout has not been built yet.
func (r *configRepository) get(ctx context.Context, workoutID string) (AdaptiveWorkoutConfig, error) {
	var (
		raw     []byte
		version int64
	)
	err := r.db.ReadOnly.QueryRowContext(ctx,
		"SELECT config, version FROM adaptive_configs WHERE workout_id = ?",
		workoutID,
	).Scan(&raw, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return AdaptiveWorkoutConfig{}, fmt.Errorf("config %s: %w", workoutID, ErrNotFound)
	}
	if err != nil {
		return AdaptiveWorkoutConfig{}, fmt.Errorf("query config %s: %w", workoutID, err)
	}
	var config AdaptiveWorkoutConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		return AdaptiveWorkoutConfig{}, fmt.Errorf("unmarshal config %s: %w", workoutID, err)
	}
	config.Version = version
	return config, nil
}

// upsert stores a freshly built configuration. Rebuilding an existing
// workout replaces the stored config and bumps its version so that in-flight
// updates against the old config fail with ErrConcurrentUpdate.
func (r *configRepository) upsert(ctx context.Context, config AdaptiveWorkoutConfig, now time.Time) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config %s: %w", config.WorkoutID, err)
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO adaptive_configs (workout_id, user_id, version, config, updated_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT (workout_id) DO UPDATE SET
			user_id = excluded.user_id,
			version = adaptive_configs.version + 1,
			config = excluded.config,
			updated_at = excluded.updated_at`,
		config.WorkoutID, config.UserID, string(raw), formatTimestamp(now),
	)
	if err != nil {
		return fmt.Errorf("upsert config %s: %w", config.WorkoutID, err)
	}
	return nil
}

// update writes back a modified configuration. The stored row must still be
// at config.Version; otherwise another writer got there first and the caller
// receives ErrConcurrentUpdate.
func (r *configRepository) update(ctx context.Context, config AdaptiveWorkoutConfig, now time.Time) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config %s: %w", config.WorkoutID, err)
	}
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE adaptive_configs
		SET config = ?, version = version + 1, updated_at = ?
		WHERE workout_id = ? AND version = ?`,
		string(raw), formatTimestamp(now), config.WorkoutID, config.Version,
	)
	if err != nil {
		return fmt.Errorf("update config %s: %w", config.WorkoutID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update config %s rows affected: %w", config.WorkoutID, err)
	}
	if affected == 0 {
		if _, getErr := r.get(ctx, config.WorkoutID); errors.Is(getErr, ErrNotFound) {
			return fmt.Errorf("config %s: %w", config.WorkoutID, ErrNotFound)
		}
		return fmt.Errorf("config %s at version %d: %w", config.WorkoutID, config.Version, ErrConcurrentUpdate)
	}
	return nil
}
