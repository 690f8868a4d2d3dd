package adaptive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fitadapt/fitadapt/internal/sqlite"
)

// historyRepository stores per-workout session performance records.
type historyRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// append records a completed session for a workout.
func (r *historyRepository) append(ctx context.Context, workoutID string, metrics PerformanceMetrics) error {
	raw, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics for %s: %w", workoutID, err)
	}
	_, err = r.db.ReadWrite.ExecContext(ctx,
		"INSERT INTO performance_history (workout_id, recorded_at, metrics) VALUES (?, ?, ?)",
		workoutID, formatTimestamp(metrics.RecordedAt), string(raw),
	)
	if err != nil {
		return fmt.Errorf("insert history for %s: %w", workoutID, err)
	}
	return nil
}

// list returns up to limit records for a workout, most recent first.
func (r *historyRepository) list(ctx context.Context, workoutID string, limit int) ([]PerformanceMetrics, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT metrics FROM performance_history
		WHERE workout_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?`,
		workoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history for %s: %w", workoutID, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "failed to close history rows",
				slog.Any("error", closeErr))
		}
	}()

	var history []PerformanceMetrics
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan history for %s: %w", workoutID, err)
		}
		var metrics PerformanceMetrics
		if err := json.Unmarshal(raw, &metrics); err != nil {
			return nil, fmt.Errorf("unmarshal history for %s: %w", workoutID, err)
		}
		history = append(history, metrics)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history for %s: %w", workoutID, err)
	}
	return history, nil
}

// prune keeps only the keep most recent records for a workout.
func (r *historyRepository) prune(ctx context.Context, workoutID string, keep int) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM performance_history
		WHERE workout_id = ? AND id NOT IN (
			SELECT id FROM performance_history
			WHERE workout_id = ?
			ORDER BY recorded_at DESC, id DESC
			LIMIT ?
		)`,
		workoutID, workoutID, keep,
	)
	if err != nil {
		return fmt.Errorf("prune history for %s: %w", workoutID, err)
	}
	return nil
}
