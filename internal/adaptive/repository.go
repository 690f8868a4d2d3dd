package adaptive

import (
	"log/slog"
	"time"

	"github.com/fitadapt/fitadapt/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// repository bundles the storage access of the engine.
type repository struct {
	configs *configRepository
	history *historyRepository
}

// newRepository wires the SQLite-backed repositories.
func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		configs: &configRepository{db: db, logger: logger},
		history: &historyRepository{db: db, logger: logger},
	}
}

// formatTimestamp renders a timestamp in the canonical storage format.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}
