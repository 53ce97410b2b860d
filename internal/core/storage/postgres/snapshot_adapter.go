package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

const (
	queryInsertSnapshot = `
		INSERT INTO statistic_snapshots (
			id, stat_name, start_date, end_date, result, post_count, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	queryLatestSnapshot = `
		SELECT
			id, stat_name, start_date, end_date, result, post_count, computed_at
		FROM statistic_snapshots
		WHERE stat_name = $1
		ORDER BY computed_at DESC
		LIMIT 1
	`
)

// SnapshotAdapter implements storage.SnapshotStore using PostgreSQL.
type SnapshotAdapter struct {
	db *sql.DB
}

// NewSnapshotAdapter creates a new SnapshotAdapter sharing the given connection.
func NewSnapshotAdapter(db *sql.DB) *SnapshotAdapter {
	return &SnapshotAdapter{db: db}
}

// SaveSnapshot inserts one calculated result tree.
func (a *SnapshotAdapter) SaveSnapshot(ctx context.Context, snapshot *storage.Snapshot) error {
	resultJSON, err := marshalResult(snapshot.Result)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", snapshot.StatName, err)
	}

	if _, err := a.db.ExecContext(ctx, queryInsertSnapshot,
		snapshot.ID,
		snapshot.StatName,
		snapshot.StartDate,
		snapshot.EndDate,
		resultJSON,
		snapshot.PostCount,
		snapshot.ComputedAt,
	); err != nil {
		return fmt.Errorf("save snapshot %q: %w", snapshot.StatName, err)
	}

	slog.Debug("[SnapshotAdapter] Saved snapshot",
		"id", snapshot.ID,
		"stat_name", snapshot.StatName,
		"post_count", snapshot.PostCount,
	)
	return nil
}

// LatestSnapshot returns the most recently computed snapshot for statName.
// Returns storage.ErrNotFound if none has been saved yet.
func (a *SnapshotAdapter) LatestSnapshot(ctx context.Context, statName string) (*storage.Snapshot, error) {
	var (
		snapshot   storage.Snapshot
		resultJSON []byte
	)

	err := a.db.QueryRowContext(ctx, queryLatestSnapshot, statName).Scan(
		&snapshot.ID,
		&snapshot.StatName,
		&snapshot.StartDate,
		&snapshot.EndDate,
		&resultJSON,
		&snapshot.PostCount,
		&snapshot.ComputedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %q: %w", statName, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read latest snapshot %q: %w", statName, err)
	}

	result, err := unmarshalResult(resultJSON)
	if err != nil {
		return nil, fmt.Errorf("read latest snapshot %q: %w", statName, err)
	}
	snapshot.Result = result

	return &snapshot, nil
}
