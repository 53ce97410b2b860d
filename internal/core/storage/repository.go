package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/poststats-lab/project-poststats/internal/core/statistics"
)

// ErrDuplicate is returned when a post with the same id already exists.
var ErrDuplicate = errors.New("post already exists")

// ErrNotFound is returned when a requested snapshot does not exist.
var ErrNotFound = errors.New("not found")

// PostStore defines the interface for storing and retrieving posts.
type PostStore interface {
	SavePost(ctx context.Context, post *v1.Post) error

	// RetrievePostsBetween returns posts created in the inclusive [start, end] range,
	// ordered by created_time then id.
	RetrievePostsBetween(ctx context.Context, start, end time.Time) ([]*v1.Post, error)

	// RetrieveAuthorPosts returns one author's posts in the inclusive range, newest first.
	RetrieveAuthorPosts(ctx context.Context, authorID string, start, end time.Time, limit int) ([]*v1.Post, error)
}

// Snapshot is a persisted result tree for one statistic and date range.
type Snapshot struct {
	ID         string
	StatName   string
	StartDate  time.Time
	EndDate    time.Time
	Result     *statistics.Result
	PostCount  int
	ComputedAt time.Time
}

// SnapshotStore persists calculated statistics.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error

	// LatestSnapshot returns the most recently computed snapshot for statName,
	// or ErrNotFound.
	LatestSnapshot(ctx context.Context, statName string) (*Snapshot, error)
}
