package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

const finalPassTimeout = 30 * time.Second

// Scheduler recalculates every catalog statistic over a trailing window on a
// periodic interval and persists each result tree as a snapshot.
type Scheduler struct {
	interval  time.Duration
	lookback  time.Duration
	service   *Service
	snapshots storage.SnapshotStore
	nowFn     func() time.Time
}

// NewScheduler creates a scheduler that covers [now-lookback, now] on every tick.
func NewScheduler(
	interval time.Duration,
	lookback time.Duration,
	service *Service,
	snapshots storage.SnapshotStore,
) *Scheduler {
	return &Scheduler{
		interval:  interval,
		lookback:  lookback,
		service:   service,
		snapshots: snapshots,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Start begins periodic snapshot calculation.
// Runs until context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting statistics scheduler",
		"interval", s.interval,
		"lookback", s.lookback,
		"statistics", len(s.service.catalog.Definitions()),
	)

	s.runPass(ctx)

	for {
		select {
		case <-ticker.C:
			s.runPass(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), finalPassTimeout)
			defer cancel()

			slog.Info("[Scheduler] Running final pass before shutdown...")
			s.runPass(shutdownCtx)
			slog.Info("[Scheduler] Final pass complete")

			return nil
		}
	}
}

// runPass logs failures instead of returning them so one bad tick never stops the loop.
func (s *Scheduler) runPass(ctx context.Context) {
	saved, err := s.RunOnce(ctx)
	if err != nil {
		slog.Error("[Scheduler] Statistics pass failed", "error", err, "snapshots_saved", saved)
		return
	}
	slog.Info("[Scheduler] Statistics pass complete", "snapshots_saved", saved)
}

// RunOnce calculates every catalog statistic once and saves the snapshots.
// It returns the number of snapshots saved.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	defs := s.service.catalog.Definitions()
	if len(defs) == 0 {
		slog.Debug("[Scheduler] No statistics configured")
		return 0, nil
	}

	end := s.nowFn()
	start := end.Add(-s.lookback)

	results, postCount, err := s.service.Calculate(ctx, defs, start, end)
	if err != nil {
		return 0, fmt.Errorf("calculate: %w", err)
	}

	computedAt := s.nowFn()
	saved := 0
	for i, def := range defs {
		snap := &storage.Snapshot{
			ID:         uuid.NewString(),
			StatName:   def.Name,
			StartDate:  start,
			EndDate:    end,
			Result:     results[i],
			PostCount:  postCount,
			ComputedAt: computedAt,
		}
		if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
			return saved, fmt.Errorf("save snapshot %q: %w", def.Name, err)
		}
		saved++
	}
	return saved, nil
}
