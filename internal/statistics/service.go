package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	corestats "github.com/poststats-lab/project-poststats/internal/core/statistics"
	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

const (
	defaultWorkerCount = 4
	computeTimeout     = 2 * time.Minute
)

// ErrInvalidRequest marks request validation errors that should return HTTP 400.
var ErrInvalidRequest = errors.New("invalid statistics request")

// Service runs calculation passes over stored posts and serves persisted snapshots.
type Service struct {
	posts       storage.PostStore
	snapshots   storage.SnapshotStore
	catalog     corestats.CatalogRepository
	workerCount int

	computeGroup singleflight.Group // Dedupe concurrent identical requests
}

// NewService creates a statistics service. workerCount bounds how many
// calculators accumulate at the same time.
func NewService(
	posts storage.PostStore,
	snapshots storage.SnapshotStore,
	catalog corestats.CatalogRepository,
	workerCount int,
) *Service {
	if posts == nil {
		panic("statistics: post store must not be nil")
	}
	if catalog == nil {
		panic("statistics: catalog must not be nil")
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &Service{
		posts:       posts,
		snapshots:   snapshots,
		catalog:     catalog,
		workerCount: workerCount,
	}
}

// Compute validates req and returns one result tree per requested statistic, in request order.
func (s *Service) Compute(ctx context.Context, req Request) (*Response, error) {
	defs, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	key := computeKey(defs, req.Start, req.End)
	ch := s.computeGroup.DoChan(key, func() (interface{}, error) {
		// Shared by every caller with the same key, so no single caller's
		// cancellation may abort it.
		calcCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), computeTimeout)
		defer cancel()

		results, postCount, err := s.Calculate(calcCtx, defs, req.Start, req.End)
		if err != nil {
			return nil, err
		}
		return &Response{
			Start:      req.Start,
			End:        req.End,
			PostCount:  postCount,
			Statistics: results,
		}, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.Debug("[Statistics] Shared result with concurrent request", "key", key)
		}
		return res.Val.(*Response), nil
	}
}

// Calculate loads posts in the inclusive [start, end] range and runs one calculator per
// definition over them. It returns the results in definition order and the number of
// posts inside the range.
func (s *Service) Calculate(
	ctx context.Context,
	defs []corestats.Definition,
	start, end time.Time,
) ([]*corestats.Result, int, error) {
	posts, err := s.posts.RetrievePostsBetween(ctx, start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("retrieve posts: %w", err)
	}

	// The store already filters by range; the second pass keeps calculators
	// correct for stores that return a superset.
	inRange := filterPosts(posts, corestats.Params{StartDate: start, EndDate: end})

	slog.Info("[Statistics] Calculating",
		"statistics", len(defs),
		"posts", len(inRange),
		"start", start,
		"end", end,
	)

	results := make([]*corestats.Result, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)

	for i, def := range defs {
		g.Go(func() error {
			params := corestats.Params{StatName: def.Name, StartDate: start, EndDate: end}
			calc, err := corestats.New(def.Calculator, params)
			if err != nil {
				return fmt.Errorf("statistic %q: %w", def.Name, err)
			}
			for _, post := range inRange {
				if err := gctx.Err(); err != nil {
					return err
				}
				calc.Accumulate(post)
			}
			results[i] = calc.Calculate()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return results, len(inRange), nil
}

// Definitions lists the catalog, optionally filtered by calculator kind.
func (s *Service) Definitions(ctx context.Context, calculator string) ([]corestats.Definition, error) {
	if calculator != "" && !corestats.ValidKind(calculator) {
		return nil, invalidRequestf("unsupported calculator: %s", calculator)
	}
	return s.catalog.List(ctx, calculator)
}

// LatestSnapshot returns the most recent persisted result for a catalog statistic.
func (s *Service) LatestSnapshot(ctx context.Context, name string) (*storage.Snapshot, error) {
	if _, err := s.catalog.Get(ctx, name); err != nil {
		return nil, err
	}
	if s.snapshots == nil {
		return nil, fmt.Errorf("snapshot %q: %w", name, storage.ErrNotFound)
	}
	return s.snapshots.LatestSnapshot(ctx, name)
}

func (s *Service) resolve(ctx context.Context, req Request) ([]corestats.Definition, error) {
	if req.Start.IsZero() {
		return nil, invalidRequestf("start is required")
	}
	if req.End.IsZero() {
		return nil, invalidRequestf("end is required")
	}
	if req.End.Before(req.Start) {
		return nil, invalidRequestf("end time must not be before start time")
	}

	if len(req.Stats) == 0 {
		defs := s.catalog.Definitions()
		if len(defs) == 0 {
			return nil, invalidRequestf("no statistics configured")
		}
		return defs, nil
	}

	seen := make(map[string]bool, len(req.Stats))
	defs := make([]corestats.Definition, 0, len(req.Stats))
	for _, name := range req.Stats {
		if seen[name] {
			return nil, invalidRequestf("statistic %q requested more than once", name)
		}
		seen[name] = true

		def, err := s.catalog.Get(ctx, name)
		if err != nil {
			if errors.Is(err, corestats.ErrUnknownStatistic) {
				return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
			}
			return nil, err
		}
		defs = append(defs, *def)
	}
	return defs, nil
}

func filterPosts(posts []*v1.Post, params corestats.Params) []*v1.Post {
	out := posts[:0:0]
	for _, post := range posts {
		if post != nil && params.Contains(post.CreatedTime) {
			out = append(out, post)
		}
	}
	return out
}

func computeKey(defs []corestats.Definition, start, end time.Time) string {
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return fmt.Sprintf("%s|%s|%s",
		strings.Join(names, ","),
		start.UTC().Format(time.RFC3339Nano),
		end.UTC().Format(time.RFC3339Nano),
	)
}

func invalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
