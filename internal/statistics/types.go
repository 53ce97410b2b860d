package statistics

import (
	"time"

	corestats "github.com/poststats-lab/project-poststats/internal/core/statistics"
)

// Request selects the statistics to calculate and the inclusive date range of posts.
// An empty Stats list selects every statistic in the catalog.
type Request struct {
	Stats []string
	Start time.Time
	End   time.Time
}

// Response is the body of GET /v1/statistics.
type Response struct {
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	PostCount  int                 `json:"post_count"`
	Statistics []*corestats.Result `json:"statistics"`
}

// SnapshotResponse is the body of GET /v1/statistics/snapshots/:name.
type SnapshotResponse struct {
	ID         string            `json:"id"`
	StatName   string            `json:"stat_name"`
	Start      time.Time         `json:"start"`
	End        time.Time         `json:"end"`
	PostCount  int               `json:"post_count"`
	ComputedAt time.Time         `json:"computed_at"`
	Result     *corestats.Result `json:"result"`
}

// DefinitionResponse is one entry of GET /v1/statistics/catalog.
type DefinitionResponse struct {
	Name        string `json:"name"`
	Calculator  string `json:"calculator"`
	Description string `json:"description,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
