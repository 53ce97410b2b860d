package statistics

import (
	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
)

// AveragePostsPerUserPerMonth reports, for each month, the average number of posts
// per author who posted at least once that month.
type AveragePostsPerUserPerMonth struct {
	base

	// months keeps first-seen order; totals is month -> author -> post count.
	months []string
	totals map[string]map[string]int
}

// NewAveragePostsPerUserPerMonth creates an empty calculator reporting under statName.
func NewAveragePostsPerUserPerMonth(statName string) *AveragePostsPerUserPerMonth {
	return &AveragePostsPerUserPerMonth{
		base:   base{name: statName, units: UnitsPosts},
		totals: make(map[string]map[string]int),
	}
}

// Accumulate counts post against its author in the post's month.
func (c *AveragePostsPerUserPerMonth) Accumulate(post *v1.Post) {
	month := monthLabel(post)

	authors, ok := c.totals[month]
	if !ok {
		authors = make(map[string]int)
		c.totals[month] = authors
		c.months = append(c.months, month)
	}
	authors[post.AuthorID]++
}

// Calculate emits one child per month in first-seen order.
func (c *AveragePostsPerUserPerMonth) Calculate() *Result {
	stats := c.root()
	for _, month := range c.months {
		authors := c.totals[month]

		posts := 0
		for _, count := range authors {
			posts += count
		}

		stats.AddChild(c.child(month, roundedAverage(posts, len(authors))))
	}
	return stats
}
