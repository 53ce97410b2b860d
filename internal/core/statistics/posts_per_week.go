package statistics

import (
	"fmt"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/shopspring/decimal"
)

// TotalPostsPerWeek counts posts per ISO week.
// Weeks are labelled "Week NN, YYYY" from the UTC creation time using the ISO
// week-numbering year, so a post on 2000-01-01 lands in "Week 52, 1999".
type TotalPostsPerWeek struct {
	base
	weeks  []string
	totals map[string]int
}

// NewTotalPostsPerWeek creates an empty calculator reporting under statName.
func NewTotalPostsPerWeek(statName string) *TotalPostsPerWeek {
	return &TotalPostsPerWeek{
		base:   base{name: statName, units: UnitsPosts},
		totals: make(map[string]int),
	}
}

// Accumulate counts post against its ISO week.
func (c *TotalPostsPerWeek) Accumulate(post *v1.Post) {
	year, week := post.CreatedTime.UTC().ISOWeek()
	label := fmt.Sprintf("Week %02d, %d", week, year)

	if _, ok := c.totals[label]; !ok {
		c.weeks = append(c.weeks, label)
	}
	c.totals[label]++
}

// Calculate emits one count per week in first-seen order.
func (c *TotalPostsPerWeek) Calculate() *Result {
	stats := c.root()
	for _, week := range c.weeks {
		stats.AddChild(c.child(week, decimal.NewFromInt(int64(c.totals[week]))))
	}
	return stats
}
