package statistics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Units reported on result nodes.
const (
	UnitsPosts      = "posts"
	UnitsCharacters = "characters"
)

// Result is one node of a statistic result tree.
// The root carries only Name and Units; children carry a split period and a value.
type Result struct {
	Name        string           `json:"name"`
	SplitPeriod string           `json:"split_period,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Units       string           `json:"units"`
	Children    []*Result        `json:"children,omitempty"`
}

// AddChild appends child and returns the receiver for chaining.
func (r *Result) AddChild(child *Result) *Result {
	r.Children = append(r.Children, child)
	return r
}

// Params configures one calculation pass.
// Calculators only read StatName; the date range is applied by the caller
// before posts reach Accumulate.
type Params struct {
	StatName  string
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether t falls inside the inclusive [StartDate, EndDate] range.
// A zero bound is treated as open.
func (p Params) Contains(t time.Time) bool {
	if !p.StartDate.IsZero() && t.Before(p.StartDate) {
		return false
	}
	if !p.EndDate.IsZero() && t.After(p.EndDate) {
		return false
	}
	return true
}
