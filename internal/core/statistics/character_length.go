package statistics

import (
	"unicode/utf8"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/shopspring/decimal"
)

// monthlyLength tracks per-month character totals in first-seen month order.
type monthlyLength struct {
	months  []string
	posts   map[string]int
	chars   map[string]int
	longest map[string]int
}

func newMonthlyLength() monthlyLength {
	return monthlyLength{
		posts:   make(map[string]int),
		chars:   make(map[string]int),
		longest: make(map[string]int),
	}
}

func (m *monthlyLength) add(post *v1.Post) {
	month := monthLabel(post)
	if _, ok := m.posts[month]; !ok {
		m.months = append(m.months, month)
	}

	length := utf8.RuneCountInString(post.Text)
	m.posts[month]++
	m.chars[month] += length
	if length > m.longest[month] {
		m.longest[month] = length
	}
}

// AverageCharacterLength reports the average post length per month, in runes.
type AverageCharacterLength struct {
	base
	lengths monthlyLength
}

// NewAverageCharacterLength creates an empty calculator reporting under statName.
func NewAverageCharacterLength(statName string) *AverageCharacterLength {
	return &AverageCharacterLength{
		base:    base{name: statName, units: UnitsCharacters},
		lengths: newMonthlyLength(),
	}
}

// Accumulate adds the post length to its month.
func (c *AverageCharacterLength) Accumulate(post *v1.Post) { c.lengths.add(post) }

// Calculate emits one rounded average per month in first-seen order.
func (c *AverageCharacterLength) Calculate() *Result {
	stats := c.root()
	for _, month := range c.lengths.months {
		avg := roundedAverage(c.lengths.chars[month], c.lengths.posts[month])
		stats.AddChild(c.child(month, avg))
	}
	return stats
}

// MaxCharacterLength reports the longest post per month, in runes.
type MaxCharacterLength struct {
	base
	lengths monthlyLength
}

// NewMaxCharacterLength creates an empty calculator reporting under statName.
func NewMaxCharacterLength(statName string) *MaxCharacterLength {
	return &MaxCharacterLength{
		base:    base{name: statName, units: UnitsCharacters},
		lengths: newMonthlyLength(),
	}
}

// Accumulate records the post length against its month.
func (c *MaxCharacterLength) Accumulate(post *v1.Post) { c.lengths.add(post) }

// Calculate emits the longest length per month in first-seen order.
func (c *MaxCharacterLength) Calculate() *Result {
	stats := c.root()
	for _, month := range c.lengths.months {
		stats.AddChild(c.child(month, decimal.NewFromInt(int64(c.lengths.longest[month]))))
	}
	return stats
}
