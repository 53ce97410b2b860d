package statistics

import (
	"fmt"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	"github.com/shopspring/decimal"
)

// Supported calculator kinds.
const (
	KindAveragePostsPerUserPerMonth = "average-posts-per-user"
	KindAverageCharacterLength      = "average-character-length"
	KindMaxCharacterLength          = "max-character-length"
	KindTotalPostsPerWeek           = "total-posts-per-week"
)

// Calculator is the two-phase accumulate/calculate protocol shared by every statistic.
// Accumulate is called once per post that passed the caller's filter; Calculate is
// called after the last post and must not consume accumulated state.
//
// Implementations are not safe for concurrent use. One instance serves one pass.
type Calculator interface {
	Accumulate(post *v1.Post)
	Calculate() *Result
}

// Factory builds a fresh calculator for one pass.
type Factory func(params Params) Calculator

// Calculators is the registry of all supported calculator kinds.
// To add a statistic: implement Calculator and add an entry here.
var Calculators = map[string]Factory{
	KindAveragePostsPerUserPerMonth: func(p Params) Calculator { return NewAveragePostsPerUserPerMonth(p.StatName) },
	KindAverageCharacterLength:      func(p Params) Calculator { return NewAverageCharacterLength(p.StatName) },
	KindMaxCharacterLength:          func(p Params) Calculator { return NewMaxCharacterLength(p.StatName) },
	KindTotalPostsPerWeek:           func(p Params) Calculator { return NewTotalPostsPerWeek(p.StatName) },
}

// ValidKind reports whether kind is a registered calculator.
func ValidKind(kind string) bool {
	_, ok := Calculators[kind]
	return ok
}

// New builds a calculator of the given kind.
func New(kind string, params Params) (Calculator, error) {
	factory, ok := Calculators[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported calculator %q", kind)
	}
	return factory(params), nil
}

// base holds what every result node repeats: the configured name and the units.
type base struct {
	name  string
	units string
}

func (b base) root() *Result {
	return &Result{Name: b.name, Units: b.units}
}

func (b base) child(period string, value decimal.Decimal) *Result {
	return &Result{
		Name:        b.name,
		SplitPeriod: period,
		Value:       &value,
		Units:       b.units,
	}
}

// roundedAverage divides total by count and rounds half away from zero.
// count must be positive.
func roundedAverage(total, count int) decimal.Decimal {
	return decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(int64(count))).
		Round(0)
}

// monthLabel is the full English month name of the UTC creation time, independent of year.
func monthLabel(post *v1.Post) string {
	return post.CreatedTime.UTC().Month().String()
}
