package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidKind(t *testing.T) {
	require.True(t, ValidKind(KindAveragePostsPerUserPerMonth))
	require.True(t, ValidKind(KindAverageCharacterLength))
	require.True(t, ValidKind(KindMaxCharacterLength))
	require.True(t, ValidKind(KindTotalPostsPerWeek))
	require.False(t, ValidKind("median-posts"))
	require.False(t, ValidKind(""))
}

func TestNew(t *testing.T) {
	calc, err := New(KindAveragePostsPerUserPerMonth, Params{StatName: "custom-name"})
	require.NoError(t, err)
	require.IsType(t, &AveragePostsPerUserPerMonth{}, calc)

	root := calc.Calculate()
	require.Equal(t, "custom-name", root.Name)
	require.Equal(t, UnitsPosts, root.Units)
	require.Empty(t, root.Children)

	_, err = New("unknown", Params{StatName: "x"})
	require.ErrorContains(t, err, `unsupported calculator "unknown"`)
}

func TestNew_FreshInstancePerCall(t *testing.T) {
	first, err := New(KindTotalPostsPerWeek, Params{StatName: "weekly"})
	require.NoError(t, err)
	second, err := New(KindTotalPostsPerWeek, Params{StatName: "weekly"})
	require.NoError(t, err)

	gen := &postGenerator{}
	first.Accumulate(gen.post("1", time.Date(2018, 8, 10, 0, 0, 0, 0, time.UTC), "x"))

	require.Len(t, first.Calculate().Children, 1)
	require.Empty(t, second.Calculate().Children)
}

func TestCharacterLengthCalculators(t *testing.T) {
	gen := &postGenerator{}
	jan := time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2018, 2, 3, 0, 0, 0, 0, time.UTC)

	posts := []struct {
		created time.Time
		text    string
	}{
		{feb, "abcd"},
		{jan, "ab"},
		{jan, "abc"},
		{feb, "héllo wörld"}, // 11 runes, 13 bytes
	}

	avg := NewAverageCharacterLength("average-character-length")
	longest := NewMaxCharacterLength("max-character-length")
	for _, p := range posts {
		post := gen.post("1", p.created, p.text)
		avg.Accumulate(post)
		longest.Accumulate(post)
	}

	// February first: (4+11)/2 = 7.5 -> 8; January (2+3)/2 = 2.5 -> 3.
	requireResultEqual(t,
		expectedResult("average-character-length", UnitsCharacters,
			periodValue{"February", 8}, periodValue{"January", 3}),
		avg.Calculate(),
	)
	requireResultEqual(t,
		expectedResult("max-character-length", UnitsCharacters,
			periodValue{"February", 11}, periodValue{"January", 3}),
		longest.Calculate(),
	)
}

func TestTotalPostsPerWeek(t *testing.T) {
	gen := &postGenerator{}
	calc := NewTotalPostsPerWeek("total-posts-per-week")

	// 2000-01-01 is a Saturday in ISO week 52 of 1999.
	calc.Accumulate(gen.post("1", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), ""))
	calc.Accumulate(gen.post("2", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), ""))
	calc.Accumulate(gen.post("1", time.Date(2000, 1, 4, 0, 0, 0, 0, time.UTC), ""))
	calc.Accumulate(gen.post("3", time.Date(1999, 12, 27, 0, 0, 0, 0, time.UTC), ""))

	requireResultEqual(t,
		expectedResult("total-posts-per-week", UnitsPosts,
			periodValue{"Week 52, 1999", 2}, periodValue{"Week 01, 2000", 2}),
		calc.Calculate(),
	)
}

func TestCalendarLabelsUseUTC(t *testing.T) {
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	// 2018-01-31T22:30Z is already February 1st at +02:00.
	monthEnd := time.Date(2018, 2, 1, 0, 30, 0, 0, plusTwo)
	// 2018-01-07T23:30Z is Sunday of ISO week 1; at +02:00 it is Monday of week 2.
	weekEnd := time.Date(2018, 1, 8, 1, 30, 0, 0, plusTwo)

	gen := &postGenerator{}

	average := NewAveragePostsPerUserPerMonth("average-posts-per-user")
	average.Accumulate(gen.post("1", monthEnd, ""))
	average.Accumulate(gen.post("1", monthEnd.UTC(), ""))
	requireResultEqual(t,
		expectedResult("average-posts-per-user", UnitsPosts, periodValue{"January", 2}),
		average.Calculate(),
	)

	weekly := NewTotalPostsPerWeek("total-posts-per-week")
	weekly.Accumulate(gen.post("1", weekEnd, ""))
	weekly.Accumulate(gen.post("2", weekEnd.UTC(), ""))
	requireResultEqual(t,
		expectedResult("total-posts-per-week", UnitsPosts, periodValue{"Week 01, 2018", 2}),
		weekly.Calculate(),
	)
}

func TestParams_Contains(t *testing.T) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC)
	p := Params{StatName: "x", StartDate: start, EndDate: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start bound is inclusive", start, true},
		{"end bound is inclusive", end, true},
		{"inside", time.Date(2000, 3, 15, 12, 0, 0, 0, time.UTC), true},
		{"before start", start.Add(-time.Second), false},
		{"after end", end.Add(time.Second), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Contains(tc.at))
		})
	}

	open := Params{StatName: "x"}
	require.True(t, open.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
}
