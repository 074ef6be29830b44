package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rateboard/internal/domain/shared/daterange"
)

func yearly(start int, end *int) *RecurrencePattern {
	return &RecurrencePattern{Type: RecurrenceYearly, StartYear: start, EndYear: end}
}

func intPtr(v int) *int { return &v }

func TestExpandRecurrence(t *testing.T) {
	ranges := []daterange.DateRange{{ID: "r1", Start: "2025-07-01", End: "2025-07-25"}}

	t.Run("no pattern returns ranges unchanged", func(t *testing.T) {
		assert.Equal(t, ranges, ExpandRecurrence(ranges, nil, 2030))
		assert.Equal(t, ranges, ExpandRecurrence(ranges, &RecurrencePattern{Type: RecurrenceNone}, 2030))
	})

	t.Run("target year before start year yields nothing", func(t *testing.T) {
		assert.Empty(t, ExpandRecurrence(ranges, yearly(2025, nil), 2024))
	})

	t.Run("target year past end year yields nothing", func(t *testing.T) {
		assert.Empty(t, ExpandRecurrence(ranges, yearly(2025, intPtr(2027)), 2028))
	})

	t.Run("open-ended pattern re-anchors any later year", func(t *testing.T) {
		for _, year := range []int{2025, 2030} {
			out := ExpandRecurrence(ranges, yearly(2025, nil), year)
			require.Len(t, out, 1)
			assert.Equal(t, "r1", out[0].ID, "identifier preserved")
			assert.Equal(t, "07-01", out[0].Start[5:])
			assert.Equal(t, "07-25", out[0].End[5:])
		}
		assert.Equal(t, "2030-07-01", ExpandRecurrence(ranges, yearly(2025, nil), 2030)[0].Start)
	})

	t.Run("end year boundary is inclusive", func(t *testing.T) {
		out := ExpandRecurrence(ranges, yearly(2025, intPtr(2027)), 2027)
		require.Len(t, out, 1)
		assert.Equal(t, "2027-07-01", out[0].Start)
	})

	t.Run("window crossing the year boundary rolls its end forward", func(t *testing.T) {
		winter := []daterange.DateRange{{ID: "w", Start: "2025-12-20", End: "2026-01-05"}}
		out := ExpandRecurrence(winter, yearly(2025, nil), 2027)
		require.Len(t, out, 1)
		assert.Equal(t, "2027-12-20", out[0].Start)
		assert.Equal(t, "2028-01-05", out[0].End)
	})
}

func TestSeasonRanges(t *testing.T) {
	t.Run("multi-range list wins", func(t *testing.T) {
		se := Season{
			StartDate:  "2025-01-01",
			EndDate:    "2025-12-31",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-01", End: "2025-07-25"}},
		}
		require.Len(t, se.Ranges(), 1)
		assert.Equal(t, "2025-07-01", se.Ranges()[0].Start)
	})

	t.Run("legacy start and end pair is honored", func(t *testing.T) {
		se := Season{StartDate: "2025-10-04", EndDate: "2025-10-08"}
		ranges := se.Ranges()
		require.Len(t, ranges, 1)
		assert.Equal(t, "legacy", ranges[0].ID)
		assert.Equal(t, "2025-10-04", ranges[0].Start)
	})

	t.Run("no configuration means no ranges", func(t *testing.T) {
		assert.Empty(t, Season{}.Ranges())
	})
}

func TestContainsDate(t *testing.T) {
	t.Run("default season claims any date", func(t *testing.T) {
		se := Season{ID: "default", IsDefault: true}
		assert.True(t, se.ContainsDate("1999-01-01"))
		assert.True(t, se.ContainsDate("2077-12-31"))
	})

	t.Run("plain ranges match inclusively", func(t *testing.T) {
		se := Season{
			ID:         "summer",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-01", End: "2025-07-25"}},
		}
		assert.True(t, se.ContainsDate("2025-07-01"))
		assert.True(t, se.ContainsDate("2025-07-25"))
		assert.False(t, se.ContainsDate("2025-07-26"))
		assert.False(t, se.ContainsDate("2026-07-10"), "no recurrence, other years do not match")
	})

	t.Run("yearly recurrence matches later years", func(t *testing.T) {
		se := Season{
			ID:         "summer",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-01", End: "2025-07-25"}},
			Recurrence: yearly(2025, nil),
		}
		assert.True(t, se.ContainsDate("2025-07-12"))
		assert.True(t, se.ContainsDate("2030-07-12"))
		assert.False(t, se.ContainsDate("2024-07-12"), "before the pattern starts")
	})

	t.Run("bounded recurrence stops matching after end year", func(t *testing.T) {
		se := Season{
			ID:         "summer",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-01", End: "2025-07-25"}},
			Recurrence: yearly(2025, intPtr(2026)),
		}
		assert.True(t, se.ContainsDate("2026-07-12"))
		assert.False(t, se.ContainsDate("2027-07-12"))
	})

	t.Run("january tail of a rolled-over window matches", func(t *testing.T) {
		se := Season{
			ID:         "winter",
			DateRanges: []daterange.DateRange{{ID: "w", Start: "2025-12-20", End: "2026-01-05"}},
			Recurrence: yearly(2025, nil),
		}
		assert.True(t, se.ContainsDate("2026-12-28"))
		assert.True(t, se.ContainsDate("2027-01-03"), "tail belongs to the window opened the previous December")
		assert.False(t, se.ContainsDate("2027-01-06"))
	})
}

func TestConflicts(t *testing.T) {
	summer := Season{
		ID:         "summer",
		DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-01", End: "2025-07-25"}},
		Recurrence: yearly(2025, nil),
	}

	t.Run("default seasons never conflict", func(t *testing.T) {
		def := Season{ID: "default", IsDefault: true}
		assert.False(t, Conflicts(def, summer, 2025))
		assert.False(t, Conflicts(summer, def, 2025))
	})

	t.Run("overlapping expansions conflict", func(t *testing.T) {
		midJuly := Season{
			ID:         "mid-july",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2026-07-10", End: "2026-07-15"}},
		}
		assert.True(t, Conflicts(summer, midJuly, 2026))
		assert.True(t, Conflicts(midJuly, summer, 2026))
	})

	t.Run("disjoint seasons do not conflict", func(t *testing.T) {
		autumn := Season{
			ID:         "autumn",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-09-01", End: "2025-09-30"}},
		}
		assert.False(t, Conflicts(summer, autumn, 2025))
	})

	t.Run("rolled-over january tail conflicts with a concrete january season", func(t *testing.T) {
		winter := Season{
			ID:         "winter",
			DateRanges: []daterange.DateRange{{ID: "w", Start: "2025-12-20", End: "2026-01-05"}},
			Recurrence: yearly(2025, nil),
		}
		january := Season{
			ID:         "january",
			DateRanges: []daterange.DateRange{{ID: "j", Start: "2027-01-02", End: "2027-01-04"}},
		}
		// The window opened 2026-12-20 runs through 2027-01-05.
		assert.True(t, Conflicts(winter, january, 2027))
		assert.True(t, Conflicts(january, winter, 2027))
	})

	t.Run("rolled-over tail conflicts with a recurring january season", func(t *testing.T) {
		winter := Season{
			ID:         "winter",
			DateRanges: []daterange.DateRange{{ID: "w", Start: "2025-12-20", End: "2026-01-05"}},
			Recurrence: yearly(2025, nil),
		}
		january := Season{
			ID:         "january",
			DateRanges: []daterange.DateRange{{ID: "j", Start: "2027-01-02", End: "2027-01-04"}},
			Recurrence: yearly(2027, nil),
		}
		assert.True(t, Conflicts(winter, january, 2027))
	})
}

func TestValidate(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		err := Season{}.Validate()
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("default season skips range checks", func(t *testing.T) {
		err := Season{Name: "base", IsDefault: true}.Validate()
		assert.NoError(t, err)
	})

	t.Run("non-default season needs ranges", func(t *testing.T) {
		err := Season{Name: "summer"}.Validate()
		assert.ErrorIs(t, err, ErrNoRanges)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		se := Season{
			Name:       "summer",
			DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-07-25", End: "2025-07-01"}},
		}
		assert.ErrorIs(t, se.Validate(), daterange.ErrInvalidRange)
	})

	t.Run("internally overlapping ranges are rejected", func(t *testing.T) {
		se := Season{
			Name: "summer",
			DateRanges: []daterange.DateRange{
				{ID: "a", Start: "2025-07-01", End: "2025-07-25"},
				{ID: "b", Start: "2025-07-20", End: "2025-08-05"},
			},
		}
		assert.ErrorIs(t, se.Validate(), ErrOverlappingRanges)
	})
}

func TestEndingWithin(t *testing.T) {
	seasons := []Season{
		{ID: "default", Name: "base", IsDefault: true},
		{ID: "soon", Name: "soon", DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-10-01", End: "2025-10-20"}}},
		{ID: "later", Name: "later", DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-11-01", End: "2025-12-31"}}},
		{ID: "past", Name: "past", DateRanges: []daterange.DateRange{{ID: "r", Start: "2025-08-01", End: "2025-09-30"}}},
	}

	ending := EndingWithin(seasons, "2025-10-06", 30)
	require.Len(t, ending, 1)
	assert.Equal(t, "soon", ending[0].ID)

	ending = EndingWithin(seasons, "2025-10-06", 90)
	assert.Len(t, ending, 2)
}
