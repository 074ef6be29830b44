package daterange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rateboard/internal/domain/shared/dates"
)

func TestNew(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		dr, err := New("r1", "2025-04-01", "2025-05-31")
		require.NoError(t, err)
		assert.Equal(t, "r1", dr.ID)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		_, err := New("r1", "2025-04-01", "2025-04-01")
		assert.NoError(t, err)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := New("r1", "2025-05-31", "2025-04-01")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		_, err := New("r1", "04/01/2025", "2025-05-31")
		assert.ErrorIs(t, err, dates.ErrInvalidDate)
	})
}

func TestContainsDate(t *testing.T) {
	dr := DateRange{ID: "r", Start: "2025-07-01", End: "2025-07-25"}

	assert.True(t, dr.ContainsDate("2025-07-01"), "start is inclusive")
	assert.True(t, dr.ContainsDate("2025-07-25"), "end is inclusive")
	assert.True(t, dr.ContainsDate("2025-07-12"))
	assert.False(t, dr.ContainsDate("2025-06-30"))
	assert.False(t, dr.ContainsDate("2025-07-26"))
}

func TestOverlaps(t *testing.T) {
	spring := DateRange{ID: "a", Start: "2025-04-01", End: "2025-05-31"}
	earlySummer := DateRange{ID: "b", Start: "2025-05-15", End: "2025-06-10"}
	autumn := DateRange{ID: "c", Start: "2025-09-01", End: "2025-09-30"}
	inner := DateRange{ID: "d", Start: "2025-04-10", End: "2025-04-20"}

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, spring.Overlaps(earlySummer))
	})

	t.Run("containment counts as overlap", func(t *testing.T) {
		assert.True(t, spring.Overlaps(inner))
		assert.True(t, inner.Overlaps(spring))
	})

	t.Run("disjoint ranges", func(t *testing.T) {
		assert.False(t, spring.Overlaps(autumn))
	})

	t.Run("shared boundary day overlaps", func(t *testing.T) {
		touching := DateRange{ID: "e", Start: "2025-05-31", End: "2025-06-15"}
		assert.True(t, spring.Overlaps(touching))
	})

	t.Run("symmetry", func(t *testing.T) {
		pairs := [][2]DateRange{
			{spring, earlySummer},
			{spring, autumn},
			{spring, inner},
			{earlySummer, autumn},
		}
		for _, p := range pairs {
			assert.Equal(t, p[0].Overlaps(p[1]), p[1].Overlaps(p[0]))
		}
	})
}

func TestAnyOverlap(t *testing.T) {
	t.Run("detects one overlapping pair in a set", func(t *testing.T) {
		ranges := []DateRange{
			{ID: "a", Start: "2025-04-01", End: "2025-05-31"},
			{ID: "b", Start: "2025-07-01", End: "2025-07-25"},
			{ID: "c", Start: "2025-05-15", End: "2025-06-10"},
		}
		assert.True(t, AnyOverlap(ranges))
	})

	t.Run("clean set", func(t *testing.T) {
		ranges := []DateRange{
			{ID: "a", Start: "2025-04-01", End: "2025-05-31"},
			{ID: "b", Start: "2025-07-01", End: "2025-07-25"},
		}
		assert.False(t, AnyOverlap(ranges))
	})

	t.Run("empty and single-element sets", func(t *testing.T) {
		assert.False(t, AnyOverlap(nil))
		assert.False(t, AnyOverlap([]DateRange{{ID: "a", Start: "2025-01-01", End: "2025-12-31"}}))
	})
}
