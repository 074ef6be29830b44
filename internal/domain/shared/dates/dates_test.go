package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTypeOf(t *testing.T) {
	holidays := DefaultHolidays()

	t.Run("monday through thursday are weekday", func(t *testing.T) {
		for _, day := range []string{"2025-09-01", "2025-09-02", "2025-09-03", "2025-09-04"} {
			dt, err := DayTypeOf(day, holidays)
			require.NoError(t, err)
			assert.Equal(t, Weekday, dt, day)
		}
	})

	t.Run("friday saturday sunday map to their buckets", func(t *testing.T) {
		fri, err := DayTypeOf("2025-09-05", holidays)
		require.NoError(t, err)
		assert.Equal(t, Friday, fri)

		sat, err := DayTypeOf("2025-09-06", holidays)
		require.NoError(t, err)
		assert.Equal(t, Saturday, sat)

		sun, err := DayTypeOf("2025-09-07", holidays)
		require.NoError(t, err)
		assert.Equal(t, Sunday, sun)
	})

	t.Run("holiday eve is priced as saturday", func(t *testing.T) {
		// 2025-10-02 is a Thursday, but 2025-10-03 is a holiday.
		dt, err := DayTypeOf("2025-10-02", holidays)
		require.NoError(t, err)
		assert.Equal(t, Saturday, dt)

		// Christmas eve 2025 falls on a Wednesday.
		dt, err = DayTypeOf("2025-12-24", holidays)
		require.NoError(t, err)
		assert.Equal(t, Saturday, dt)
	})

	t.Run("eve override beats the friday bucket", func(t *testing.T) {
		custom := DefaultHolidays()
		custom.Add("2025-09-06")
		dt, err := DayTypeOf("2025-09-05", custom)
		require.NoError(t, err)
		assert.Equal(t, Saturday, dt)
	})

	t.Run("invalid date errors", func(t *testing.T) {
		_, err := DayTypeOf("2025-13-40", holidays)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestHolidayAndWeekendChecks(t *testing.T) {
	holidays := DefaultHolidays()

	assert.True(t, holidays.Contains("2025-10-06"))
	assert.False(t, holidays.Contains("2025-10-01"))

	weekend, err := IsWeekend("2025-10-04")
	require.NoError(t, err)
	assert.True(t, weekend)

	weekend, err = IsWeekend("2025-10-01")
	require.NoError(t, err)
	assert.False(t, weekend)
}

func TestMonthNavigation(t *testing.T) {
	next, err := NextMonth("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)

	prev, err := PrevMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)

	_, err = NextMonth("not-a-month")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCalendarDays(t *testing.T) {
	t.Run("pads to full weeks with sunday start", func(t *testing.T) {
		days, err := CalendarDays("2025-10")
		require.NoError(t, err)
		require.Len(t, days, 35)
		assert.Equal(t, "2025-09-28", days[0]) // Sunday before Oct 1 (Wed)
		assert.Equal(t, "2025-11-01", days[len(days)-1])
	})

	t.Run("month starting on sunday needs no leading pad", func(t *testing.T) {
		days, err := CalendarDays("2025-06")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", days[0])
	})
}

func TestDaysInMonth(t *testing.T) {
	days, err := DaysInMonth("2025-02")
	require.NoError(t, err)
	assert.Len(t, days, 28)

	days, err = DaysInMonth("2024-02")
	require.NoError(t, err)
	assert.Len(t, days, 29)
}

func TestAddDaysAndMonthDay(t *testing.T) {
	next, err := AddDays("2025-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", next)

	assert.Equal(t, "07-12", MonthDay("2025-07-12"))
}
