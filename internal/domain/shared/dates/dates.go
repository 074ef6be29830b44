package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire and storage format for calendar dates. Zero-padded ISO
// dates compare correctly as plain strings, which the range engine relies on.
const Layout = "2006-01-02"

// MonthLayout is the format for month navigation values (YYYY-MM).
const MonthLayout = "2006-01"

var ErrInvalidDate = errors.New("dates: invalid date")

// Parse converts a YYYY-MM-DD string into a UTC time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Format renders a time as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddDays shifts an ISO date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// Year returns the calendar year of an ISO date.
func Year(date string) (int, error) {
	t, err := Parse(date)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// MonthDay returns the MM-DD portion of an ISO date.
func MonthDay(date string) string {
	if len(date) < len(Layout) {
		return ""
	}
	return date[5:]
}

// DayType is the pricing bucket a calendar date falls into.
type DayType string

const (
	Weekday  DayType = "weekday"
	Friday   DayType = "friday"
	Saturday DayType = "saturday"
	Sunday   DayType = "sunday"
)

// Holidays is a set of ISO dates treated as public holidays.
type Holidays map[string]struct{}

// DefaultHolidays covers the 2025 Korean public holidays the dashboard ships
// with. Callers may extend the set through configuration.
func DefaultHolidays() Holidays {
	days := []string{
		"2025-01-01", // New Year's Day
		"2025-03-01", // Independence Movement Day
		"2025-05-05", // Children's Day
		"2025-05-15", // Buddha's Birthday
		"2025-06-06", // Memorial Day
		"2025-08-15", // Liberation Day
		"2025-10-03", // National Foundation Day
		"2025-10-05", // Chuseok holiday
		"2025-10-06", // Chuseok
		"2025-10-07", // Chuseok holiday
		"2025-10-09", // Hangul Day
		"2025-12-25", // Christmas
	}
	set := make(Holidays, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the ISO date is in the holiday set.
func (h Holidays) Contains(date string) bool {
	_, ok := h[date]
	return ok
}

// Add inserts extra ISO dates into the set.
func (h Holidays) Add(days ...string) {
	for _, d := range days {
		h[d] = struct{}{}
	}
}

// DayTypeOf classifies a date into its pricing bucket. A date whose next
// calendar day is a holiday is bumped to saturday pricing regardless of its
// actual weekday; that override wins over the plain weekday mapping.
func DayTypeOf(date string, holidays Holidays) (DayType, error) {
	t, err := Parse(date)
	if err != nil {
		return Weekday, err
	}
	eve := Format(t.AddDate(0, 0, 1))
	if holidays.Contains(eve) {
		return Saturday, nil
	}
	switch t.Weekday() {
	case time.Saturday:
		return Saturday, nil
	case time.Sunday:
		return Sunday, nil
	case time.Friday:
		return Friday, nil
	default:
		return Weekday, nil
	}
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(date string) (bool, error) {
	t, err := Parse(date)
	if err != nil {
		return false, err
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}

// NextMonth advances a YYYY-MM value by one month.
func NextMonth(month string) (string, error) {
	t, err := parseMonth(month)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 1, 0).Format(MonthLayout), nil
}

// PrevMonth rewinds a YYYY-MM value by one month.
func PrevMonth(month string) (string, error) {
	t, err := parseMonth(month)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout), nil
}

func parseMonth(month string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, month, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q", ErrInvalidDate, month)
	}
	return t, nil
}

// DaysInMonth lists every ISO date of the given month.
func DaysInMonth(month string) ([]string, error) {
	first, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	next := first.AddDate(0, 1, 0)
	var days []string
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, Format(d))
	}
	return days, nil
}

// CalendarDays lists the dates of the month padded to full weeks with a
// Sunday start, the grid shape the dashboard calendar renders.
func CalendarDays(month string) ([]string, error) {
	first, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Format(d))
	}
	return days, nil
}
