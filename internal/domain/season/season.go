package season

import (
	"errors"
	"fmt"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/shared/daterange"
	"rateboard/internal/domain/shared/dates"
)

var (
	ErrEmptyName         = errors.New("season: name must not be empty")
	ErrOverlappingRanges = errors.New("season: date ranges overlap within the season")
	ErrNoRanges          = errors.New("season: at least one date range is required")
)

// RecurrenceType selects whether a season's ranges repeat.
type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceYearly RecurrenceType = "yearly"
)

// RecurrencePattern re-anchors a season's month-day windows onto every year
// in [StartYear, EndYear]; EndYear nil means open-ended.
type RecurrencePattern struct {
	Type      RecurrenceType `json:"type"`
	StartYear int            `json:"startYear,omitempty"`
	EndYear   *int           `json:"endYear,omitempty"`
}

// Priority is an informational urgency tag on a season. It does not take
// part in resolution: overlap between non-default seasons is rejected at the
// edit boundary, so no tie-break is ever needed.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RoomPrice is one season's rate card for a room on one channel.
type RoomPrice struct {
	RoomID           string                      `json:"roomId"`
	Channel          rooms.Channel               `json:"channel"`
	DayPrices        pricing.DayPrice            `json:"dayPrices"`
	ExtraPersonPrice pricing.DayExtraPersonPrice `json:"extraPersonPrices"`
	Config           *pricing.DayConfiguration   `json:"pricingConfig,omitempty"`
}

// Season is a named pricing period. Exactly one season in a store is the
// default: the catch-all base-rate season that applies to every date no other
// season claims.
type Season struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// StartDate/EndDate predate multi-range seasons and are only read when
	// DateRanges is empty.
	StartDate        string                `json:"startDate,omitempty"`
	EndDate          string                `json:"endDate,omitempty"`
	DateRanges       []daterange.DateRange `json:"dateRanges,omitempty"`
	Recurrence       *RecurrencePattern    `json:"recurrence,omitempty"`
	IsDefault        bool                  `json:"isDefault,omitempty"`
	Priority         Priority              `json:"priority,omitempty"`
	RoomPrices       []RoomPrice           `json:"roomPrices"`
	Description      string                `json:"description,omitempty"`
	NotifyBeforeDays int                   `json:"notifyBeforeDays,omitempty"`
}

// Ranges returns the season's configured ranges, falling back to the legacy
// single start/end pair when no multi-range list is set.
func (s Season) Ranges() []daterange.DateRange {
	if len(s.DateRanges) > 0 {
		return s.DateRanges
	}
	if s.StartDate == "" || s.EndDate == "" {
		return nil
	}
	return []daterange.DateRange{{ID: "legacy", Start: s.StartDate, End: s.EndDate}}
}

// ExpandRecurrence materializes abstract ranges for targetYear. With no
// pattern (or type none) the ranges come back unchanged. A yearly pattern
// outside its [StartYear, EndYear] bounds yields nothing. Otherwise each
// range keeps its month-day window and is re-anchored onto targetYear; a
// window whose re-anchored end lands before its start (Dec 20 → Jan 5 style)
// rolls the end date into the following year.
func ExpandRecurrence(ranges []daterange.DateRange, pattern *RecurrencePattern, targetYear int) []daterange.DateRange {
	if pattern == nil || pattern.Type != RecurrenceYearly {
		return ranges
	}
	if pattern.StartYear != 0 && targetYear < pattern.StartYear {
		return nil
	}
	if pattern.EndYear != nil && targetYear > *pattern.EndYear {
		return nil
	}
	out := make([]daterange.DateRange, 0, len(ranges))
	for _, r := range ranges {
		start := fmt.Sprintf("%04d-%s", targetYear, dates.MonthDay(r.Start))
		end := fmt.Sprintf("%04d-%s", targetYear, dates.MonthDay(r.End))
		if end < start {
			end = fmt.Sprintf("%04d-%s", targetYear+1, dates.MonthDay(r.End))
		}
		out = append(out, daterange.DateRange{ID: r.ID, Start: start, End: end})
	}
	return out
}

// EffectiveRanges is the season's concrete coverage for a calendar year.
func (s Season) EffectiveRanges(year int) []daterange.DateRange {
	return ExpandRecurrence(s.Ranges(), s.Recurrence, year)
}

// ContainsDate reports whether the date falls inside the season. The default
// season claims every date. Recurring seasons are probed for the date's own
// year and the year before it, so a window that rolled over a year boundary
// still matches its January tail.
func (s Season) ContainsDate(date string) bool {
	if s.IsDefault {
		return true
	}
	year, err := dates.Year(date)
	if err != nil {
		return false
	}
	for _, y := range []int{year - 1, year} {
		for _, r := range s.EffectiveRanges(y) {
			if r.ContainsDate(date) {
				return true
			}
		}
		if s.Recurrence == nil || s.Recurrence.Type != RecurrenceYearly {
			// Non-recurring ranges are absolute; one pass is enough.
			break
		}
	}
	return false
}

// Conflicts reports whether two seasons' expanded coverage around the year
// shares any date. Like ContainsDate, each season is expanded for the year and
// the year before it: a recurring window that rolls over a year boundary
// (Dec 20 → Jan 5) reaches into the next year's January, so comparing
// expansions of the same target year alone would miss a season sitting inside
// that tail. Default seasons never conflict.
func Conflicts(a, b Season, year int) bool {
	if a.IsDefault || b.IsDefault {
		return false
	}
	years := []int{year - 1, year}
	for _, ya := range years {
		for _, ra := range a.EffectiveRanges(ya) {
			for _, yb := range years {
				for _, rb := range b.EffectiveRanges(yb) {
					if ra.Overlaps(rb) {
						return true
					}
				}
			}
		}
	}
	return false
}

// Validate checks the season's own invariants: a name, well-formed ranges and
// no overlap between them. The default season is exempt from range checks
// since its coverage is unbounded.
func (s Season) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.IsDefault {
		return nil
	}
	ranges := s.Ranges()
	if len(ranges) == 0 {
		return ErrNoRanges
	}
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("season %q: %w", s.Name, err)
		}
	}
	if daterange.AnyOverlap(ranges) {
		return fmt.Errorf("%w: %q", ErrOverlappingRanges, s.Name)
	}
	return nil
}

// PriceFor returns the rate card for a room/channel pair, or false when the
// season does not price that combination.
func (s Season) PriceFor(roomID string, ch rooms.Channel) (RoomPrice, bool) {
	for _, rp := range s.RoomPrices {
		if rp.RoomID == roomID && rp.Channel == ch {
			return rp, true
		}
	}
	return RoomPrice{}, false
}

// LatestEnd returns the season's latest configured end date, ignoring
// recurrence. Empty for the default season or a season with no ranges.
func (s Season) LatestEnd() string {
	var latest string
	if s.IsDefault {
		return latest
	}
	for _, r := range s.Ranges() {
		if r.End > latest {
			latest = r.End
		}
	}
	return latest
}

// EndingWithin filters seasons whose latest end date falls inside the next
// `days` days from `today` (inclusive both ends). Backs the expiration alert.
func EndingWithin(seasons []Season, today string, days int) []Season {
	horizon, err := dates.AddDays(today, days)
	if err != nil {
		return nil
	}
	var out []Season
	for _, s := range seasons {
		end := s.LatestEnd()
		if end == "" {
			continue
		}
		if end >= today && end <= horizon {
			out = append(out, s)
		}
	}
	return out
}
