package daterange

import (
	"errors"
	"fmt"

	"rateboard/internal/domain/shared/dates"
)

var ErrInvalidRange = errors.New("daterange: end date must not precede start date")

// DateRange is an inclusive calendar interval [Start, End], both ends ISO
// YYYY-MM-DD strings. Zero-padded ISO dates order lexicographically, so the
// containment and overlap checks below work on the raw strings.
type DateRange struct {
	ID    string `json:"id"`
	Start string `json:"startDate"`
	End   string `json:"endDate"`
}

func New(id, start, end string) (DateRange, error) {
	dr := DateRange{ID: id, Start: start, End: end}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if _, err := dates.Parse(dr.Start); err != nil {
		return err
	}
	if _, err := dates.Parse(dr.End); err != nil {
		return err
	}
	if dr.End < dr.Start {
		return fmt.Errorf("%w: %s..%s", ErrInvalidRange, dr.Start, dr.End)
	}
	return nil
}

// ContainsDate reports whether the ISO date falls inside the range, ends
// included.
func (dr DateRange) ContainsDate(date string) bool {
	return date >= dr.Start && date <= dr.End
}

// Overlaps reports whether two inclusive ranges share at least one date.
// Symmetric by construction.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.Start <= other.End && other.Start <= dr.End
}

// AnyOverlap reports whether any pair in the set overlaps. Quadratic, which
// is fine for the tens of ranges a season carries.
func AnyOverlap(ranges []DateRange) bool {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				return true
			}
		}
	}
	return false
}
