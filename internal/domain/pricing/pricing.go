package pricing

import (
	"math"

	"rateboard/internal/domain/shared/dates"
)

// DayPrice holds one nightly rate per pricing bucket. Rates are whole KRW.
type DayPrice struct {
	Weekday  int `json:"weekday"`
	Friday   int `json:"friday"`
	Saturday int `json:"saturday"`
	Sunday   int `json:"sunday"`
}

// For returns the slot matching the day type.
func (p DayPrice) For(dt dates.DayType) int {
	switch dt {
	case dates.Friday:
		return p.Friday
	case dates.Saturday:
		return p.Saturday
	case dates.Sunday:
		return p.Sunday
	default:
		return p.Weekday
	}
}

// ExtraPersonPrice is the surcharge per additional guest.
type ExtraPersonPrice struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
}

// DayExtraPersonPrice carries an extra-person triple per pricing bucket.
type DayExtraPersonPrice struct {
	Weekday  ExtraPersonPrice `json:"weekday"`
	Friday   ExtraPersonPrice `json:"friday"`
	Saturday ExtraPersonPrice `json:"saturday"`
	Sunday   ExtraPersonPrice `json:"sunday"`
}

// For returns the surcharge triple matching the day type.
func (p DayExtraPersonPrice) For(dt dates.DayType) ExtraPersonPrice {
	switch dt {
	case dates.Friday:
		return p.Friday
	case dates.Saturday:
		return p.Saturday
	case dates.Sunday:
		return p.Sunday
	default:
		return p.Weekday
	}
}

// Uniform builds a day table that charges the same triple every day type.
func Uniform(p ExtraPersonPrice) DayExtraPersonPrice {
	return DayExtraPersonPrice{Weekday: p, Friday: p, Saturday: p, Sunday: p}
}

// Method selects how a configured price value is interpreted.
type Method string

const (
	// Absolute stores the rate verbatim.
	Absolute Method = "absolute"
	// Percentage derives the rate from the default season's rate for the
	// same room, channel and day type.
	Percentage Method = "percentage"
)

// Configuration overrides how a single day-type slot is priced.
type Configuration struct {
	Method Method `json:"method"`
	Value  int    `json:"value"`
}

// DayConfiguration holds optional per-day-type configurations.
type DayConfiguration struct {
	Weekday  *Configuration `json:"weekday,omitempty"`
	Friday   *Configuration `json:"friday,omitempty"`
	Saturday *Configuration `json:"saturday,omitempty"`
	Sunday   *Configuration `json:"sunday,omitempty"`
}

// For returns the configuration for the day type, or nil when the slot uses
// the stored day price as-is.
func (c *DayConfiguration) For(dt dates.DayType) *Configuration {
	if c == nil {
		return nil
	}
	switch dt {
	case dates.Friday:
		return c.Friday
	case dates.Saturday:
		return c.Saturday
	case dates.Sunday:
		return c.Sunday
	default:
		return c.Weekday
	}
}

// FromPercentage derives a rate from a base rate and a relative percentage,
// rounded to the nearest whole amount.
func FromPercentage(base, percentage int) int {
	return int(math.Round(float64(base) * (1 + float64(percentage)/100)))
}

// ChangeType is a bulk price adjustment operation.
type ChangeType string

const (
	PercentageIncrease ChangeType = "percentage_increase"
	PercentageDecrease ChangeType = "percentage_decrease"
	AmountIncrease     ChangeType = "amount_increase"
	AmountDecrease     ChangeType = "amount_decrease"
	Fixed              ChangeType = "fixed"
)

// Valid reports whether the change type is a known operation.
func (c ChangeType) Valid() bool {
	switch c {
	case PercentageIncrease, PercentageDecrease, AmountIncrease, AmountDecrease, Fixed:
		return true
	}
	return false
}

// ApplyChange computes the adjusted rate. Percentage operations round to the
// nearest whole amount; amount operations add or subtract the literal value;
// fixed replaces the rate outright. An unknown operation leaves the rate
// untouched. Callers persisting the result as a manual price clamp at zero.
func ApplyChange(base int, op ChangeType, value int) int {
	switch op {
	case PercentageIncrease:
		return int(math.Round(float64(base) * (1 + float64(value)/100)))
	case PercentageDecrease:
		return int(math.Round(float64(base) * (1 - float64(value)/100)))
	case AmountIncrease:
		return base + value
	case AmountDecrease:
		return base - value
	case Fixed:
		return value
	default:
		return base
	}
}

// Clamp floors a rate at zero.
func Clamp(price int) int {
	if price < 0 {
		return 0
	}
	return price
}

// RoundTo rounds a rate to the nearest multiple of unit (e.g. 1000 or 10000
// for the round-figure helpers in the bulk edit form).
func RoundTo(price, unit int) int {
	if unit <= 0 {
		return price
	}
	return int(math.Round(float64(price)/float64(unit))) * unit
}
