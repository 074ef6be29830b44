package rates

import (
	"errors"
	"time"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/dates"
)

// ErrNoApplicableSeason signals a data-integrity gap: the date matched no
// season and the store carries no default season. Every date must resolve to
// some season, so this is surfaced loudly instead of pricing the night at 0.
var ErrNoApplicableSeason = errors.New("rates: no applicable season for date")

// ManualPrice is a single-date, single-room, single-channel override. It
// always beats season pricing and lives until explicitly deleted.
type ManualPrice struct {
	ID               string                    `json:"id"`
	Date             string                    `json:"date"`
	RoomID           string                    `json:"roomId"`
	Channel          rooms.Channel             `json:"channel"`
	Price            int                       `json:"price"`
	ExtraPersonPrice *pricing.ExtraPersonPrice `json:"extraPersonPrices,omitempty"`
	Reason           string                    `json:"reason,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

// Snapshot is an immutable view of the store's state. All resolution
// functions are pure reads over one snapshot; they never mutate it.
type Snapshot struct {
	Rooms        []rooms.Room
	Seasons      []season.Season
	ManualPrices []ManualPrice
	Holidays     dates.Holidays
}

// RoomByID looks a room up in the snapshot.
func (s Snapshot) RoomByID(id string) (rooms.Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return rooms.Room{}, false
}

// DefaultSeason returns the catch-all base-rate season.
func (s Snapshot) DefaultSeason() (season.Season, bool) {
	for _, se := range s.Seasons {
		if se.IsDefault {
			return se, true
		}
	}
	return season.Season{}, false
}

// ManualPriceFor finds the override matching date, room and channel exactly.
func (s Snapshot) ManualPriceFor(date, roomID string, ch rooms.Channel) (ManualPrice, bool) {
	for _, mp := range s.ManualPrices {
		if mp.Date == date && mp.RoomID == roomID && mp.Channel == ch {
			return mp, true
		}
	}
	return ManualPrice{}, false
}

// HasManualPriceOn reports whether any override exists for the date,
// regardless of room or channel.
func (s Snapshot) HasManualPriceOn(date string) bool {
	for _, mp := range s.ManualPrices {
		if mp.Date == date {
			return true
		}
	}
	return false
}

// SeasonFor selects the season governing a date: the first non-default
// season containing the date, in stored order, else the default season.
// Stored order is deterministic because the store rejects edits that would
// let two non-default seasons cover the same date.
func SeasonFor(snap Snapshot, date string) (season.Season, bool) {
	for _, se := range snap.Seasons {
		if se.IsDefault {
			continue
		}
		if se.ContainsDate(date) {
			return se, true
		}
	}
	return snap.DefaultSeason()
}

// ResolvePrice returns the effective nightly rate for a date, room and
// channel.
//
// Precedence: a manual override wins outright; otherwise the governing
// season's day-type slot applies, recomputed against the default season's
// slot when the entry is configured as percentage-relative. A room/channel
// pair the season does not price resolves to 0, a soft condition rather than
// an error. A date with no governing season at all is ErrNoApplicableSeason.
func ResolvePrice(snap Snapshot, date, roomID string, ch rooms.Channel) (int, error) {
	if mp, ok := snap.ManualPriceFor(date, roomID, ch); ok {
		return mp.Price, nil
	}

	se, ok := SeasonFor(snap, date)
	if !ok {
		return 0, ErrNoApplicableSeason
	}

	rp, ok := se.PriceFor(roomID, ch)
	if !ok {
		return 0, nil
	}

	dayType, err := dates.DayTypeOf(date, snap.Holidays)
	if err != nil {
		return 0, err
	}
	price := rp.DayPrices.For(dayType)

	if cfg := rp.Config.For(dayType); cfg != nil && cfg.Method == pricing.Percentage {
		// Percentage entries are relative to the default season's rate for
		// the same slot. A missing base falls back to the stored day price.
		if def, ok := snap.DefaultSeason(); ok {
			if base, ok := def.PriceFor(roomID, ch); ok {
				price = pricing.FromPercentage(base.DayPrices.For(dayType), cfg.Value)
			}
		}
	}

	return price, nil
}

// AppliedRule explains why a resolved price has its value.
type AppliedRule string

const (
	RuleManual  AppliedRule = "manual"
	RuleSeason  AppliedRule = "season"
	RuleDefault AppliedRule = "default"
)

// Classify is the single applied-rule classification every display surface
// consumes: manual when an override matched, season when a non-default
// season governs the date, default otherwise.
func Classify(hasManual bool, governing season.Season) AppliedRule {
	switch {
	case hasManual:
		return RuleManual
	case !governing.IsDefault && governing.ID != "":
		return RuleSeason
	default:
		return RuleDefault
	}
}
