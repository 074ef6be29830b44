package rates

import (
	"math"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/shared/dates"
)

// RoomPriceInfo is one resolved room/channel entry inside a daily summary.
type RoomPriceInfo struct {
	RoomID           string                   `json:"roomId"`
	RoomName         string                   `json:"roomName"`
	Channel          rooms.Channel            `json:"channel"`
	Price            int                      `json:"price"`
	ExtraPersonPrice pricing.ExtraPersonPrice `json:"extraPersonPrices"`
	AppliedRule      AppliedRule              `json:"appliedRule"`
	SeasonName       string                   `json:"seasonName,omitempty"`
}

// DailyPriceInfo is the per-date summary all display surfaces (calendar,
// grid, table) render from.
type DailyPriceInfo struct {
	Date        string          `json:"date"`
	DayType     dates.DayType   `json:"dayOfWeek"`
	IsWeekend   bool            `json:"isWeekend"`
	IsHoliday   bool            `json:"isHoliday"`
	IsSoldOut   bool            `json:"isSoldOut"`
	AppliedRule AppliedRule     `json:"appliedRule"`
	SeasonID    string          `json:"seasonId,omitempty"`
	SeasonName  string          `json:"seasonName,omitempty"`
	MinPrice    int             `json:"minPrice"`
	MaxPrice    int             `json:"maxPrice"`
	AvgPrice    int             `json:"avgPrice"`
	RoomPrices  []RoomPriceInfo `json:"roomPrices"`
}

// DailyInfo composes the resolved prices of every filtered room × channel
// into one summary for the date. An empty roomFilter means all rooms.
//
// Aggregates only count entries with price > 0 so unconfigured room/channel
// pairs don't drag the minimum to zero; the average rounds to the nearest
// whole amount. The top-level rule is manual when any override exists on the
// date, else default/season by the governing season.
func DailyInfo(snap Snapshot, date string, roomFilter []string) (DailyPriceInfo, error) {
	dayType, err := dates.DayTypeOf(date, snap.Holidays)
	if err != nil {
		return DailyPriceInfo{}, err
	}
	weekend, err := dates.IsWeekend(date)
	if err != nil {
		return DailyPriceInfo{}, err
	}

	governing, hasSeason := SeasonFor(snap, date)
	if !hasSeason {
		return DailyPriceInfo{}, ErrNoApplicableSeason
	}

	selected := snap.Rooms
	if len(roomFilter) > 0 {
		filter := make(map[string]struct{}, len(roomFilter))
		for _, id := range roomFilter {
			filter[id] = struct{}{}
		}
		selected = selected[:0:0]
		for _, r := range snap.Rooms {
			if _, ok := filter[r.ID]; ok {
				selected = append(selected, r)
			}
		}
	}

	var entries []RoomPriceInfo
	for _, room := range selected {
		for _, ch := range room.Channels {
			price, err := ResolvePrice(snap, date, room.ID, ch)
			if err != nil {
				return DailyPriceInfo{}, err
			}

			_, hasManual := snap.ManualPriceFor(date, room.ID, ch)
			rule := Classify(hasManual, governing)

			var extra pricing.ExtraPersonPrice
			if rp, ok := governing.PriceFor(room.ID, ch); ok {
				extra = rp.ExtraPersonPrice.For(dayType)
			}

			entry := RoomPriceInfo{
				RoomID:           room.ID,
				RoomName:         room.Name,
				Channel:          ch,
				Price:            price,
				ExtraPersonPrice: extra,
				AppliedRule:      rule,
			}
			if rule == RuleSeason {
				entry.SeasonName = governing.Name
			}
			entries = append(entries, entry)
		}
	}

	minPrice, maxPrice, avgPrice := aggregate(entries)

	return DailyPriceInfo{
		Date:        date,
		DayType:     dayType,
		IsWeekend:   weekend,
		IsHoliday:   snap.Holidays.Contains(date),
		IsSoldOut:   false, // no inventory system wired in
		AppliedRule: Classify(snap.HasManualPriceOn(date), governing),
		SeasonID:    governing.ID,
		SeasonName:  governing.Name,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		AvgPrice:    avgPrice,
		RoomPrices:  entries,
	}, nil
}

func aggregate(entries []RoomPriceInfo) (minPrice, maxPrice, avgPrice int) {
	var sum, count int
	for _, e := range entries {
		if e.Price <= 0 {
			continue
		}
		if count == 0 || e.Price < minPrice {
			minPrice = e.Price
		}
		if e.Price > maxPrice {
			maxPrice = e.Price
		}
		sum += e.Price
		count++
	}
	if count == 0 {
		return 0, 0, 0
	}
	return minPrice, maxPrice, int(math.Round(float64(sum) / float64(count)))
}
