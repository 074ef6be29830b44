package memory

import (
	"context"
	"fmt"
	"math"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/daterange"
)

// Demo inventory: ten identical standard rooms sold on the reservation desk
// only, and ten detached villas sold on both channels with a price multiplier
// ladder. Mirrors the property the dashboard was built for.

var defaultExtras = pricing.ExtraPersonPrice{Adult: 20000, Child: 10000, Infant: 0}

// peak seasons charge 20% more per extra guest
var peakExtras = pricing.ExtraPersonPrice{Adult: 24000, Child: 12000, Infant: 0}

var standardBase = pricing.DayPrice{Weekday: 100000, Friday: 120000, Saturday: 350000, Sunday: 110000}

var villaMultipliers = []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 2.0}

// Seed populates the store with the demo rooms and seasons.
func Seed(ctx context.Context, s *Store) error {
	standard := make([]rooms.Room, 0, 10)
	group := rooms.Group{
		ID:          "group-standard",
		Name:        "스탠다드 객실",
		Description: "동일한 타입의 스탠다드 객실 10개",
	}
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("room-standard-%d", i)
		standard = append(standard, rooms.Room{
			ID:               id,
			Name:             fmt.Sprintf("%d호 스탠다드", 100+i),
			GroupID:          group.ID,
			StandardCapacity: 4,
			MaxCapacity:      6,
			Channels:         []rooms.Channel{rooms.ChannelReservation},
			Description:      "스탠다드 타입 객실",
		})
		group.RoomIDs = append(group.RoomIDs, id)
	}

	villaNames := []string{"독채A", "독채B", "독채C", "독채D", "독채E", "독채F", "독채G", "독채H", "독채I", "펜트하우스"}
	villas := make([]rooms.Room, 0, len(villaNames))
	for i, name := range villaNames {
		capStd := 6 + (i/2)*2
		villas = append(villas, rooms.Room{
			ID:               fmt.Sprintf("room-villa-%d", i+1),
			Name:             fmt.Sprintf("%d호 %s", 201+i, name),
			StandardCapacity: capStd,
			MaxCapacity:      capStd + 4 + i/3,
			Channels:         []rooms.Channel{rooms.ChannelReservation, rooms.ChannelOnline},
			Description:      "독채 타입 객실",
		})
	}

	all := append(append([]rooms.Room(nil), standard...), villas...)
	s.SetInventory(all, []rooms.Group{group})

	seasons := []season.Season{
		{
			ID:          "season-default",
			Name:        "기본 요금 (비수기)",
			IsDefault:   true,
			Description: "기본 요금",
			RoomPrices:  seasonPrices(standard, villas, 1.0, defaultExtras),
		},
		seasonalSeason("season-spring", "봄 시즌", "2025-04-01", "2025-05-31", 1.15, defaultExtras, standard, villas, yearlyFrom(2025)),
		seasonalSeason("season-summer", "여름 성수기", "2025-07-01", "2025-07-25", 1.3, peakExtras, standard, villas, yearlyFrom(2025)),
		seasonalSeason("season-peak-summer", "여름 극성수기", "2025-07-26", "2025-08-25", 1.5, peakExtras, standard, villas, yearlyFrom(2025)),
		seasonalSeason("season-chuseok", "추석 연휴", "2025-10-04", "2025-10-08", 1.4, peakExtras, standard, villas, nil),
	}

	for _, se := range seasons {
		if _, err := s.AddSeason(ctx, se); err != nil {
			return fmt.Errorf("memory: seeding season %q: %w", se.Name, err)
		}
	}
	return nil
}

func yearlyFrom(year int) *season.RecurrencePattern {
	return &season.RecurrencePattern{Type: season.RecurrenceYearly, StartYear: year}
}

func seasonalSeason(id, name, start, end string, markup float64, extras pricing.ExtraPersonPrice, standard, villas []rooms.Room, rec *season.RecurrencePattern) season.Season {
	return season.Season{
		ID:   id,
		Name: name,
		DateRanges: []daterange.DateRange{
			{ID: id + "-range-1", Start: start, End: end},
		},
		Recurrence:  rec,
		Description: fmt.Sprintf("비수기 대비 %d%% 할증", int(math.Round((markup-1)*100))),
		RoomPrices:  seasonPrices(standard, villas, markup, extras),
	}
}

func seasonPrices(standard, villas []rooms.Room, markup float64, extras pricing.ExtraPersonPrice) []season.RoomPrice {
	prices := make([]season.RoomPrice, 0, len(standard)+2*len(villas))
	for _, room := range standard {
		prices = append(prices, season.RoomPrice{
			RoomID:           room.ID,
			Channel:          rooms.ChannelReservation,
			DayPrices:        scalePrices(standardBase, markup),
			ExtraPersonPrice: pricing.Uniform(extras),
		})
	}
	villaBase := pricing.DayPrice{Weekday: 400000, Friday: 480000, Saturday: 1400000, Sunday: 440000}
	for i, room := range villas {
		base := scalePrices(villaBase, villaMultipliers[i]*markup)
		prices = append(prices, season.RoomPrice{
			RoomID:           room.ID,
			Channel:          rooms.ChannelReservation,
			DayPrices:        base,
			ExtraPersonPrice: pricing.Uniform(extras),
		})
		// online listings undercut the desk rate by 10%
		prices = append(prices, season.RoomPrice{
			RoomID:           room.ID,
			Channel:          rooms.ChannelOnline,
			DayPrices:        scalePrices(base, 0.9),
			ExtraPersonPrice: pricing.Uniform(extras),
		})
	}
	return prices
}

func scalePrices(base pricing.DayPrice, factor float64) pricing.DayPrice {
	scale := func(v int) int { return int(math.Round(float64(v) * factor)) }
	return pricing.DayPrice{
		Weekday:  scale(base.Weekday),
		Friday:   scale(base.Friday),
		Saturday: scale(base.Saturday),
		Sunday:   scale(base.Sunday),
	}
}
