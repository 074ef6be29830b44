package dto

import (
	"github.com/google/uuid"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/daterange"
)

type DateRangeRequest struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type RecurrenceRequest struct {
	Type      string `json:"type" binding:"required,oneof=none yearly"`
	StartYear int    `json:"startYear"`
	EndYear   *int   `json:"endYear"`
}

type RoomPriceRequest struct {
	RoomID           string                      `json:"roomId" binding:"required"`
	Channel          string                      `json:"channel" binding:"required,oneof=reservation online"`
	DayPrices        pricing.DayPrice            `json:"dayPrices"`
	ExtraPersonPrice pricing.DayExtraPersonPrice `json:"extraPersonPrices"`
	Config           *pricing.DayConfiguration   `json:"pricingConfig"`
}

type SeasonRequest struct {
	Name             string             `json:"name" binding:"required"`
	DateRanges       []DateRangeRequest `json:"dateRanges"`
	Recurrence       *RecurrenceRequest `json:"recurrence"`
	IsDefault        bool               `json:"isDefault"`
	Priority         string             `json:"priority" binding:"omitempty,oneof=low medium high"`
	RoomPrices       []RoomPriceRequest `json:"roomPrices"`
	Description      string             `json:"description"`
	NotifyBeforeDays int                `json:"notifyBeforeDays"`
}

// ToSeason maps the request onto the domain aggregate, minting ids for the
// season and any range that arrived without one.
func (r SeasonRequest) ToSeason(id string) season.Season {
	if id == "" {
		id = uuid.NewString()
	}
	se := season.Season{
		ID:               id,
		Name:             r.Name,
		IsDefault:        r.IsDefault,
		Priority:         season.Priority(r.Priority),
		Description:      r.Description,
		NotifyBeforeDays: r.NotifyBeforeDays,
	}
	for _, rr := range r.DateRanges {
		rangeID := rr.ID
		if rangeID == "" {
			rangeID = uuid.NewString()
		}
		se.DateRanges = append(se.DateRanges, daterange.DateRange{ID: rangeID, Start: rr.StartDate, End: rr.EndDate})
	}
	if r.Recurrence != nil {
		se.Recurrence = &season.RecurrencePattern{
			Type:      season.RecurrenceType(r.Recurrence.Type),
			StartYear: r.Recurrence.StartYear,
			EndYear:   r.Recurrence.EndYear,
		}
	}
	for _, rp := range r.RoomPrices {
		se.RoomPrices = append(se.RoomPrices, season.RoomPrice{
			RoomID:           rp.RoomID,
			Channel:          rooms.Channel(rp.Channel),
			DayPrices:        rp.DayPrices,
			ExtraPersonPrice: rp.ExtraPersonPrice,
			Config:           rp.Config,
		})
	}
	return se
}
