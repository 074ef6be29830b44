package dto

import (
	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rates"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/infra/storage/memory"
)

type ManualPriceRequest struct {
	Date             string                    `json:"date" binding:"required"`
	RoomID           string                    `json:"roomId" binding:"required"`
	Channel          string                    `json:"channel" binding:"required,oneof=reservation online"`
	Price            int                       `json:"price"`
	ExtraPersonPrice *pricing.ExtraPersonPrice `json:"extraPersonPrices"`
	Reason           string                    `json:"reason"`
}

func (r ManualPriceRequest) ToManualPrice() rates.ManualPrice {
	return rates.ManualPrice{
		Date:             r.Date,
		RoomID:           r.RoomID,
		Channel:          rooms.Channel(r.Channel),
		Price:            r.Price,
		ExtraPersonPrice: r.ExtraPersonPrice,
		Reason:           r.Reason,
	}
}

type BulkAdjustRequest struct {
	StartDate  string   `json:"startDate" binding:"required"`
	EndDate    string   `json:"endDate" binding:"required"`
	ChangeType string   `json:"changeType" binding:"required,oneof=percentage_increase percentage_decrease amount_increase amount_decrease fixed"`
	Value      int      `json:"value"`
	RoomIDs    []string `json:"targetRoomIds"`
	Channels   []string `json:"targetChannels"`
	Reason     string   `json:"reason"`
}

func (r BulkAdjustRequest) ToStoreRequest() memory.BulkAdjustRequest {
	req := memory.BulkAdjustRequest{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Change:    pricing.ChangeType(r.ChangeType),
		Value:     r.Value,
		RoomIDs:   r.RoomIDs,
		Reason:    r.Reason,
	}
	for _, ch := range r.Channels {
		req.Channels = append(req.Channels, rooms.Channel(ch))
	}
	return req
}

type ResolvedPrice struct {
	Date    string `json:"date"`
	RoomID  string `json:"roomId"`
	Channel string `json:"channel"`
	Price   int    `json:"price"`
}

type BulkAdjustResult struct {
	Written int `json:"written"`
}
