package rates

import (
	"time"

	"rateboard/internal/domain/rooms"
)

type ManualPriceSet struct {
	PriceID string        `json:"priceId"`
	Date    string        `json:"date"`
	RoomID  string        `json:"roomId"`
	Channel rooms.Channel `json:"channel"`
	Price   int           `json:"price"`
	At      time.Time     `json:"at"`
}

func (e ManualPriceSet) EventName() string     { return "rate.manual_set" }
func (e ManualPriceSet) AggregateID() string   { return e.RoomID }
func (e ManualPriceSet) OccurredAt() time.Time { return e.At }

type ManualPriceDeleted struct {
	PriceID string    `json:"priceId"`
	At      time.Time `json:"at"`
}

func (e ManualPriceDeleted) EventName() string     { return "rate.manual_deleted" }
func (e ManualPriceDeleted) AggregateID() string   { return e.PriceID }
func (e ManualPriceDeleted) OccurredAt() time.Time { return e.At }

type ManualPricesCleared struct {
	Removed int       `json:"removed"`
	At      time.Time `json:"at"`
}

func (e ManualPricesCleared) EventName() string     { return "rate.manual_cleared" }
func (e ManualPricesCleared) AggregateID() string   { return "all" }
func (e ManualPricesCleared) OccurredAt() time.Time { return e.At }
