package season

import "time"

type Added struct {
	SeasonID string    `json:"seasonId"`
	Name     string    `json:"name"`
	At       time.Time `json:"at"`
}

func (e Added) EventName() string     { return "season.added" }
func (e Added) AggregateID() string   { return e.SeasonID }
func (e Added) OccurredAt() time.Time { return e.At }

type Updated struct {
	SeasonID string    `json:"seasonId"`
	Name     string    `json:"name"`
	At       time.Time `json:"at"`
}

func (e Updated) EventName() string     { return "season.updated" }
func (e Updated) AggregateID() string   { return e.SeasonID }
func (e Updated) OccurredAt() time.Time { return e.At }

type Deleted struct {
	SeasonID string    `json:"seasonId"`
	At       time.Time `json:"at"`
}

func (e Deleted) EventName() string     { return "season.deleted" }
func (e Deleted) AggregateID() string   { return e.SeasonID }
func (e Deleted) OccurredAt() time.Time { return e.At }
