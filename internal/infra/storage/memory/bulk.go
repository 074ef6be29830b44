package memory

import (
	"context"
	"fmt"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rates"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/shared/daterange"
	"rateboard/internal/domain/shared/dates"
)

// BulkAdjustRequest describes a quick-change edit: one operation applied to
// every date in the range for the targeted rooms and channels. Empty RoomIDs
// means all rooms; empty Channels means every channel a room is sold on.
type BulkAdjustRequest struct {
	StartDate string
	EndDate   string
	Change    pricing.ChangeType
	Value     int
	RoomIDs   []string
	Channels  []rooms.Channel
	Reason    string
}

// BulkAdjust resolves the current effective price of each targeted
// date/room/channel, applies the operation, and persists the result as a
// manual price clamped at zero. Returns the number of overrides written.
//
// Resolution runs against the pre-adjustment snapshot so an earlier date in
// the batch never feeds into a later one.
func (s *Store) BulkAdjust(ctx context.Context, req BulkAdjustRequest) (rates.Snapshot, int, error) {
	if !req.Change.Valid() {
		return rates.Snapshot{}, 0, fmt.Errorf("memory: unknown change type %q", req.Change)
	}
	window, err := daterange.New("bulk", req.StartDate, req.EndDate)
	if err != nil {
		return rates.Snapshot{}, 0, err
	}

	snap := s.Snapshot()

	targets := snap.Rooms
	if len(req.RoomIDs) > 0 {
		wanted := make(map[string]struct{}, len(req.RoomIDs))
		for _, id := range req.RoomIDs {
			wanted[id] = struct{}{}
		}
		targets = targets[:0:0]
		for _, r := range snap.Rooms {
			if _, ok := wanted[r.ID]; ok {
				targets = append(targets, r)
			}
		}
	}

	var pending []rates.ManualPrice
	for date := window.Start; date <= window.End; {
		for _, room := range targets {
			for _, ch := range room.Channels {
				if len(req.Channels) > 0 && !containsChannel(req.Channels, ch) {
					continue
				}
				current, err := rates.ResolvePrice(snap, date, room.ID, ch)
				if err != nil {
					return rates.Snapshot{}, 0, err
				}
				adjusted := pricing.Clamp(pricing.ApplyChange(current, req.Change, req.Value))
				pending = append(pending, rates.ManualPrice{
					Date:    date,
					RoomID:  room.ID,
					Channel: ch,
					Price:   adjusted,
					Reason:  req.Reason,
				})
			}
		}
		next, err := dates.AddDays(date, 1)
		if err != nil {
			return rates.Snapshot{}, 0, err
		}
		date = next
	}

	for _, mp := range pending {
		if _, err := s.AddManualPrice(ctx, mp); err != nil {
			return rates.Snapshot{}, 0, err
		}
	}
	return s.Snapshot(), len(pending), nil
}

func containsChannel(set []rooms.Channel, ch rooms.Channel) bool {
	for _, c := range set {
		if c == ch {
			return true
		}
	}
	return false
}
