package rooms

// Channel is a sales outlet a room is sold through.
type Channel string

const (
	// ChannelReservation is the direct booking desk.
	ChannelReservation Channel = "reservation"
	// ChannelOnline covers third-party OTA listings.
	ChannelOnline Channel = "online"
)

// Valid reports whether the channel is one of the known outlets.
func (c Channel) Valid() bool {
	return c == ChannelReservation || c == ChannelOnline
}

// Room is a sellable unit. Rooms are immutable in this scope: the dashboard
// prices existing inventory, it does not manage it.
type Room struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	GroupID          string    `json:"groupId,omitempty"`
	StandardCapacity int       `json:"standardCapacity"`
	MaxCapacity      int       `json:"maxCapacity"`
	Channels         []Channel `json:"channels"`
	Description      string    `json:"description,omitempty"`
}

// SellsOn reports whether the room is sold through the given channel.
func (r Room) SellsOn(ch Channel) bool {
	for _, c := range r.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// Group is a named collection of rooms of the same type.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RoomIDs     []string `json:"roomIds"`
}
