package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rateboard/internal/domain/pricing"
	"rateboard/internal/domain/rates"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/dates"
	"rateboard/internal/domain/shared/events"
)

var (
	// ErrSeasonNotFound is returned when a season id cannot be located.
	ErrSeasonNotFound = errors.New("memory: season not found")
	// ErrManualPriceNotFound is returned when a manual price does not exist.
	ErrManualPriceNotFound = errors.New("memory: manual price not found")
	// ErrSeasonConflict rejects an edit whose expanded ranges overlap another
	// non-default season's.
	ErrSeasonConflict = errors.New("memory: season conflicts with an existing season")
	// ErrDefaultSeasonExists rejects a second default season.
	ErrDefaultSeasonExists = errors.New("memory: a default season already exists")
	// ErrDefaultSeasonRequired protects the catch-all season from removal.
	ErrDefaultSeasonRequired = errors.New("memory: exactly one default season is required")
	// ErrRoomNotFound is returned when a manual price targets unknown inventory.
	ErrRoomNotFound = errors.New("memory: room not found")
	// ErrChannelNotSold rejects prices on a channel the room is not sold through.
	ErrChannelNotSold = errors.New("memory: room is not sold on channel")
)

// EventSink receives domain events emitted by successful mutations.
type EventSink interface {
	Record(ctx context.Context, ev events.DomainEvent) error
}

// Store holds the dashboard state in memory. All mutations are serialized
// through its mutex, and reads hand out snapshots, so resolution stays a pure
// function over a consistent view. Stored values are replaced wholesale on
// update and never modified in place, which keeps snapshot copies shallow.
type Store struct {
	mu       sync.RWMutex
	rooms    []rooms.Room
	groups   []rooms.Group
	seasons  []season.Season
	manual   []rates.ManualPrice
	holidays dates.Holidays

	events EventSink
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithEventSink attaches a sink for mutation events.
func WithEventSink(sink EventSink) Option {
	return func(s *Store) { s.events = sink }
}

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithHolidays replaces the default holiday set.
func WithHolidays(h dates.Holidays) Option {
	return func(s *Store) { s.holidays = h }
}

// NewStore builds an empty store with the default holiday calendar.
func NewStore(opts ...Option) *Store {
	s := &Store{
		holidays: dates.DefaultHolidays(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a consistent read-only view of the current state.
func (s *Store) Snapshot() rates.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rates.Snapshot{
		Rooms:        append([]rooms.Room(nil), s.rooms...),
		Seasons:      append([]season.Season(nil), s.seasons...),
		ManualPrices: append([]rates.ManualPrice(nil), s.manual...),
		Holidays:     s.holidays,
	}
}

// Rooms lists the inventory.
func (s *Store) Rooms() []rooms.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]rooms.Room(nil), s.rooms...)
}

// Groups lists the room groups.
func (s *Store) Groups() []rooms.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]rooms.Group(nil), s.groups...)
}

// SetInventory replaces rooms and groups. Inventory is immutable at runtime
// in this scope; only seeding uses this.
func (s *Store) SetInventory(rs []rooms.Room, gs []rooms.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append([]rooms.Room(nil), rs...)
	s.groups = append([]rooms.Group(nil), gs...)
}

// AddSeason validates and appends a season. Non-default seasons must not
// overlap themselves or any other non-default season's expanded coverage;
// only one default season may exist.
func (s *Store) AddSeason(ctx context.Context, se season.Season) (rates.Snapshot, error) {
	s.mu.Lock()
	if se.ID == "" {
		se.ID = uuid.NewString()
	}
	if err := s.validateSeasonLocked(se, ""); err != nil {
		s.mu.Unlock()
		return rates.Snapshot{}, err
	}
	s.seasons = append(s.seasons, se)
	s.mu.Unlock()

	s.emit(ctx, season.Added{SeasonID: se.ID, Name: se.Name, At: s.now().UTC()})
	return s.Snapshot(), nil
}

// UpdateSeason replaces a season wholesale after re-validation. The only
// default season cannot be demoted.
func (s *Store) UpdateSeason(ctx context.Context, se season.Season) (rates.Snapshot, error) {
	s.mu.Lock()
	idx := s.seasonIndexLocked(se.ID)
	if idx < 0 {
		s.mu.Unlock()
		return rates.Snapshot{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, se.ID)
	}
	if s.seasons[idx].IsDefault && !se.IsDefault {
		s.mu.Unlock()
		return rates.Snapshot{}, ErrDefaultSeasonRequired
	}
	if err := s.validateSeasonLocked(se, se.ID); err != nil {
		s.mu.Unlock()
		return rates.Snapshot{}, err
	}
	s.seasons[idx] = se
	s.mu.Unlock()

	s.emit(ctx, season.Updated{SeasonID: se.ID, Name: se.Name, At: s.now().UTC()})
	return s.Snapshot(), nil
}

// DeleteSeason removes a non-default season.
func (s *Store) DeleteSeason(ctx context.Context, id string) (rates.Snapshot, error) {
	s.mu.Lock()
	idx := s.seasonIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return rates.Snapshot{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, id)
	}
	if s.seasons[idx].IsDefault {
		s.mu.Unlock()
		return rates.Snapshot{}, ErrDefaultSeasonRequired
	}
	s.seasons = append(s.seasons[:idx], s.seasons[idx+1:]...)
	s.mu.Unlock()

	s.emit(ctx, season.Deleted{SeasonID: id, At: s.now().UTC()})
	return s.Snapshot(), nil
}

// AddManualPrice validates and stores an override. An existing override for
// the same date/room/channel is replaced, matching the dashboard's edit
// semantics. Prices are clamped at zero.
func (s *Store) AddManualPrice(ctx context.Context, mp rates.ManualPrice) (rates.Snapshot, error) {
	if _, err := dates.Parse(mp.Date); err != nil {
		return rates.Snapshot{}, err
	}
	if !mp.Channel.Valid() {
		return rates.Snapshot{}, fmt.Errorf("%w: %q", ErrChannelNotSold, mp.Channel)
	}

	s.mu.Lock()
	room, ok := s.roomByIDLocked(mp.RoomID)
	if !ok {
		s.mu.Unlock()
		return rates.Snapshot{}, fmt.Errorf("%w: %s", ErrRoomNotFound, mp.RoomID)
	}
	if !room.SellsOn(mp.Channel) {
		s.mu.Unlock()
		return rates.Snapshot{}, fmt.Errorf("%w: %s on %s", ErrChannelNotSold, mp.RoomID, mp.Channel)
	}
	if mp.ID == "" {
		mp.ID = uuid.NewString()
	}
	if mp.CreatedAt.IsZero() {
		mp.CreatedAt = s.now().UTC()
	}
	mp.Price = pricing.Clamp(mp.Price)

	replaced := false
	for i, existing := range s.manual {
		if existing.Date == mp.Date && existing.RoomID == mp.RoomID && existing.Channel == mp.Channel {
			s.manual[i] = mp
			replaced = true
			break
		}
	}
	if !replaced {
		s.manual = append(s.manual, mp)
	}
	s.mu.Unlock()

	s.emit(ctx, rates.ManualPriceSet{
		PriceID: mp.ID,
		Date:    mp.Date,
		RoomID:  mp.RoomID,
		Channel: mp.Channel,
		Price:   mp.Price,
		At:      s.now().UTC(),
	})
	return s.Snapshot(), nil
}

// DeleteManualPrice removes one override by id.
func (s *Store) DeleteManualPrice(ctx context.Context, id string) (rates.Snapshot, error) {
	s.mu.Lock()
	idx := -1
	for i, mp := range s.manual {
		if mp.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return rates.Snapshot{}, fmt.Errorf("%w: %s", ErrManualPriceNotFound, id)
	}
	s.manual = append(s.manual[:idx], s.manual[idx+1:]...)
	s.mu.Unlock()

	s.emit(ctx, rates.ManualPriceDeleted{PriceID: id, At: s.now().UTC()})
	return s.Snapshot(), nil
}

// ClearManualPrices drops every override.
func (s *Store) ClearManualPrices(ctx context.Context) (rates.Snapshot, error) {
	s.mu.Lock()
	removed := len(s.manual)
	s.manual = nil
	s.mu.Unlock()

	if removed > 0 {
		s.emit(ctx, rates.ManualPricesCleared{Removed: removed, At: s.now().UTC()})
	}
	return s.Snapshot(), nil
}

func (s *Store) seasonIndexLocked(id string) int {
	for i, se := range s.seasons {
		if se.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) roomByIDLocked(id string) (rooms.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return rooms.Room{}, false
}

// validateSeasonLocked runs the edit-boundary checks: the season's own
// invariants, the single-default rule, and cross-season conflict over every
// year the candidate can cover.
func (s *Store) validateSeasonLocked(se season.Season, excludeID string) error {
	if err := se.Validate(); err != nil {
		return err
	}
	if se.IsDefault {
		for _, existing := range s.seasons {
			if existing.IsDefault && existing.ID != excludeID {
				return ErrDefaultSeasonExists
			}
		}
		return nil
	}
	years := conflictYears(se)
	for _, existing := range s.seasons {
		if existing.ID == excludeID {
			continue
		}
		for _, year := range years {
			if season.Conflicts(se, existing, year) {
				return fmt.Errorf("%w: %q overlaps %q in %d", ErrSeasonConflict, se.Name, existing.Name, year)
			}
		}
	}
	return nil
}

// conflictLookaheadYears bounds the horizon probed for open-ended yearly
// recurrences.
const conflictLookaheadYears = 5

// conflictYears lists the calendar years a season's coverage must be checked
// against. Concrete ranges contribute their own start/end years; a yearly
// recurrence contributes its bounded window, capped for open-ended patterns.
func conflictYears(se season.Season) []int {
	seen := map[int]struct{}{}
	var out []int
	add := func(y int) {
		if y <= 0 {
			return
		}
		if _, ok := seen[y]; ok {
			return
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}

	for _, r := range se.Ranges() {
		if y, err := dates.Year(r.Start); err == nil {
			add(y)
		}
		if y, err := dates.Year(r.End); err == nil {
			add(y)
		}
	}

	if se.Recurrence != nil && se.Recurrence.Type == season.RecurrenceYearly {
		first := se.Recurrence.StartYear
		if first == 0 && len(out) > 0 {
			first = out[0]
		}
		last := first + conflictLookaheadYears
		if se.Recurrence.EndYear != nil && *se.Recurrence.EndYear < last {
			last = *se.Recurrence.EndYear
		}
		for y := first; y <= last; y++ {
			add(y)
		}
	}
	return out
}

func (s *Store) emit(ctx context.Context, ev events.DomainEvent) {
	if s.events == nil {
		return
	}
	// Event delivery is best-effort; the mutation has already committed.
	_ = s.events.Record(ctx, ev)
}
