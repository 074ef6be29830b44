package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"rateboard/internal/domain/shared/events"
	"rateboard/internal/infra/obs"
)

// EventRecord is the stored form of a domain event awaiting relay. RequestID
// carries the id of the HTTP request whose mutation produced the event, when
// there was one.
type EventRecord struct {
	ID         string
	Name       string
	Payload    []byte
	OccurredAt time.Time
	Aggregate  string
	RequestID  string

	attempts    int
	nextAttempt time.Time
	claimed     bool
	lastError   string
}

// Sink encodes domain events and appends them to a Store. It satisfies the
// memory store's EventSink.
type Sink struct {
	Store *Store
}

func (s Sink) Record(ctx context.Context, ev events.DomainEvent) error {
	if s.Store == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Store.Add(ctx, EventRecord{
		ID:         uuid.NewString(),
		Name:       ev.EventName(),
		Payload:    payload,
		OccurredAt: ev.OccurredAt(),
		Aggregate:  ev.AggregateID(),
		RequestID:  obs.RequestIDFromContext(ctx),
	})
}

// Store keeps pending event records in memory with claim/ack semantics so
// the relay worker can retry failed publishes.
type Store struct {
	mu      sync.Mutex
	records []*EventRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(ctx context.Context, rec EventRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.nextAttempt = time.Now().UTC()
	s.records = append(s.records, &rec)
	return nil
}

// Claim hands out the oldest unsent record that is due for an attempt.
func (s *Store) Claim(ctx context.Context) (*EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for _, rec := range s.records {
		if rec.claimed || rec.nextAttempt.After(now) {
			continue
		}
		rec.claimed = true
		out := *rec
		return &out, nil
	}
	return nil, nil
}

// MarkSent drops a delivered record.
func (s *Store) MarkSent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// MarkFailed schedules a record for another attempt.
func (s *Store) MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID == id {
			rec.claimed = false
			rec.attempts++
			rec.nextAttempt = next
			rec.lastError = errMsg
			return nil
		}
	}
	return ErrRecordNotFound
}

// Pending reports how many records await delivery.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

var ErrRecordNotFound = errors.New("outbox: record not found")
