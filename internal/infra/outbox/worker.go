package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrWorkerNotConfigured = errors.New("outbox: worker missing dependencies")

// Producer is the broker side of the relay.
type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Worker drains the outbox and republishes records as CloudEvents on the
// broker, retrying failures with the configured backoff schedule.
type Worker struct {
	Store       *Store
	Producer    Producer
	Logger      *slog.Logger
	Interval    time.Duration
	TopicPrefix string
	Source      string
	Backoff     []time.Duration
}

func (w *Worker) Run(ctx context.Context) error {
	if w.Store == nil || w.Producer == nil {
		return ErrWorkerNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.processOnce(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *Worker) processOnce(ctx context.Context) error {
	rec, err := w.Store.Claim(ctx)
	if err != nil || rec == nil {
		return err
	}
	payload, err := w.formatPayload(rec)
	if err != nil {
		w.fail(ctx, rec, err)
		return nil
	}
	headers := map[string]string{"content-type": "application/cloudevents+json"}
	if rec.RequestID != "" {
		headers["request-id"] = rec.RequestID
	}
	topic := w.topicFor(rec.Name)
	if err := w.Producer.Publish(ctx, topic, rec.Aggregate, payload, headers); err != nil {
		w.fail(ctx, rec, err)
		return nil
	}
	return w.Store.MarkSent(ctx, rec.ID)
}

func (w *Worker) fail(ctx context.Context, rec *EventRecord, cause error) {
	if w.Logger != nil {
		w.Logger.Warn("outbox publish failed", "event", rec.Name, "id", rec.ID, "error", cause)
	}
	_ = w.Store.MarkFailed(ctx, rec.ID, w.nextRetry(rec.attempts), cause.Error())
}

func (w *Worker) formatPayload(rec *EventRecord) ([]byte, error) {
	data := map[string]any{}
	if err := json.Unmarshal(rec.Payload, &data); err != nil {
		return nil, err
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              uuid.NewString(),
		"type":            rec.Name + ".v1",
		"source":          w.source(),
		"time":            rec.OccurredAt,
		"datacontenttype": "application/json",
		"data":            data,
	}
	return json.Marshal(evt)
}

// topicFor maps "season.updated" to "<prefix>season.events.v1".
func (w *Worker) topicFor(name string) string {
	base := name
	if idx := strings.IndexRune(name, '.'); idx > 0 {
		base = name[:idx]
	}
	return w.TopicPrefix + base + ".events.v1"
}

func (w *Worker) interval() time.Duration {
	if w.Interval <= 0 {
		return 500 * time.Millisecond
	}
	return w.Interval
}

func (w *Worker) nextRetry(attempts int) time.Time {
	if attempts < len(w.Backoff) {
		return time.Now().Add(w.Backoff[attempts])
	}
	if len(w.Backoff) > 0 {
		return time.Now().Add(w.Backoff[len(w.Backoff)-1])
	}
	return time.Now().Add(5 * time.Second)
}

func (w *Worker) source() string {
	if w.Source != "" {
		return w.Source
	}
	return "app://rateboard"
}
