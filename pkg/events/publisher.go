// Package events publishes typed observability events for every dispatched
// turn. A queue failure is never allowed to fail the invocation that
// produced the event.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pitabwire/frame/queue"
	"github.com/rs/xid"
)

// Publisher wraps frame's queue manager to emit typed events.
type Publisher struct {
	queueMgr queue.Manager
	source   string
	queueRef string
}

// NewPublisher creates a publisher that emits events to the given queue
// reference.
func NewPublisher(queueMgr queue.Manager, source string, queueRef string) *Publisher {
	return &Publisher{
		queueMgr: queueMgr,
		source:   source,
		queueRef: queueRef,
	}
}

// Emit publishes a typed event to the event bus. A nil publisher is a
// no-op, so callers in tests need no wiring.
func (p *Publisher) Emit(ctx context.Context, eventType EventType, sessionID string, data any) error {
	if p == nil || p.queueMgr == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	envelope := Envelope{
		ID:        xid.New().String(),
		Type:      eventType,
		Source:    p.source,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}

	if err := p.queueMgr.Publish(ctx, p.queueRef, envelope); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			slog.String("event_type", string(eventType)), slog.String("error", err.Error()))
		return err
	}
	return nil
}
