package events

import "testing"

func TestEmitWithoutQueueIsNoop(t *testing.T) {
	// Handlers call Emit unconditionally; without a queue manager the call
	// must succeed and do nothing.
	var nilPub *Publisher
	if err := nilPub.Emit(t.Context(), TurnDispatched, "sess-1", nil); err != nil {
		t.Errorf("nil publisher Emit: %v", err)
	}

	pub := NewPublisher(nil, "fulfillment", "events")
	err := pub.Emit(t.Context(), PriceQuoted, "sess-1", &PriceQuotedData{
		ReservationType: "Hotel",
		Location:        "chicago",
		Price:           720,
	})
	if err != nil {
		t.Errorf("publisher without queue manager Emit: %v", err)
	}
}
