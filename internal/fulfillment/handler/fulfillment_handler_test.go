package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tripdesk/tripdesk/pkg/booking"
	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	loader, err := booking.NewLoader("")
	if err != nil {
		t.Fatalf("loading reference data: %v", err)
	}
	clock := booking.FixedClock(time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC))
	dispatcher := booking.NewDispatcher(loader, clock, nil)

	mux := http.NewServeMux()
	NewFulfillmentHandler(dispatcher, loader).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postTurn(t *testing.T, srv *httptest.Server, ev *lexmodel.Event) *http.Response {
	t.Helper()
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshaling turn: %v", err)
	}
	resp, err := http.Post(srv.URL+"/v1/fulfillment", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("posting turn: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestFulfillHotelTurn(t *testing.T) {
	srv := newTestServer(t)

	ev := &lexmodel.Event{
		SessionID:        "sess-1",
		InvocationSource: lexmodel.InvocationDialogCodeHook,
		SessionState: lexmodel.SessionState{
			Intent: &lexmodel.Intent{
				Name:              lexmodel.IntentBookHotel,
				State:             lexmodel.StateInProgress,
				ConfirmationState: lexmodel.ConfirmationNone,
				Slots: map[string]*lexmodel.Slot{
					lexmodel.SlotLocation:    lexmodel.NewScalarSlot("chicago"),
					lexmodel.SlotCheckInDate: lexmodel.NewScalarSlot("2024-05-05"),
					lexmodel.SlotNights:      lexmodel.NewScalarSlot("3"),
					lexmodel.SlotRoomType:    lexmodel.NewScalarSlot("king"),
				},
			},
		},
	}

	resp := postTurn(t, srv, ev)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var directive lexmodel.Response
	if err := json.NewDecoder(resp.Body).Decode(&directive); err != nil {
		t.Fatalf("decoding directive: %v", err)
	}
	if got := directive.SessionState.DialogAction.Type; got != lexmodel.ActionDelegate {
		t.Errorf("dialog action = %s, want Delegate", got)
	}
	if directive.SessionState.SessionAttributes["currentReservationPrice"] == "" {
		t.Error("no price quoted in session attributes")
	}
}

func TestFulfillBadPayload(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/fulfillment", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("posting: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFulfillMissingIntent(t *testing.T) {
	srv := newTestServer(t)

	resp := postTurn(t, srv, &lexmodel.Event{SessionID: "sess-1"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFulfillUnsupportedIntent(t *testing.T) {
	srv := newTestServer(t)

	ev := &lexmodel.Event{
		SessionID:        "sess-1",
		InvocationSource: lexmodel.InvocationDialogCodeHook,
		SessionState: lexmodel.SessionState{
			Intent: &lexmodel.Intent{Name: "OrderPizza"},
		},
	}
	resp := postTurn(t, srv, ev)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Error == "" {
		t.Error("error body is empty")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/healthz")
	if err != nil {
		t.Fatalf("getting health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding health body: %v", err)
	}
	if body.Status != "ok" || body.RefDataRevision == "" {
		t.Errorf("health body = %+v", body)
	}
}
