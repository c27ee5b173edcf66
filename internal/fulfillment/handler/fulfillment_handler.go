// Package handler exposes the Lex code-hook contract over HTTP: one POST
// per conversation turn, one dialog directive per response.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pitabwire/util"

	"github.com/tripdesk/tripdesk/pkg/booking"
	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// Handler serves the fulfillment endpoint and the liveness probe.
type Handler struct {
	dispatcher *booking.Dispatcher
	refdata    *booking.Loader
}

// NewFulfillmentHandler creates the HTTP handler for the booking hook.
func NewFulfillmentHandler(dispatcher *booking.Dispatcher, refdata *booking.Loader) *Handler {
	return &Handler{dispatcher: dispatcher, refdata: refdata}
}

// RegisterRoutes registers all routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/fulfillment", h.Fulfill)
	mux.HandleFunc("GET /v1/healthz", h.Health)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// Fulfill handles POST /v1/fulfillment. Every well-formed turn payload
// yields exactly one directive; an unsupported intent is a configuration
// mismatch and fails the invocation.
func (h *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var ev lexmodel.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid turn payload")
		return
	}

	resp, err := h.dispatcher.Dispatch(r.Context(), &ev)
	if err != nil {
		switch {
		case errors.Is(err, lexmodel.ErrUnsupportedIntent):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, booking.ErrMissingIntent):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			util.Log(r.Context()).WithError(err).Error("fulfillment dispatch")
			writeError(w, http.StatusInternalServerError, "dispatch failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /v1/healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "ok",
		RefDataRevision: h.refdata.Revision(),
	})
}
