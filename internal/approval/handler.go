package approval

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/pkg/handlers"
	"github.com/shipdesk/shipdesk/pkg/routes"
)

// Handler provides HTTP endpoints for manager workflow actions.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "approval"),
	}
}

// Routes returns the route group definition for approval endpoints.
// The group shares the order ledger's prefix; these are actions on
// existing records.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/orders",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{id}/dispatch", Handler: h.Dispatch},
			{Method: "POST", Pattern: "/{id}/enquiry", Handler: h.Enquire},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

// Dispatch sends a new-order email to the vendor for the record.
// The body is optional; an empty body uses the configured vendor.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd DispatchCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	o, err := h.sys.Dispatch(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

// Enquire sends a shipping-status request to the vendor for the record.
// The body is optional; an empty body uses the configured vendor.
func (h *Handler) Enquire(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd EnquiryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	o, err := h.sys.Enquire(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

// Approve closes the record as approved and reports notification outcomes.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Approve(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Reject closes the record as rejected and reports notification outcomes.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Reject(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, orders.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
