package intake

import (
	"log/slog"
	"net/http"

	"github.com/shipdesk/shipdesk/pkg/handlers"
	"github.com/shipdesk/shipdesk/pkg/routes"
)

// Handler provides HTTP endpoints for triggering intake passes on demand.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "intake"),
	}
}

// Routes returns the route group definition for intake endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/intake",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/customers", Handler: h.Customers},
			{Method: "POST", Pattern: "/vendors", Handler: h.Vendors},
		},
	}
}

// Customers runs one customer intake pass and returns its summary.
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	run, err := h.sys.ProcessCustomers(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, run)
}

// Vendors runs one vendor intake pass and returns its summary.
func (h *Handler) Vendors(w http.ResponseWriter, r *http.Request) {
	run, err := h.sys.ProcessVendors(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, run)
}
