package orders

import (
	"errors"
	"net/http"
)

// Domain errors for order ledger operations.
var (
	ErrNotFound          = errors.New("order not found")
	ErrDuplicate         = errors.New("order already exists")
	ErrInvalidRecord     = errors.New("invalid order record")
	ErrInvalidStage      = errors.New("unknown lifecycle stage")
	ErrInvalidDecision   = errors.New("decision must be Approved or Rejected")
	ErrInvalidTransition = errors.New("stage transition not allowed")
	ErrAlreadyReconciled = errors.New("vendor reply already attached")
)

// MapHTTPStatus maps order domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrAlreadyReconciled):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRecord),
		errors.Is(err, ErrInvalidStage),
		errors.Is(err, ErrInvalidDecision):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
