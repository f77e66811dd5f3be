package approval

import (
	"errors"
	"net/http"

	"github.com/shipdesk/shipdesk/internal/orders"
)

var (
	// ErrVendorRequired indicates a dispatch or enquiry with no vendor
	// address in the command and none configured.
	ErrVendorRequired = errors.New("vendor email required")
	// ErrInvalidCommand indicates a command that failed validation.
	ErrInvalidCommand = errors.New("invalid command")
)

// MapHTTPStatus maps approval errors to HTTP status codes, deferring to
// the order ledger's mapping for errors it does not own.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrVendorRequired), errors.Is(err, ErrInvalidCommand):
		return http.StatusBadRequest
	default:
		return orders.MapHTTPStatus(err)
	}
}
