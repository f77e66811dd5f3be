package reconcile

import (
	"errors"
	"net/http"
)

// Domain errors for vendor reply reconciliation.
var (
	// ErrNoTarget indicates no unresolved order exists to receive the
	// vendor reply. The message should stay unprocessed for a later pass.
	ErrNoTarget = errors.New("no unresolved order to reconcile")
)

// MapHTTPStatus maps reconciliation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoTarget) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
