package templates

import (
	"errors"
	"net/http"
)

// Domain errors for template operations.
var (
	ErrNotFound      = errors.New("template not found")
	ErrDuplicate     = errors.New("template name already exists")
	ErrInvalidKind   = errors.New("unknown template kind")
	ErrInvalidRecord = errors.New("invalid template record")
	ErrRender        = errors.New("template failed to render")
)

// MapHTTPStatus maps template domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidKind) || errors.Is(err, ErrInvalidRecord) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRender) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
