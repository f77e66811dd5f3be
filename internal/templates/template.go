// Package templates implements the reply template domain. It provides
// the hardcoded default texts for every outbound message class, named
// override records stored in the database, and HTTP handlers for
// managing them.
package templates

import "github.com/google/uuid"

// Template represents a named subject/body override for a message kind.
// Subject and Body are text/template sources rendered against Data.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Description *string   `json:"description"`
	Active      bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new template override.
type CreateCommand struct {
	Name        string  `json:"name" validate:"required"`
	Kind        Kind    `json:"kind" validate:"required"`
	Subject     string  `json:"subject" validate:"required"`
	Body        string  `json:"body" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing template override.
type UpdateCommand struct {
	Name        string  `json:"name" validate:"required"`
	Kind        Kind    `json:"kind" validate:"required"`
	Subject     string  `json:"subject" validate:"required"`
	Body        string  `json:"body" validate:"required"`
	Description *string `json:"description"`
}
