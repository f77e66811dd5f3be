package templates

import (
	"context"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/pkg/pagination"
)

// System defines the public contract for template domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Template], error)

	Find(ctx context.Context, id uuid.UUID) (*Template, error)
	Create(ctx context.Context, cmd CreateCommand) (*Template, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*Template, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Template, error)

	// Resolve returns the effective template for a kind: the active DB
	// override if one exists, otherwise the hardcoded default.
	Resolve(ctx context.Context, kind Kind) (*Template, error)
	// Render resolves the effective template for a kind and executes it
	// against data.
	Render(ctx context.Context, kind Kind, data Data) (Message, error)
}
