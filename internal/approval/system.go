package approval

import (
	"context"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/internal/orders"
)

// System defines manager workflow operations.
type System interface {
	// Handler returns the HTTP handler for approval endpoints.
	Handler() *Handler
	// Dispatch sends the vendor a new-order email for a record and moves
	// it to the awaiting-vendor stage. The email carries the product
	// details and the computed total including the shipping charge.
	Dispatch(ctx context.Context, id uuid.UUID, cmd DispatchCommand) (*orders.Order, error)
	// Enquire sends the vendor a shipping-status request for a record
	// and moves it to the awaiting-vendor stage.
	Enquire(ctx context.Context, id uuid.UUID, cmd EnquiryCommand) (*orders.Order, error)
	// Approve closes a reconciled record as approved and notifies the
	// vendor and the customer. Notification failures are reported in the
	// result, never as an error.
	Approve(ctx context.Context, id uuid.UUID) (*DecisionResult, error)
	// Reject closes a reconciled record as rejected and notifies the
	// vendor and the customer. Notification failures are reported in the
	// result, never as an error.
	Reject(ctx context.Context, id uuid.UUID) (*DecisionResult, error)
}
