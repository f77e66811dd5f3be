package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/pkg/pagination"
	"github.com/shipdesk/shipdesk/pkg/storage"
)

// System defines the public contract for order ledger operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Order], error)

	Find(ctx context.Context, id uuid.UUID) (*Order, error)
	Create(ctx context.Context, cmd CreateCommand) (*Order, error)

	// ReconciliationTarget selects the record an inbound vendor reply
	// should update: the most recently created unresolved record routed
	// through vendorEmail, or failing that the most recently created
	// unresolved record regardless of routing. The bool result is true
	// when the degraded fallback was used. Returns ErrNotFound when no
	// unresolved record exists at all.
	ReconciliationTarget(ctx context.Context, vendorEmail string) (*Order, bool, error)

	// MarkAwaitingVendor records the vendor routing address and advances
	// a created record to awaiting_vendor. Returns ErrInvalidTransition
	// if the record has already left the created stage.
	MarkAwaitingVendor(ctx context.Context, id uuid.UUID, vendorEmail string) (*Order, error)

	// AttachVendorReply persists the reconciled vendor fields and
	// certificate references and advances the record to vendor_responded.
	// Returns ErrAlreadyReconciled if a vendor reply already won the race
	// for this record.
	AttachVendorReply(ctx context.Context, id uuid.UUID, cmd VendorReplyCommand) (*Order, error)

	// Decide records the manager's verdict and closes the record. The
	// decision is write-once; returns ErrInvalidTransition if the record
	// is not awaiting review or is already closed.
	Decide(ctx context.Context, id uuid.UUID, decision Decision) (*Order, error)

	Certificates(ctx context.Context, orderID uuid.UUID) ([]Certificate, error)
	Certificate(ctx context.Context, orderID uuid.UUID, position int) (*Certificate, error)
	DownloadCertificate(ctx context.Context, orderID uuid.UUID, position int) (*Certificate, *storage.DownloadResult, error)
}
