package intake

import (
	"context"

	"github.com/shipdesk/shipdesk/pkg/lifecycle"
)

// System defines mailbox intake operations.
type System interface {
	// Handler returns the HTTP handler for intake endpoints.
	Handler() *Handler
	// ProcessCustomers polls the mailbox and handles customer messages:
	// each is classified, answered, and recorded in the ledger. Vendor
	// mail is left unread for the vendor pass.
	ProcessCustomers(ctx context.Context) (*CustomerRun, error)
	// ProcessVendors polls the mailbox and reconciles vendor messages
	// one at a time in arrival order. Messages with no open record to
	// receive them stay unread for a later pass.
	ProcessVendors(ctx context.Context) (*VendorRun, error)
	// Start launches the background poller when polling is enabled.
	Start(lc *lifecycle.Coordinator) error
}
