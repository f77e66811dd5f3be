// Package intake polls the mailbox and routes messages into the
// workflow: customer mail becomes ledger records with an immediate
// reply, vendor mail is reconciled against the ledger.
package intake

import (
	"github.com/google/uuid"
)

// CustomerOutcome summarizes one customer message from a poll.
type CustomerOutcome struct {
	MessageID string     `json:"message_id"`
	Sender    string     `json:"sender"`
	Ignored   bool       `json:"ignored"`
	QueryType string     `json:"query_type,omitempty"`
	Complete  bool       `json:"complete"`
	ReplySent bool       `json:"reply_sent"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
}

// CustomerRun reports the result of one customer intake pass.
type CustomerRun struct {
	Polled   int               `json:"polled"`
	Outcomes []CustomerOutcome `json:"outcomes"`
}

// Vendor outcome statuses beyond the reconciler's own kinds.
const (
	// StatusDeferred marks a vendor message left unread because no open
	// record could receive it.
	StatusDeferred = "deferred"
	// StatusFailed marks a vendor message left unread after a processing
	// error.
	StatusFailed = "failed"
)

// VendorOutcome summarizes one vendor message from a poll.
type VendorOutcome struct {
	MessageID string     `json:"message_id"`
	Status    string     `json:"status"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	Fallback  bool       `json:"fallback"`
}

// VendorRun reports the result of one vendor intake pass.
type VendorRun struct {
	Polled   int             `json:"polled"`
	Outcomes []VendorOutcome `json:"outcomes"`
}
