// Package orders implements the order ledger domain: the record of each
// customer inquiry's lifecycle from intake through vendor reconciliation
// to the manager's closing decision.
package orders

import (
	"time"

	"github.com/google/uuid"
)

// Order represents one customer inquiry's full lifecycle entry.
// OrderRef is the customer-supplied order token recognized in the email
// text, not the record's own identity.
type Order struct {
	ID              uuid.UUID `json:"id"`
	CustomerEmail   string    `json:"customer_email"`
	RawText         string    `json:"raw_text"`
	ReplyText       *string   `json:"reply_text"`
	OrderRef        *string   `json:"order_ref"`
	ProductName     *string   `json:"product_name"`
	Price           *string   `json:"price"`
	Quantity        *string   `json:"quantity"`
	QueryType       string    `json:"query_type"`
	Complete        bool      `json:"complete"`
	VendorEmail     *string   `json:"vendor_email"`
	VendorStatus    *string   `json:"vendor_status"`
	PaymentAmount   *string   `json:"payment_amount"`
	ManagerDecision *Decision `json:"manager_decision"`
	Stage           Stage     `json:"stage"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Certificate is a stored reference to a vendor-supplied PDF attachment.
// Position is 1 or 2; only the first two certificates of a vendor reply
// are referenced on the record.
type Certificate struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	Position   int       `json:"position"`
	Filename   string    `json:"filename"`
	StorageKey string    `json:"storage_key"`
	PageCount  int       `json:"page_count"`
	ReceivedAt time.Time `json:"received_at"`
}

// CreateCommand carries the data needed to create a ledger record.
type CreateCommand struct {
	CustomerEmail string  `json:"customer_email" validate:"required"`
	RawText       string  `json:"raw_text"`
	ReplyText     *string `json:"reply_text"`
	OrderRef      *string `json:"order_ref"`
	ProductName   *string `json:"product_name"`
	Price         *string `json:"price"`
	Quantity      *string `json:"quantity"`
	QueryType     string  `json:"query_type" validate:"required,oneof=order shipping"`
	Complete      bool    `json:"complete"`
}

// CertificateInput references an uploaded certificate to record against
// an order during reconciliation.
type CertificateInput struct {
	Filename   string
	StorageKey string
	PageCount  int
}

// VendorReplyCommand carries the reconciled vendor fields to attach to a
// record. VendorEmail backfills the record's routing address when the
// manager never set one; an empty value leaves it untouched.
type VendorReplyCommand struct {
	VendorEmail   string
	VendorStatus  string
	PaymentAmount string
	Certificates  []CertificateInput
}
