// Package approval implements the manager's side of the workflow:
// dispatching order and enquiry emails to the vendor, then closing
// reconciled records with an approve or reject decision and notifying
// both the vendor and the customer.
package approval

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/templates"
)

// DispatchCommand names the vendor to send a new order to. An empty
// VendorEmail falls back to the configured default vendor address; an
// empty ShippingCharge falls back to the configured flat charge.
type DispatchCommand struct {
	VendorEmail    string `json:"vendor_email" validate:"omitempty,email"`
	ShippingCharge string `json:"shipping_charge"`
}

// EnquiryCommand names the vendor to ask for shipment status. An empty
// VendorEmail falls back to the configured default vendor address.
type EnquiryCommand struct {
	VendorEmail string `json:"vendor_email" validate:"omitempty,email"`
}

// NotificationResult records one outbound decision notification. Delivery
// failures surface here; they never undo the decision itself.
type NotificationResult struct {
	Recipient string         `json:"recipient"`
	Kind      templates.Kind `json:"kind"`
	Sent      bool           `json:"sent"`
	Error     string         `json:"error,omitempty"`
}

// DecisionResult is a closed record together with the outcome of its
// vendor and customer notifications.
type DecisionResult struct {
	Order         *orders.Order        `json:"order"`
	Notifications []NotificationResult `json:"notifications"`
}

// orderTotal computes unit price times quantity plus the shipping charge.
// Unparseable price or quantity values contribute zero.
func orderTotal(o *orders.Order, shipping decimal.Decimal) decimal.Decimal {
	price := parseAmount(o.Price)
	quantity := parseAmount(o.Quantity)
	return price.Mul(quantity).Add(shipping)
}

func parseAmount(v *string) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(*v), ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
