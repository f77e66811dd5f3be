// Package intent classifies inbound customer email and selects the reply
// to send.
package intent

import (
	"strings"

	"github.com/shipdesk/shipdesk/internal/extraction"
	"github.com/shipdesk/shipdesk/internal/templates"
)

// QueryType distinguishes new order requests from shipping enquiries.
type QueryType string

const (
	QueryOrder    QueryType = "order"
	QueryShipping QueryType = "shipping"
)

// Result is the outcome of classifying a customer email.
type Result struct {
	// Ignored marks mail that belongs to the vendor flow; no reply is
	// sent and no record is created.
	Ignored bool
	// QueryType is "order" unless shipping keywords appear in the body.
	QueryType QueryType
	// Fields holds the order details recognized in the body.
	Fields extraction.Fields
	// Complete reports whether the fields identify an actionable order.
	Complete bool
	// ReplyKind names the reply template for this classification.
	ReplyKind templates.Kind
}

var shippingKeywords = []string{
	"delivery", "ship", "shipping", "status", "dispatched", "arrive",
	"track", "tracking", "where is my order", "delivered", "dispatch",
	"when will",
}

// Classify examines a customer email's subject and body. Mail whose
// subject mentions the vendor is ignored entirely. Otherwise the body is
// scanned for order fields and shipping keywords, and the reply template
// is selected from the combination.
func Classify(subject, body string) Result {
	if strings.Contains(strings.ToLower(subject), "vendor") {
		return Result{Ignored: true}
	}

	result := Result{
		QueryType: QueryOrder,
		Fields:    extraction.Extract(body),
	}
	result.Complete = result.Fields.Complete()

	lower := strings.ToLower(body)
	for _, keyword := range shippingKeywords {
		if strings.Contains(lower, keyword) {
			result.QueryType = QueryShipping
			break
		}
	}

	result.ReplyKind = replyKind(result)
	return result
}

func replyKind(r Result) templates.Kind {
	if r.QueryType == QueryShipping {
		if r.Fields.OrderID != "" {
			return templates.KindCustomerAckEscalate
		}
		return templates.KindCustomerRequestOrderID
	}

	if !r.Complete {
		return templates.KindCustomerRequestMissing
	}
	return templates.KindCustomerOrderReceived
}
