package orders

import (
	"net/url"
	"strconv"

	"github.com/shipdesk/shipdesk/pkg/query"
	"github.com/shipdesk/shipdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "orders", "o").
	Project("id", "ID").
	Project("customer_email", "CustomerEmail").
	Project("raw_text", "RawText").
	Project("reply_text", "ReplyText").
	Project("order_ref", "OrderRef").
	Project("product_name", "ProductName").
	Project("price", "Price").
	Project("quantity", "Quantity").
	Project("query_type", "QueryType").
	Project("complete", "Complete").
	Project("vendor_email", "VendorEmail").
	Project("vendor_status", "VendorStatus").
	Project("payment_amount", "PaymentAmount").
	Project("manager_decision", "ManagerDecision").
	Project("stage", "Stage").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// newest first
var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var certificateProjection = query.
	NewProjectionMap("public", "certificates", "c").
	Project("id", "ID").
	Project("order_id", "OrderID").
	Project("position", "Position").
	Project("filename", "Filename").
	Project("storage_key", "StorageKey").
	Project("page_count", "PageCount").
	Project("received_at", "ReceivedAt")

var certificateSort = query.SortField{
	Field: "Position",
}

// Filters contains optional filtering criteria for order queries.
// Nil fields are ignored. ReviewQueue narrows to records awaiting a
// manager decision on a vendor submission.
type Filters struct {
	Stage         *Stage    `json:"stage,omitempty"`
	QueryType     *string   `json:"query_type,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	VendorEmail   *string   `json:"vendor_email,omitempty"`
	Complete      *bool     `json:"complete,omitempty"`
	Decision      *Decision `json:"decision,omitempty"`
	ReviewQueue   *bool     `json:"review_queue,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("Stage", f.Stage).
		WhereEquals("QueryType", f.QueryType).
		WhereContains("CustomerEmail", f.CustomerEmail).
		WhereContains("VendorEmail", f.VendorEmail).
		WhereEquals("Complete", f.Complete).
		WhereEquals("ManagerDecision", f.Decision)

	if f.ReviewQueue != nil && *f.ReviewQueue {
		b.
			WhereNull("VendorStatus", false).
			WhereNull("ManagerDecision", true)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("stage"); s != "" {
		if stage, err := ParseStage(s); err == nil {
			f.Stage = &stage
		}
	}

	if q := values.Get("query_type"); q != "" {
		f.QueryType = &q
	}

	if c := values.Get("customer_email"); c != "" {
		f.CustomerEmail = &c
	}

	if v := values.Get("vendor_email"); v != "" {
		f.VendorEmail = &v
	}

	if c := values.Get("complete"); c != "" {
		if v, err := strconv.ParseBool(c); err == nil {
			f.Complete = &v
		}
	}

	if d := values.Get("decision"); d != "" {
		if decision, err := ParseDecision(d); err == nil {
			f.Decision = &decision
		}
	}

	if r := values.Get("review_queue"); r != "" {
		if v, err := strconv.ParseBool(r); err == nil {
			f.ReviewQueue = &v
		}
	}

	return f
}

func scanOrder(s repository.Scanner) (Order, error) {
	var o Order
	err := s.Scan(
		&o.ID,
		&o.CustomerEmail,
		&o.RawText,
		&o.ReplyText,
		&o.OrderRef,
		&o.ProductName,
		&o.Price,
		&o.Quantity,
		&o.QueryType,
		&o.Complete,
		&o.VendorEmail,
		&o.VendorStatus,
		&o.PaymentAmount,
		&o.ManagerDecision,
		&o.Stage,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func scanCertificate(s repository.Scanner) (Certificate, error) {
	var c Certificate
	err := s.Scan(
		&c.ID,
		&c.OrderID,
		&c.Position,
		&c.Filename,
		&c.StorageKey,
		&c.PageCount,
		&c.ReceivedAt,
	)
	return c, err
}
