// Package extraction pulls structured order fields out of free-form
// customer email text.
package extraction

import (
	"regexp"
	"strings"
)

// Fields holds the order details recognized in an email body. An empty
// string means the field was not present in the text.
type Fields struct {
	OrderID     string
	ProductName string
	Price       string
	Quantity    string
}

// Complete reports whether the fields identify an actionable order.
// Order ID and product name are required; price and quantity are not.
func (f Fields) Complete() bool {
	return f.OrderID != "" && f.ProductName != ""
}

// Missing returns the display names of required fields that were not
// recognized, in a fixed order.
func (f Fields) Missing() []string {
	var missing []string
	if f.OrderID == "" {
		missing = append(missing, "Order ID")
	}
	if f.ProductName == "" {
		missing = append(missing, "Product Name")
	}
	return missing
}

var (
	orderIDPattern  = regexp.MustCompile(`(?i)(?:order[\s_-]*(?:id)?[\s#:=-]*)(\d{2,})`)
	productPattern  = regexp.MustCompile(`(?i)(?:product\s*(?:name)?[:\- ]*)([A-Za-z0-9\s]+)`)
	pricePattern    = regexp.MustCompile(`(?i)(?:price|cost)[:\- ]*₹?\s?(\d+[,.]?\d*)`)
	quantityPattern = regexp.MustCompile(`(?i)(?:quantity|qty|pieces|units|packs)[:\- ]*(\d+)`)
)

// Extract scans text with each field pattern independently. The first
// match per pattern wins; a pattern with no match leaves its field empty.
// One field failing to match never suppresses the others.
func Extract(text string) Fields {
	var fields Fields

	if m := orderIDPattern.FindStringSubmatch(text); m != nil {
		fields.OrderID = strings.TrimSpace(m[1])
	}
	if m := productPattern.FindStringSubmatch(text); m != nil {
		fields.ProductName = strings.TrimSpace(m[1])
	}
	if m := pricePattern.FindStringSubmatch(text); m != nil {
		fields.Price = strings.TrimSpace(m[1])
	}
	if m := quantityPattern.FindStringSubmatch(text); m != nil {
		fields.Quantity = strings.TrimSpace(m[1])
	}

	return fields
}
