package reconcile_test

import (
	"testing"

	"github.com/shipdesk/shipdesk/internal/reconcile"
)

func TestExtractStatus(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "shipped keyword",
			text:     "The goods were shipped this morning.",
			expected: "Shipped",
		},
		{
			name:     "uppercase keyword capitalized",
			text:     "ORDER DISPATCHED TODAY",
			expected: "Dispatched",
		},
		{
			name:     "not shipped phrase",
			text:     "Unfortunately the order is not shipped yet.",
			expected: "Not shipped",
		},
		{
			name:     "first keyword wins",
			text:     "Confirmed and dispatched together",
			expected: "Confirmed",
		},
		{
			name:     "no keyword defaults to pending",
			text:     "We will get back to you soon.",
			expected: "Pending",
		},
		{
			name:     "empty text defaults to pending",
			text:     "",
			expected: "Pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile.ExtractStatus(tt.text); got != tt.expected {
				t.Errorf("ExtractStatus(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractPayment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "payment keyword with rupee glyph",
			text:     "Payment: ₹2500 received",
			expected: "2500",
		},
		{
			name:     "amount keyword",
			text:     "Total amount - 1350.50",
			expected: "1350.50",
		},
		{
			name:     "first match wins",
			text:     "payment 100 then amount 200",
			expected: "100",
		},
		{
			name:     "no keyword defaults",
			text:     "Shipment is on its way.",
			expected: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile.ExtractPayment(tt.text); got != tt.expected {
				t.Errorf("ExtractPayment(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
		})
	}
}
