package templates_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shipdesk/shipdesk/internal/templates"
)

func TestRenderDefaults(t *testing.T) {
	tests := []struct {
		name            string
		kind            templates.Kind
		data            templates.Data
		expectedSubject string
		bodyContains    []string
	}{
		{
			name: "customer ack escalate",
			kind: templates.KindCustomerAckEscalate,
			data: templates.Data{
				Subject: "Delivery Status",
				OrderID: "5678",
			},
			expectedSubject: "Re: Delivery Status",
			bodyContains:    []string{"Order ID 5678", "check with the vendor"},
		},
		{
			name: "customer request order id",
			kind: templates.KindCustomerRequestOrderID,
			data: templates.Data{
				Subject: "Where is my order",
			},
			expectedSubject: "Re: Where is my order",
			bodyContains:    []string{"provide your Order ID"},
		},
		{
			name: "customer missing fields",
			kind: templates.KindCustomerRequestMissing,
			data: templates.Data{
				Subject:       "Order Request",
				MissingFields: "Order ID and Product Name",
			},
			expectedSubject: "Re: Order Request",
			bodyContains:    []string{"locate your Order ID and Product Name"},
		},
		{
			name: "customer order received",
			kind: templates.KindCustomerOrderReceived,
			data: templates.Data{
				Subject:     "Order Request",
				OrderID:     "5678",
				ProductName: "Organic Oats",
			},
			expectedSubject: "Re: Order Request",
			bodyContains:    []string{"Order #5678", "'Organic Oats'"},
		},
		{
			name: "vendor order",
			kind: templates.KindVendorOrder,
			data: templates.Data{
				OrderID:        "5678",
				ProductName:    "Organic Oats",
				Price:          "350",
				Quantity:       "5",
				ShippingCharge: "50",
				Total:          "1800",
			},
			expectedSubject: "New Order Received: Organic Oats (Order ID: 5678)",
			bodyContains:    []string{"Total Price: ₹1800", "at least 2 food safety certificates"},
		},
		{
			name: "vendor certificate reminder",
			kind: templates.KindVendorCertificateReminder,
			data: templates.Data{
				Subject:          "Vendor Shipment Update",
				CertificateCount: 1,
			},
			expectedSubject: "Re: Vendor Shipment Update - Missing Certificates",
			bodyContains:    []string{"only 1 certificate(s) were attached", "at least 2 valid PDFs"},
		},
		{
			name: "vendor ack",
			kind: templates.KindVendorAck,
			data: templates.Data{
				Subject:          "Vendor Shipment Update",
				VendorStatus:     "Shipped",
				PaymentAmount:    "2500",
				CertificateCount: 2,
			},
			expectedSubject: "Acknowledgment - Vendor Shipment Update",
			bodyContains:    []string{"Shipment Status: Shipped", "₹2500", "Certificates received: 2"},
		},
		{
			name: "customer approved",
			kind: templates.KindCustomerApproved,
			data: templates.Data{
				VendorStatus:  "Shipped",
				PaymentAmount: "2500",
			},
			expectedSubject: "Your Order Update - Product Shipment Confirmed",
			bodyContains:    []string{"Status: Shipped", "Payment Amount: ₹2500"},
		},
		{
			name: "customer rejected",
			kind: templates.KindCustomerRejected,
			data: templates.Data{
				VendorStatus:  "Not shipped",
				PaymentAmount: "N/A",
			},
			expectedSubject: "Your Order Update - Shipment Rejected",
			bodyContains:    []string{"could not be shipped", "Refund Amount: ₹N/A"},
		},
		{
			name: "vendor approved",
			kind: templates.KindVendorApproved,
			data: templates.Data{
				OrderRef: "5678",
			},
			expectedSubject: "Certificates Approved - Order 5678",
			bodyContains:    []string{"they are approved"},
		},
		{
			name: "vendor rejected",
			kind: templates.KindVendorRejected,
			data: templates.Data{
				OrderRef: "5678",
			},
			expectedSubject: "Certificates Rejected - Order 5678",
			bodyContains:    []string{"insufficient or invalid"},
		},
		{
			name: "vendor enquiry",
			kind: templates.KindVendorEnquiry,
			data: templates.Data{
				OrderID:       "5678",
				CustomerEmail: "customer@example.com",
			},
			expectedSubject: "Shipping Status Request for Order ID: 5678",
			bodyContains:    []string{"Order ID: 5678", "customer@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := templates.Default(tt.kind)
			if err != nil {
				t.Fatalf("Default(%s) error: %v", tt.kind, err)
			}

			msg, err := templates.Render(tmpl, tt.data)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}

			if msg.Subject != tt.expectedSubject {
				t.Errorf("subject = %q, expected %q", msg.Subject, tt.expectedSubject)
			}

			for _, fragment := range tt.bodyContains {
				if !strings.Contains(msg.Body, fragment) {
					t.Errorf("body missing %q:\n%s", fragment, msg.Body)
				}
			}
		})
	}
}

func TestRenderInvalidTemplate(t *testing.T) {
	tmpl := templates.Template{
		Kind:    templates.KindVendorAck,
		Subject: "{{.Unclosed",
		Body:    "fine",
	}

	_, err := templates.Render(tmpl, templates.Data{})
	if !errors.Is(err, templates.ErrRender) {
		t.Errorf("expected ErrRender, got %v", err)
	}
}

func TestDefaultUnknownKind(t *testing.T) {
	_, err := templates.Default(templates.Kind("bogus"))
	if !errors.Is(err, templates.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range templates.Kinds() {
		parsed, err := templates.ParseKind(string(kind))
		if err != nil {
			t.Errorf("ParseKind(%s) error: %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%s) = %s", kind, parsed)
		}
	}

	if _, err := templates.ParseKind("unknown"); !errors.Is(err, templates.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind for unknown kind, got %v", err)
	}
}
