package templates

type defaultTemplate struct {
	subject string
	body    string
}

var defaults = map[Kind]defaultTemplate{
	KindCustomerAckEscalate: {
		subject: "Re: {{.Subject}}",
		body: `Dear Customer,

Thank you for reaching out. We have received your shipping enquiry for Order ID {{.OrderID}}. We will check with the vendor and update you shortly.

Best regards,
AI Shipping Assistant`,
	},
	KindCustomerRequestOrderID: {
		subject: "Re: {{.Subject}}",
		body: `Dear Customer,

Could you please provide your Order ID so we can check your delivery status?

Thank you,
AI Shipping Assistant`,
	},
	KindCustomerRequestMissing: {
		subject: "Re: {{.Subject}}",
		body: `Dear Customer,

We couldn't locate your {{.MissingFields}} in the email. Kindly share these details to help us process your request.

Thank you,
AI Order Assistant`,
	},
	KindCustomerOrderReceived: {
		subject: "Re: {{.Subject}}",
		body: `Dear Customer,

Thank you for reaching out. We have received your query regarding Order #{{.OrderID}} for product '{{.ProductName}}'. Our manager will review and process it shortly.

Best regards,
AI Order Assistant`,
	},
	KindCustomerApproved: {
		subject: "Your Order Update - Product Shipment Confirmed",
		body: `Dear Customer,

Good news! The vendor has confirmed your product shipment.

Status: {{.VendorStatus}}
Payment Amount: ₹{{.PaymentAmount}}

Thank you for shopping with us!
Best regards,
AI Shipping Assistant`,
	},
	KindCustomerRejected: {
		subject: "Your Order Update - Shipment Rejected",
		body: `Dear Customer,

Unfortunately, your order could not be shipped due to vendor unavailability.

Status: {{.VendorStatus}}
Refund Amount: ₹{{.PaymentAmount}}

We apologize for the inconvenience.
Best regards,
AI Shipping Assistant`,
	},
	KindVendorOrder: {
		subject: "New Order Received: {{.ProductName}} (Order ID: {{.OrderID}})",
		body: `Dear Vendor,

Please ship the following product to the customer:

- Product Name: {{.ProductName}}
- Quantity: {{.Quantity}}
- Unit Price: ₹{{.Price}}
- Shipping Charge: ₹{{.ShippingCharge}}
- Total Price: ₹{{.Total}}

Kindly attach at least 2 food safety certificates with your shipment confirmation.

Best regards,
AI Shipping Manager`,
	},
	KindVendorEnquiry: {
		subject: "Shipping Status Request for Order ID: {{.OrderID}}",
		body: `Dear Vendor,

We have received a shipment enquiry from a customer.

- Order ID: {{.OrderID}}
- Customer Email: {{.CustomerEmail}}

Please provide the latest delivery status, estimated dispatch date, and tracking details (if available).
Attach at least 2 food safety certificates with your reply.

Best regards,
AI Order Enquiry Assistant`,
	},
	KindVendorCertificateReminder: {
		subject: "Re: {{.Subject}} - Missing Certificates",
		body: `Dear Vendor,

We received your shipment update for "{{.Subject}}", but only {{.CertificateCount}} certificate(s) were attached.
Please resend with at least 2 valid PDFs.

Best regards,
AI Shipping Manager`,
	},
	KindVendorAck: {
		subject: "Acknowledgment - {{.Subject}}",
		body: `Dear Vendor,

Thank you - we received your shipment confirmation and attached certificates.

Shipment Status: {{.VendorStatus}}
Payment amount: ₹{{.PaymentAmount}}
Certificates received: {{.CertificateCount}}

The manager will review the certificates and update the customer soon.

Best regards,
AI Shipping Manager`,
	},
	KindVendorApproved: {
		subject: "Certificates Approved - Order {{.OrderRef}}",
		body: `Dear Vendor,

We have reviewed the submitted food safety certificates for order {{.OrderRef}} and they are approved.
Please proceed with shipment and provide tracking details when available.

Best regards,
AI Shipping Manager`,
	},
	KindVendorRejected: {
		subject: "Certificates Rejected - Order {{.OrderRef}}",
		body: `Dear Vendor,

After reviewing the submitted food safety certificates for order {{.OrderRef}}, we found them insufficient or invalid.
Please resend valid food safety certificates (at least 2 valid PDFs) and include any missing shipment proof.

Best regards,
AI Shipping Manager`,
	},
}

// Default returns the hardcoded default template for a message kind.
// Returns ErrInvalidKind if the kind is not recognized.
func Default(kind Kind) (Template, error) {
	d, ok := defaults[kind]
	if !ok {
		return Template{}, ErrInvalidKind
	}
	return Template{
		Name:    "default",
		Kind:    kind,
		Subject: d.subject,
		Body:    d.body,
	}, nil
}
