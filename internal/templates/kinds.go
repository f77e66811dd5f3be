package templates

import (
	"encoding/json"
	"slices"
)

// Kind identifies the message class a template renders.
type Kind string

// Valid message kinds.
const (
	KindCustomerAckEscalate       Kind = "customer-ack-escalate"
	KindCustomerRequestOrderID    Kind = "customer-request-order-id"
	KindCustomerRequestMissing    Kind = "customer-request-missing"
	KindCustomerOrderReceived     Kind = "customer-order-received"
	KindCustomerApproved          Kind = "customer-approved"
	KindCustomerRejected          Kind = "customer-rejected"
	KindVendorOrder               Kind = "vendor-order"
	KindVendorEnquiry             Kind = "vendor-enquiry"
	KindVendorCertificateReminder Kind = "vendor-certificate-reminder"
	KindVendorAck                 Kind = "vendor-ack"
	KindVendorApproved            Kind = "vendor-approved"
	KindVendorRejected            Kind = "vendor-rejected"
)

var kinds = []Kind{
	KindCustomerAckEscalate,
	KindCustomerRequestOrderID,
	KindCustomerRequestMissing,
	KindCustomerOrderReceived,
	KindCustomerApproved,
	KindCustomerRejected,
	KindVendorOrder,
	KindVendorEnquiry,
	KindVendorCertificateReminder,
	KindVendorAck,
	KindVendorApproved,
	KindVendorRejected,
}

// Kinds returns the list of valid message kinds.
func Kinds() []Kind {
	return kinds
}

// UnmarshalJSON validates that the decoded string is a known kind value.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Kind(raw)
	if !slices.Contains(kinds, v) {
		return ErrInvalidKind
	}
	*k = v
	return nil
}

// ParseKind validates a string as a known message kind.
// Returns ErrInvalidKind if the value is not recognized.
func ParseKind(s string) (Kind, error) {
	v := Kind(s)
	if !slices.Contains(kinds, v) {
		return "", ErrInvalidKind
	}
	return v, nil
}
