// Package mail provides inbound and outbound email transport over the
// Gmail API.
package mail

import (
	"context"
	netmail "net/mail"
	"strings"
)

// Attachment is a file attached to an inbound message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is an inbound email message.
type Message struct {
	ID          string
	Sender      string
	Subject     string
	Body        string
	Attachments []Attachment
}

// System manages email transport operations.
type System interface {
	// Poll returns unread inbox messages in arrival order, oldest first.
	// Messages are not marked processed; callers do that explicitly once
	// a message has been handled.
	Poll(ctx context.Context) ([]Message, error)
	// MarkProcessed removes the unread marker from a message so later
	// polls skip it.
	MarkProcessed(ctx context.Context, id string) error
	// Send delivers a plain-text message. Failures wrap ErrSendFailed.
	Send(ctx context.Context, to, subject, body string) error
}

// NormalizeAddress reduces a From header value to a bare lowercase
// address. "Acme Vendor <ops@acme.example>" becomes "ops@acme.example".
// Values that do not parse are trimmed and lowercased as-is.
func NormalizeAddress(sender string) string {
	addr, err := netmail.ParseAddress(sender)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(sender))
	}
	return strings.ToLower(addr.Address)
}
