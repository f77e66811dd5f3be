// Package reconcile matches inbound vendor replies to open ledger
// records, enforces the certificate policy, and persists the vendor's
// shipment fields.
package reconcile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/shipdesk/shipdesk/internal/mail"
	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/templates"
	"github.com/shipdesk/shipdesk/pkg/storage"
)

// MinCertificates is the number of PDF certificates a vendor reply must
// carry before it may reach manager review.
const MinCertificates = 2

// OutcomeKind names what happened to a processed vendor message.
type OutcomeKind string

const (
	// OutcomeReconciled means the reply was matched and attached.
	OutcomeReconciled OutcomeKind = "reconciled"
	// OutcomeReminder means the reply carried too few certificates; a
	// reminder was sent and no record was touched.
	OutcomeReminder OutcomeKind = "reminder"
)

// Outcome reports the result of processing one vendor message.
type Outcome struct {
	Kind             OutcomeKind   `json:"kind"`
	Order            *orders.Order `json:"order,omitempty"`
	Fallback         bool          `json:"fallback"`
	VendorStatus     string        `json:"vendor_status,omitempty"`
	PaymentAmount    string        `json:"payment_amount,omitempty"`
	CertificateCount int           `json:"certificate_count"`
	AckSent          bool          `json:"ack_sent"`
}

// System defines the public contract for vendor reply reconciliation.
type System interface {
	// Process reconciles one vendor message. Returns ErrNoTarget when no
	// unresolved record exists; the caller should leave the message
	// unprocessed so a later pass can retry it.
	Process(ctx context.Context, msg mail.Message) (*Outcome, error)
}

type reconciler struct {
	orders    orders.System
	templates templates.System
	sender    mail.System
	store     storage.System
	logger    *slog.Logger
}

// New creates a reconciliation system over the given collaborators.
func New(
	ordersSys orders.System,
	templatesSys templates.System,
	sender mail.System,
	store storage.System,
	logger *slog.Logger,
) System {
	return &reconciler{
		orders:    ordersSys,
		templates: templatesSys,
		sender:    sender,
		store:     store,
		logger:    logger.With("system", "reconcile"),
	}
}

func (r *reconciler) Process(ctx context.Context, msg mail.Message) (*Outcome, error) {
	sender := mail.NormalizeAddress(msg.Sender)
	status := ExtractStatus(msg.Body)
	payment := ExtractPayment(msg.Body)
	pdfs := pdfAttachments(msg.Attachments)

	r.logger.Info("vendor reply received",
		"from", sender,
		"subject", msg.Subject,
		"status", status,
		"payment", payment,
		"pdfs", len(pdfs),
	)

	if len(pdfs) < MinCertificates {
		return r.remind(ctx, sender, msg.Subject, len(pdfs))
	}

	target, fallback, err := r.orders.ReconciliationTarget(ctx, sender)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return nil, ErrNoTarget
		}
		return nil, fmt.Errorf("select reconciliation target: %w", err)
	}

	certs, err := r.storeCertificates(ctx, target.ID, pdfs)
	if err != nil {
		return nil, err
	}

	updated, err := r.orders.AttachVendorReply(ctx, target.ID, orders.VendorReplyCommand{
		VendorEmail:   sender,
		VendorStatus:  status,
		PaymentAmount: payment,
		Certificates:  certs,
	})
	if err != nil {
		return nil, fmt.Errorf("attach vendor reply: %w", err)
	}

	outcome := &Outcome{
		Kind:             OutcomeReconciled,
		Order:            updated,
		Fallback:         fallback,
		VendorStatus:     status,
		PaymentAmount:    payment,
		CertificateCount: len(pdfs),
	}

	outcome.AckSent = r.acknowledge(ctx, sender, msg.Subject, status, payment, len(pdfs))
	return outcome, nil
}

// remind notifies the vendor that too few certificates were attached.
// The ledger is left untouched so a later, complete reply can still match.
func (r *reconciler) remind(ctx context.Context, sender, subject string, count int) (*Outcome, error) {
	rendered, err := r.templates.Render(ctx, templates.KindVendorCertificateReminder, templates.Data{
		Subject:          subject,
		CertificateCount: count,
	})
	if err != nil {
		return nil, fmt.Errorf("render reminder: %w", err)
	}

	sent := true
	if err := r.sender.Send(ctx, sender, rendered.Subject, rendered.Body); err != nil {
		sent = false
		r.logger.Warn("certificate reminder not delivered", "to", sender, "error", err)
	}

	return &Outcome{
		Kind:             OutcomeReminder,
		CertificateCount: count,
		AckSent:          sent,
	}, nil
}

// storeCertificates uploads every PDF the vendor sent and returns
// references for the first two. Extra uploads stay in storage without a
// certificate row.
func (r *reconciler) storeCertificates(
	ctx context.Context,
	orderID uuid.UUID,
	pdfs []mail.Attachment,
) ([]orders.CertificateInput, error) {
	now := time.Now()
	inputs := make([]orders.CertificateInput, 0, MinCertificates)

	for i, pdf := range pdfs {
		key := certificateKey(orderID, now, i+1, pdf.Filename)

		if err := r.store.Upload(ctx, key, bytes.NewReader(pdf.Data), "application/pdf"); err != nil {
			return nil, fmt.Errorf("store certificate %s: %w", pdf.Filename, err)
		}

		if i >= MinCertificates {
			continue
		}

		pages := 0
		if count, err := api.PageCount(bytes.NewReader(pdf.Data), nil); err != nil {
			r.logger.Warn("certificate page count unreadable", "filename", pdf.Filename, "error", err)
		} else {
			pages = count
		}

		inputs = append(inputs, orders.CertificateInput{
			Filename:   pdf.Filename,
			StorageKey: key,
			PageCount:  pages,
		})
	}

	return inputs, nil
}

func (r *reconciler) acknowledge(ctx context.Context, sender, subject, status, payment string, count int) bool {
	rendered, err := r.templates.Render(ctx, templates.KindVendorAck, templates.Data{
		Subject:          subject,
		VendorStatus:     status,
		PaymentAmount:    payment,
		CertificateCount: count,
	})
	if err != nil {
		r.logger.Warn("vendor acknowledgment not rendered", "error", err)
		return false
	}

	if err := r.sender.Send(ctx, sender, rendered.Subject, rendered.Body); err != nil {
		r.logger.Warn("vendor acknowledgment not delivered", "to", sender, "error", err)
		return false
	}
	return true
}

func pdfAttachments(attachments []mail.Attachment) []mail.Attachment {
	var pdfs []mail.Attachment
	for _, a := range attachments {
		if strings.HasSuffix(strings.ToLower(a.Filename), ".pdf") {
			pdfs = append(pdfs, a)
		}
	}
	return pdfs
}
