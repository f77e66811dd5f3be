package approval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/internal/mail"
	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/templates"
)

type service struct {
	orders    orders.System
	templates templates.System
	sender    mail.System
	workflow  *config.WorkflowConfig
	logger    *slog.Logger
	validate  *validator.Validate
}

// New creates an approval service implementing the System interface.
func New(
	ordersSys orders.System,
	templatesSys templates.System,
	sender mail.System,
	workflow *config.WorkflowConfig,
	logger *slog.Logger,
) System {
	return &service{
		orders:    ordersSys,
		templates: templatesSys,
		sender:    sender,
		workflow:  workflow,
		logger:    logger.With("system", "approval"),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Dispatch(ctx context.Context, id uuid.UUID, cmd DispatchCommand) (*orders.Order, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}

	vendor, err := s.resolveVendor(cmd.VendorEmail)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Stage != orders.StageCreated {
		return nil, orders.ErrInvalidTransition
	}

	shipping, err := s.resolveShipping(cmd.ShippingCharge)
	if err != nil {
		return nil, err
	}

	msg, err := s.templates.Render(ctx, templates.KindVendorOrder, templates.Data{
		OrderID:        orderRef(order),
		ProductName:    deref(order.ProductName),
		Price:          deref(order.Price),
		Quantity:       deref(order.Quantity),
		ShippingCharge: shipping.String(),
		Total:          orderTotal(order, shipping).String(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, vendor, msg.Subject, msg.Body); err != nil {
		return nil, err
	}

	s.logger.Info("order dispatched to vendor", "order", id, "vendor", vendor)
	return s.orders.MarkAwaitingVendor(ctx, id, vendor)
}

func (s *service) Enquire(ctx context.Context, id uuid.UUID, cmd EnquiryCommand) (*orders.Order, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}

	vendor, err := s.resolveVendor(cmd.VendorEmail)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Stage != orders.StageCreated {
		return nil, orders.ErrInvalidTransition
	}

	msg, err := s.templates.Render(ctx, templates.KindVendorEnquiry, templates.Data{
		OrderID:       orderRef(order),
		CustomerEmail: order.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, vendor, msg.Subject, msg.Body); err != nil {
		return nil, err
	}

	s.logger.Info("enquiry dispatched to vendor", "order", id, "vendor", vendor)
	return s.orders.MarkAwaitingVendor(ctx, id, vendor)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) (*DecisionResult, error) {
	return s.decide(ctx, id, orders.DecisionApproved)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) (*DecisionResult, error) {
	return s.decide(ctx, id, orders.DecisionRejected)
}

func (s *service) decide(ctx context.Context, id uuid.UUID, decision orders.Decision) (*DecisionResult, error) {
	order, err := s.orders.Decide(ctx, id, decision)
	if err != nil {
		return nil, err
	}

	s.logger.Info("record closed", "order", id, "decision", decision)

	return &DecisionResult{
		Order:         order,
		Notifications: s.notify(ctx, order, decision),
	}, nil
}

// notify delivers the vendor and customer notifications for a decision.
// The two sends run independently; a failure on either side is recorded
// in its result and does not affect the other.
func (s *service) notify(ctx context.Context, order *orders.Order, decision orders.Decision) []NotificationResult {
	vendorKind := templates.KindVendorApproved
	customerKind := templates.KindCustomerApproved
	status := deref(order.VendorStatus)
	payment := deref(order.PaymentAmount)

	if decision == orders.DecisionRejected {
		vendorKind = templates.KindVendorRejected
		customerKind = templates.KindCustomerRejected
		if status == "" {
			status = "Not shipped"
		}
		if payment == "" {
			payment = "N/A"
		}
	}

	results := make([]NotificationResult, 2)

	var g errgroup.Group
	g.Go(func() error {
		results[0] = s.send(ctx, vendorKind, deref(order.VendorEmail), templates.Data{
			OrderRef: orderRef(order),
		})
		return nil
	})
	g.Go(func() error {
		results[1] = s.send(ctx, customerKind, order.CustomerEmail, templates.Data{
			VendorStatus:  status,
			PaymentAmount: payment,
		})
		return nil
	})
	g.Wait()

	return results
}

func (s *service) send(ctx context.Context, kind templates.Kind, to string, data templates.Data) NotificationResult {
	result := NotificationResult{Recipient: to, Kind: kind}

	if to == "" {
		result.Error = "no recipient address"
		return result
	}

	msg, err := s.templates.Render(ctx, kind, data)
	if err != nil {
		s.logger.Error("notification render failed", "kind", kind, "error", err)
		result.Error = err.Error()
		return result
	}

	if err := s.sender.Send(ctx, to, msg.Subject, msg.Body); err != nil {
		s.logger.Error("notification delivery failed", "kind", kind, "recipient", to, "error", err)
		result.Error = err.Error()
		return result
	}

	result.Sent = true
	return result
}

// resolveShipping prefers a per-dispatch charge over the configured
// default. Unlike order amounts, an unparseable override is rejected
// rather than degraded to zero: the manager typed it.
func (s *service) resolveShipping(requested string) (decimal.Decimal, error) {
	if requested == "" {
		return s.workflow.ShippingChargeAmount(), nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(requested))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: shipping charge %q", ErrInvalidCommand, requested)
	}
	return amount, nil
}

func (s *service) resolveVendor(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if s.workflow.VendorEmail != "" {
		return s.workflow.VendorEmail, nil
	}
	return "", ErrVendorRequired
}

// orderRef is the customer-facing order token, falling back to the
// record's own identity when none was extracted.
func orderRef(o *orders.Order) string {
	if ref := deref(o.OrderRef); ref != "" {
		return ref
	}
	return o.ID.String()
}
