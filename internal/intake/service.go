package intake

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/internal/intent"
	"github.com/shipdesk/shipdesk/internal/mail"
	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/reconcile"
	"github.com/shipdesk/shipdesk/internal/templates"
	"github.com/shipdesk/shipdesk/pkg/lifecycle"
)

type service struct {
	mailbox   mail.System
	orders    orders.System
	templates templates.System
	reconcile reconcile.System
	cfg       *config.MailConfig
	logger    *slog.Logger
}

// New creates an intake service implementing the System interface.
func New(
	mailbox mail.System,
	ordersSys orders.System,
	templatesSys templates.System,
	reconcileSys reconcile.System,
	cfg *config.MailConfig,
	logger *slog.Logger,
) System {
	return &service{
		mailbox:   mailbox,
		orders:    ordersSys,
		templates: templatesSys,
		reconcile: reconcileSys,
		cfg:       cfg,
		logger:    logger.With("system", "intake"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) ProcessCustomers(ctx context.Context) (*CustomerRun, error) {
	messages, err := s.mailbox.Poll(ctx)
	if err != nil {
		return nil, err
	}

	run := &CustomerRun{Outcomes: []CustomerOutcome{}}
	for _, msg := range messages {
		run.Polled++
		run.Outcomes = append(run.Outcomes, s.processCustomer(ctx, msg))
	}
	return run, nil
}

func (s *service) processCustomer(ctx context.Context, msg mail.Message) CustomerOutcome {
	outcome := CustomerOutcome{
		MessageID: msg.ID,
		Sender:    mail.NormalizeAddress(msg.Sender),
	}

	result := intent.Classify(msg.Subject, msg.Body)
	if result.Ignored {
		// vendor mail stays unread for the vendor pass
		outcome.Ignored = true
		return outcome
	}

	outcome.QueryType = string(result.QueryType)
	outcome.Complete = result.Complete

	var replyBody string
	reply, err := s.templates.Render(ctx, result.ReplyKind, templates.Data{
		Subject:       msg.Subject,
		OrderID:       result.Fields.OrderID,
		ProductName:   result.Fields.ProductName,
		MissingFields: strings.Join(result.Fields.Missing(), " and "),
	})
	if err != nil {
		s.logger.Error("reply render failed", "message", msg.ID, "kind", result.ReplyKind, "error", err)
	} else {
		replyBody = reply.Body
		if err := s.mailbox.Send(ctx, outcome.Sender, reply.Subject, reply.Body); err != nil {
			s.logger.Error("reply delivery failed", "message", msg.ID, "recipient", outcome.Sender, "error", err)
		} else {
			outcome.ReplySent = true
		}
	}

	cmd := orders.CreateCommand{
		CustomerEmail: outcome.Sender,
		RawText:       msg.Body,
		QueryType:     string(result.QueryType),
		Complete:      result.Complete,
	}
	if replyBody != "" {
		cmd.ReplyText = &replyBody
	}
	if v := result.Fields.OrderID; v != "" {
		cmd.OrderRef = &v
	}
	if v := result.Fields.ProductName; v != "" {
		cmd.ProductName = &v
	}
	if v := result.Fields.Price; v != "" {
		cmd.Price = &v
	}
	if v := result.Fields.Quantity; v != "" {
		cmd.Quantity = &v
	}

	record, err := s.orders.Create(ctx, cmd)
	if err != nil {
		// left unread so the next poll retries
		s.logger.Error("record creation failed", "message", msg.ID, "error", err)
		return outcome
	}
	outcome.OrderID = &record.ID

	s.logger.Info("customer message recorded",
		"message", msg.ID,
		"order", record.ID,
		"query_type", outcome.QueryType,
		"complete", outcome.Complete)

	if err := s.mailbox.MarkProcessed(ctx, msg.ID); err != nil {
		s.logger.Warn("mark processed failed", "message", msg.ID, "error", err)
	}
	return outcome
}

func (s *service) ProcessVendors(ctx context.Context) (*VendorRun, error) {
	messages, err := s.mailbox.Poll(ctx)
	if err != nil {
		return nil, err
	}

	run := &VendorRun{Outcomes: []VendorOutcome{}}
	for _, msg := range messages {
		if !strings.Contains(strings.ToLower(msg.Subject), "vendor") {
			continue
		}
		run.Polled++
		run.Outcomes = append(run.Outcomes, s.processVendor(ctx, msg))
	}
	return run, nil
}

func (s *service) processVendor(ctx context.Context, msg mail.Message) VendorOutcome {
	outcome := VendorOutcome{MessageID: msg.ID}

	result, err := s.reconcile.Process(ctx, msg)
	switch {
	case errors.Is(err, reconcile.ErrNoTarget):
		s.logger.Warn("no open record for vendor reply; message left unread", "message", msg.ID)
		outcome.Status = StatusDeferred
		return outcome
	case err != nil:
		s.logger.Error("vendor reply processing failed", "message", msg.ID, "error", err)
		outcome.Status = StatusFailed
		return outcome
	}

	outcome.Status = string(result.Kind)
	outcome.Fallback = result.Fallback
	if result.Order != nil {
		outcome.OrderID = &result.Order.ID
	}

	if err := s.mailbox.MarkProcessed(ctx, msg.ID); err != nil {
		s.logger.Warn("mark processed failed", "message", msg.ID, "error", err)
	}
	return outcome
}

// Start launches the interval poller on the lifecycle context when
// polling is enabled. The poller stops when the context is cancelled.
func (s *service) Start(lc *lifecycle.Coordinator) error {
	if !s.cfg.PollEnabled {
		s.logger.Info("mailbox polling disabled")
		return nil
	}

	interval := s.cfg.PollIntervalDuration()
	go s.poll(lc.Context(), interval)
	s.logger.Info("mailbox poller started", "interval", interval)
	return nil
}

func (s *service) poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("mailbox poller stopped")
			return
		case <-ticker.C:
			if _, err := s.ProcessVendors(ctx); err != nil {
				s.logger.Error("vendor poll failed", "error", err)
			}
			if _, err := s.ProcessCustomers(ctx); err != nil {
				s.logger.Error("customer poll failed", "error", err)
			}
		}
	}
}
