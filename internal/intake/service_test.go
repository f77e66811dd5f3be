package intake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/internal/intake"
	"github.com/shipdesk/shipdesk/internal/mail"
	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/reconcile"
	"github.com/shipdesk/shipdesk/internal/templates"
	"github.com/shipdesk/shipdesk/pkg/pagination"
	"github.com/shipdesk/shipdesk/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMailConfig() *config.MailConfig {
	return &config.MailConfig{PollInterval: "1m", MaxPerPoll: 25}
}

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

type mockMail struct {
	inbox     []mail.Message
	sent      []sentMessage
	processed []string
	sendErr   error
}

func (m *mockMail) Poll(ctx context.Context) ([]mail.Message, error) {
	return m.inbox, nil
}
func (m *mockMail) MarkProcessed(ctx context.Context, id string) error {
	m.processed = append(m.processed, id)
	return nil
}
func (m *mockMail) Send(ctx context.Context, to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMessage{To: to, Subject: subject, Body: body})
	return nil
}

type mockTemplates struct{}

func (m *mockTemplates) Handler() *templates.Handler { return nil }
func (m *mockTemplates) List(ctx context.Context, page pagination.PageRequest, filters templates.Filters) (*pagination.PageResult[templates.Template], error) {
	return nil, nil
}
func (m *mockTemplates) Find(ctx context.Context, id uuid.UUID) (*templates.Template, error) {
	return nil, templates.ErrNotFound
}
func (m *mockTemplates) Create(ctx context.Context, cmd templates.CreateCommand) (*templates.Template, error) {
	return nil, nil
}
func (m *mockTemplates) Update(ctx context.Context, id uuid.UUID, cmd templates.UpdateCommand) (*templates.Template, error) {
	return nil, nil
}
func (m *mockTemplates) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (m *mockTemplates) Activate(ctx context.Context, id uuid.UUID) (*templates.Template, error) {
	return nil, nil
}
func (m *mockTemplates) Deactivate(ctx context.Context, id uuid.UUID) (*templates.Template, error) {
	return nil, nil
}
func (m *mockTemplates) Resolve(ctx context.Context, kind templates.Kind) (*templates.Template, error) {
	t, err := templates.Default(kind)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
func (m *mockTemplates) Render(ctx context.Context, kind templates.Kind, data templates.Data) (templates.Message, error) {
	t, err := m.Resolve(ctx, kind)
	if err != nil {
		return templates.Message{}, err
	}
	return templates.Render(*t, data)
}

type mockOrders struct {
	created   []orders.CreateCommand
	createErr error
}

func (m *mockOrders) Handler() *orders.Handler { return nil }
func (m *mockOrders) List(ctx context.Context, page pagination.PageRequest, filters orders.Filters) (*pagination.PageResult[orders.Order], error) {
	return nil, nil
}
func (m *mockOrders) Find(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	return nil, orders.ErrNotFound
}
func (m *mockOrders) Create(ctx context.Context, cmd orders.CreateCommand) (*orders.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, cmd)
	return &orders.Order{
		ID:            uuid.New(),
		CustomerEmail: cmd.CustomerEmail,
		QueryType:     cmd.QueryType,
		Complete:      cmd.Complete,
		Stage:         orders.StageCreated,
	}, nil
}
func (m *mockOrders) ReconciliationTarget(ctx context.Context, vendorEmail string) (*orders.Order, bool, error) {
	return nil, false, orders.ErrNotFound
}
func (m *mockOrders) MarkAwaitingVendor(ctx context.Context, id uuid.UUID, vendorEmail string) (*orders.Order, error) {
	return nil, nil
}
func (m *mockOrders) AttachVendorReply(ctx context.Context, id uuid.UUID, cmd orders.VendorReplyCommand) (*orders.Order, error) {
	return nil, nil
}
func (m *mockOrders) Decide(ctx context.Context, id uuid.UUID, decision orders.Decision) (*orders.Order, error) {
	return nil, nil
}
func (m *mockOrders) Certificates(ctx context.Context, orderID uuid.UUID) ([]orders.Certificate, error) {
	return nil, nil
}
func (m *mockOrders) Certificate(ctx context.Context, orderID uuid.UUID, position int) (*orders.Certificate, error) {
	return nil, orders.ErrNotFound
}
func (m *mockOrders) DownloadCertificate(ctx context.Context, orderID uuid.UUID, position int) (*orders.Certificate, *storage.DownloadResult, error) {
	return nil, nil, orders.ErrNotFound
}

type mockReconcile struct {
	processed []string
	outcome   *reconcile.Outcome
	err       error
}

func (m *mockReconcile) Process(ctx context.Context, msg mail.Message) (*reconcile.Outcome, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.processed = append(m.processed, msg.ID)
	return m.outcome, nil
}

func TestProcessCustomersCompleteOrder(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "m1",
		Sender:  "Jo Customer <customer@example.com>",
		Subject: "New order request",
		Body:    "Order ID: 5678\nProduct Name: Organic Oats.\nPrice: 350\nQuantity: 5",
	}}}
	ordersSys := &mockOrders{}

	sys := intake.New(mailbox, ordersSys, &mockTemplates{}, &mockReconcile{}, testMailConfig(), testLogger())

	run, err := sys.ProcessCustomers(context.Background())
	if err != nil {
		t.Fatalf("ProcessCustomers error: %v", err)
	}

	if run.Polled != 1 || len(run.Outcomes) != 1 {
		t.Fatalf("run = %+v", run)
	}
	outcome := run.Outcomes[0]
	if outcome.Sender != "customer@example.com" {
		t.Errorf("Sender = %s", outcome.Sender)
	}
	if outcome.QueryType != "order" || !outcome.Complete {
		t.Errorf("outcome = %+v", outcome)
	}
	if !outcome.ReplySent || outcome.OrderID == nil {
		t.Errorf("outcome = %+v", outcome)
	}

	if len(mailbox.sent) != 1 {
		t.Fatalf("sent = %d messages", len(mailbox.sent))
	}
	reply := mailbox.sent[0]
	if reply.To != "customer@example.com" {
		t.Errorf("reply to = %s", reply.To)
	}
	if reply.Subject != "Re: New order request" {
		t.Errorf("reply subject = %s", reply.Subject)
	}
	if !strings.Contains(reply.Body, "Order #5678") || !strings.Contains(reply.Body, "'Organic Oats'") {
		t.Errorf("reply body:\n%s", reply.Body)
	}

	if len(ordersSys.created) != 1 {
		t.Fatalf("created = %d records", len(ordersSys.created))
	}
	cmd := ordersSys.created[0]
	if cmd.OrderRef == nil || *cmd.OrderRef != "5678" {
		t.Errorf("OrderRef = %v", cmd.OrderRef)
	}
	if cmd.ProductName == nil || *cmd.ProductName != "Organic Oats" {
		t.Errorf("ProductName = %v", cmd.ProductName)
	}
	if !cmd.Complete {
		t.Error("record should be complete")
	}

	if len(mailbox.processed) != 1 || mailbox.processed[0] != "m1" {
		t.Errorf("processed = %v", mailbox.processed)
	}
}

func TestProcessCustomersIncompleteOrder(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "m1",
		Sender:  "customer@example.com",
		Subject: "Need to buy something",
		Body:    "I would like to place an order please",
	}}}
	ordersSys := &mockOrders{}

	sys := intake.New(mailbox, ordersSys, &mockTemplates{}, &mockReconcile{}, testMailConfig(), testLogger())

	run, err := sys.ProcessCustomers(context.Background())
	if err != nil {
		t.Fatalf("ProcessCustomers error: %v", err)
	}

	if run.Outcomes[0].Complete {
		t.Error("outcome should be incomplete")
	}
	if !strings.Contains(mailbox.sent[0].Body, "Order ID and Product Name") {
		t.Errorf("reply body:\n%s", mailbox.sent[0].Body)
	}
	if len(ordersSys.created) != 1 {
		t.Fatal("incomplete queries still get a ledger record")
	}
	if ordersSys.created[0].Complete {
		t.Error("record marked complete without required fields")
	}
}

func TestProcessCustomersShippingEnquiry(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "m1",
		Sender:  "customer@example.com",
		Subject: "Where is my delivery",
		Body:    "Could you check the delivery status of order id 9012?",
	}}}
	ordersSys := &mockOrders{}

	sys := intake.New(mailbox, ordersSys, &mockTemplates{}, &mockReconcile{}, testMailConfig(), testLogger())

	run, err := sys.ProcessCustomers(context.Background())
	if err != nil {
		t.Fatalf("ProcessCustomers error: %v", err)
	}

	if run.Outcomes[0].QueryType != "shipping" {
		t.Errorf("QueryType = %s", run.Outcomes[0].QueryType)
	}
	if !strings.Contains(mailbox.sent[0].Body, "Order ID 9012") {
		t.Errorf("reply body:\n%s", mailbox.sent[0].Body)
	}
	if ordersSys.created[0].QueryType != "shipping" {
		t.Errorf("record QueryType = %s", ordersSys.created[0].QueryType)
	}
}

func TestProcessCustomersLeavesVendorMail(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "v1",
		Sender:  "vendor@acme.example",
		Subject: "Vendor Shipment Update",
		Body:    "shipped",
	}}}
	ordersSys := &mockOrders{}

	sys := intake.New(mailbox, ordersSys, &mockTemplates{}, &mockReconcile{}, testMailConfig(), testLogger())

	run, err := sys.ProcessCustomers(context.Background())
	if err != nil {
		t.Fatalf("ProcessCustomers error: %v", err)
	}

	if !run.Outcomes[0].Ignored {
		t.Error("vendor mail should be ignored")
	}
	if len(ordersSys.created) != 0 {
		t.Error("vendor mail must not create records")
	}
	if len(mailbox.sent) != 0 {
		t.Error("vendor mail must not receive a customer reply")
	}
	if len(mailbox.processed) != 0 {
		t.Error("vendor mail must stay unread for the vendor pass")
	}
}

func TestProcessCustomersCreateFailureLeavesUnread(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "m1",
		Sender:  "customer@example.com",
		Subject: "New order",
		Body:    "Order ID: 5678\nProduct Name: Organic Oats",
	}}}
	ordersSys := &mockOrders{createErr: errors.New("connection refused")}

	sys := intake.New(mailbox, ordersSys, &mockTemplates{}, &mockReconcile{}, testMailConfig(), testLogger())

	run, err := sys.ProcessCustomers(context.Background())
	if err != nil {
		t.Fatalf("ProcessCustomers error: %v", err)
	}

	if run.Outcomes[0].OrderID != nil {
		t.Error("no record should be reported")
	}
	if len(mailbox.processed) != 0 {
		t.Error("message must stay unread so the next poll retries")
	}
}

func TestProcessVendors(t *testing.T) {
	orderID := uuid.New()
	mailbox := &mockMail{inbox: []mail.Message{
		{ID: "c1", Sender: "customer@example.com", Subject: "New order", Body: "Order ID: 5678"},
		{ID: "v1", Sender: "vendor@acme.example", Subject: "Vendor Shipment Update", Body: "shipped"},
	}}
	rec := &mockReconcile{outcome: &reconcile.Outcome{
		Kind:  reconcile.OutcomeReconciled,
		Order: &orders.Order{ID: orderID},
	}}

	sys := intake.New(mailbox, &mockOrders{}, &mockTemplates{}, rec, testMailConfig(), testLogger())

	run, err := sys.ProcessVendors(context.Background())
	if err != nil {
		t.Fatalf("ProcessVendors error: %v", err)
	}

	if run.Polled != 1 {
		t.Fatalf("Polled = %d, expected only the vendor message", run.Polled)
	}
	if len(rec.processed) != 1 || rec.processed[0] != "v1" {
		t.Errorf("reconciled = %v", rec.processed)
	}
	outcome := run.Outcomes[0]
	if outcome.Status != "reconciled" {
		t.Errorf("Status = %s", outcome.Status)
	}
	if outcome.OrderID == nil || *outcome.OrderID != orderID {
		t.Errorf("OrderID = %v", outcome.OrderID)
	}
	if len(mailbox.processed) != 1 || mailbox.processed[0] != "v1" {
		t.Errorf("processed = %v", mailbox.processed)
	}
}

func TestProcessVendorsNoTargetDefers(t *testing.T) {
	mailbox := &mockMail{inbox: []mail.Message{{
		ID:      "v1",
		Sender:  "vendor@acme.example",
		Subject: "Vendor Shipment Update",
		Body:    "shipped",
	}}}
	rec := &mockReconcile{err: reconcile.ErrNoTarget}

	sys := intake.New(mailbox, &mockOrders{}, &mockTemplates{}, rec, testMailConfig(), testLogger())

	run, err := sys.ProcessVendors(context.Background())
	if err != nil {
		t.Fatalf("ProcessVendors error: %v", err)
	}

	if run.Outcomes[0].Status != intake.StatusDeferred {
		t.Errorf("Status = %s", run.Outcomes[0].Status)
	}
	if len(mailbox.processed) != 0 {
		t.Error("deferred message must stay unread")
	}
}
