package templates_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/internal/templates"
	"github.com/shipdesk/shipdesk/pkg/pagination"
)

// stubConnector drives the repository through database/sql without a
// server: every query lands in respond, and the issued SQL and bound
// arguments are recorded for assertions.
type stubConnector struct{ conn *stubConn }

func (c *stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c *stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, errors.New("open via connector") }

type stubQuery struct {
	sql  string
	args []driver.Value
}

type stubConn struct {
	mu      sync.Mutex
	queries []stubQuery
	respond func(q string, args []driver.Value) driver.Rows
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare unsupported") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

func (c *stubConn) QueryContext(ctx context.Context, q string, named []driver.NamedValue) (driver.Rows, error) {
	args := make([]driver.Value, len(named))
	for i, nv := range named {
		args[i] = nv.Value
	}
	c.mu.Lock()
	c.queries = append(c.queries, stubQuery{sql: q, args: args})
	c.mu.Unlock()
	return c.respond(q, args), nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

func templateColumns() []string {
	return []string{"id", "name", "kind", "subject", "body", "description", "active"}
}

func stubTemplates(t *testing.T, conn *stubConn) templates.System {
	t.Helper()
	db := sql.OpenDB(&stubConnector{conn: conn})
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return templates.New(db, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestCreateWithoutDescription(t *testing.T) {
	id := uuid.New()
	conn := &stubConn{}
	conn.respond = func(q string, args []driver.Value) driver.Rows {
		return &stubRows{
			cols: templateColumns(),
			rows: [][]driver.Value{{
				id.String(), "terse vendor order", "vendor-order",
				"Order {{.OrderID}}", "Please ship {{.ProductName}}.", nil, false,
			}},
		}
	}

	sys := stubTemplates(t, conn)

	created, err := sys.Create(context.Background(), templates.CreateCommand{
		Name:    "terse vendor order",
		Kind:    templates.KindVendorOrder,
		Subject: "Order {{.OrderID}}",
		Body:    "Please ship {{.ProductName}}.",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != id {
		t.Errorf("ID = %s, want %s", created.ID, id)
	}
	if created.Description != nil {
		t.Errorf("Description = %v, want nil", *created.Description)
	}

	if len(conn.queries) != 1 {
		t.Fatalf("queries = %d, want 1", len(conn.queries))
	}
	q := conn.queries[0]
	if !strings.Contains(q.sql, "INSERT INTO templates") {
		t.Fatalf("unexpected query:\n%s", q.sql)
	}
	if len(q.args) != 5 {
		t.Fatalf("args = %d, want 5", len(q.args))
	}
	if q.args[4] != nil {
		t.Errorf("description binding = %v, want NULL", q.args[4])
	}
}

func TestCreateBindsDescription(t *testing.T) {
	desc := "shorter subject line"
	conn := &stubConn{}
	conn.respond = func(q string, args []driver.Value) driver.Rows {
		return &stubRows{
			cols: templateColumns(),
			rows: [][]driver.Value{{
				uuid.New().String(), "terse vendor order", "vendor-order",
				"Order {{.OrderID}}", "Please ship {{.ProductName}}.", desc, false,
			}},
		}
	}

	sys := stubTemplates(t, conn)

	created, err := sys.Create(context.Background(), templates.CreateCommand{
		Name:        "terse vendor order",
		Kind:        templates.KindVendorOrder,
		Subject:     "Order {{.OrderID}}",
		Body:        "Please ship {{.ProductName}}.",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Description == nil || *created.Description != desc {
		t.Errorf("Description = %v, want %q", created.Description, desc)
	}
	if got := conn.queries[0].args[4]; got != desc {
		t.Errorf("description binding = %v, want %q", got, desc)
	}
}
